// Package builtins exposes this module's operations as named functions
// an embedded expression evaluator can register and dispatch to. The
// calling convention is plain Go values ([]any in, any out) so no
// evaluator's value representation leaks in here; the binding layer on
// the evaluator side adapts.
package builtins

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Func is one callable built-in.
type Func struct {
	// Name is the name callers invoke the function by.
	Name string

	// Doc is a one-line description for listings.
	Doc string

	// Impl receives the caller's arguments and returns the result.
	Impl func(args []any) (any, error)
}

// Module groups related built-ins under one namespace.
type Module struct {
	// Name is the namespace callers qualify functions with.
	Name string

	// Doc is a one-line description for listings.
	Doc string

	// Funcs maps function name to implementation.
	Funcs map[string]Func
}

// Sentinel errors for registry operations.
// These can be used with errors.Is() for error checking.
var (
	// ErrNotFound indicates an unknown module or function.
	ErrNotFound = errors.New("builtins: not found")

	// ErrDuplicateModule indicates a module name registered twice.
	ErrDuplicateModule = errors.New("builtins: module already registered")
)

// Registry holds modules and dispatches calls. It is safe for
// concurrent use; registration and lookup may interleave freely.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module to the registry. Registering a name twice is
// an error.
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modules[m.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateModule, m.Name)
	}
	r.modules[m.Name] = m
	return nil
}

// Modules lists the registered modules sorted by name.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Module, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a function by module and function name.
func (r *Registry) Lookup(module, fn string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[module]
	if !ok {
		return Func{}, fmt.Errorf("%w: module %q", ErrNotFound, module)
	}
	f, ok := m.Funcs[fn]
	if !ok {
		return Func{}, fmt.Errorf("%w: function %q in module %q", ErrNotFound, fn, module)
	}
	return f, nil
}

// Invoke looks up a function and calls it. The function runs outside
// the registry lock, and its error is returned unchanged.
func (r *Registry) Invoke(module, fn string, args []any) (any, error) {
	f, err := r.Lookup(module, fn)
	if err != nil {
		return nil, err
	}
	return f.Impl(args)
}
