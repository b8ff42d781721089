package format

import (
	"errors"
	"fmt"
)

// Error represents a rejected template with the directive or count
// mismatch that caused the rejection.
type Error struct {
	// Template is the template being validated
	Template string

	// Detail describes the failure, e.g. "d != string"
	Detail string

	// Err is the sentinel categorizing the failure
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid format: %s: %s", e.Template, e.Detail)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel errors for template validation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrArity indicates the argument count does not match the number
	// of directives in the template.
	ErrArity = errors.New("format: argument count mismatch")

	// ErrType indicates an argument cannot be formatted with its
	// directive's verb.
	ErrType = errors.New("format: argument type mismatch")

	// ErrBadTemplate indicates the template itself is malformed or uses
	// an unsupported directive.
	ErrBadTemplate = errors.New("format: malformed template")
)
