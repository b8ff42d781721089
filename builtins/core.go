package builtins

import (
	"fmt"

	"github.com/luckydonald/copybara/format"
)

// Core returns the module of core evaluator helpers.
func Core() Module {
	return Module{
		Name: "core",
		Doc:  "string and template helpers",
		Funcs: map[string]Func{
			"format": {
				Name: "format",
				Doc:  "renders a printf-style template after type-checking its arguments",
				Impl: coreFormat,
			},
		},
	}
}

// coreFormat implements format(template, args): template is the
// printf-style string, args the list of values it consumes. Validation
// failures come back as *format.Error.
func coreFormat(args []any) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("format: expected 2 arguments (template, args), got %d", len(args))
	}
	template, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("format: template must be a string, got %T", args[0])
	}
	list, ok := args[1].([]any)
	if !ok {
		return nil, fmt.Errorf("format: args must be a list, got %T", args[1])
	}
	return format.Format(template, list)
}
