// Package format renders printf-style templates with the argument
// types checked up front. Plain fmt.Sprintf never fails: a %d given a
// string silently renders as "%!d(string=...)" and the mistake travels
// on in the output. Here validation always runs first, so a bad
// template or a mismatched argument is surfaced as an error and
// nothing is rendered.
//
// The directive grammar is %[flags][width][.precision]verb with flags
// "-+ #0" and literal digits for width and precision. Star widths and
// argument indexes ("%*d", "%[1]d") are rejected. "%%" is a literal
// percent and consumes no argument.
package format

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Format validates template against args and renders it with
// fmt.Sprintf. On validation failure the returned string is empty and
// the error is an *Error wrapping ErrArity, ErrType or ErrBadTemplate.
func Format(template string, args []any) (string, error) {
	if err := Validate(template, args); err != nil {
		return "", err
	}
	return fmt.Sprintf(template, args...), nil
}

// Validate checks that every directive in template has exactly one
// argument of a kind its verb can format. Flags, width and precision
// never affect the check.
func Validate(template string, args []any) error {
	verbs, err := parseTemplate(template)
	if err != nil {
		return err
	}
	if len(verbs) != len(args) {
		return &Error{
			Template: template,
			Detail:   fmt.Sprintf("template expects %d arguments, got %d", len(verbs), len(args)),
			Err:      ErrArity,
		}
	}
	for i, verb := range verbs {
		if !accepts(verb, args[i]) {
			return &Error{
				Template: template,
				Detail:   fmt.Sprintf("%c != %s", verb, typeName(args[i])),
				Err:      ErrType,
			}
		}
	}
	return nil
}

// parseTemplate returns the verb of each argument-consuming directive
// in order of appearance.
func parseTemplate(template string) ([]rune, error) {
	var verbs []rune
	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			continue
		}
		i++
		if i >= len(runes) {
			return nil, &Error{Template: template, Detail: "template ends inside a directive", Err: ErrBadTemplate}
		}
		if runes[i] == '%' {
			// Literal percent, consumes no argument.
			continue
		}
		for i < len(runes) && strings.ContainsRune("-+ #0", runes[i]) {
			i++
		}
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
		if i < len(runes) && runes[i] == '.' {
			i++
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
		}
		if i >= len(runes) {
			return nil, &Error{Template: template, Detail: "template ends inside a directive", Err: ErrBadTemplate}
		}
		verb := runes[i]
		switch {
		case verb == '*':
			return nil, &Error{Template: template, Detail: "star widths are not supported", Err: ErrBadTemplate}
		case verb == '[':
			return nil, &Error{Template: template, Detail: "argument indexes are not supported", Err: ErrBadTemplate}
		case !supportedVerb(verb):
			return nil, &Error{Template: template, Detail: fmt.Sprintf("unsupported directive %%%c", verb), Err: ErrBadTemplate}
		}
		verbs = append(verbs, verb)
	}
	return verbs, nil
}

func supportedVerb(verb rune) bool {
	switch verb {
	case 'v', 's', 'q', 'd', 'b', 'o', 'O', 'c', 'U', 'x', 'X',
		'e', 'E', 'f', 'F', 'g', 'G', 't':
		return true
	}
	return false
}

// accepts reports whether arg can be formatted with verb without fmt
// emitting a %! error marker. The kinds mirror fmt's own rules.
func accepts(verb rune, arg any) bool {
	switch verb {
	case 'v':
		return true
	case 's':
		return stringish(arg)
	case 'q':
		return stringish(arg) || integer(arg)
	case 'd', 'b', 'o', 'O', 'c', 'U':
		return integer(arg)
	case 'x', 'X':
		return integer(arg) || float(arg) || stringish(arg)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return float(arg)
	case 't':
		_, ok := arg.(bool)
		return ok
	}
	return false
}

func stringish(arg any) bool {
	switch arg.(type) {
	case string, []byte, fmt.Stringer, error:
		return true
	}
	return false
}

func integer(arg any) bool {
	switch arg.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	}
	return false
}

func float(arg any) bool {
	switch arg.(type) {
	case float32, float64:
		return true
	}
	return false
}

// typeName names an argument's dynamic type for error messages.
func typeName(arg any) string {
	if arg == nil {
		return "nil"
	}
	return reflect.TypeOf(arg).String()
}
