// File: objx.go
// Title: Value Helpers
// Description: Conditional application, optional value conversion and
//              short and long renderings of arbitrary values.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package objx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/mo"
)

// WhenNil calls action when value is nil and returns value
func WhenNil[T any](value *T, action func()) *T {
	if value == nil {
		action()
	}
	return value
}

// WhenTrue calls action when condition holds and returns condition
func WhenTrue(condition bool, action func()) bool {
	if condition {
		action()
	}
	return condition
}

// WhenFalse calls action when condition does not hold and returns condition
func WhenFalse(condition bool, action func()) bool {
	if !condition {
		action()
	}
	return condition
}

// AsList wraps value in a one element slice
func AsList[T any](value T) []T {
	return []T{value}
}

// With passes value to block and returns its result
func With[T, R any](value T, block func(T) R) R {
	return block(value)
}

// ApplyIf returns block(value) when condition holds, value otherwise
func ApplyIf[T any](value T, condition bool, block func(T) T) T {
	if condition {
		return block(value)
	}
	return value
}

// ApplyIfBy returns block(value) when predicate(value) holds
func ApplyIfBy[T any](value T, predicate func(T) bool, block func(T) T) T {
	return ApplyIf(value, predicate(value), block)
}

// ApplyIfNotNil returns block(value, *param) when param is set
func ApplyIfNotNil[T, P any](value T, param *P, block func(T, P) T) T {
	if param == nil {
		return value
	}
	return block(value, *param)
}

// OrNil converts an option into a pointer, nil when absent
func OrNil[T any](option mo.Option[T]) *T {
	value, ok := option.Get()
	if !ok {
		return nil
	}
	return &value
}

// ShortString renders value for log messages: "nil" for nil, the String
// method for fmt.Stringer and %v otherwise.
func ShortString(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "nil"
		}
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// LongString renders value as "<Type>(<description>)" using the type name
// without its package. Without a description only the type name is
// returned; brackets selects "[...]" instead of "(...)".
func LongString(value any, description string, brackets bool) string {
	name := typeName(value)
	if description == "" {
		return name
	}
	if brackets {
		return name + "[" + description + "]"
	}
	return name + "(" + description + ")"
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	name := reflect.TypeOf(value).String()
	prefix := ""
	for strings.HasPrefix(name, "*") || strings.HasPrefix(name, "[]") {
		if strings.HasPrefix(name, "*") {
			prefix += "*"
			name = name[1:]
		} else {
			prefix += "[]"
			name = name[2:]
		}
	}
	if i := strings.LastIndex(name, "."); i >= 0 && !strings.ContainsAny(name, "[]") {
		name = name[i+1:]
	}
	return prefix + name
}
