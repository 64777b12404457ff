// File: validationx.go
// Title: Validation Helpers
// Description: Condition to error helpers, named rules and the format
//              checks shared with stringx.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Rules reduced to generic named predicates

package validationx

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"github.com/LukasForst/katlib/core/errors"
	"github.com/LukasForst/katlib/utils/stringx"
)

const module = "validationx"

// Validate returns onInvalid() when isValid is false
func Validate(isValid bool, onInvalid func() error) error {
	if isValid {
		return nil
	}
	return onInvalid()
}

// ValidateBy returns value when predicate holds, onInvalid(value) otherwise
func ValidateBy[T any](value T, predicate func(T) bool, onInvalid func(T) error) (T, error) {
	if predicate(value) {
		return value, nil
	}
	return value, onInvalid(value)
}

// Rule is a named predicate
type Rule[T any] struct {
	Name  string
	Valid func(T) bool
}

// NewRule creates a rule
func NewRule[T any](name string, valid func(T) bool) Rule[T] {
	return Rule[T]{Name: name, Valid: valid}
}

// Check runs every rule against value and fails with VALIDATION_FAILED
// naming all rules that did not hold.
func Check[T any](value T, rules ...Rule[T]) error {
	var failed []string
	for _, rule := range rules {
		if !rule.Valid(value) {
			failed = append(failed, rule.Name)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return errors.NewErrorBuilder(module).
		Operation("Check").
		Code(errors.CodeValidationFailed).
		Messagef("validation failed: %s", strings.Join(failed, ", ")).
		Detail("failed_rules", failed).
		Build()
}

// ===============================
// Rules
// ===============================

// NotBlank requires at least one non-whitespace character
func NotBlank() Rule[string] {
	return NewRule("not_blank", func(s string) bool { return strings.TrimSpace(s) != "" })
}

// MaxLength limits the length in runes
func MaxLength(n int) Rule[string] {
	return NewRule(fmt.Sprintf("max_length(%d)", n), func(s string) bool { return utf8.RuneCountInString(s) <= n })
}

// Email requires an e-mail address
func Email() Rule[string] {
	return NewRule("email", IsValidEmail)
}

// URL requires an absolute URL
func URL() Rule[string] {
	return NewRule("url", IsValidURL)
}

// UUID requires a UUID
func UUID() Rule[string] {
	return NewRule("uuid", IsValidUUID)
}

// InRange requires min <= value <= max
func InRange[T constraints.Ordered](min, max T) Rule[T] {
	return NewRule(fmt.Sprintf("in_range(%v, %v)", min, max), func(v T) bool { return min <= v && v <= max })
}

// ===============================
// Convenience Functions
// ===============================

// IsValidEmail is a convenience function for email validation
func IsValidEmail(email string) bool {
	return stringx.IsEmail(email)
}

// IsValidURL is a convenience function for URL validation
func IsValidURL(url string) bool {
	return stringx.IsURL(url)
}

// IsValidUUID is a convenience function for UUID validation
func IsValidUUID(uuid string) bool {
	return stringx.IsUUID(uuid)
}
