// File: builders.go
// Title: Standard Error Constructors
// Description: Shared constructors so every katlib package reports the same
//              kind of failure with the same code, operation naming and
//              detail keys.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Builders keyed by module and operation

package errors

import "fmt"

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	code      Code
	details   map[string]interface{}
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *Error
	if eb.cause != nil {
		err = Wrap(eb.cause, eb.message)
	} else {
		err = New(eb.message)
	}

	op := eb.module
	if eb.operation != "" {
		op = eb.module + "." + eb.operation
	}
	return err.WithCode(eb.code).WithOperation(op).WithDetails(eb.details)
}

// InvalidArgument reports a precondition violated by the caller
func InvalidArgument(module, operation, reason string) *Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(CodeInvalidArgument).
		Message(reason).
		Build()
}

// InvalidInput reports input that does not have the expected shape
func InvalidInput(module, operation string, input interface{}, expected string) *Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(CodeInvalidInput).
		Messagef("invalid input, expected %s", expected).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat reports input that could not be parsed
func InvalidFormat(module, operation string, cause error, expectedFormat string) *Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(CodeInvalidFormat).
		Messagef("invalid %s", expectedFormat).
		Cause(cause).
		Detail("expected_format", expectedFormat).
		Build()
}

// OutOfRange reports a value outside of its allowed bounds
func OutOfRange(module, operation string, value, min, max interface{}) *Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(CodeValueOutOfRange).
		Messagef("value %v out of range [%v, %v]", value, min, max).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound reports a missing resource
func NotFound(module, operation string, identifier interface{}) *Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(CodeNotFound).
		Messagef("%v not found", identifier).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed wraps a failure of an underlying operation
func OperationFailed(module, operation string, cause error) *Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(CodeInternal).
		Cause(cause).
		Build()
}
