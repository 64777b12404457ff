// File: codes.go
// Title: Error Codes and Severities
// Description: Defines the error codes raised by katlib packages and the
//              default severity attached to each code.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Reduced to library codes, added CodeInvalidArgument

package errors

// Code is a machine readable error classification
type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidArgument,
		CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange,
		CodeValidationFailed, CodeConfigError, CodeEnvironmentError:
		return true
	}
	return false
}

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as invalid input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation with a known cause
	SeverityMedium

	// SeverityHigh indicates a broken environment or configuration
	SeverityHigh

	// SeverityCritical indicates an internal defect
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidArgument, CodeInvalidInput, CodeInvalidFormat,
		CodeValueOutOfRange, CodeValidationFailed, CodeNotFound:
		return SeverityLow
	case CodeConfigError, CodeEnvironmentError:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
