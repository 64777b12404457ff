// Package validationx provides lightweight value validation.
//
// Validate and ValidateBy turn a failed condition into a caller supplied
// error. Check runs a list of named rules against a value and reports every
// failed rule at once:
//
//	err := validationx.Check(email,
//	    validationx.NotBlank(),
//	    validationx.MaxLength(254),
//	    validationx.Email(),
//	)
//
// The returned *errors.Error carries code VALIDATION_FAILED, the names of
// the failed rules in the "failed_rules" detail and the operation
// "validationx.Check".
package validationx
