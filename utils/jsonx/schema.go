// File: schema.go
// Title: JSON Schema Validation
// Description: Validates JSON documents against a JSON Schema.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package jsonx

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/LukasForst/katlib/core/errors"
)

const schemaURL = "schema.json"

// CompileSchema compiles a JSON Schema given as text
func CompileSchema(schema string) (*jsonschema.Schema, error) {
	compiled, err := jsonschema.CompileString(schemaURL, schema)
	if err != nil {
		return nil, errors.InvalidFormat(module, "CompileSchema", err, "JSON Schema")
	}
	return compiled, nil
}

// ValidateSchema checks document against schema
func ValidateSchema(schema, document string) error {
	compiled, err := CompileSchema(schema)
	if err != nil {
		return err
	}
	return Validate(compiled, document)
}

// Validate checks document against an already compiled schema
func Validate(schema *jsonschema.Schema, document string) error {
	var value any
	if err := json.Unmarshal([]byte(document), &value); err != nil {
		return errors.InvalidFormat(module, "Validate", err, "JSON")
	}
	if err := schema.Validate(value); err != nil {
		return errors.NewErrorBuilder(module).
			Operation("Validate").
			Code(errors.CodeValidationFailed).
			Message("document does not match schema").
			Cause(err).
			Build()
	}
	return nil
}
