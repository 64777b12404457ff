// File: validationx_test.go
// Title: Validation Helper Tests
// Description: Tests for Validate, ValidateBy, Check and the built in rules.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial tests

package validationx

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukasForst/katlib/core/errors"
)

var errInvalid = stderrors.New("invalid")

func TestValidate(t *testing.T) {
	onInvalid := func() error { return errInvalid }

	assert.NoError(t, Validate(true, onInvalid))
	assert.ErrorIs(t, Validate(false, onInvalid), errInvalid)
}

func TestValidateBy(t *testing.T) {
	positive := func(i int) bool { return i > 0 }
	onInvalid := func(i int) error { return errors.OutOfRange(module, "test", i, 1, nil) }

	value, err := ValidateBy(5, positive, onInvalid)
	require.NoError(t, err)
	assert.Equal(t, 5, value)

	_, err = ValidateBy(-1, positive, onInvalid)
	assert.True(t, errors.HasCode(err, errors.CodeValueOutOfRange))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		failed []string
	}{
		{"valid", "lukas@forst.pw", nil},
		{"blank", "  ", []string{"not_blank", "email"}},
		{"too long", "averyveryverylongname@forst.pw", []string{"max_length(20)"}},
		{"not an email", "forst.pw", []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.value, NotBlank(), MaxLength(20), Email())
			if tt.failed == nil {
				assert.NoError(t, err)
				return
			}

			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, errors.CodeValidationFailed, e.Code())
			assert.Equal(t, "validationx.Check", e.Operation())
			assert.Equal(t, tt.failed, e.Details()["failed_rules"])
		})
	}
}

func TestRules(t *testing.T) {
	assert.NoError(t, Check("https://forst.pw", URL()))
	assert.Error(t, Check("forst.pw", URL()))

	assert.NoError(t, Check("0f14d0ab-9605-4a62-a9e4-5ed26688389b", UUID()))
	assert.Error(t, Check("0f14d0ab", UUID()))

	weight := InRange(0.0, 1.0)
	assert.Equal(t, "in_range(0, 1)", weight.Name)
	assert.NoError(t, Check(0.5, weight))
	assert.Error(t, Check(1.5, weight))

	custom := NewRule("even", func(i int) bool { return i%2 == 0 })
	assert.NoError(t, Check(4, custom))
	assert.EqualError(t, Check(3, custom), "validation failed: even")
}

func TestConvenienceFunctions(t *testing.T) {
	assert.True(t, IsValidEmail("lukas@forst.pw"))
	assert.False(t, IsValidEmail("lukas"))
	assert.True(t, IsValidURL("https://forst.pw"))
	assert.False(t, IsValidURL("forst"))
	assert.True(t, IsValidUUID("0f14d0ab-9605-4a62-a9e4-5ed26688389b"))
	assert.False(t, IsValidUUID(""))
}
