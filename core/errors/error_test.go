// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the structured Error type, code propagation through
//              wrapping and the standard constructors.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Tests rewritten with testify

package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("boom")

	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, CodeUnknown, err.Code())
	assert.Equal(t, SeverityMedium, err.Severity())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("plain cause", func(t *testing.T) {
		err := Wrap(io.EOF, "reading input")
		assert.Equal(t, "reading input: EOF", err.Error())
		assert.True(t, stderrors.Is(err, io.EOF))
		assert.Equal(t, CodeUnknown, err.Code())
	})

	t.Run("inherits code", func(t *testing.T) {
		inner := New("empty").WithCode(CodeInvalidArgument).WithDetail("size", 0)
		err := Wrap(inner, "pick failed")
		assert.Equal(t, CodeInvalidArgument, err.Code())
		assert.Equal(t, SeverityLow, err.Severity())
		assert.Equal(t, 0, err.Details()["size"])
	})
}

func TestHasCode(t *testing.T) {
	base := New("bad").WithCode(CodeInvalidFormat)
	wrapped := fmt.Errorf("outer: %w", base)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", base, CodeInvalidFormat, true},
		{"through fmt wrap", wrapped, CodeInvalidFormat, true},
		{"other code", base, CodeNotFound, false},
		{"plain error", io.EOF, CodeInvalidFormat, false},
		{"nil", nil, CodeInvalidFormat, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCode(tt.err, tt.code))
		})
	}
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeNotFound, GetCode(fmt.Errorf("x: %w", NotFound("envx", "MustGet", "HOME"))))
	assert.Equal(t, CodeUnknown, GetCode(io.EOF))
}

func TestIsMatchesByCode(t *testing.T) {
	a := InvalidArgument("randx", "WeightedPick", "empty weights")
	b := New("other").WithCode(CodeInvalidArgument)

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, New("unknown")))
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		code      Code
		operation string
	}{
		{"invalid argument", InvalidArgument("randx", "WeightedPick", "empty"), CodeInvalidArgument, "randx.WeightedPick"},
		{"invalid input", InvalidInput("timex", "DaysInInterval", "x", "from <= to"), CodeInvalidInput, "timex.DaysInInterval"},
		{"invalid format", InvalidFormat("jsonx", "Parse", io.ErrUnexpectedEOF, "json"), CodeInvalidFormat, "jsonx.Parse"},
		{"out of range", OutOfRange("slicex", "SumByIndexes", 7, 0, 3), CodeValueOutOfRange, "slicex.SumByIndexes"},
		{"not found", NotFound("envx", "MustGet", "HOME"), CodeNotFound, "envx.MustGet"},
		{"operation failed", OperationFailed("hashx", "SHA256File", io.EOF), CodeInternal, "hashx.SHA256File"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, tt.operation, tt.err.Operation())
			assert.NotEmpty(t, tt.err.Error())
			assert.Equal(t, GetSeverityFromCode(tt.code), tt.err.Severity())
		})
	}
}

func TestBuilderDefaultMessage(t *testing.T) {
	err := NewErrorBuilder("hashx").Operation("SHA256File").Build()
	assert.Equal(t, "hashx.SHA256File failed", err.Message())
	assert.Equal(t, "hashx", err.Details()["module"])
}

func TestMarshalJSON(t *testing.T) {
	err := OutOfRange("slicex", "SumByIndexes", 7, 0, 3)

	raw, jerr := json.Marshal(err)
	require.NoError(t, jerr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "VALUE_OUT_OF_RANGE", decoded["code"])
	assert.Equal(t, "low", decoded["severity"])
	assert.Equal(t, "slicex.SumByIndexes", decoded["operation"])
}

func TestCodeIsValid(t *testing.T) {
	assert.True(t, CodeInvalidArgument.IsValid())
	assert.False(t, Code("NOPE").IsValid())
}

func TestString(t *testing.T) {
	err := Wrap(io.EOF, "read").WithCode(CodeInternal).WithOperation("promptx.Prompt")
	assert.Equal(t, "[INTERNAL] read (operation: promptx.Prompt) caused by: EOF", err.String())
}
