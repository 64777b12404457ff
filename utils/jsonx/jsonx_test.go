// File: jsonx_test.go
// Title: Encoding Convenience Tests
// Description: Tests for JSON, YAML and TOML parsing and creation, failure
//              logging and schema validation.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial tests

package jsonx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukasForst/katlib/core/errors"
	"github.com/LukasForst/katlib/core/log"
)

type weightedItem struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Weight float64 `json:"weight" yaml:"weight" toml:"weight"`
	Rank   int     `json:"rank" yaml:"rank" toml:"rank"`
}

func captureLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText, Output: &buf, Name: "test"})
	return logger, &buf
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *weightedItem
	}{
		{"valid", `{"name":"a","weight":0.5,"rank":2}`, &weightedItem{Name: "a", Weight: 0.5, Rank: 2}},
		{"unknown fields ignored", `{"name":"b","color":"red"}`, &weightedItem{Name: "b"}},
		{"float into int fails", `{"name":"c","rank":1.5}`, nil},
		{"broken document", `{"name":`, nil},
		{"wrong type", `["a"]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := captureLogger()
			result := Parse[weightedItem](tt.input, WithLogger(logger))
			if tt.expected == nil {
				assert.True(t, result.IsAbsent())
				return
			}
			assert.Equal(t, *tt.expected, result.MustGet())
		})
	}
}

func TestParseLogsFailures(t *testing.T) {
	logger, buf := captureLogger()

	result := ParseBytes[map[string]int]([]byte(`{"a":`), WithLogger(logger))
	assert.True(t, result.IsAbsent())
	assert.Contains(t, buf.String(), "[WRN]")
	assert.Contains(t, buf.String(), "failed to parse JSON")
	assert.Contains(t, buf.String(), `input={"a":`)

	buf.Reset()
	Parse[map[string]int](`{"a":`, WithLogger(logger), WithoutLogging())
	assert.Empty(t, buf.String())
}

func TestParseUsesDefaultLogger(t *testing.T) {
	logger, buf := captureLogger()
	previous := log.GetDefault()
	log.SetDefault(logger)
	t.Cleanup(func() { log.SetDefault(previous) })

	Parse[int](`"text"`)
	assert.Contains(t, buf.String(), "{jsonx}")
}

func TestCreate(t *testing.T) {
	item := weightedItem{Name: "a", Weight: 1.5, Rank: 1}

	compact, err := Create(item)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"a","weight":1.5,"rank":1}`, compact)

	raw, err := CreateBytes(item)
	require.NoError(t, err)
	assert.Equal(t, compact, string(raw))

	pretty, err := CreatePretty(item)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"weight\": 1.5,\n  \"rank\": 1\n}", pretty)

	_, err = Create(make(chan int))
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
}

func TestPrettyPrint(t *testing.T) {
	pretty, err := PrettyPrint(`{"a":[1,2],"b":{}}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": {}\n}", pretty)

	_, err = PrettyPrint(`{"a":`)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidFormat))
}

func TestYAML(t *testing.T) {
	parsed := ParseYAML[weightedItem]("name: a\nweight: 0.25\nrank: 3\n")
	assert.Equal(t, weightedItem{Name: "a", Weight: 0.25, Rank: 3}, parsed.MustGet())

	logger, _ := captureLogger()
	assert.True(t, ParseYAML[weightedItem]("rank: [1", WithLogger(logger)).IsAbsent())

	out, err := CreateYAML(weightedItem{Name: "b", Weight: 2, Rank: 1})
	require.NoError(t, err)
	assert.Equal(t, "name: b\nweight: 2\nrank: 1\n", out)
}

func TestTOML(t *testing.T) {
	parsed := ParseTOML[weightedItem]("name = \"a\"\nweight = 0.5\nrank = 2\n")
	assert.Equal(t, weightedItem{Name: "a", Weight: 0.5, Rank: 2}, parsed.MustGet())

	logger, _ := captureLogger()
	assert.True(t, ParseTOML[weightedItem]("name = ", WithLogger(logger)).IsAbsent())

	out, err := CreateTOML(weightedItem{Name: "b", Weight: 0.5, Rank: 1})
	require.NoError(t, err)
	roundTrip := ParseTOML[weightedItem](out)
	assert.Equal(t, weightedItem{Name: "b", Weight: 0.5, Rank: 1}, roundTrip.MustGet())

	out, err = CreateTOML(&weightedItem{Name: "c", Weight: 1, Rank: 3})
	require.NoError(t, err)
	assert.Equal(t, "c", ParseTOML[weightedItem](out).MustGet().Name)

	out, err = CreateTOML(map[string]int{"rank": 4})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"rank": int64(4)}, ParseTOML[map[string]any](out).MustGet())

	rank := 5
	for name, value := range map[string]any{
		"scalar":         42,
		"string":         "rank = 1",
		"pointer to int": &rank,
		"nil pointer":    (*weightedItem)(nil),
		"nil":            nil,
		"slice":          []int{1, 2},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := CreateTOML(value)
			assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
			assert.Empty(t, out)
		})
	}
}

func TestValidateSchema(t *testing.T) {
	schema := `{
	  "type": "object",
	  "required": ["name", "weight"],
	  "properties": {
	    "name": {"type": "string"},
	    "weight": {"type": "number", "minimum": 0}
	  }
	}`

	tests := []struct {
		name     string
		document string
		code     errors.Code
	}{
		{"valid", `{"name":"a","weight":0.5}`, ""},
		{"missing field", `{"name":"a"}`, errors.CodeValidationFailed},
		{"negative weight", `{"name":"a","weight":-1}`, errors.CodeValidationFailed},
		{"not json", `{"name":`, errors.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(schema, tt.document)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code))
		})
	}

	err := ValidateSchema(`{"type": 12}`, `{}`)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidFormat))
}
