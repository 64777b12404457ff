// File: jsonx.go
// Title: JSON Convenience Functions
// Description: Optional-returning JSON parsing with warning logs, and JSON
//              creation in compact and indented form.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package jsonx

import (
	"bytes"
	"encoding/json"

	"github.com/samber/mo"

	"github.com/LukasForst/katlib/core/errors"
	"github.com/LukasForst/katlib/core/log"
)

const (
	module = "jsonx"
	indent = "  "
)

type options struct {
	logFailures bool
	logger      *log.Logger
}

// Option configures a Parse call
type Option func(*options)

// WithoutLogging suppresses the warning logged for undecodable input
func WithoutLogging() Option {
	return func(o *options) { o.logFailures = false }
}

// WithLogger sends parse warnings to logger instead of the default logger
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(opts []Option) *options {
	o := &options{logFailures: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) warn(format string, input []byte, err error) {
	if !o.logFailures {
		return
	}
	logger := o.logger
	if logger == nil {
		logger = log.GetDefault().WithName(module)
	}
	logger.WarnWithErr("failed to parse "+format, err, log.String("input", string(input)))
}

func decode[T any](format string, data []byte, unmarshal func([]byte, any) error, opts []Option) mo.Option[T] {
	var value T
	if err := unmarshal(data, &value); err != nil {
		newOptions(opts).warn(format, data, err)
		return mo.None[T]()
	}
	return mo.Some(value)
}

// Parse decodes data into a T
func Parse[T any](data string, opts ...Option) mo.Option[T] {
	return ParseBytes[T]([]byte(data), opts...)
}

// ParseBytes decodes data into a T
func ParseBytes[T any](data []byte, opts ...Option) mo.Option[T] {
	return decode[T]("JSON", data, json.Unmarshal, opts)
}

// Create encodes value as compact JSON
func Create(value any) (string, error) {
	data, err := CreateBytes(value)
	return string(data), err
}

// CreateBytes encodes value as compact JSON
func CreateBytes(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.InvalidInput(module, "Create", err.Error(), "JSON serializable value")
	}
	return data, nil
}

// CreatePretty encodes value as JSON indented by two spaces
func CreatePretty(value any) (string, error) {
	data, err := json.MarshalIndent(value, "", indent)
	if err != nil {
		return "", errors.InvalidInput(module, "CreatePretty", err.Error(), "JSON serializable value")
	}
	return string(data), nil
}

// PrettyPrint re-indents a JSON document by two spaces
func PrettyPrint(document string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(document), "", indent); err != nil {
		return "", errors.InvalidFormat(module, "PrettyPrint", err, "JSON")
	}
	return buf.String(), nil
}
