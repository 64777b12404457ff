// File: formats.go
// Title: YAML and TOML Convenience Functions
// Description: YAML and TOML counterparts of Parse and Create.
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
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/samber/mo"
	"gopkg.in/yaml.v3"

	"github.com/LukasForst/katlib/core/errors"
)

// ParseYAML decodes a YAML document into a T
func ParseYAML[T any](data string, opts ...Option) mo.Option[T] {
	return decode[T]("YAML", []byte(data), yaml.Unmarshal, opts)
}

// CreateYAML encodes value as YAML
func CreateYAML(value any) (string, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return "", errors.InvalidInput(module, "CreateYAML", err.Error(), "YAML serializable value")
	}
	return string(data), nil
}

// ParseTOML decodes a TOML document into a T
func ParseTOML[T any](data string, opts ...Option) mo.Option[T] {
	return decode[T]("TOML", []byte(data), toml.Unmarshal, opts)
}

// CreateTOML encodes value, which must be a struct or a map (or a pointer to
// one), as TOML
func CreateTOML(value any) (string, error) {
	switch reflect.Indirect(reflect.ValueOf(value)).Kind() {
	case reflect.Struct, reflect.Map:
	default:
		return "", errors.InvalidInput(module, "CreateTOML", fmt.Sprintf("%T", value), "TOML table")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(value); err != nil {
		return "", errors.InvalidInput(module, "CreateTOML", err.Error(), "TOML table")
	}
	return buf.String(), nil
}
