// File: envx.go
// Title: Environment Access
// Description: Environment variable lookup with fallbacks, .env file loading
//              and struct population from the environment.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

// Package envx reads the process environment.
//
// Lookups distinguish unset variables from variables set to the empty
// string. LoadDotEnv fills the environment from .env files without
// overriding variables that are already set, and Load populates a struct
// from `env` and `env-default` tags:
//
//	type settings struct {
//	    Seed uint64 `env:"KATLIB_SEED" env-default:"42"`
//	}
//
//	_ = envx.LoadDotEnv()
//	var s settings
//	if err := envx.Load(&s); err != nil {
//	    ...
//	}
package envx

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/LukasForst/katlib/core/config"
	"github.com/LukasForst/katlib/core/errors"
	"github.com/LukasForst/katlib/utils/stringx"
)

const module = "envx"

// Get returns the value of the variable and whether it is set
func Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

// GetOr returns the value of the variable, or the result of fallback when
// it is not set. fallback is not called for set variables.
func GetOr(name string, fallback func() string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback()
}

// GetOrDefault returns the value of the variable or def when it is not set
func GetOrDefault(name, def string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return def
}

// Require returns the value of the variable or an ENVIRONMENT_ERROR when it
// is not set.
func Require(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", errors.NewErrorBuilder(module).
			Operation("Require").
			Code(errors.CodeEnvironmentError).
			Messagef("environment variable %s is not set", name).
			Detail("variable", name).
			Build()
	}
	return value, nil
}

// MustGet is like Require but panics when the variable is not set
func MustGet(name string) string {
	value, err := Require(name)
	if err != nil {
		panic(err)
	}
	return value
}

// LoadDotEnv sets variables from the given files, ".env" when none are
// given. Variables that are already set keep their value.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(err, "failed to load .env file").
			WithCode(errors.CodeEnvironmentError).
			WithOperation("envx.LoadDotEnv").
			WithDetail("files", files)
	}
	return nil
}

// ReadDotEnv parses the given files without touching the environment
func ReadDotEnv(files ...string) (map[string]string, error) {
	values, err := godotenv.Read(files...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read .env file").
			WithCode(errors.CodeEnvironmentError).
			WithOperation("envx.ReadDotEnv").
			WithDetail("files", files)
	}
	return values, nil
}

// Load populates cfg, a pointer to a struct, from the environment
func Load(cfg any) error {
	return config.LoadInto("", cfg)
}

// NewLine returns the line separator of the host platform
func NewLine() string {
	return stringx.NewLine()
}
