// File: typed.go
// Title: Typed Configuration Loading
// Description: Loads configuration files directly into tagged structs using
//              cleanenv. Struct tags `toml`, `yaml`, `env` and `env-default`
//              control the mapping; environment values win over file values.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/LukasForst/katlib/core/errors"
)

// LoadInto reads path into cfg and then applies environment overrides.
// An empty path reads only the environment and defaults.
func LoadInto(path string, cfg interface{}) error {
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return errors.Wrap(err, "failed to read configuration from environment").
				WithCode(errors.CodeEnvironmentError).
				WithOperation("config.LoadInto")
		}
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.NotFound("config", "LoadInto", path)
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return errors.Wrap(err, "failed to load configuration").
			WithCode(errors.CodeConfigError).
			WithOperation("config.LoadInto").
			WithDetail("filePath", path)
	}
	return nil
}

// Describe returns the environment variables understood by cfg
func Describe(cfg interface{}, header string) (string, error) {
	return cleanenv.GetDescription(cfg, &header)
}
