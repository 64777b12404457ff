// Package jsonx wraps JSON, YAML and TOML encoding behind a small, uniform
// API.
//
// Parse functions never fail loudly: they return mo.None when the input
// cannot be decoded into the requested type and log the failure as a
// warning, together with the offending input, through the default logger.
// Logging can be switched off per call:
//
//	cfg := jsonx.Parse[Settings](raw, jsonx.WithoutLogging())
//	if s, ok := cfg.Get(); ok {
//	    ...
//	}
//
// Decoding ignores unknown fields and refuses fractional numbers for
// integer fields. Create functions return the encoding error instead.
//
// ValidateSchema checks a JSON document against a JSON Schema (drafts 4 to
// 2020-12) and reports violations with code VALIDATION_FAILED.
package jsonx
