// File: ids.go
// Title: Identifier Parsing
// Description: UUID and URL parsing and checks, plus conversion of raw
//              16 byte values into UUIDs.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation on google/uuid

package stringx

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/LukasForst/katlib/core/errors"
)

const module = "stringx"

// ToUUID parses s as a UUID
func ToUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.InvalidFormat(module, "ToUUID", err, "uuid").WithDetail("input", s)
	}
	return id, nil
}

// IsUUID reports whether s parses as a UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ToURL parses s as an absolute URL. Only the presence of a scheme is
// required, so inputs such as "https://" are accepted.
func ToURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, errors.InvalidFormat(module, "ToURL", err, "url").WithDetail("input", s)
	}
	if u.Scheme == "" {
		return nil, errors.InvalidInput(module, "ToURL", s, "absolute url with scheme")
	}
	return u, nil
}

// IsURL reports whether ToURL accepts s
func IsURL(s string) bool {
	_, err := ToURL(s)
	return err == nil
}

// UUIDFromBytes builds a UUID from 16 bytes, most significant byte first
func UUIDFromBytes(data []byte) (uuid.UUID, error) {
	if len(data) != 16 {
		return uuid.Nil, errors.InvalidInput(module, "UUIDFromBytes", len(data), "16 bytes")
	}
	return uuid.FromBytes(data)
}

// UUIDFromBytesFlipped builds a UUID from 16 bytes holding the least
// significant half first and the most significant half second.
func UUIDFromBytesFlipped(data []byte) (uuid.UUID, error) {
	if len(data) != 16 {
		return uuid.Nil, errors.InvalidInput(module, "UUIDFromBytesFlipped", len(data), "16 bytes")
	}
	var id uuid.UUID
	copy(id[:8], data[8:])
	copy(id[8:], data[:8])
	return id, nil
}
