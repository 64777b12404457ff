// File: hashx.go
// Title: Digest Helpers
// Description: SHA-256, MD5, SHA3-256 and BLAKE2b-256 digests rendered as
//              standard base64, for byte slices, strings, readers and files.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: File hashing moved here, base64 output, x/crypto digests

// Package hashx computes message digests and returns them base64 encoded.
package hashx

import (
	"crypto/md5"
	"crypto/sha256"
	"hash"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/LukasForst/katlib/core/errors"
	"github.com/LukasForst/katlib/utils/stringx"
)

const module = "hashx"

// Algorithm names a supported digest
type Algorithm string

const (
	SHA256  Algorithm = "sha256"
	MD5     Algorithm = "md5"
	SHA3    Algorithm = "sha3"
	BLAKE2b Algorithm = "blake2b"
)

// Algorithms lists every supported digest
var Algorithms = []Algorithm{SHA256, MD5, SHA3, BLAKE2b}

// ParseAlgorithm converts a case-insensitive name into an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	switch algo := Algorithm(strings.ToLower(strings.TrimSpace(name))); algo {
	case SHA256, MD5, SHA3, BLAKE2b:
		return algo, nil
	case "sha3-256":
		return SHA3, nil
	case "blake2b-256":
		return BLAKE2b, nil
	default:
		return "", errors.InvalidInput(module, "ParseAlgorithm", name, "one of sha256, md5, sha3, blake2b")
	}
}

func (a Algorithm) newHash() hash.Hash {
	switch a {
	case MD5:
		return md5.New()
	case SHA3:
		return sha3.New256()
	case BLAKE2b:
		// only fails for keys longer than 64 bytes
		h, _ := blake2b.New256(nil)
		return h
	default:
		return sha256.New()
	}
}

// SHA256String hashes the UTF-8 bytes of s
func SHA256String(s string) string {
	return SHA256Bytes([]byte(s))
}

// SHA256Bytes hashes data with SHA-256
func SHA256Bytes(data []byte) string {
	sum := sha256.Sum256(data)
	return stringx.ToBase64(sum[:])
}

// MD5Bytes hashes data with MD5
func MD5Bytes(data []byte) string {
	sum := md5.Sum(data)
	return stringx.ToBase64(sum[:])
}

// SHA3_256Bytes hashes data with SHA3-256
func SHA3_256Bytes(data []byte) string {
	sum := sha3.Sum256(data)
	return stringx.ToBase64(sum[:])
}

// BLAKE2b256Bytes hashes data with unkeyed BLAKE2b-256
func BLAKE2b256Bytes(data []byte) string {
	sum := blake2b.Sum256(data)
	return stringx.ToBase64(sum[:])
}

// Sum streams r through the digest of algo
func Sum(algo Algorithm, r io.Reader) (string, error) {
	h := algo.newHash()
	if _, err := io.Copy(h, r); err != nil {
		return "", errors.OperationFailed(module, "Sum", err).WithDetail("algorithm", string(algo))
	}
	return stringx.ToBase64(h.Sum(nil)), nil
}

// SHA256File hashes the content of the file at path without loading it
// into memory at once.
func SHA256File(path string) (string, error) {
	return File(SHA256, path)
}

// File hashes the content of the file at path with algo
func File(algo Algorithm, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound(module, "File", path)
		}
		return "", errors.OperationFailed(module, "File", err).WithDetail("path", path)
	}
	defer file.Close()

	return Sum(algo, file)
}
