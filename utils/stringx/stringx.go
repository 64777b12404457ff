// File: stringx.go
// Title: String Helpers
// Description: Unicode aware shortening, letter and e-mail checks, case
//              folding comparison and base64 encoding.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Truncate reworked into RestrictLength, added folding

package stringx

import (
	"encoding/base64"
	"regexp"
	"runtime"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Ellipsis is the default marker appended to shortened strings
const Ellipsis = "…"

var (
	startsWithLetter = regexp.MustCompile(`^[a-zA-Z]`)
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)
)

// RestrictLengthWithEllipsis shortens s to maxLength runes, ending with
// Ellipsis when something was cut off.
func RestrictLengthWithEllipsis(s string, maxLength int) string {
	return RestrictLength(s, maxLength, Ellipsis)
}

// RestrictLength shortens s to maxLength runes, ending with ellipsis when
// something was cut off. If the ellipsis itself does not fit, s is cut
// without it.
func RestrictLength(s string, maxLength int, ellipsis string) string {
	if maxLength <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	runes := []rune(s)
	if ellipsisLen >= maxLength {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-ellipsisLen]) + ellipsis
}

// StartsWithLetter reports whether s starts with a latin letter a-z or A-Z
func StartsWithLetter(s string) bool {
	return startsWithLetter.MatchString(s)
}

// IsEmail reports whether s looks like an e-mail address with a dotted domain
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// EqualsIgnoreCase compares two strings under Unicode case folding
func EqualsIgnoreCase(a, b string) bool {
	if a == b {
		return true
	}
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// EqualsIgnoreCasePtr is EqualsIgnoreCase for optional strings.
// Two nil pointers are equal, a nil and a non-nil pointer are not.
func EqualsIgnoreCasePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return EqualsIgnoreCase(*a, *b)
}

// ToBase64 encodes data with the standard base64 alphabet
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// NewLine returns the line separator of the host platform
func NewLine() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
