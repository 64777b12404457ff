// Package stringx provides string helpers used across katlib: Unicode aware
// shortening, case-insensitive comparison through Unicode case folding,
// base64 encoding and parsing of identifiers such as UUIDs and URLs.
//
// Lengths are counted in runes, never in bytes, so shortening never splits
// a multi-byte character:
//
//	stringx.RestrictLengthWithEllipsis("ABCDEFGH", 5) // "ABCD…"
//
// Checks that only answer yes or no (IsEmail, IsUUID, IsURL) never fail;
// their parsing counterparts (ToUUID, ToURL, UUIDFromBytes) return a
// *errors.Error with code INVALID_FORMAT or INVALID_INPUT.
package stringx
