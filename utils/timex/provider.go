// File: provider.go
// Title: Time Providers
// Description: Injectable sources of the current time.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package timex

import "time"

// Provider returns the current time
type Provider interface {
	Now() time.Time
}

// ProviderFunc adapts a function to Provider
type ProviderFunc func() time.Time

// Now calls f
func (f ProviderFunc) Now() time.Time {
	return f()
}

// UTCProvider returns the wall clock in UTC
type UTCProvider struct{}

// Now returns time.Now in UTC
func (UTCProvider) Now() time.Time {
	return time.Now().UTC()
}

// LocalProvider returns the wall clock in the local zone
type LocalProvider struct{}

// Now returns time.Now
func (LocalProvider) Now() time.Time {
	return time.Now()
}

// FixedProvider always returns At
type FixedProvider struct {
	At time.Time
}

// Now returns At
func (p FixedProvider) Now() time.Time {
	return p.At
}

var (
	_ Provider = UTCProvider{}
	_ Provider = LocalProvider{}
	_ Provider = FixedProvider{}
	_ Provider = ProviderFunc(nil)
)
