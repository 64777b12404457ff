// File: types.go
// Title: Shared Map Types
// Description: Entry pairs and the destination abstraction the assoc family
//              populates.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Destination and GoMap added

package mapx

import "fmt"

// Entry represents a key-value pair
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewEntry creates an entry
func NewEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// Unpack returns key and value
func (e Entry[K, V]) Unpack() (K, V) {
	return e.Key, e.Value
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}

// Sized is implemented by collections whose size is known up front
type Sized interface {
	Len() int
}

// Destination is a mutable map the assoc family writes into
type Destination[K comparable, V any] interface {
	Sized
	Set(key K, value V)
}

// GoMap adapts a plain Go map to Destination. Its iteration order is
// unspecified; use LinkedMap when order matters.
type GoMap[K comparable, V any] map[K]V

// Set stores value under key
func (m GoMap[K, V]) Set(key K, value V) {
	m[key] = value
}

// Len returns the number of entries
func (m GoMap[K, V]) Len() int {
	return len(m)
}

var (
	_ Destination[string, int] = (*LinkedMap[string, int])(nil)
	_ Destination[string, int] = GoMap[string, int](nil)
)
