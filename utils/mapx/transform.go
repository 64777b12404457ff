// File: transform.go
// Title: Ordered Map Transformations
// Description: Filtering, projection and conversion helpers for LinkedMap and
//              plain Go maps. Helpers that can produce colliding keys go
//              through the assoc family and report collisions the same way.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Reworked for LinkedMap, results keep source order

package mapx

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// FromMap copies a Go map into a LinkedMap ordered by key
func FromMap[K constraints.Ordered, V any](m map[K]V) *LinkedMap[K, V] {
	keys := SortedKeys(m)
	result := NewLinkedMap[K, V](DefaultCapacity(len(keys)))
	for _, k := range keys {
		result.Set(k, m[k])
	}
	return result
}

// SortedKeys returns the keys of a Go map in ascending order
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Filter returns the entries matching predicate, in order
func Filter[K comparable, V any](m *LinkedMap[K, V], predicate func(K, V) bool) *LinkedMap[K, V] {
	result := NewLinkedMap[K, V](MinCapacity)
	for k, v := range m.All() {
		if predicate(k, v) {
			result.Set(k, v)
		}
	}
	return result
}

// MapValues transforms every value, keeping keys and order
func MapValues[K comparable, V, R any](m *LinkedMap[K, V], transform func(K, V) R) *LinkedMap[K, R] {
	result := NewLinkedMap[K, R](DefaultCapacity(m.Len()))
	for k, v := range m.All() {
		result.Set(k, transform(k, v))
	}
	return result
}

// MapKeys transforms every key. Keys mapping to the same result collide and
// are reported like any other duplicate.
func MapKeys[K, R comparable, V any](m *LinkedMap[K, V], transform func(K, V) R) *LinkedMap[R, V] {
	var source iter.Seq2[R, V] = func(yield func(R, V) bool) {
		for k, v := range m.All() {
			if !yield(transform(k, v), v) {
				return
			}
		}
	}
	return AssocSeq2To(NewLinkedMap[R, V](DefaultCapacity(m.Len())), source)
}

// Invert swaps keys and values. Duplicate values are reported.
func Invert[K, V comparable](m *LinkedMap[K, V]) *LinkedMap[V, K] {
	return AssocTransformTo(NewLinkedMap[V, K](DefaultCapacity(m.Len())), slices.Values(m.Entries()), func(e Entry[K, V]) (V, K) {
		return e.Value, e.Key
	})
}

// Pick returns the entries for the given keys, in the order of keys
func Pick[K comparable, V any](m *LinkedMap[K, V], keys ...K) *LinkedMap[K, V] {
	result := NewLinkedMap[K, V](len(keys))
	for _, k := range keys {
		if v, ok := m.Get(k); ok {
			result.Set(k, v)
		}
	}
	return result
}

// Omit returns all entries except the given keys
func Omit[K comparable, V any](m *LinkedMap[K, V], keys ...K) *LinkedMap[K, V] {
	return Filter(m, func(k K, _ V) bool {
		return !slices.Contains(keys, k)
	})
}
