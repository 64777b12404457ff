// File: assoc.go
// Title: Keyed-Collection Builders
// Description: The assoc family turns a sequence into an insertion-ordered
//              map. Keys are resolved last-write-wins; colliding keys never
//              fail the call but produce one warning through the package
//              diagnostic sink.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package mapx

import (
	"iter"
	"slices"
)

// populate is the single algorithm behind every builder: one pass over
// source, insert with overwrite, then compare the destination size with the
// number of processed items. The source is read a second time only to render
// the diagnostic.
func populate[T any, K comparable, V any](dest Destination[K, V], source iter.Seq[T], split func(T) (K, V)) {
	n := 0
	for item := range source {
		k, v := split(item)
		dest.Set(k, v)
		n++
	}
	checkUniqueness(dest.Len(), n, func() string {
		return duplicateGroups(source, split)
	})
}

// AssocBy maps every element to keySelector(element) -> valueSelector(element)
func AssocBy[T any, K comparable, V any](source iter.Seq[T], keySelector func(T) K, valueSelector func(T) V) *LinkedMap[K, V] {
	return AssocByTo(NewLinkedMap[K, V](DefaultCapacity(DefaultSize)), source, keySelector, valueSelector)
}

// AssocByTo populates dest with keySelector(element) -> valueSelector(element)
func AssocByTo[D Destination[K, V], T any, K comparable, V any](dest D, source iter.Seq[T], keySelector func(T) K, valueSelector func(T) V) D {
	populate[T, K, V](dest, source, func(item T) (K, V) {
		return keySelector(item), valueSelector(item)
	})
	return dest
}

// AssocByKey indexes the elements by keySelector
func AssocByKey[T any, K comparable](source iter.Seq[T], keySelector func(T) K) *LinkedMap[K, T] {
	return AssocByKeyTo(NewLinkedMap[K, T](DefaultCapacity(DefaultSize)), source, keySelector)
}

// AssocByKeyTo populates dest with keySelector(element) -> element
func AssocByKeyTo[D Destination[K, T], T any, K comparable](dest D, source iter.Seq[T], keySelector func(T) K) D {
	populate[T, K, T](dest, source, func(item T) (K, T) {
		return keySelector(item), item
	})
	return dest
}

// Assoc builds a map from key-value entries
func Assoc[K comparable, V any](source iter.Seq[Entry[K, V]]) *LinkedMap[K, V] {
	return AssocTo(NewLinkedMap[K, V](DefaultCapacity(DefaultSize)), source)
}

// AssocTo populates dest with key-value entries
func AssocTo[D Destination[K, V], K comparable, V any](dest D, source iter.Seq[Entry[K, V]]) D {
	populate[Entry[K, V], K, V](dest, source, Entry[K, V].Unpack)
	return dest
}

// AssocSeq2 builds a map from a two-value sequence such as maps.All
func AssocSeq2[K comparable, V any](source iter.Seq2[K, V]) *LinkedMap[K, V] {
	return AssocSeq2To(NewLinkedMap[K, V](DefaultCapacity(DefaultSize)), source)
}

// AssocSeq2To populates dest from a two-value sequence
func AssocSeq2To[D Destination[K, V], K comparable, V any](dest D, source iter.Seq2[K, V]) D {
	return AssocTo(dest, entries(source))
}

// AssocTransform builds a map from the pairs returned by transform
func AssocTransform[T any, K comparable, V any](source iter.Seq[T], transform func(T) (K, V)) *LinkedMap[K, V] {
	return AssocTransformTo(NewLinkedMap[K, V](DefaultCapacity(DefaultSize)), source, transform)
}

// AssocTransformTo populates dest with the pairs returned by transform
func AssocTransformTo[D Destination[K, V], T any, K comparable, V any](dest D, source iter.Seq[T], transform func(T) (K, V)) D {
	populate[T, K, V](dest, source, transform)
	return dest
}

// AssocWith maps every key to valueSelector(key)
func AssocWith[K comparable, V any](source iter.Seq[K], valueSelector func(K) V) *LinkedMap[K, V] {
	return AssocWithTo(NewLinkedMap[K, V](DefaultCapacity(DefaultSize)), source, valueSelector)
}

// AssocWithTo populates dest with key -> valueSelector(key)
func AssocWithTo[D Destination[K, V], K comparable, V any](dest D, source iter.Seq[K], valueSelector func(K) V) D {
	populate[K, K, V](dest, source, func(key K) (K, V) {
		return key, valueSelector(key)
	})
	return dest
}

// AssocSlice builds a map from entries, sized for len(entries)
func AssocSlice[K comparable, V any](entries []Entry[K, V]) *LinkedMap[K, V] {
	return AssocTo(NewLinkedMap[K, V](DefaultCapacity(len(entries))), slices.Values(entries))
}

// AssocBySlice is AssocBy over a slice, sized for len(items)
func AssocBySlice[T any, K comparable, V any](items []T, keySelector func(T) K, valueSelector func(T) V) *LinkedMap[K, V] {
	return AssocByTo(NewLinkedMap[K, V](DefaultCapacity(len(items))), slices.Values(items), keySelector, valueSelector)
}

// AssocByKeySlice is AssocByKey over a slice, sized for len(items)
func AssocByKeySlice[T any, K comparable](items []T, keySelector func(T) K) *LinkedMap[K, T] {
	return AssocByKeyTo(NewLinkedMap[K, T](DefaultCapacity(len(items))), slices.Values(items), keySelector)
}

// AssocWithSlice is AssocWith over a slice, sized for len(keys)
func AssocWithSlice[K comparable, V any](keys []K, valueSelector func(K) V) *LinkedMap[K, V] {
	return AssocWithTo(NewLinkedMap[K, V](DefaultCapacity(len(keys))), slices.Values(keys), valueSelector)
}

func entries[K comparable, V any](source iter.Seq2[K, V]) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range source {
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}
