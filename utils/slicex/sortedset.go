// File: sortedset.go
// Title: Sorted Set
// Description: Immutable sorted collection of distinct elements under a
//              caller supplied comparison.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package slicex

import (
	"slices"

	"github.com/samber/mo"
)

// SortedSet holds elements ordered by compare. Elements comparing equal to
// an earlier element are dropped.
type SortedSet[T any] struct {
	items   []T
	compare func(a, b T) int
}

// ToSortedSet builds a SortedSet from items
func ToSortedSet[T any](items []T, compare func(a, b T) int) *SortedSet[T] {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compare)
	sorted = slices.CompactFunc(sorted, func(a, b T) bool { return compare(a, b) == 0 })
	return &SortedSet[T]{items: sorted, compare: compare}
}

// Len returns the number of elements
func (s *SortedSet[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of the elements in ascending order
func (s *SortedSet[T]) Values() []T {
	return slices.Clone(s.items)
}

// Contains reports whether an element comparing equal to item exists
func (s *SortedSet[T]) Contains(item T) bool {
	_, found := slices.BinarySearchFunc(s.items, item, s.compare)
	return found
}

// Min returns the smallest element
func (s *SortedSet[T]) Min() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[0])
}

// Max returns the largest element
func (s *SortedSet[T]) Max() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// SortedMin is a shortcut for ToSortedSet(items, compare).Min()
func SortedMin[T any](items []T, compare func(a, b T) int) mo.Option[T] {
	return ToSortedSet(items, compare).Min()
}

// SortedMax is a shortcut for ToSortedSet(items, compare).Max()
func SortedMax[T any](items []T, compare func(a, b T) int) mo.Option[T] {
	return ToSortedSet(items, compare).Max()
}
