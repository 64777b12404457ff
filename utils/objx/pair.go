// File: pair.go
// Title: Pair and Range Helpers
// Description: Mapping over the halves of lo.Tuple2 values and inclusive
//              ordered ranges.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package objx

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// MapLeft maps every element of the left slice
func MapLeft[T, NT, V any](pair lo.Tuple2[[]T, V], block func(T) NT) lo.Tuple2[[]NT, V] {
	return lo.T2(mapSlice(pair.A, block), pair.B)
}

// MapRight maps every element of the right slice
func MapRight[T, V, NV any](pair lo.Tuple2[T, []V], block func(V) NV) lo.Tuple2[T, []NV] {
	return lo.T2(pair.A, mapSlice(pair.B, block))
}

// MapPair maps both slices
func MapPair[T, V, NT, NV any](pair lo.Tuple2[[]T, []V], left func(T) NT, right func(V) NV) lo.Tuple2[[]NT, []NV] {
	return lo.T2(mapSlice(pair.A, left), mapSlice(pair.B, right))
}

// LetLeft applies block to the left half
func LetLeft[T, NT, V any](pair lo.Tuple2[T, V], block func(T) NT) lo.Tuple2[NT, V] {
	return lo.T2(block(pair.A), pair.B)
}

// LetRight applies block to the right half
func LetRight[T, V, NV any](pair lo.Tuple2[T, V], block func(V) NV) lo.Tuple2[T, NV] {
	return lo.T2(pair.A, block(pair.B))
}

// LetPair applies left and right to the respective halves
func LetPair[T, V, NT, NV any](pair lo.Tuple2[T, V], left func(T) NT, right func(V) NV) lo.Tuple2[NT, NV] {
	return lo.T2(left(pair.A), right(pair.B))
}

// PropagateNil dereferences both halves, or returns nil when either is nil
func PropagateNil[A, B any](pair lo.Tuple2[*A, *B]) *lo.Tuple2[A, B] {
	if pair.A == nil || pair.B == nil {
		return nil
	}
	result := lo.T2(*pair.A, *pair.B)
	return &result
}

func mapSlice[T, R any](items []T, block func(T) R) []R {
	return lo.Map(items, func(item T, _ int) R { return block(item) })
}

// Range is the closed interval [From, To]
type Range[T constraints.Ordered] struct {
	From T
	To   T
}

// NewRange returns [from, to], swapping the bounds when from > to
func NewRange[T constraints.Ordered](from, to T) Range[T] {
	if from > to {
		from, to = to, from
	}
	return Range[T]{From: from, To: to}
}

// Contains reports whether value lies in the range
func (r Range[T]) Contains(value T) bool {
	return r.From <= value && value <= r.To
}

// Intersects reports whether the ranges share at least one value
func (r Range[T]) Intersects(other Range[T]) bool {
	return r.From <= other.To && other.From <= r.To
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.From, r.To)
}
