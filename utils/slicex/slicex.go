// File: slicex.go
// Title: Slice Helpers
// Description: Reductions, index-wise sums, set operations and single
//              element extraction over slices. Set-like results keep
//              first-seen order.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Rebuilt on samber/lo and samber/mo

package slicex

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"

	"github.com/LukasForst/katlib/core/errors"
)

const module = "slicex"

// Number is any type that can be summed index-wise
type Number interface {
	constraints.Integer | constraints.Float
}

// Reduction returns every intermediate accumulator value of a left fold,
// e.g. the cumulative sums of a slice.
func Reduction[T, R any](items []T, initial R, operation func(acc R, item T) R) []R {
	result := make([]R, 0, len(items))
	last := initial
	for _, item := range items {
		last = operation(last, item)
		result = append(result, last)
	}
	return result
}

// SumByInt64 sums the values produced by selector
func SumByInt64[T any](items []T, selector func(T) int64) int64 {
	return lo.SumBy(items, selector)
}

// SumByIndexes sums the lists element-wise. The result is as long as the
// shortest list.
func SumByIndexes(lists [][]int) ([]int, error) {
	return sumByIndexes("SumByIndexes", lists)
}

// SumFloatsByIndexes is SumByIndexes for float64 lists
func SumFloatsByIndexes(lists [][]float64) ([]float64, error) {
	return sumByIndexes("SumFloatsByIndexes", lists)
}

func sumByIndexes[N Number](operation string, lists [][]N) ([]N, error) {
	minSize, ok := MinValueBy(lists, func(l []N) int { return len(l) }).Get()
	if !ok {
		return nil, errors.InvalidArgument(module, operation, "only nonempty collections are supported")
	}

	result := make([]N, minSize)
	for index := range minSize {
		for _, list := range lists {
			result[index] += list[index]
		}
	}
	return result, nil
}

// MaxValueBy returns the largest value produced by selector
func MaxValueBy[T any, R constraints.Ordered](items []T, selector func(T) R) mo.Option[R] {
	return extremeBy(items, selector, func(current, candidate R) bool { return current < candidate })
}

// MinValueBy returns the smallest value produced by selector
func MinValueBy[T any, R constraints.Ordered](items []T, selector func(T) R) mo.Option[R] {
	return extremeBy(items, selector, func(current, candidate R) bool { return current > candidate })
}

func extremeBy[T any, R constraints.Ordered](items []T, selector func(T) R, replace func(current, candidate R) bool) mo.Option[R] {
	if len(items) == 0 {
		return mo.None[R]()
	}
	best := selector(items[0])
	for _, item := range items[1:] {
		if v := selector(item); replace(best, v) {
			best = v
		}
	}
	return mo.Some(best)
}

// MapToSet maps every item and drops repeated results
func MapToSet[T any, R comparable](items []T, transform func(T) R) []R {
	return lo.Uniq(lo.Map(items, func(item T, _ int) R { return transform(item) }))
}

// FlatMapToSet flattens the mapped slices and drops repeated results
func FlatMapToSet[T any, R comparable](items []T, transform func(T) []R) []R {
	return lo.Uniq(lo.FlatMap(items, func(item T, _ int) []R { return transform(item) }))
}

// DominantValueBy returns the most frequent value produced by selector.
// Ties go to the value seen first.
func DominantValueBy[T any, R comparable](items []T, selector func(T) R) mo.Option[R] {
	if len(items) == 0 {
		return mo.None[R]()
	}

	counts := make(map[R]int)
	var order []R
	for _, item := range items {
		key := selector(item)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	dominant := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[dominant] {
			dominant = key
		}
	}
	return mo.Some(dominant)
}

// CartesianProduct pairs every element of left with every element of right,
// left-major, without repeated pairs.
func CartesianProduct[A, B comparable](left []A, right []B) []lo.Tuple2[A, B] {
	result := make([]lo.Tuple2[A, B], 0, len(left)*len(right))
	for _, a := range left {
		for _, b := range right {
			result = append(result, lo.T2(a, b))
		}
	}
	return lo.Uniq(result)
}

// ForEachNotNil calls action for every non-nil element
func ForEachNotNil[T any](items []*T, action func(T)) {
	for _, item := range items {
		if item != nil {
			action(*item)
		}
	}
}

// UnionAll returns the distinct elements of all lists in first-seen order
func UnionAll[T comparable](lists ...[]T) []T {
	result := make([]T, 0)
	seen := make(map[T]struct{})
	for _, list := range lists {
		for _, item := range list {
			if _, ok := seen[item]; !ok {
				seen[item] = struct{}{}
				result = append(result, item)
			}
		}
	}
	return result
}

// IntersectAll returns the elements present in every non-nil list, ordered
// as in the first non-nil list. Nil lists are skipped, empty ones are not.
func IntersectAll[T comparable](lists ...[]T) []T {
	var result []T
	first := true
	for _, list := range lists {
		if list == nil {
			continue
		}
		if first {
			first = false
			result = lo.Uniq(list)
			continue
		}
		keep := make(map[T]struct{}, len(list))
		for _, item := range list {
			keep[item] = struct{}{}
		}
		result = lo.Filter(result, func(item T, _ int) bool {
			_, ok := keep[item]
			return ok
		})
	}
	if result == nil {
		return []T{}
	}
	return result
}

// FilterNotNilBy keeps the non-nil items for which selector yields non-nil
func FilterNotNilBy[T, R any](items []*T, selector func(T) *R) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if item != nil && selector(*item) != nil {
			result = append(result, *item)
		}
	}
	return result
}

// SingleOrEmpty returns the only element, None for an empty slice and an
// INVALID_ARGUMENT error for more than one element.
func SingleOrEmpty[T any](items []T) (mo.Option[T], error) {
	switch len(items) {
	case 0:
		return mo.None[T](), nil
	case 1:
		return mo.Some(items[0]), nil
	default:
		return mo.None[T](), errors.InvalidArgument(module, "SingleOrEmpty", "collection contains more than one element").
			WithDetail("size", len(items))
	}
}

// SingleOrEmptyBy returns the only element matching predicate. It fails as
// soon as a second match is found.
func SingleOrEmptyBy[T any](items []T, predicate func(T) bool) (mo.Option[T], error) {
	single := mo.None[T]()
	for _, item := range items {
		if !predicate(item) {
			continue
		}
		if single.IsPresent() {
			return mo.None[T](), errors.InvalidArgument(module, "SingleOrEmptyBy", "collection contains more than one matching element")
		}
		single = mo.Some(item)
	}
	return single, nil
}

// SplitPairs splits pairs into a slice of lefts and a slice of rights
func SplitPairs[A, B any](pairs []lo.Tuple2[A, B]) ([]A, []B) {
	return lo.Unzip2(pairs)
}

// FlattenToLists splits triples into three slices
func FlattenToLists[A, B, C any](triples []lo.Tuple3[A, B, C]) ([]A, []B, []C) {
	return lo.Unzip3(triples)
}

// SetDifferenceBy returns the items of left whose selector value does not
// occur in right. Items with a repeated selector value are kept once.
func SetDifferenceBy[T any, R comparable](left, right []T, selector func(T) R) []T {
	exclude := make(map[R]struct{}, len(right))
	for _, item := range right {
		exclude[selector(item)] = struct{}{}
	}
	return lo.Filter(lo.UniqBy(left, selector), func(item T, _ int) bool {
		_, found := exclude[selector(item)]
		return !found
	})
}

// FlatMapIndexedNotNil concatenates the slices returned by transform,
// skipping nil ones.
func FlatMapIndexedNotNil[T, R any](items []T, transform func(index int, item T) []R) []R {
	result := make([]R, 0, len(items))
	for i, item := range items {
		if mapped := transform(i, item); mapped != nil {
			result = append(result, mapped...)
		}
	}
	return result
}

// FoldValidated checks validate for every pair of neighbouring elements and
// stops at the first failure. An empty slice is not valid.
func FoldValidated[T any](items []T, validate func(acc, item T) bool) bool {
	if len(items) == 0 {
		return false
	}
	acc := items[0]
	for _, item := range items[1:] {
		if !validate(acc, item) {
			return false
		}
		acc = item
	}
	return true
}

// Minus returns a copy without the first occurrence of element
func Minus[T comparable](items []T, element T) []T {
	result := make([]T, 0, len(items))
	removed := false
	for _, item := range items {
		if !removed && item == element {
			removed = true
			continue
		}
		result = append(result, item)
	}
	return result
}

// MinusAll returns a copy without any element contained in others
func MinusAll[T comparable](items []T, others []T) []T {
	return lo.Without(items, others...)
}

// FilterIndexed keeps the items for which predicate holds
func FilterIndexed[T any](items []T, predicate func(index int, item T) bool) []T {
	return lo.Filter(items, func(item T, index int) bool { return predicate(index, item) })
}

// BuildSlice collects the items passed to add by build
func BuildSlice[T any](capacity int, build func(add func(T))) []T {
	result := make([]T, 0, max(capacity, 0))
	build(func(item T) { result = append(result, item) })
	return result
}
