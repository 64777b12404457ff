// File: sampler.go
// Title: Weighted Sampling
// Description: Weighted random pick and weighted random ordering over an
//              ordered weight collection. All randomness comes from the
//              caller supplied Source.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package randx

import (
	"cmp"
	"slices"

	"github.com/LukasForst/katlib/core/errors"
)

const module = "randx"

// WeightedPick selects an item with probability proportional to its weight.
//
// A Float64 draw scaled by the total weight is compared against the running
// sum of weights in iteration order; the first item whose running sum
// exceeds it wins, and the last item is returned when rounding leaves none.
// When all weights are zero the pick is uniform and uses IntN instead.
// Negative weights are not rejected. A nil src uses Default().
func WeightedPick[T any](weights Weights[T], src Source) (T, error) {
	var zero T
	if weights == nil || weights.Len() == 0 {
		return zero, errors.InvalidArgument(module, "WeightedPick", "weights must not be empty")
	}
	if src == nil {
		src = Default()
	}

	total := Total(weights)
	if total == 0 {
		return nth(weights, src.IntN(weights.Len())), nil
	}

	r := src.Float64() * total
	running := 0.0
	var last T
	for item, w := range weights.All() {
		running += w
		if running > r {
			return item, nil
		}
		last = item
	}
	return last, nil
}

// MustWeightedPick is WeightedPick panicking on empty weights
func MustWeightedPick[T any](weights Weights[T], src Source) T {
	item, err := WeightedPick(weights, src)
	if err != nil {
		panic(err)
	}
	return item
}

// WeightedOrder returns all items sorted by the descending score
// (draw + normalizer) * weight, with one Float64 draw per item taken in
// iteration order. Equal scores keep their input order. A larger normalizer
// makes the order follow the weights more closely.
func WeightedOrder[T any](weights Weights[T], normalizer float64, src Source) []T {
	if weights == nil || weights.Len() == 0 {
		return []T{}
	}
	if src == nil {
		src = Default()
	}

	scored := make([]Weighted[T], 0, weights.Len())
	for item, w := range weights.All() {
		scored = append(scored, Weighted[T]{Item: item, Weight: (src.Float64() + normalizer) * w})
	}
	slices.SortStableFunc(scored, func(a, b Weighted[T]) int {
		return cmp.Compare(b.Weight, a.Weight)
	})

	items := make([]T, len(scored))
	for i, s := range scored {
		items[i] = s.Item
	}
	return items
}

// RandomElement returns a uniformly chosen element of items
func RandomElement[T any](items []T, src Source) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.InvalidArgument(module, "RandomElement", "items must not be empty")
	}
	if src == nil {
		src = Default()
	}
	return items[src.IntN(len(items))], nil
}

func nth[T any](weights Weights[T], index int) T {
	i := 0
	var last T
	for item := range weights.All() {
		if i == index {
			return item
		}
		last = item
		i++
	}
	return last
}
