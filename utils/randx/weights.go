// File: weights.go
// Title: Weight Collections
// Description: Ordered item-to-weight collections accepted by the samplers.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package randx

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Weights is an ordered mapping from item to weight.
// *mapx.LinkedMap[T, float64] implements it.
type Weights[T any] interface {
	Len() int
	All() iter.Seq2[T, float64]
}

// Weighted is one item with its weight
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightList is a slice backed Weights
type WeightList[T any] []Weighted[T]

// Len returns the number of items
func (l WeightList[T]) Len() int {
	return len(l)
}

// All iterates the items in slice order
func (l WeightList[T]) All() iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		for _, w := range l {
			if !yield(w.Item, w.Weight) {
				return
			}
		}
	}
}

// Total returns the sum of all weights
func Total[T any](weights Weights[T]) float64 {
	total := 0.0
	for _, w := range weights.All() {
		total += w
	}
	return total
}

// Sorted turns a Go map into a WeightList ordered by item
func Sorted[T constraints.Ordered](weights map[T]float64) WeightList[T] {
	list := make(WeightList[T], 0, len(weights))
	for item, w := range weights {
		list = append(list, Weighted[T]{Item: item, Weight: w})
	}
	slices.SortFunc(list, func(a, b Weighted[T]) int {
		switch {
		case a.Item < b.Item:
			return -1
		case a.Item > b.Item:
			return 1
		default:
			return 0
		}
	})
	return list
}
