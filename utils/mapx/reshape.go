// File: reshape.go
// Title: Map Reshaping
// Description: Merging, joining and re-nesting of ordered maps: two and three
//              level maps built from tuple keys, key permutation between
//              levels and collection of bottom-level values.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package mapx

import (
	"slices"

	"github.com/samber/lo"
)

// KeepFirst is the default MergeReduce reducer
func KeepFirst[V any](first, _ V) V {
	return first
}

// MergeReduce merges b into a copy of a. Keys present in both are combined
// with reduce(valueOfA, valueOfB); a nil reduce keeps the value of a.
func MergeReduce[K comparable, V any](a, b *LinkedMap[K, V], reduce func(V, V) V) *LinkedMap[K, V] {
	return MergeReduceTo(NewLinkedMap[K, V](a.Len()+b.Len()), a, b, reduce)
}

// MergeReduceTo is MergeReduce writing into dest
func MergeReduceTo[K comparable, V any](dest, a, b *LinkedMap[K, V], reduce func(V, V) V) *LinkedMap[K, V] {
	if reduce == nil {
		reduce = KeepFirst[V]
	}
	for k, v := range a.All() {
		dest.Set(k, v)
	}
	for k, v := range b.All() {
		if existing, ok := dest.Get(k); ok {
			dest.Set(k, reduce(existing, v))
		} else {
			dest.Set(k, v)
		}
	}
	return dest
}

// Join combines a and b over the union of their keys (keys of a first).
// join receives nil for a side that lacks the key.
func Join[K comparable, V1, V2, R any](a *LinkedMap[K, V1], b *LinkedMap[K, V2], join func(*V1, *V2) R) *LinkedMap[K, R] {
	return JoinTo[*LinkedMap[K, R]](NewLinkedMap[K, R](a.Len()+b.Len()), a, b, join)
}

// JoinTo is Join writing into dest
func JoinTo[D Destination[K, R], K comparable, V1, V2, R any](dest D, a *LinkedMap[K, V1], b *LinkedMap[K, V2], join func(*V1, *V2) R) D {
	keys := lo.Uniq(slices.Concat(a.Keys(), b.Keys()))
	for _, k := range keys {
		dest.Set(k, join(lookup(a, k), lookup(b, k)))
	}
	return dest
}

func lookup[K comparable, V any](m *LinkedMap[K, V], key K) *V {
	if v, ok := m.Get(key); ok {
		return &v
	}
	return nil
}

// SwapKeys exchanges the first and second level keys
func SwapKeys[K1, K2 comparable, V any](m *LinkedMap[K1, *LinkedMap[K2, V]]) *LinkedMap[K2, *LinkedMap[K1, V]] {
	result := NewLinkedMap[K2, *LinkedMap[K1, V]](MinCapacity)
	for k1, inner := range m.All() {
		for k2, v := range inner.All() {
			result.GetOrPut(k2, newLevel[K1, V]).Set(k1, v)
		}
	}
	return result
}

// SwapKeys3 re-nests a three level map with the keys returned by transform
func SwapKeys3[K1, K2, K3, R1, R2, R3 comparable, V any](
	m *LinkedMap[K1, *LinkedMap[K2, *LinkedMap[K3, V]]],
	transform func(K1, K2, K3) (R1, R2, R3),
) *LinkedMap[R1, *LinkedMap[R2, *LinkedMap[R3, V]]] {
	result := NewLinkedMap[R1, *LinkedMap[R2, *LinkedMap[R3, V]]](MinCapacity)
	for k1, second := range m.All() {
		for k2, third := range second.All() {
			for k3, v := range third.All() {
				r1, r2, r3 := transform(k1, k2, k3)
				result.GetOrPut(r1, newLevel[R2, *LinkedMap[R3, V]]).
					GetOrPut(r2, newLevel[R3, V]).
					Set(r3, v)
			}
		}
	}
	return result
}

// ToTwoLevelMap splits tuple keys into a two level map
func ToTwoLevelMap[K1, K2 comparable, V any](m *LinkedMap[lo.Tuple2[K1, K2], V]) *LinkedMap[K1, *LinkedMap[K2, V]] {
	result := NewLinkedMap[K1, *LinkedMap[K2, V]](MinCapacity)
	for key, v := range m.All() {
		result.GetOrPut(key.A, newLevel[K2, V]).Set(key.B, v)
	}
	return result
}

// ToTwoLevelMapFromPairs is ToTwoLevelMap over a list of (key tuple, value) pairs
func ToTwoLevelMapFromPairs[K1, K2 comparable, V any](pairs []lo.Tuple2[lo.Tuple2[K1, K2], V]) *LinkedMap[K1, *LinkedMap[K2, V]] {
	result := NewLinkedMap[K1, *LinkedMap[K2, V]](MinCapacity)
	for _, p := range pairs {
		result.GetOrPut(p.A.A, newLevel[K2, V]).Set(p.A.B, p.B)
	}
	return result
}

// ToThreeLevelMap splits triple keys into a three level map
func ToThreeLevelMap[K1, K2, K3 comparable, V any](m *LinkedMap[lo.Tuple3[K1, K2, K3], V]) *LinkedMap[K1, *LinkedMap[K2, *LinkedMap[K3, V]]] {
	result := NewLinkedMap[K1, *LinkedMap[K2, *LinkedMap[K3, V]]](MinCapacity)
	for key, v := range m.All() {
		result.GetOrPut(key.A, newLevel[K2, *LinkedMap[K3, V]]).
			GetOrPut(key.B, newLevel[K3, V]).
			Set(key.C, v)
	}
	return result
}

// SecondLevelValues returns the distinct bottom values of a two level map
func SecondLevelValues[K1, K2, V comparable](m *LinkedMap[K1, *LinkedMap[K2, V]]) []V {
	var values []V
	for _, inner := range m.All() {
		values = append(values, inner.Values()...)
	}
	return lo.Uniq(values)
}

// ThirdLevelValues returns the distinct bottom values of a three level map
func ThirdLevelValues[K1, K2, K3, V comparable](m *LinkedMap[K1, *LinkedMap[K2, *LinkedMap[K3, V]]]) []V {
	var values []V
	for _, second := range m.All() {
		for _, third := range second.All() {
			values = append(values, third.Values()...)
		}
	}
	return lo.Uniq(values)
}

// MergeAll collects, per key, the values of all maps holding that key
func MergeAll[K comparable, V any](maps []*LinkedMap[K, V]) *LinkedMap[K, []V] {
	return AssocWithSlice(unionKeys(maps), func(key K) []V {
		var values []V
		for _, m := range maps {
			if v, ok := m.Get(key); ok {
				values = append(values, v)
			}
		}
		return values
	})
}

// FlatMerge concatenates, per key, the lists of all maps holding that key
func FlatMerge[K comparable, V any](maps []*LinkedMap[K, []V]) *LinkedMap[K, []V] {
	return AssocWithSlice(unionKeys(maps), func(key K) []V {
		var values []V
		for _, m := range maps {
			values = append(values, m.GetOrDefault(key, nil)...)
		}
		return values
	})
}

func unionKeys[K comparable, V any](maps []*LinkedMap[K, V]) []K {
	return lo.Uniq(lo.FlatMap(maps, func(m *LinkedMap[K, V], _ int) []K {
		return m.Keys()
	}))
}

func newLevel[K comparable, V any]() *LinkedMap[K, V] {
	return NewLinkedMap[K, V](MinCapacity)
}
