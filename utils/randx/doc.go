// Package randx implements weighted random selection.
//
// WeightedPick chooses one item proportionally to its weight and
// WeightedOrder produces a full weight-biased random ordering. Both read
// weights through the Weights interface, so ordered collections such as
// WeightList or *mapx.LinkedMap[T, float64] can be passed directly, and both
// take their randomness from a Source passed by the caller:
//
//	weights := randx.WeightList[string]{{"a", 0.5}, {"b", 1.5}}
//	item, err := randx.WeightedPick[string](weights, randx.NewSeeded(42))
//
// Given the same weights in the same order and a Source replaying the same
// values, results are reproducible; Scripted replays fixed values for tests.
// No state is shared between calls.
package randx
