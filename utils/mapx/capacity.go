// File: capacity.go
// Title: Map Capacity Heuristics
// Description: Initial capacity policy for maps built from sources of known
//              or unknown size.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package mapx

import "math"

const (
	// DefaultSize is assumed for sources without a known size
	DefaultSize = 10

	// MinCapacity is the smallest capacity used for built maps
	MinCapacity = 16

	maxPowerOfTwo = math.MaxInt32/2 + 1
)

// MapCapacity returns a capacity that holds expected entries without
// growing at a 0.75 load factor.
func MapCapacity(expected int) int {
	if expected < 3 {
		return expected + 1
	}
	if expected < maxPowerOfTwo {
		return expected + expected/3
	}
	return math.MaxInt32
}

// DefaultCapacity returns MapCapacity(size) but never less than MinCapacity
func DefaultCapacity(size int) int {
	return max(MapCapacity(size), MinCapacity)
}
