// File: source.go
// Title: Random Sources
// Description: The Source capability consumed by the samplers, adapters for
//              math/rand/v2 and a scripted source for reproducible tests.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package randx

import (
	"fmt"
	"math/rand/v2"
)

// Source produces uniformly distributed values. *rand.Rand implements it.
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64

	// IntN returns a value in [0, n); n > 0
	IntN(n int) int
}

// NewSource wraps r. A nil r yields a fresh unseeded source.
func NewSource(r *rand.Rand) Source {
	if r == nil {
		return Default()
	}
	return r
}

// NewSeeded returns a deterministic PCG source
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Default returns a new PCG source seeded from the runtime generator. Each
// call returns an independent source.
func Default() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Scripted replays fixed values in order. It panics when a script runs out.
type Scripted struct {
	doubles []float64
	ints    []int
	di, ii  int
}

// NewScripted returns a source replaying doubles from Float64
func NewScripted(doubles ...float64) *Scripted {
	return &Scripted{doubles: doubles}
}

// WithInts sets the values replayed by IntN
func (s *Scripted) WithInts(ints ...int) *Scripted {
	s.ints = ints
	s.ii = 0
	return s
}

// Float64 returns the next scripted double
func (s *Scripted) Float64() float64 {
	if s.di >= len(s.doubles) {
		panic(fmt.Sprintf("randx: scripted source exhausted after %d doubles", len(s.doubles)))
	}
	v := s.doubles[s.di]
	s.di++
	return v
}

// IntN returns the next scripted int. Values outside [0, n) panic.
func (s *Scripted) IntN(n int) int {
	if s.ii >= len(s.ints) {
		panic(fmt.Sprintf("randx: scripted source exhausted after %d ints", len(s.ints)))
	}
	v := s.ints[s.ii]
	s.ii++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("randx: scripted int %d out of range [0, %d)", v, n))
	}
	return v
}

// Remaining returns the number of unread doubles and ints
func (s *Scripted) Remaining() (doubles, ints int) {
	return len(s.doubles) - s.di, len(s.ints) - s.ii
}
