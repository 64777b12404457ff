// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx builds insertion-ordered maps from sequences and
//              reshapes them.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Rewritten around LinkedMap and the assoc family

// Package mapx builds insertion-ordered maps from sequences.
//
// # Building maps
//
// The assoc family turns an iter.Seq into a *LinkedMap:
//
//	byID := mapx.AssocByKeySlice(users, func(u User) int { return u.ID })
//	names := mapx.AssocBySlice(users, User.Key, User.Name)
//	lengths := mapx.AssocWithSlice(words, func(w string) int { return len(w) })
//	pairs := mapx.AssocSlice([]mapx.Entry[int, int]{{1, 2}, {3, 4}, {3, 5}})
//
// Every builder reads the source once, left to right, and stores each pair
// with last-write-wins semantics. Keys keep the position of their first
// occurrence. When the resulting map is smaller than the number of
// processed elements, a single warning is emitted:
//
//	The map should contain 3 entries but the actual size is 2. The affected entries are [3=[4, 5]].
//
// The list of affected entries is only computed in that case, by reading
// the source a second time, and is cut to MaxDiagnosticLength runes. The
// warning never changes the returned map.
//
// Each builder has a *To variant that populates a caller supplied
// Destination, e.g. a pre-sized LinkedMap or a GoMap. The size check
// compares the destination's final size with the number of processed
// elements, so entries already present in the destination take part in it.
//
// # Diagnostics
//
// Warnings go to the default logger of core/log under the name "mapx".
// SetLogger installs any Warner instead; *log.Logger satisfies the
// interface.
//
// # Capacity
//
// Built maps are pre-sized with DefaultCapacity: MapCapacity of the source
// size (DefaultSize for sequences of unknown size), never below
// MinCapacity.
//
// # Reshaping
//
// MergeReduce, Join, SwapKeys, SwapKeys3, ToTwoLevelMap, ToThreeLevelMap,
// SecondLevelValues, ThirdLevelValues, MergeAll and FlatMerge operate on
// LinkedMaps and keep their order deterministic.
//
// # Concurrency
//
// Builders hold no shared state apart from the diagnostic sink, which is
// swapped atomically. A LinkedMap itself must not be mutated concurrently.
package mapx
