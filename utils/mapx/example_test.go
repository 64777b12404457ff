// File: example_test.go
// Title: mapx Examples
// Description: Runnable examples for the assoc family and LinkedMap.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package mapx_test

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/LukasForst/katlib/core/log"
	"github.com/LukasForst/katlib/utils/mapx"
)

func ExampleAssocBySlice() {
	type language struct {
		name string
		year int
	}
	languages := []language{{"Go", 2009}, {"Kotlin", 2011}, {"Rust", 2010}}

	years := mapx.AssocBySlice(languages,
		func(l language) string { return l.name },
		func(l language) int { return l.year })

	fmt.Println(years)
	// Output: {Go=2009, Kotlin=2011, Rust=2010}
}

func ExampleAssocSlice() {
	logger := log.NewWithConfig(log.Config{Level: log.LevelWarn, Format: log.FormatText, Output: os.Stdout}).
		WithFormatter(&log.TextFormatter{DisableTimestamp: true})
	previous := mapx.SetLogger(logger.WithName("mapx"))
	defer mapx.SetLogger(previous)

	m := mapx.AssocSlice([]mapx.Entry[int, int]{{Key: 1, Value: 2}, {Key: 3, Value: 4}, {Key: 3, Value: 5}})

	fmt.Println(m)
	// Output:
	// [WRN] {mapx} The map should contain 3 entries but the actual size is 2. The affected entries are [3=[4, 5]]. [actual_size=2 expected_size=3]
	// {1=2, 3=5}
}

func ExampleAssocWith() {
	words := slices.Values([]string{"map", "Seq", "iter"})

	upper := mapx.AssocWith(words, strings.ToUpper)

	for k, v := range upper.All() {
		fmt.Println(k, v)
	}
	// Output:
	// map MAP
	// Seq SEQ
	// iter ITER
}

func ExampleLinkedMap() {
	m := mapx.NewLinkedMap[string, int](4)
	m.Set("first", 1)
	m.Set("second", 2)
	m.Set("first", 10)

	fmt.Println(m.Keys(), m.Values())
	// Output: [first second] [10 2]
}

func ExampleSwapKeys() {
	scores := mapx.NewLinkedMap[string, *mapx.LinkedMap[string, int]](2)
	scores.Set("alice", mapx.AssocSlice([]mapx.Entry[string, int]{{Key: "math", Value: 1}, {Key: "art", Value: 2}}))
	scores.Set("bob", mapx.AssocSlice([]mapx.Entry[string, int]{{Key: "math", Value: 3}}))

	fmt.Println(mapx.SwapKeys(scores))
	// Output: {math={alice=1, bob=3}, art={alice=2}}
}
