// File: assoc_test.go
// Title: Keyed-Collection Builder Tests
// Description: Tests for the assoc family: ordering, last-write-wins,
//              duplicate diagnostics, destinations and capacity policy.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package mapx

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukasForst/katlib/core/log"
)

type recordingWarner struct {
	messages []string
	fields   []log.Fields
}

func (r *recordingWarner) Warn(message string, fields ...log.Fields) {
	r.messages = append(r.messages, message)
	r.fields = append(r.fields, log.Merge(fields...))
}

func captureWarnings(t *testing.T) *recordingWarner {
	t.Helper()
	r := &recordingWarner{}
	previous := SetLogger(r)
	t.Cleanup(func() { SetLogger(previous) })
	return r
}

type user struct {
	id   int
	name string
}

func TestAssocLastValueWins(t *testing.T) {
	warnings := captureWarnings(t)

	result := AssocSlice([]Entry[int, int]{{1, 2}, {3, 4}, {3, 5}})

	assert.Equal(t, []int{1, 3}, result.Keys())
	assert.Equal(t, []int{2, 5}, result.Values())
	require.Len(t, warnings.messages, 1)
	assert.Equal(t,
		"The map should contain 3 entries but the actual size is 2. The affected entries are [3=[4, 5]].",
		warnings.messages[0])
	assert.Equal(t, 3, warnings.fields[0]["expected_size"])
	assert.Equal(t, 2, warnings.fields[0]["actual_size"])
}

func TestAssocDistinctKeys(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry[string, int]
	}{
		{"empty", nil},
		{"single", []Entry[string, int]{{"a", 1}}},
		{"several", []Entry[string, int]{{"c", 3}, {"a", 1}, {"b", 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := captureWarnings(t)

			result := AssocSlice(tt.entries)

			assert.Equal(t, len(tt.entries), result.Len())
			if len(tt.entries) > 0 {
				assert.Equal(t, tt.entries, result.Entries())
			}
			assert.Empty(t, warnings.messages)
		})
	}
}

func TestAssocAllSameKey(t *testing.T) {
	warnings := captureWarnings(t)

	result := AssocBySlice([]user{{1, "a"}, {1, "b"}, {1, "c"}},
		func(u user) int { return u.id },
		func(u user) string { return u.name })

	assert.Equal(t, 1, result.Len())
	v, ok := result.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "c", v)
	require.Len(t, warnings.messages, 1)
	assert.Equal(t,
		"The map should contain 3 entries but the actual size is 1. The affected entries are [1=[a, b, c]].",
		warnings.messages[0])
}

func TestAssocGroupsInFirstSeenOrder(t *testing.T) {
	warnings := captureWarnings(t)

	AssocSlice([]Entry[string, int]{{"b", 1}, {"a", 2}, {"c", 3}, {"a", 4}, {"b", 5}})

	require.Len(t, warnings.messages, 1)
	assert.Contains(t, warnings.messages[0], "The affected entries are [b=[1, 5], a=[2, 4]].")
}

func TestAssocByKey(t *testing.T) {
	warnings := captureWarnings(t)
	users := []user{{2, "bob"}, {1, "alice"}, {2, "bobby"}}

	result := AssocByKeySlice(users, func(u user) int { return u.id })

	assert.Equal(t, []int{2, 1}, result.Keys())
	assert.Equal(t, user{2, "bobby"}, result.GetOrDefault(2, user{}))
	require.Len(t, warnings.messages, 1)
	assert.Contains(t, warnings.messages[0], "[2=[{2 bob}, {2 bobby}]]")
}

func TestAssocWith(t *testing.T) {
	warnings := captureWarnings(t)

	result := AssocWithSlice([]string{"go", "kotlin", "go"}, func(s string) int { return len(s) })

	assert.Equal(t, "{go=2, kotlin=6}", result.String())
	require.Len(t, warnings.messages, 1)
	assert.Contains(t, warnings.messages[0], "[go=[2, 2]]")
}

func TestAssocSequences(t *testing.T) {
	captureWarnings(t)
	source := AssocSlice([]Entry[string, int]{{"x", 1}, {"y", 2}})

	t.Run("AssocSeq2", func(t *testing.T) {
		assert.True(t, Equal(source, AssocSeq2(source.All())))
	})

	t.Run("Assoc", func(t *testing.T) {
		assert.True(t, Equal(source, Assoc(slices.Values(source.Entries()))))
	})

	t.Run("AssocBy", func(t *testing.T) {
		result := AssocBy(slices.Values([]int{1, 2, 3}), strconv.Itoa, func(i int) int { return i * i })
		assert.Equal(t, "{1=1, 2=4, 3=9}", result.String())
	})

	t.Run("AssocByKey", func(t *testing.T) {
		result := AssocByKey(slices.Values([]string{"a", "bb"}), func(s string) int { return len(s) })
		assert.Equal(t, "{1=a, 2=bb}", result.String())
	})

	t.Run("AssocTransform", func(t *testing.T) {
		result := AssocTransform(slices.Values([]string{"k1:v1", "k2:v2"}), func(s string) (string, string) {
			k, v, _ := strings.Cut(s, ":")
			return k, v
		})
		assert.Equal(t, "{k1=v1, k2=v2}", result.String())
	})

	t.Run("AssocWith", func(t *testing.T) {
		result := AssocWith(slices.Values([]int{3, 1}), func(i int) bool { return i > 2 })
		assert.Equal(t, "{3=true, 1=false}", result.String())
	})
}

func TestAssocIntoDestination(t *testing.T) {
	t.Run("go map", func(t *testing.T) {
		warnings := captureWarnings(t)
		dest := GoMap[int, int]{}

		got := AssocTo(dest, slices.Values([]Entry[int, int]{{1, 2}, {3, 4}, {3, 5}}))

		assert.Equal(t, map[int]int{1: 2, 3: 5}, map[int]int(got))
		assert.Len(t, warnings.messages, 1)
	})

	t.Run("returns the same destination", func(t *testing.T) {
		captureWarnings(t)
		dest := NewLinkedMap[string, int](4)

		got := AssocWithTo(dest, slices.Values([]string{"a"}), func(string) int { return 1 })

		assert.Same(t, dest, got)
	})

	t.Run("pre-existing entries count towards the size", func(t *testing.T) {
		warnings := captureWarnings(t)
		dest := NewLinkedMap[string, int](4)
		dest.Set("z", 0)

		AssocTransformTo(dest, slices.Values([]string{"a"}), func(s string) (string, int) { return s, 1 })

		require.Len(t, warnings.messages, 1)
		assert.Equal(t,
			"The map should contain 1 entries but the actual size is 2. The affected entries are [].",
			warnings.messages[0])
	})

	t.Run("pre-existing entries can mask duplicates", func(t *testing.T) {
		warnings := captureWarnings(t)
		dest := NewLinkedMap[string, int](4)
		dest.Set("z", 0)

		AssocByKeyTo(dest, slices.Values([]int{1, 1}), func(int) string { return "a" })

		assert.Empty(t, warnings.messages)
	})
}

func TestAssocDiagnosticTruncated(t *testing.T) {
	warnings := captureWarnings(t)
	items := make([]int, 400)
	for i := range items {
		items[i] = i
	}

	AssocBySlice(items, func(i int) int { return i % 20 }, func(i int) string { return "value-" + strconv.Itoa(i) })

	require.Len(t, warnings.messages, 1)
	prefix := "The map should contain 400 entries but the actual size is 20. The affected entries are "
	require.True(t, strings.HasPrefix(warnings.messages[0], prefix))
	groups := strings.TrimSuffix(strings.TrimPrefix(warnings.messages[0], prefix), ".")
	assert.Len(t, []rune(groups), MaxDiagnosticLength)
	assert.True(t, strings.HasPrefix(groups, "[0=[value-0, value-20, "))
}

func TestAssocSelectorPanicPropagates(t *testing.T) {
	captureWarnings(t)

	assert.PanicsWithValue(t, "bad element", func() {
		AssocByKeySlice([]int{1, 2}, func(i int) int {
			if i == 2 {
				panic("bad element")
			}
			return i
		})
	})
}

func TestAssocIsIdempotent(t *testing.T) {
	warnings := captureWarnings(t)
	source := []Entry[string, float64]{{"a", 1.5}, {"b", 2.5}}

	first := AssocSlice(source)
	second := AssocSlice(source)

	assert.True(t, Equal(first, second))
	assert.Empty(t, warnings.messages)
}

func TestAssocDistinctKeysProperty(t *testing.T) {
	captureWarnings(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("distinct keys keep every pair in order", prop.ForAll(
		func(raw []int) bool {
			keys := lo.Uniq(raw)
			entries := lo.Map(keys, func(k int, i int) Entry[int, int] { return Entry[int, int]{k, i} })

			result := AssocSlice(entries)
			return result.Len() == len(keys) && slices.Equal(result.Entries(), entries)
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}

func TestDefaultSinkUsesDefaultLogger(t *testing.T) {
	previousLogger := log.GetDefault()
	previousSink := SetLogger(nil)
	t.Cleanup(func() {
		log.SetDefault(previousLogger)
		SetLogger(previousSink)
	})

	var buf bytes.Buffer
	log.SetDefault(log.NewWithConfig(log.Config{Level: log.LevelWarn, Format: log.FormatText, Output: &buf}))

	AssocWithSlice([]int{7, 7}, func(int) int { return 0 })

	out := buf.String()
	assert.Contains(t, out, "[WRN] {mapx} The map should contain 2 entries but the actual size is 1.")
	assert.Contains(t, out, "[7=[0, 0]]")
}

func TestMapCapacity(t *testing.T) {
	tests := []struct {
		expected int
		want     int
	}{
		{0, 1},
		{2, 3},
		{3, 4},
		{10, 13},
		{100, 133},
		{1<<30 - 1, 1<<30 - 1 + (1<<30-1)/3},
		{1 << 30, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.want, MapCapacity(tt.expected))
		})
	}
}

func TestDefaultCapacity(t *testing.T) {
	assert.Equal(t, MinCapacity, DefaultCapacity(0))
	assert.Equal(t, MinCapacity, DefaultCapacity(DefaultSize))
	assert.Equal(t, 133, DefaultCapacity(100))
}
