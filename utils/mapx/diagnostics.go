// File: diagnostics.go
// Title: Duplicate Key Diagnostics
// Description: Reports sources that produced colliding keys. The report is a
//              single warning; building the list of affected entries is
//              deferred until a size mismatch has actually been observed.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package mapx

import (
	"fmt"
	"iter"
	"strings"
	"sync/atomic"

	"github.com/LukasForst/katlib/core/log"
)

// MaxDiagnosticLength caps the rendered list of affected entries (in runes)
const MaxDiagnosticLength = 500

// Warner receives duplicate key diagnostics. *log.Logger implements it.
type Warner interface {
	Warn(message string, fields ...log.Fields)
}

type defaultWarner struct{}

// Warn resolves the default logger on every call so log.SetDefault applies.
func (defaultWarner) Warn(message string, fields ...log.Fields) {
	log.GetDefault().WithName("mapx").Warn(message, fields...)
}

type warnerHolder struct {
	w Warner
}

var sink atomic.Pointer[warnerHolder]

func init() {
	sink.Store(&warnerHolder{w: defaultWarner{}})
}

// SetLogger replaces the diagnostic sink and returns the previous one.
// Nil restores the default sink backed by log.GetDefault().
func SetLogger(w Warner) Warner {
	if w == nil {
		w = defaultWarner{}
	}
	return sink.Swap(&warnerHolder{w: w}).w
}

func warner() Warner {
	return sink.Load().w
}

// checkUniqueness warns when dest does not hold expected entries. groups is
// only evaluated in that case.
func checkUniqueness(actual, expected int, groups func() string) {
	if actual == expected {
		return
	}
	warner().Warn(
		fmt.Sprintf("The map should contain %d entries but the actual size is %d. The affected entries are %s.",
			expected, actual, groups()),
		log.Fields{"expected_size": expected, "actual_size": actual},
	)
}

// duplicateGroups re-reads source and renders keys seen more than once with
// all their values, in first-seen key order: [k1=[v1, v2], k2=[v3, v4]]
func duplicateGroups[T any, K comparable, V any](source iter.Seq[T], split func(T) (K, V)) string {
	grouped := NewLinkedMap[K, []V](MinCapacity)
	for item := range source {
		k, v := split(item)
		grouped.Set(k, append(grouped.GetOrDefault(k, nil), v))
	}

	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for k, values := range grouped.All() {
		if len(values) < 2 {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v=[", k)
		for i, v := range values {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return truncateRunes(sb.String(), MaxDiagnosticLength)
}

func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
