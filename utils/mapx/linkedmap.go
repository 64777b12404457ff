// File: linkedmap.go
// Title: Insertion-Ordered Map
// Description: LinkedMap is a hash map that remembers the order in which keys
//              were first inserted. Overwriting a key keeps its position, so the
//              map reflects the first-seen order of a source while holding the
//              last-seen value.
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
)

type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// LinkedMap is an insertion-ordered map. The zero value is an empty map ready
// to use. A LinkedMap is not safe for concurrent mutation.
type LinkedMap[K comparable, V any] struct {
	index      map[K]*node[K, V]
	head, tail *node[K, V]
}

// NewLinkedMap creates an empty map with room for capacity entries
func NewLinkedMap[K comparable, V any](capacity int) *LinkedMap[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &LinkedMap[K, V]{index: make(map[K]*node[K, V], capacity)}
}

// Set stores value under key. A new key is appended, an existing key keeps
// its position and gets the new value.
func (m *LinkedMap[K, V]) Set(key K, value V) {
	m.Put(key, value)
}

// Put is Set returning the replaced value, if any
func (m *LinkedMap[K, V]) Put(key K, value V) (previous V, replaced bool) {
	if m.index == nil {
		m.index = make(map[K]*node[K, V])
	}
	if n, ok := m.index[key]; ok {
		previous = n.value
		n.value = value
		return previous, true
	}

	n := &node[K, V]{key: key, value: value, prev: m.tail}
	if m.tail == nil {
		m.head = n
	} else {
		m.tail.next = n
	}
	m.tail = n
	m.index[key] = n
	return previous, false
}

// Get returns the value stored under key
func (m *LinkedMap[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	if n, ok := m.index[key]; ok {
		return n.value, true
	}
	return zero, false
}

// GetOrDefault returns the value under key or fallback when absent
func (m *LinkedMap[K, V]) GetOrDefault(key K, fallback V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return fallback
}

// GetOrPut returns the value under key, storing create() first when absent
func (m *LinkedMap[K, V]) GetOrPut(key K, create func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := create()
	m.Set(key, v)
	return v
}

// Has reports whether key is present
func (m *LinkedMap[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present
func (m *LinkedMap[K, V]) Delete(key K) bool {
	n, ok := m.index[key]
	if !ok {
		return false
	}
	if n.prev == nil {
		m.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		m.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	delete(m.index, key)
	return true
}

// Len returns the number of entries
func (m *LinkedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.index)
}

// All iterates the entries in insertion order
func (m *LinkedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for n := m.head; n != nil; n = n.next {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// KeySeq iterates the keys in insertion order
func (m *LinkedMap[K, V]) KeySeq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order
func (m *LinkedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in key insertion order
func (m *LinkedMap[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Entries returns the entries in insertion order
func (m *LinkedMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// First returns the oldest entry
func (m *LinkedMap[K, V]) First() (Entry[K, V], bool) {
	if m == nil || m.head == nil {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: m.head.key, Value: m.head.value}, true
}

// Last returns the newest entry
func (m *LinkedMap[K, V]) Last() (Entry[K, V], bool) {
	if m == nil || m.tail == nil {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: m.tail.key, Value: m.tail.value}, true
}

// Clone returns a shallow copy preserving order
func (m *LinkedMap[K, V]) Clone() *LinkedMap[K, V] {
	clone := NewLinkedMap[K, V](m.Len())
	for k, v := range m.All() {
		clone.Set(k, v)
	}
	return clone
}

// ToMap copies the entries into a plain Go map
func (m *LinkedMap[K, V]) ToMap() map[K]V {
	result := make(map[K]V, m.Len())
	for k, v := range m.All() {
		result[k] = v
	}
	return result
}

// String renders the map as {k1=v1, k2=v2}
func (m *LinkedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v=%v", k, v)
		i++
	}
	sb.WriteByte('}')
	return sb.String()
}

// Equal reports whether a and b hold the same entries in the same order
func Equal[K, V comparable](a, b *LinkedMap[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull2(b.All())
	defer stop()
	for k, v := range a.All() {
		bk, bv, ok := next()
		if !ok || bk != k || bv != v {
			return false
		}
	}
	return true
}
