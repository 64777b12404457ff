// Package slicex provides slice helpers that complement samber/lo: running
// reductions, index-wise sums, order preserving set operations, single
// element extraction and bounded string rendering of collections.
//
// Results that behave like sets keep the order in which elements were first
// seen. Operations that may legitimately find nothing return mo.Option.
package slicex
