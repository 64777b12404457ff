// Package objx holds small helpers for conditional application of
// functions, optional values, pairs and inclusive ranges.
package objx
