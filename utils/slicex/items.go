// File: items.go
// Title: Collection Rendering
// Description: Renders a collection as a bounded, human readable summary
//              such as "3 colors: red, yellow, green".
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package slicex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/LukasForst/katlib/utils/stringx"
)

// ItemsFormat controls ItemsToString output
type ItemsFormat struct {
	ItemsType   string
	Separator   string
	ItemLength  int
	TotalLength int
}

// DefaultItemsFormat returns "items", ", ", 30 and 200
func DefaultItemsFormat() ItemsFormat {
	return ItemsFormat{
		ItemsType:   "items",
		Separator:   ", ",
		ItemLength:  30,
		TotalLength: 200,
	}
}

// ItemsToString renders items as "<count> <type>: a, b, c".
//
// Each rendered item is shortened to ItemLength. Once the next item would
// not fit into TotalLength an ellipsis is written and rendering stops. A nil
// toString renders items with %v.
func ItemsToString[T any](items []T, format ItemsFormat, toString func(T) string) string {
	if toString == nil {
		toString = func(item T) string { return fmt.Sprintf("%v", item) }
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s", len(items), format.ItemsType)
	separator := ": "
	for _, item := range items {
		sb.WriteString(separator)
		separator = format.Separator

		short := stringx.RestrictLengthWithEllipsis(toString(item), format.ItemLength)
		if utf8.RuneCountInString(short)+utf8.RuneCountInString(sb.String()) > format.TotalLength {
			sb.WriteString(stringx.Ellipsis)
			break
		}
		sb.WriteString(short)
	}
	return stringx.RestrictLengthWithEllipsis(sb.String(), format.TotalLength)
}
