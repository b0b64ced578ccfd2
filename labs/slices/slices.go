// Package slices walks through everyday slice work: comparing, the built-in
// operations, joining, slicing and aliasing, traversal patterns, and
// membership checks. The primitives are written out by hand because the
// mechanics are the lesson.
package slices

import "github.com/workbook-dev/workbook/labkit/lab"

const Chapter = "slices"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "compare",
			Title:   "Comparing slices",
			Summary: "Element-wise equality and order-insensitive comparison",
			Run:     runCompare,
		},
		{
			Chapter: Chapter,
			Slug:    "operations",
			Title:   "Core operations",
			Summary: "Append growth, copy, insert, remove, index, count",
			Run:     runOperations,
		},
		{
			Chapter: Chapter,
			Slug:    "join",
			Title:   "Joining and replicating",
			Summary: "Concatenation, interleaving, zipping, repetition",
			Run:     runJoin,
		},
		{
			Chapter: Chapter,
			Slug:    "slicing",
			Title:   "Slicing and aliasing",
			Summary: "Half-open ranges, stepped selection, views versus clones",
			Run:     runSlicing,
		},
		{
			Chapter: Chapter,
			Slug:    "traverse",
			Title:   "Traversal patterns",
			Summary: "Index loops, range loops, reverse order, adjacent pairs",
			Run:     runTraverse,
		},
		{
			Chapter: Chapter,
			Slug:    "validate",
			Title:   "Membership and validation",
			Summary: "Contains, every-element and any-element predicates",
			Run:     runValidate,
		},
	}
}
