// Package algos builds the classic toy data structures and algorithms:
// stacks with expression evaluation, queues with breadth-first search,
// binary search in its many variants, and the elementary sorts with
// operation counters to make their costs visible.
package algos

import "github.com/workbook-dev/workbook/labkit/lab"

const Chapter = "algos"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "stack",
			Title:   "Stacks",
			Summary: "LIFO basics, balanced brackets, postfix evaluation, shunting yard",
			Run:     runStack,
		},
		{
			Chapter: Chapter,
			Slug:    "queue",
			Title:   "Queues",
			Summary: "FIFO, a fixed ring buffer, priority via container/heap, BFS",
			Run:     runQueue,
		},
		{
			Chapter: Chapter,
			Slug:    "binary-search",
			Title:   "Binary search",
			Summary: "Iterative, recursive, boundary variants, integer square roots",
			Run:     runBinarySearch,
		},
		{
			Chapter: Chapter,
			Slug:    "sorting",
			Title:   "Elementary sorts",
			Summary: "Bubble, selection, insertion, merge, quick, with counted work",
			Run:     runSorting,
		},
	}
}
