// Package debugging is the testing and debugging chapter: testify
// assertions run outside a test binary, struct diffing with go-cmp, why
// the profiler always points at naive recursion, structured logging with
// slog, and what recover can and cannot save. The package's own test
// file doubles as the worked example of a real Go test suite.
package debugging

import (
	"github.com/workbook-dev/workbook/labkit/lab"
)

const Chapter = "debugging"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "calculator",
			Title:   "Assertions on a calculator",
			Summary: "testify checks collected outside a test binary",
			Run:     runCalculator,
		},
		{
			Chapter: Chapter,
			Slug:    "diffs",
			Title:   "Comparing structures",
			Summary: "cmp.Equal, cmp.Diff, and compare options",
			Run:     runDiffs,
		},
		{
			Chapter: Chapter,
			Slug:    "profiling",
			Title:   "Measuring before guessing",
			Summary: "Recursive vs iterative Fibonacci, call counts",
			Run:     runProfiling,
		},
		{
			Chapter: Chapter,
			Slug:    "logging",
			Title:   "Debug logging",
			Summary: "slog levels, attributes, a traced function",
			Run:     runLogging,
		},
		{
			Chapter: Chapter,
			Slug:    "recover",
			Title:   "Panic and recover",
			Summary: "Unwinding, deferred cleanup, panics vs errors",
			Run:     runRecover,
		},
	}
}
