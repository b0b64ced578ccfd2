// Package concur covers Go's concurrency toolkit in four sittings: goroutine
// fan-out with WaitGroup, why a lock must cover a whole update, channel
// pipelines and timeouts, and coordinated parallel work with errgroup. Every
// lab joins all the goroutines it starts before returning.
package concur

import "github.com/workbook-dev/workbook/labkit/lab"

const Chapter = "concur"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "goroutines",
			Title:   "Goroutines and WaitGroup",
			Summary: "Fan work out, wait for all of it, and see the speedup",
			Run:     runGoroutines,
		},
		{
			Chapter: Chapter,
			Slug:    "mutex",
			Title:   "Locking a whole update",
			Summary: "Lost updates from a split read-modify-write, and the fix",
			Run:     runMutex,
		},
		{
			Chapter: Chapter,
			Slug:    "channels",
			Title:   "Channels and timeouts",
			Summary: "Pipelines, buffering, and select with a deadline",
			Run:     runChannels,
		},
		{
			Chapter: Chapter,
			Slug:    "errgroup",
			Title:   "Errgroup coordination",
			Summary: "Parallel pi estimation and first-error cancellation",
			Run:     runErrgroup,
		},
	}
}
