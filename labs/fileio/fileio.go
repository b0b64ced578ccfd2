// Package fileio covers working with files on disk: creating and appending,
// reading whole or in pieces, deleting defensively, shuttling records through
// JSON and CSV, and watching a directory for changes. Every lab confines its
// writes to the scratch and artifact dirs handed to it.
package fileio

import "github.com/workbook-dev/workbook/labkit/lab"

const Chapter = "fileio"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "writing",
			Title:   "Writing files",
			Summary: "Create, truncate, append, multi-line and formatted output",
			Run:     runWriting,
		},
		{
			Chapter: Chapter,
			Slug:    "reading",
			Title:   "Reading files",
			Summary: "Whole-file, line-by-line, partial reads, line and word counts",
			Run:     runReading,
		},
		{
			Chapter: Chapter,
			Slug:    "safe-delete",
			Title:   "Deleting safely",
			Summary: "Existence and type checks, error inspection, dirs vs trees",
			Run:     runSafeDelete,
		},
		{
			Chapter: Chapter,
			Slug:    "roundtrip",
			Title:   "JSON and CSV round trips",
			Summary: "Encode records to disk and decode them back unchanged",
			Run:     runRoundTrip,
		},
		{
			Chapter: Chapter,
			Slug:    "watch",
			Title:   "Watching a directory",
			Summary: "React to create and write events with a bounded fsnotify demo",
			Run:     runWatch,
		},
	}
}
