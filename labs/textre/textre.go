// Package textre covers regular expressions in Go: reading pattern syntax,
// validating whole strings, and pulling structure out of free text. Patterns
// that never change are compiled once with MustCompile at package level.
package textre

import "github.com/workbook-dev/workbook/labkit/lab"

const Chapter = "textre"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "patterns",
			Title:   "Pattern building blocks",
			Summary: "Literals, classes, quantifiers, anchors, groups",
			Run:     runPatterns,
		},
		{
			Chapter: Chapter,
			Slug:    "validate",
			Title:   "Validating input",
			Summary: "Emails, usernames, colors, dates as whole-string matches",
			Run:     runValidate,
		},
		{
			Chapter: Chapter,
			Slug:    "extract",
			Title:   "Extracting and rewriting",
			Summary: "Find-all, submatches, replace, split",
			Run:     runExtract,
		},
	}
}
