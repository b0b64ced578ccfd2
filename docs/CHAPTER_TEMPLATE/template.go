// Package template is the starting point for a new workbook chapter.
// Replace TEMPLATE throughout with your chapter name (e.g., "strings"),
// then wire the chapter in:
//
//  1. Copy this file to labs/TEMPLATE/TEMPLATE.go and rename the package.
//  2. Add TEMPLATE.Labs() to the chapter list in internal/catalog.Default.
//  3. Add the chapter to workbook.yaml and write notes/TEMPLATE.md.
//  4. Run gen-index to refresh INDEX.md, then verify-index to confirm.
//  5. Optional: add expected-output checks under checks/TEMPLATE/.
//
// The file compiles as-is so the skeleton stays honest; it is not
// registered in the catalog and never runs.
package template

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

const Chapter = "TEMPLATE"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "first-lesson",
			Title:   "A short imperative title",
			Summary: "One line listing what the lab demonstrates",
			Run:     runFirstLesson,
		},
		// Add one entry per lab. Slugs are kebab-case and unique within
		// the chapter.
	}
}

func runFirstLesson(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	// Group output into sections; checks match on these headings.
	p.Section("What this lab shows")
	p.KV("a label", "a value")

	// Read shipped datasets through env.Data, write keepable output
	// through env.Artifact, and use env.Scratch for throwaway files.
	// Return an error to fail the lab; the runner reports it.
	return nil
}
