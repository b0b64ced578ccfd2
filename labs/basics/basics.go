// Package basics covers first-program material: values and zero values,
// operators, control flow, and errors as values.
package basics

import "github.com/workbook-dev/workbook/labkit/lab"

const Chapter = "basics"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "values",
			Title:   "Values and types",
			Summary: "Literals, zero values, explicit conversions, strings vs runes",
			Run:     runValues,
		},
		{
			Chapter: Chapter,
			Slug:    "operators",
			Title:   "Operators",
			Summary: "Arithmetic, comparison, short-circuit logic, compound assignment",
			Run:     runOperators,
		},
		{
			Chapter: Chapter,
			Slug:    "control-flow",
			Title:   "Control flow",
			Summary: "If, switch, the four loop forms, break and continue",
			Run:     runControlFlow,
		},
		{
			Chapter: Chapter,
			Slug:    "error-values",
			Title:   "Errors are values",
			Summary: "Sentinel errors, wrapping, errors.Is and As, recover",
			Run:     runErrorValues,
		},
	}
}
