// Package numerics introduces gonum's dense matrices and vectors: building
// them, reading and slicing them, elementwise arithmetic with reductions, and
// real matrix algebra. It leans on gonum/floats for the 1-D helpers.
package numerics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

const Chapter = "numerics"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "create",
			Title:   "Building vectors and matrices",
			Summary: "Zeros, ones, identity, diagonal, ranges, linspace",
			Run:     runCreate,
		},
		{
			Chapter: Chapter,
			Slug:    "index",
			Title:   "Indexing and slicing",
			Summary: "Element access, row and column views, view vs copy, masks",
			Run:     runIndex,
		},
		{
			Chapter: Chapter,
			Slug:    "elementwise",
			Title:   "Elementwise math and reductions",
			Summary: "Add, scale, dot, apply, sum, mean, max, argmax",
			Run:     runElementwise,
		},
		{
			Chapter: Chapter,
			Slug:    "matmul",
			Title:   "Matrix products",
			Summary: "Mul, transpose, identity, trace, inverse",
			Run:     runMatmul,
		},
	}
}

// dump prints a labelled matrix in gonum's aligned format.
func dump(p *report.Printer, label string, m mat.Matrix) {
	p.Printf("  %s =\n", label)
	p.Printf("  %v\n", mat.Formatted(m, mat.Prefix("  "), mat.Squeeze()))
}
