// Package scicomp covers scientific computing with gonum: physical
// constants and unit conversions, descriptive statistics and probability
// distributions, function minimization and root finding, and numerical
// integration. Every lesson checks its numeric answer against a closed
// form so the error of each method is visible.
package scicomp

import (
	"github.com/workbook-dev/workbook/labkit/lab"
)

const Chapter = "scicomp"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "constants",
			Title:   "Constants and units",
			Summary: "CODATA physical constants, unit conversion factors",
			Run:     runConstants,
		},
		{
			Chapter: Chapter,
			Slug:    "stats",
			Title:   "Statistics",
			Summary: "Moments, distributions, sampling, t-tests",
			Run:     runStats,
		},
		{
			Chapter: Chapter,
			Slug:    "optimize",
			Title:   "Optimization",
			Summary: "Golden section, Nelder-Mead, bisection roots",
			Run:     runOptimize,
		},
		{
			Chapter: Chapter,
			Slug:    "integrate",
			Title:   "Integration",
			Summary: "Trapezoid, Simpson, Gauss-Legendre, an ODE",
			Run:     runIntegrate,
		},
	}
}
