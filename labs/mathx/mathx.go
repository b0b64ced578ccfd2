// Package mathx collects the small numeric utilities every beginner writes
// once: BMI, quadratic roots, factorials, primes, digit games, tables, and
// unit conversions. Each lab contrasts a naive approach with a better one.
package mathx

import "github.com/workbook-dev/workbook/labkit/lab"

const Chapter = "mathx"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "bmi",
			Title:   "BMI calculator",
			Summary: "Body mass index with WHO categories, metric and imperial",
			Run:     runBMI,
		},
		{
			Chapter: Chapter,
			Slug:    "quadratic",
			Title:   "Quadratic roots",
			Summary: "The discriminant's three cases, verified by substitution",
			Run:     runQuadratic,
		},
		{
			Chapter: Chapter,
			Slug:    "factorial",
			Title:   "Factorials four ways",
			Summary: "Iterative, recursive, memoized, and Stirling's approximation",
			Run:     runFactorial,
		},
		{
			Chapter: Chapter,
			Slug:    "primes",
			Title:   "Prime checking",
			Summary: "Trial division, the sqrt bound, the 6k±1 wheel, and a sieve",
			Run:     runPrimes,
		},
		{
			Chapter: Chapter,
			Slug:    "digit-sum",
			Title:   "Digit sums",
			Summary: "Digit sums, digital roots, and the casting-out-nines rule",
			Run:     runDigitSum,
		},
		{
			Chapter: Chapter,
			Slug:    "reverse",
			Title:   "Number reversal",
			Summary: "Reversing digits and hunting numeric palindromes",
			Run:     runReverse,
		},
		{
			Chapter: Chapter,
			Slug:    "times-table",
			Title:   "Multiplication tables",
			Summary: "Single tables, horizontal layout, and the full grid",
			Run:     runTimesTable,
		},
		{
			Chapter: Chapter,
			Slug:    "three-numbers",
			Title:   "Comparing three numbers",
			Summary: "Largest of three and sorting three with explicit swaps",
			Run:     runThreeNumbers,
		},
		{
			Chapter: Chapter,
			Slug:    "units",
			Title:   "Unit conversion",
			Summary: "Length, weight, and temperature conversions with round trips",
			Run:     runUnits,
		},
		{
			Chapter: Chapter,
			Slug:    "summation",
			Title:   "Summation formulas",
			Summary: "Loops against Gauss's closed forms for sums, squares, cubes",
			Run:     runSummation,
		},
	}
}
