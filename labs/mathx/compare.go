package mathx

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// largestOfThree returns the maximum of a, b, c by pairwise comparison.
func largestOfThree(a, b, c int) int {
	largest := a
	if b > largest {
		largest = b
	}
	if c > largest {
		largest = c
	}
	return largest
}

// sortThree returns a, b, c ascending using the three-comparison swap
// network: the minimal decision tree for three values.
func sortThree(a, b, c int) (int, int, int) {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return a, b, c
}

func runThreeNumbers(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	triples := [][3]int{
		{3, 7, 5},
		{9, 2, 2},
		{4, 4, 4},
		{-1, -9, 0},
		{100, 10, 1},
	}

	p.Section("Largest of three")
	for _, t := range triples {
		p.KV(fmt.Sprintf("%v", t), "%d", largestOfThree(t[0], t[1], t[2]))
	}

	p.Section("Sorting three with a swap network")
	for _, t := range triples {
		x, y, z := sortThree(t[0], t[1], t[2])
		p.KV(fmt.Sprintf("%v", t), "-> [%d %d %d]", x, y, z)
	}

	return nil
}
