package mathx

import (
	"context"
	"fmt"
	"strings"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// multiplicationGrid renders the n×n products grid with a header row and
// column, every cell right-aligned to the widest product.
func multiplicationGrid(n int) string {
	width := len(fmt.Sprintf("%d", n*n))
	var b strings.Builder

	// Header row
	fmt.Fprintf(&b, "%*s |", width, "x")
	for col := 1; col <= n; col++ {
		fmt.Fprintf(&b, " %*d", width, col)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s-+%s\n",
		strings.Repeat("-", width),
		strings.Repeat("-", (width+1)*n))

	for row := 1; row <= n; row++ {
		fmt.Fprintf(&b, "%*d |", width, row)
		for col := 1; col <= n; col++ {
			fmt.Fprintf(&b, " %*d", width, row*col)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func runTimesTable(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("The 7 times table")
	for i := 1; i <= 10; i++ {
		p.Printf("  7 x %2d = %3d\n", i, 7*i)
	}

	p.Section("Horizontal layout")
	for _, n := range []int{2, 5, 9} {
		var cells []string
		for i := 1; i <= 10; i++ {
			cells = append(cells, fmt.Sprintf("%3d", n*i))
		}
		p.Printf("  %d: %s\n", n, strings.Join(cells, " "))
	}

	p.Section("Full 9x9 grid")
	for _, line := range strings.Split(strings.TrimRight(multiplicationGrid(9), "\n"), "\n") {
		p.Printf("  %s\n", line)
	}

	return nil
}
