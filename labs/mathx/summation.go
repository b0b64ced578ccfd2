package mathx

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// sumTo adds 1 + 2 + ... + n one term at a time.
func sumTo(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum += i
	}
	return sum
}

// sumToClosed is Gauss's n(n+1)/2.
func sumToClosed(n int) int {
	return n * (n + 1) / 2
}

// sumSquares adds 1² + 2² + ... + n² by loop.
func sumSquares(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum += i * i
	}
	return sum
}

// sumSquaresClosed is n(n+1)(2n+1)/6.
func sumSquaresClosed(n int) int {
	return n * (n + 1) * (2*n + 1) / 6
}

// sumCubes adds 1³ + 2³ + ... + n³ by loop.
func sumCubes(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum += i * i * i
	}
	return sum
}

// sumCubesClosed is the square of the triangular number.
func sumCubesClosed(n int) int {
	t := sumToClosed(n)
	return t * t
}

func runSummation(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Loop totals against the closed forms")
	rows := [][]string{}
	for _, n := range []int{1, 10, 100, 1000} {
		rows = append(rows, []string{
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%d", sumTo(n)),
			fmt.Sprintf("%d", sumToClosed(n)),
			fmt.Sprintf("%d", sumSquares(n)),
			fmt.Sprintf("%d", sumSquaresClosed(n)),
		})
	}
	p.Table([]string{"N", "SUM LOOP", "SUM FORMULA", "SQ LOOP", "SQ FORMULA"}, rows)

	p.Section("The cube identity")
	for _, n := range []int{3, 5, 10} {
		p.KV(fmt.Sprintf("n = %d", n),
			"cubes sum to %d, triangular number squared is %d",
			sumCubes(n), sumCubesClosed(n))
	}

	p.Section("Gauss's trick in one line")
	p.Printf("  pairing 1..100 end to end gives 50 pairs of 101: %d\n", sumToClosed(100))

	return nil
}
