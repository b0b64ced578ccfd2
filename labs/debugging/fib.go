package debugging

import (
	"context"
	"strconv"
	"time"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// fibRecursive is the textbook exponential-time Fibonacci. It also
// reports how many calls it made, which is the whole story of why it is
// slow: the count grows like the sequence itself.
func fibRecursive(n int) (value, calls int) {
	if n <= 1 {
		return n, 1
	}
	a, ca := fibRecursive(n - 1)
	b, cb := fibRecursive(n - 2)
	return a + b, ca + cb + 1
}

// fibIterative computes the same sequence in n-1 additions.
func fibIterative(n int) int {
	if n <= 1 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

func runProfiling(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Same function, two costs")
	rows := make([][]string, 0, 4)
	for _, n := range []int{10, 20, 25, 30} {
		v, calls := fibRecursive(n)
		rows = append(rows, []string{
			strconv.Itoa(n),
			strconv.Itoa(v),
			strconv.Itoa(calls),
			strconv.Itoa(n - 1),
		})
	}
	p.Table([]string{"n", "fib(n)", "recursive calls", "iterative steps"}, rows)
	p.Println("Each call recomputes both branches, so the call count is")
	p.Println("itself a Fibonacci-sized number.")

	p.Section("The stopwatch agrees")
	start := time.Now()
	rv, calls := fibRecursive(30)
	recursive := time.Since(start)
	start = time.Now()
	iv := fibIterative(30)
	iterative := time.Since(start)
	p.KV("both give fib(30)", "%t (%d)", rv == iv, iv)
	p.KV("calls made for it", "%d vs 29", calls)
	p.KV("recursion took longer", "%t", recursive > iterative)
	p.Println("Wall-clock numbers vary run to run; the call count does not.")
	p.Println("Go's own answer to this lesson is `go test -bench`, which")
	p.Println("runs each benchmark until the timing is stable.")

	return nil
}
