package mathx

import (
	"context"
	"fmt"
	"math"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// maxFactorial is the largest n whose factorial fits in a uint64.
const maxFactorial = 20

// factorialIterative multiplies up from 1. n must be in [0, 20].
func factorialIterative(n int) uint64 {
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result
}

// factorialRecursive applies the n! = n·(n-1)! definition directly.
func factorialRecursive(n int) uint64 {
	if n <= 1 {
		return 1
	}
	return uint64(n) * factorialRecursive(n-1)
}

// memoFactorial caches every factorial it computes across calls.
type memoFactorial struct {
	cache map[int]uint64
	hits  int
}

func newMemoFactorial() *memoFactorial {
	return &memoFactorial{cache: map[int]uint64{0: 1, 1: 1}}
}

func (m *memoFactorial) of(n int) uint64 {
	if v, ok := m.cache[n]; ok {
		m.hits++
		return v
	}
	v := uint64(n) * m.of(n-1)
	m.cache[n] = v
	return v
}

// stirling approximates n! with sqrt(2πn)·(n/e)^n.
func stirling(n int) float64 {
	fn := float64(n)
	return math.Sqrt(2*math.Pi*fn) * math.Pow(fn/math.E, fn)
}

// permutations returns P(n, r), the ordered selections of r from n, as a
// running product so intermediate values stay small.
func permutations(n, r int) uint64 {
	result := uint64(1)
	for i := 0; i < r; i++ {
		result *= uint64(n - i)
	}
	return result
}

// combinations returns C(n, r) with the multiplicative formula. Every
// intermediate division is exact.
func combinations(n, r int) uint64 {
	if r > n-r {
		r = n - r
	}
	result := uint64(1)
	for i := 1; i <= r; i++ {
		result = result * uint64(n-r+i) / uint64(i)
	}
	return result
}

func runFactorial(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Three exact strategies agree")
	memo := newMemoFactorial()
	rows := make([][]string, 0, 6)
	for _, n := range []int{0, 1, 5, 10, 15, 20} {
		rows = append(rows, []string{
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%d", factorialIterative(n)),
			fmt.Sprintf("%d", factorialRecursive(n)),
			fmt.Sprintf("%d", memo.of(n)),
		})
	}
	p.Table([]string{"N", "ITERATIVE", "RECURSIVE", "MEMOIZED"}, rows)

	p.Section("The memo pays off on repeated calls")
	before := memo.hits
	memo.of(20)
	memo.of(20)
	p.KV("cache hits for two reruns", "%d", memo.hits-before)

	p.Section("Stirling's approximation closes in")
	for _, n := range []int{5, 10, 20} {
		exact := float64(factorialIterative(n))
		approx := stirling(n)
		p.KV(fmt.Sprintf("%d!", n), "exact %.4g, Stirling %.4g (%.2f%% low)",
			exact, approx, (1-approx/exact)*100)
	}

	p.Section("Counting with factorials")
	p.KV("podium orders, 8 runners", "P(8,3) = %d", permutations(8, 3))
	p.KV("lottery picks, 6 of 49", "C(49,6) = %d", combinations(49, 6))
	p.KV("pairs from 20 people", "C(20,2) = %d", combinations(20, 2))

	return nil
}
