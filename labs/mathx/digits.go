package mathx

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// digitSum adds the base-10 digits of n. Negative input uses the digits of
// its absolute value.
func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// digitSumRecursive is the same computation written on the call stack.
func digitSumRecursive(n int) int {
	if n < 0 {
		n = -n
	}
	if n < 10 {
		return n
	}
	return n%10 + digitSumRecursive(n/10)
}

// digitalRoot repeatedly sums digits until a single digit remains.
func digitalRoot(n int) int {
	for n >= 10 {
		n = digitSum(n)
	}
	return n
}

// digitalRootClosed is the congruence shortcut: 1 + (n-1) mod 9.
func digitalRootClosed(n int) int {
	if n == 0 {
		return 0
	}
	return 1 + (n-1)%9
}

func runDigitSum(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Digit sums, loop and recursion")
	rows := make([][]string, 0, 5)
	for _, n := range []int{7, 58, 12345, 99999, 1000000} {
		rows = append(rows, []string{
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%d", digitSum(n)),
			fmt.Sprintf("%d", digitSumRecursive(n)),
		})
	}
	p.Table([]string{"N", "LOOP", "RECURSIVE"}, rows)

	p.Section("Digital roots collapse to one digit")
	for _, n := range []int{12345, 98765, 999999999} {
		p.KV(fmt.Sprintf("%d", n), "iterated %d, closed form %d",
			digitalRoot(n), digitalRootClosed(n))
	}

	p.Section("Casting out nines: divisibility by 3 and 9")
	for _, n := range []int{123, 124, 729, 6561, 100} {
		ds := digitSum(n)
		p.KV(fmt.Sprintf("%d (digit sum %d)", n, ds),
			"div by 3: %t, div by 9: %t", n%3 == 0, n%9 == 0)
	}

	return nil
}
