package mathx

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// reverseInt reverses the base-10 digits of n, preserving sign. Trailing
// zeros disappear: 120 reverses to 21.
func reverseInt(n int) int {
	sign := 1
	if n < 0 {
		sign = -1
		n = -n
	}
	reversed := 0
	for n > 0 {
		reversed = reversed*10 + n%10
		n /= 10
	}
	return sign * reversed
}

// isNumericPalindrome reports whether n reads the same in both directions.
// Negative numbers are never palindromes.
func isNumericPalindrome(n int) bool {
	if n < 0 {
		return false
	}
	return n == reverseInt(n)
}

// nextPalindrome returns the smallest numeric palindrome greater than n.
func nextPalindrome(n int) int {
	for i := n + 1; ; i++ {
		if isNumericPalindrome(i) {
			return i
		}
	}
}

func runReverse(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Reversal by arithmetic, no strings needed")
	for _, n := range []int{12345, 120, 7, -456, 1000} {
		p.KV(fmt.Sprintf("%d", n), "%d", reverseInt(n))
	}

	p.Section("Palindrome checks")
	for _, n := range []int{121, 1221, 123, 7, 10} {
		p.KV(fmt.Sprintf("%d", n), "%t", isNumericPalindrome(n))
	}

	p.Section("Palindromic years")
	year := 1991
	var found []int
	for len(found) < 4 {
		year = nextPalindrome(year)
		found = append(found, year)
	}
	p.KV("after 1991", "%v", found)

	return nil
}
