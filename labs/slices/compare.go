package slices

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// equalInts reports whether a and b hold the same values in the same order.
// A nil slice and an empty slice compare equal.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameElements reports whether a and b hold the same values ignoring order.
// Multiplicity matters: {1, 1, 2} differs from {1, 2, 2}.
func sameElements(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func runCompare(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	a := []int{1, 2, 3}
	b := []int{1, 2, 3}
	c := []int{3, 2, 1}

	p.Section("Slices cannot use ==, compare element-wise")
	p.KV("equalInts(a, b)", "%t", equalInts(a, b))
	p.KV("equalInts(a, c)", "%t", equalInts(a, c))

	p.Section("Order-insensitive comparison counts elements")
	p.KV("sameElements(a, c)", "%t", sameElements(a, c))
	p.KV("sameElements({1,1,2}, {1,2,2})", "%t", sameElements([]int{1, 1, 2}, []int{1, 2, 2}))

	p.Section("Nil and empty behave alike here")
	var zero []int
	empty := []int{}
	p.KV("zero == nil", "%t", zero == nil)
	p.KV("empty == nil", "%t", empty == nil)
	p.KV("equalInts(zero, empty)", "%t", equalInts(zero, empty))

	p.Section("Prefix is not equality")
	p.KV("equalInts({1,2}, {1,2,3})", "%t", equalInts([]int{1, 2}, a))

	return nil
}
