package slices

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// concat joins the given slices into one freshly allocated slice.
func concat(parts ...[]int) []int {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]int, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// interleave alternates elements of a and b, then appends the tail of the
// longer input.
func interleave(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i := 0
	for ; i < len(a) && i < len(b); i++ {
		out = append(out, a[i], b[i])
	}
	out = append(out, a[i:]...)
	out = append(out, b[i:]...)
	return out
}

// pair couples a number with its label, as produced by zip.
type pair struct {
	N int
	S string
}

// zip pairs corresponding elements, stopping at the shorter input.
func zip(nums []int, labels []string) []pair {
	n := len(nums)
	if len(labels) < n {
		n = len(labels)
	}
	out := make([]pair, n)
	for i := 0; i < n; i++ {
		out[i] = pair{N: nums[i], S: labels[i]}
	}
	return out
}

// repeatSlice returns s repeated n times.
func repeatSlice(s []int, n int) []int {
	out := make([]int, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return out
}

func runJoin(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	a := []int{1, 2, 3}
	b := []int{10, 20}

	p.Section("Concatenation allocates once")
	p.KV("concat(a, b, a)", "%v", concat(a, b, a))

	p.Section("Interleaving keeps the longer tail")
	p.KV("interleave(a, b)", "%v", interleave(a, b))
	p.KV("interleave(b, a)", "%v", interleave(b, a))

	p.Section("Zip stops at the shorter input")
	medals := zip([]int{1, 2, 3, 4}, []string{"gold", "silver", "bronze"})
	for _, m := range medals {
		p.KV(m.S, "place %d", m.N)
	}

	p.Section("Replication")
	p.KV("repeatSlice({0, 1}, 3)", "%v", repeatSlice([]int{0, 1}, 3))
	p.KV("repeatSlice(a, 0)", "%v (empty, not nil)", repeatSlice(a, 0))

	return nil
}
