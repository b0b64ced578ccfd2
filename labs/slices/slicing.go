package slices

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// every returns each step-th element of s, starting from index 0.
func every(s []int, step int) []int {
	if step <= 0 {
		return nil
	}
	out := make([]int, 0, (len(s)+step-1)/step)
	for i := 0; i < len(s); i += step {
		out = append(out, s[i])
	}
	return out
}

// clone returns an independent copy of s.
func clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func runSlicing(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	base := []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}
	p.Printf("base = %v\n", base)

	p.Section("Half-open ranges")
	p.KV("base[2:5]", "%v", base[2:5])
	p.KV("base[:3]", "%v", base[:3])
	p.KV("base[7:]", "%v", base[7:])
	p.KV("base[:]", "%v", base[:])
	p.KV("base[4:4]", "%v (empty)", base[4:4])

	p.Section("Stepped selection needs a loop")
	p.KV("every(base, 2)", "%v", every(base, 2))
	p.KV("every(base, 3)", "%v", every(base, 3))

	p.Section("A subslice is a view, not a copy")
	view := base[2:5]
	view[0] = -999
	p.KV("after view[0] = -999", "base[2] is %d", base[2])
	base[2] = 20 // restore

	p.Section("Clone when you need independence")
	cp := clone(base[2:5])
	cp[0] = -999
	p.KV("after cp[0] = -999", "base[2] is still %d", base[2])

	p.Section("Append onto a full view reallocates")
	head := base[:3]
	p.KV("head len/cap", "%d/%d (cap runs to base's end)", len(head), cap(head))
	grown := append(clone(head), 999)
	p.KV("safe append via clone", "%v, base[3] is %d", grown, base[3])

	return nil
}
