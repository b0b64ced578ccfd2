package slices

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// reversed returns a new slice with s's elements in reverse order.
func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// deltas returns the differences between adjacent elements of s.
func deltas(s []int) []int {
	if len(s) < 2 {
		return nil
	}
	out := make([]int, len(s)-1)
	for i := 1; i < len(s); i++ {
		out[i-1] = s[i] - s[i-1]
	}
	return out
}

func runTraverse(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	temps := []int{18, 21, 19, 24, 26, 22}
	p.Printf("temps = %v\n", temps)

	p.Section("Index loop")
	for i := 0; i < len(temps); i++ {
		p.Printf("  temps[%d] = %d\n", i, temps[i])
	}

	p.Section("Range with index and value")
	for i, v := range temps {
		p.Printf("  day %d: %d degrees\n", i+1, v)
	}

	p.Section("Value-only range for aggregates")
	sum := 0
	for _, v := range temps {
		sum += v
	}
	p.KV("mean", "%.1f", float64(sum)/float64(len(temps)))

	p.Section("Reverse order")
	p.KV("reversed(temps)", "%v", reversed(temps))

	p.Section("Adjacent pairs give day-to-day change")
	p.KV("deltas(temps)", "%v", deltas(temps))

	return nil
}
