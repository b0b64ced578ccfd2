package slices

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// contains reports whether v occurs in s.
func contains(s []int, v int) bool {
	return indexOf(s, v) >= 0
}

// allMatch reports whether every element of s satisfies pred. An empty
// slice vacuously matches.
func allMatch(s []int, pred func(int) bool) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// anyMatch reports whether at least one element of s satisfies pred.
func anyMatch(s []int, pred func(int) bool) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

func runValidate(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	scores := []int{88, 92, 79, 95, 61}
	p.Printf("scores = %v\n", scores)

	p.Section("Membership")
	p.KV("contains(scores, 92)", "%t", contains(scores, 92))
	p.KV("contains(scores, 100)", "%t", contains(scores, 100))

	p.Section("Every element in range")
	inRange := func(v int) bool { return v >= 0 && v <= 100 }
	passing := func(v int) bool { return v >= 65 }
	p.KV("all in 0..100", "%t", allMatch(scores, inRange))
	p.KV("all passing (>= 65)", "%t", allMatch(scores, passing))

	p.Section("At least one element")
	p.KV("any score of 95+", "%t", anyMatch(scores, func(v int) bool { return v >= 95 }))
	p.KV("any negative", "%t", anyMatch(scores, func(v int) bool { return v < 0 }))

	p.Section("Empty input is vacuously valid")
	p.KV("allMatch(nil, passing)", "%t", allMatch(nil, passing))
	p.KV("anyMatch(nil, passing)", "%t", anyMatch(nil, passing))

	return nil
}
