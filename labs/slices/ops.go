package slices

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// insertAt returns s with v inserted before index i. The input slice may be
// grown in place, so callers use the return value.
func insertAt(s []int, i int, v int) []int {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removeAt returns s without the element at index i, preserving order.
func removeAt(s []int, i int) []int {
	return append(s[:i], s[i+1:]...)
}

// indexOf returns the first index of v in s, or -1 when absent.
func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// countOf returns how many times v occurs in s.
func countOf(s []int, v int) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}
	return n
}

func runOperations(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Append grows capacity in steps")
	var s []int
	lastCap := -1
	for i := 0; i < 17; i++ {
		s = append(s, i)
		if cap(s) != lastCap {
			p.Printf("  len %2d  cap %2d\n", len(s), cap(s))
			lastCap = cap(s)
		}
	}

	p.Section("Copy returns how much it moved")
	src := []int{10, 20, 30, 40}
	dst := make([]int, 2)
	n := copy(dst, src)
	p.KV("copy into len-2 dst", "moved %d, dst %v", n, dst)

	p.Section("Insert and remove")
	nums := []int{1, 2, 4, 5}
	nums = insertAt(nums, 2, 3)
	p.KV("insert 3 at index 2", "%v", nums)
	nums = removeAt(nums, 0)
	p.KV("remove index 0", "%v", nums)

	p.Section("Search and count")
	votes := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	p.KV("indexOf(votes, 5)", "%d", indexOf(votes, 5))
	p.KV("indexOf(votes, 7)", "%d", indexOf(votes, 7))
	for _, v := range []int{1, 5, 7} {
		p.KV(fmt.Sprintf("countOf(votes, %d)", v), "%d", countOf(votes, v))
	}

	return nil
}
