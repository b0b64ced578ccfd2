package algos

import (
	"context"
	"fmt"
	"sort"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// sortStats counts the work a sorting run performed.
type sortStats struct {
	Comparisons int
	Swaps       int
}

// bubbleSort sorts s in place, stopping early once a pass makes no swaps.
func bubbleSort(s []int) sortStats {
	var st sortStats
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			st.Comparisons++
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				st.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return st
}

// selectionSort sorts s in place with at most one swap per position.
func selectionSort(s []int) sortStats {
	var st sortStats
	for i := 0; i < len(s)-1; i++ {
		min := i
		for j := i + 1; j < len(s); j++ {
			st.Comparisons++
			if s[j] < s[min] {
				min = j
			}
		}
		if min != i {
			s[i], s[min] = s[min], s[i]
			st.Swaps++
		}
	}
	return st
}

// insertionSort sorts s in place by shifting elements right until each new
// value's slot opens up. Shifts count as swaps.
func insertionSort(s []int) sortStats {
	var st sortStats
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 {
			st.Comparisons++
			if s[j] <= v {
				break
			}
			s[j+1] = s[j]
			st.Swaps++
			j--
		}
		s[j+1] = v
	}
	return st
}

// mergeSort returns a sorted copy of s. Element moves count as swaps.
func mergeSort(s []int) ([]int, sortStats) {
	var st sortStats
	out := mergeSortCounted(s, &st)
	return out, st
}

func mergeSortCounted(s []int, st *sortStats) []int {
	if len(s) <= 1 {
		out := make([]int, len(s))
		copy(out, s)
		return out
	}
	mid := len(s) / 2
	left := mergeSortCounted(s[:mid], st)
	right := mergeSortCounted(s[mid:], st)

	out := make([]int, 0, len(s))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		st.Comparisons++
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
		st.Swaps++
	}
	for ; i < len(left); i++ {
		out = append(out, left[i])
		st.Swaps++
	}
	for ; j < len(right); j++ {
		out = append(out, right[j])
		st.Swaps++
	}
	return out
}

// quickSort sorts s in place using the Lomuto partition with the last
// element as pivot.
func quickSort(s []int) sortStats {
	var st sortStats
	quickSortRange(s, 0, len(s)-1, &st)
	return st
}

func quickSortRange(s []int, lo, hi int, st *sortStats) {
	if lo >= hi {
		return
	}
	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		st.Comparisons++
		if s[j] < pivot {
			if i != j {
				s[i], s[j] = s[j], s[i]
				st.Swaps++
			}
			i++
		}
	}
	if i != hi {
		s[i], s[hi] = s[hi], s[i]
		st.Swaps++
	}
	quickSortRange(s, lo, i-1, st)
	quickSortRange(s, i+1, hi, st)
}

// isSorted reports whether s is in ascending order.
func isSorted(s []int) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

func runSorting(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	input := []int{29, 10, 14, 37, 13, 25, 2, 41, 8, 33, 19, 5}
	p.Printf("input = %v\n", input)

	cloneInput := func() []int {
		out := make([]int, len(input))
		copy(out, input)
		return out
	}

	p.Section("The same input through five sorts")
	rows := [][]string{}

	s := cloneInput()
	st := bubbleSort(s)
	rows = append(rows, []string{"bubble", fmt.Sprintf("%d", st.Comparisons), fmt.Sprintf("%d", st.Swaps), fmt.Sprintf("%t", isSorted(s))})

	s = cloneInput()
	st = selectionSort(s)
	rows = append(rows, []string{"selection", fmt.Sprintf("%d", st.Comparisons), fmt.Sprintf("%d", st.Swaps), fmt.Sprintf("%t", isSorted(s))})

	s = cloneInput()
	st = insertionSort(s)
	rows = append(rows, []string{"insertion", fmt.Sprintf("%d", st.Comparisons), fmt.Sprintf("%d", st.Swaps), fmt.Sprintf("%t", isSorted(s))})

	merged, st := mergeSort(cloneInput())
	rows = append(rows, []string{"merge", fmt.Sprintf("%d", st.Comparisons), fmt.Sprintf("%d", st.Swaps), fmt.Sprintf("%t", isSorted(merged))})

	s = cloneInput()
	st = quickSort(s)
	rows = append(rows, []string{"quick", fmt.Sprintf("%d", st.Comparisons), fmt.Sprintf("%d", st.Swaps), fmt.Sprintf("%t", isSorted(s))})

	p.Table([]string{"SORT", "COMPARES", "SWAPS", "SORTED"}, rows)
	p.Printf("  sorted: %v\n", merged)

	p.Section("Sorted input is the easy case")
	presorted := merged
	s = append([]int(nil), presorted...)
	st = bubbleSort(s)
	p.KV("bubble on sorted input", "%d comparisons, %d swaps (one pass)", st.Comparisons, st.Swaps)
	s = append([]int(nil), presorted...)
	st = insertionSort(s)
	p.KV("insertion on sorted input", "%d comparisons, %d swaps", st.Comparisons, st.Swaps)

	p.Section("Real code reaches for the standard library")
	s = cloneInput()
	sort.Ints(s)
	p.KV("sort.Ints", "%v", s)

	return nil
}
