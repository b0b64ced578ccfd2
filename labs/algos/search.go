package algos

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// binarySearch returns the index of target in sorted s, or -1. Which index
// is found among duplicates is unspecified; use leftmost or rightmost for
// a guarantee.
func binarySearch(s []int, target int) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// binarySearchRecursive is the same split written on the call stack.
func binarySearchRecursive(s []int, target int) int {
	return searchBetween(s, target, 0, len(s)-1)
}

func searchBetween(s []int, target, lo, hi int) int {
	if lo > hi {
		return -1
	}
	mid := lo + (hi-lo)/2
	switch {
	case s[mid] == target:
		return mid
	case s[mid] < target:
		return searchBetween(s, target, mid+1, hi)
	default:
		return searchBetween(s, target, lo, mid-1)
	}
}

// leftmost returns the first index of target in sorted s, or -1. On a
// match it keeps narrowing to the left.
func leftmost(s []int, target int) int {
	lo, hi := 0, len(s)-1
	found := -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			found = mid
			hi = mid - 1
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return found
}

// rightmost returns the last index of target in sorted s, or -1.
func rightmost(s []int, target int) int {
	lo, hi := 0, len(s)-1
	found := -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			found = mid
			lo = mid + 1
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return found
}

// insertPosition returns the index where target would slot into sorted s,
// keeping it sorted. Equal elements insert to their left.
func insertPosition(s []int, target int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if s[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// intSqrt returns floor(sqrt(n)) by binary searching the answer space.
func intSqrt(n int) int {
	if n < 2 {
		return n
	}
	lo, hi := 1, n/2
	for lo <= hi {
		mid := lo + (hi-lo)/2
		sq := mid * mid
		switch {
		case sq == n:
			return mid
		case sq < n:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return hi
}

// searchRotated finds target in a sorted slice rotated at an unknown pivot.
// One half of every split is still sorted; that decides where to look.
func searchRotated(s []int, target int) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if s[mid] == target {
			return mid
		}
		if s[lo] <= s[mid] { // left half sorted
			if s[lo] <= target && target < s[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else { // right half sorted
			if s[mid] < target && target <= s[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}
	return -1
}

func runBinarySearch(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	sorted := []int{2, 3, 3, 3, 5, 8, 13, 21, 34, 55}
	p.Printf("sorted = %v\n", sorted)

	p.Section("Iterative and recursive agree")
	for _, target := range []int{13, 2, 55, 4} {
		p.KV(fmt.Sprintf("find %d", target), "iterative %d, recursive %d",
			binarySearch(sorted, target), binarySearchRecursive(sorted, target))
	}

	p.Section("Boundary variants handle duplicates")
	p.KV("leftmost(3)", "%d", leftmost(sorted, 3))
	p.KV("rightmost(3)", "%d", rightmost(sorted, 3))
	p.KV("occurrences of 3", "%d", rightmost(sorted, 3)-leftmost(sorted, 3)+1)

	p.Section("Insert position keeps order")
	for _, target := range []int{1, 4, 100} {
		p.KV(fmt.Sprintf("insertPosition(%d)", target), "%d", insertPosition(sorted, target))
	}

	p.Section("Binary search over an answer space")
	for _, n := range []int{0, 1, 15, 16, 17, 1000000} {
		p.KV(fmt.Sprintf("intSqrt(%d)", n), "%d", intSqrt(n))
	}

	p.Section("A rotated slice still searches in log time")
	rotated := []int{13, 21, 34, 55, 2, 3, 5, 8}
	p.Printf("  rotated = %v\n", rotated)
	for _, target := range []int{2, 55, 13, 7} {
		p.KV(fmt.Sprintf("searchRotated(%d)", target), "%d", searchRotated(rotated, target))
	}

	return nil
}
