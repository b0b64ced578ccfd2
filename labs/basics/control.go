package basics

import (
	"context"
	"fmt"
	"sort"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// gradeFor maps a score on the 0-100 scale to a letter grade.
func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// isLeapYear reports whether year is a leap year in the Gregorian calendar.
func isLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

func runControlFlow(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("If with an init statement")
	if n := len("workbook"); n > 5 {
		p.Printf("  the name has %d letters, more than 5\n", n)
	}

	p.Section("Tagless switch as an else-if ladder")
	for _, score := range []int{95, 83, 71, 64, 12} {
		p.KV(fmt.Sprintf("score %d", score), "grade %s", gradeFor(score))
	}

	p.Section("Leap years need all three rules")
	for _, y := range []int{1900, 2000, 2023, 2024} {
		p.KV(fmt.Sprintf("year %d", y), "%t", isLeapYear(y))
	}

	p.Section("Loop forms")
	sum := 0
	for i := 1; i <= 5; i++ {
		sum += i
	}
	p.KV("counted: sum 1..5", "%d", sum)

	n, steps := 64, 0
	for n > 1 {
		n /= 2
		steps++
	}
	p.KV("condition-only: halve 64", "%d steps to reach 1", steps)

	letters := ""
	for _, r := range "abc" {
		letters += string(r) + "."
	}
	p.KV("range over string", "%s", letters)

	p.Section("Break and continue")
	var odds []int
	for i := 0; ; i++ {
		if len(odds) == 4 {
			break
		}
		if i%2 == 0 {
			continue
		}
		odds = append(odds, i)
	}
	p.KV("first four odd numbers", "%v", odds)

	p.Section("Map iteration is unordered, so sort the keys")
	ages := map[string]int{"ada": 36, "grace": 45, "alan": 41}
	names := make([]string, 0, len(ages))
	for name := range ages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p.KV(name, "%d", ages[name])
	}

	return nil
}
