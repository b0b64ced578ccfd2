package mathx

import (
	"context"
	"fmt"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// isPrimeBasic tests every candidate divisor below n.
func isPrimeBasic(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// isPrimeSqrt stops at the square root: a composite always has a divisor
// no larger than that.
func isPrimeSqrt(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// isPrime handles 2 and 3, rejects their multiples, then tests only the
// 6k±1 candidates up to the square root.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for d := 5; d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

// sieve returns all primes below limit with the Sieve of Eratosthenes.
func sieve(limit int) []int {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit)
	for i := 2; i*i < limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	var primes []int
	for i := 2; i < limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

func runPrimes(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Three checkers, one verdict")
	rows := make([][]string, 0, 8)
	for _, n := range []int{1, 2, 9, 17, 91, 97, 561, 7919} {
		rows = append(rows, []string{
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%t", isPrimeBasic(n)),
			fmt.Sprintf("%t", isPrimeSqrt(n)),
			fmt.Sprintf("%t", isPrime(n)),
		})
	}
	p.Table([]string{"N", "BASIC", "SQRT", "WHEEL"}, rows)

	p.Section("Work done per strategy for n = 10007")
	n := 10007
	tests := 0
	for d := 2; d < n; d++ {
		tests++
		if n%d == 0 {
			break
		}
	}
	p.KV("every divisor below n", "%d tests", tests)
	tests = 0
	for d := 2; d*d <= n; d++ {
		tests++
		if n%d == 0 {
			break
		}
	}
	p.KV("stop at sqrt(n)", "%d tests", tests)
	tests = 2 // the 2 and 3 checks
	for d := 5; d*d <= n; d += 6 {
		tests += 2
	}
	p.KV("6k±1 wheel", "%d tests", tests)

	p.Section("Sieve of Eratosthenes below 100")
	p.Printf("  %v\n", sieve(100))

	p.Section("Prime counting")
	for _, limit := range []int{100, 1000, 10000} {
		p.KV(fmt.Sprintf("primes below %d", limit), "%d", len(sieve(limit)))
	}

	return nil
}
