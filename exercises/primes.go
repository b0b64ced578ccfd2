//go:build ignore

// Prime hunting without the labs' scaffolding. Exercises: make isPrime use
// the 6k±1 wheel, then print twin primes instead.
package main

import (
	"fmt"
	"math"
)

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	limit := int(math.Sqrt(float64(n)))
	for d := 2; d <= limit; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func main() {
	var primes []int
	for n := 2; len(primes) < 20; n++ {
		if isPrime(n) {
			primes = append(primes, n)
		}
	}
	fmt.Println("first 20 primes:", primes)

	count := 0
	for n := 2; n < 1000; n++ {
		if isPrime(n) {
			count++
		}
	}
	fmt.Printf("primes below 1000: %d\n", count)
}
