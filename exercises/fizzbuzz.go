//go:build ignore

// FizzBuzz, the classic warm-up. Try changing the rules map or the limit.
package main

import "fmt"

func fizzbuzz(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return fmt.Sprint(n)
	}
}

func main() {
	for n := 1; n <= 30; n++ {
		fmt.Println(fizzbuzz(n))
	}
}
