package mathx

import (
	"bytes"
	"context"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/workbook-dev/workbook/labkit/lab"
)

func TestBMICategory(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{16.0, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25.0, "overweight"},
		{30.0, "obese"},
	}
	for _, c := range cases {
		if got := bmiCategory(c.v); got != c.want {
			t.Errorf("bmiCategory(%.1f): expected %s, got %s", c.v, c.want, got)
		}
	}
}

func TestBMI(t *testing.T) {
	got := bmi(70, 1.75)
	if math.Abs(got-22.857) > 0.01 {
		t.Errorf("bmi(70, 1.75): expected about 22.86, got %.3f", got)
	}
}

func TestQuadraticTwoRealRoots(t *testing.T) {
	r1, r2, kind, err := quadraticRoots(1, -5, 6)
	if err != nil {
		t.Fatalf("quadraticRoots error: %v", err)
	}
	if kind != "two real roots" {
		t.Errorf("expected two real roots, got %s", kind)
	}
	if real(r1) != 3 || real(r2) != 2 {
		t.Errorf("expected roots 3 and 2, got %v and %v", r1, r2)
	}
}

func TestQuadraticComplexRoots(t *testing.T) {
	r1, r2, kind, err := quadraticRoots(1, 0, 1)
	if err != nil {
		t.Fatalf("quadraticRoots error: %v", err)
	}
	if kind != "complex conjugates" {
		t.Errorf("expected complex conjugates, got %s", kind)
	}
	if imag(r1) != 1 || imag(r2) != -1 {
		t.Errorf("expected ±i, got %v and %v", r1, r2)
	}
}

func TestQuadraticResidualsVanish(t *testing.T) {
	r1, r2, _, err := quadraticRoots(2, 1, -15)
	if err != nil {
		t.Fatalf("quadraticRoots error: %v", err)
	}
	for _, r := range []complex128{r1, r2} {
		if res := cmplx.Abs(evalQuadratic(2, 1, -15, r)); res > 1e-9 {
			t.Errorf("residual at root %v: %g", r, res)
		}
	}
}

func TestQuadraticRejectsZeroA(t *testing.T) {
	if _, _, _, err := quadraticRoots(0, 1, 1); err == nil {
		t.Error("expected error for a = 0")
	}
}

func TestFactorialStrategiesAgree(t *testing.T) {
	memo := newMemoFactorial()
	for n := 0; n <= maxFactorial; n++ {
		it := factorialIterative(n)
		rec := factorialRecursive(n)
		mem := memo.of(n)
		if it != rec || it != mem {
			t.Errorf("factorial(%d): iterative %d, recursive %d, memoized %d", n, it, rec, mem)
		}
	}
	if got := factorialIterative(20); got != 2432902008176640000 {
		t.Errorf("20!: expected 2432902008176640000, got %d", got)
	}
}

func TestStirlingIsClose(t *testing.T) {
	exact := float64(factorialIterative(10))
	approx := stirling(10)
	relErr := math.Abs(exact-approx) / exact
	if relErr > 0.01 {
		t.Errorf("Stirling(10) relative error %.4f, expected under 1%%", relErr)
	}
}

func TestPermutationsAndCombinations(t *testing.T) {
	if got := permutations(8, 3); got != 336 {
		t.Errorf("P(8,3): expected 336, got %d", got)
	}
	if got := combinations(49, 6); got != 13983816 {
		t.Errorf("C(49,6): expected 13983816, got %d", got)
	}
	if got := combinations(20, 0); got != 1 {
		t.Errorf("C(20,0): expected 1, got %d", got)
	}
	if got := combinations(7, 7); got != 1 {
		t.Errorf("C(7,7): expected 1, got %d", got)
	}
}

func TestPrimeCheckersAgree(t *testing.T) {
	for n := -5; n <= 500; n++ {
		basic := isPrimeBasic(n)
		sqrt := isPrimeSqrt(n)
		wheel := isPrime(n)
		if basic != sqrt || basic != wheel {
			t.Errorf("n = %d: basic %t, sqrt %t, wheel %t", n, basic, sqrt, wheel)
		}
	}
}

func TestSieve(t *testing.T) {
	primes := sieve(30)
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if len(primes) != len(want) {
		t.Fatalf("expected %d primes below 30, got %d", len(want), len(primes))
	}
	for i, w := range want {
		if primes[i] != w {
			t.Errorf("position %d: expected %d, got %d", i, w, primes[i])
		}
	}
	if got := len(sieve(10000)); got != 1229 {
		t.Errorf("expected 1229 primes below 10000, got %d", got)
	}
}

func TestDigitSum(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{7, 7},
		{12345, 15},
		{-58, 13},
		{1000000, 1},
	}
	for _, c := range cases {
		if got := digitSum(c.n); got != c.want {
			t.Errorf("digitSum(%d): expected %d, got %d", c.n, c.want, got)
		}
		if got := digitSumRecursive(c.n); got != c.want {
			t.Errorf("digitSumRecursive(%d): expected %d, got %d", c.n, c.want, got)
		}
	}
}

func TestDigitalRoot(t *testing.T) {
	for _, n := range []int{0, 5, 38, 12345, 999999999} {
		if it, closed := digitalRoot(n), digitalRootClosed(n); it != closed {
			t.Errorf("digitalRoot(%d): iterated %d, closed form %d", n, it, closed)
		}
	}
}

func TestReverseInt(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{12345, 54321},
		{120, 21},
		{7, 7},
		{-456, -654},
		{0, 0},
	}
	for _, c := range cases {
		if got := reverseInt(c.n); got != c.want {
			t.Errorf("reverseInt(%d): expected %d, got %d", c.n, c.want, got)
		}
	}
}

func TestIsNumericPalindrome(t *testing.T) {
	for _, n := range []int{121, 1221, 7, 0} {
		if !isNumericPalindrome(n) {
			t.Errorf("expected %d to be a palindrome", n)
		}
	}
	for _, n := range []int{123, 10, -121} {
		if isNumericPalindrome(n) {
			t.Errorf("expected %d not to be a palindrome", n)
		}
	}
}

func TestNextPalindrome(t *testing.T) {
	if got := nextPalindrome(1991); got != 2002 {
		t.Errorf("expected 2002, got %d", got)
	}
	if got := nextPalindrome(121); got != 131 {
		t.Errorf("expected 131, got %d", got)
	}
}

func TestMultiplicationGrid(t *testing.T) {
	grid := multiplicationGrid(9)
	if !strings.Contains(grid, "81") {
		t.Error("expected 9x9 grid to contain 81")
	}
	lines := strings.Count(grid, "\n")
	// header + rule + 9 rows
	if lines != 11 {
		t.Errorf("expected 11 lines, got %d", lines)
	}
}

func TestLargestOfThree(t *testing.T) {
	cases := []struct {
		a, b, c int
		want    int
	}{
		{3, 7, 5, 7},
		{9, 2, 2, 9},
		{1, 2, 3, 3},
		{4, 4, 4, 4},
		{-1, -9, -3, -1},
	}
	for _, cs := range cases {
		if got := largestOfThree(cs.a, cs.b, cs.c); got != cs.want {
			t.Errorf("largestOfThree(%d, %d, %d): expected %d, got %d",
				cs.a, cs.b, cs.c, cs.want, got)
		}
	}
}

func TestSortThree(t *testing.T) {
	perms := [][3]int{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	for _, pm := range perms {
		x, y, z := sortThree(pm[0], pm[1], pm[2])
		if x != 1 || y != 2 || z != 3 {
			t.Errorf("sortThree(%v): got %d, %d, %d", pm, x, y, z)
		}
	}
	x, y, z := sortThree(5, 5, 1)
	if x != 1 || y != 5 || z != 5 {
		t.Errorf("sortThree(5, 5, 1): got %d, %d, %d", x, y, z)
	}
}

func TestTemperatureRoundTrip(t *testing.T) {
	for _, c := range []float64{-40, 0, 36.6, 100} {
		back := fahrenheitToCelsius(celsiusToFahrenheit(c))
		if math.Abs(back-c) > 1e-9 {
			t.Errorf("round trip for %.1f C drifted to %.9f", c, back)
		}
	}
	if got := celsiusToFahrenheit(-40); got != -40 {
		t.Errorf("expected -40 C = -40 F, got %.1f", got)
	}
}

func TestLengthConversions(t *testing.T) {
	if got := kmToMiles(42.195); math.Abs(got-26.2187) > 0.01 {
		t.Errorf("marathon in miles: expected about 26.22, got %.4f", got)
	}
	if got := feetToMeters(metersToFeet(100)); math.Abs(got-100) > 1e-9 {
		t.Errorf("length round trip drifted to %.9f", got)
	}
}

func TestSummationClosedForms(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 1000} {
		if loop, closed := sumTo(n), sumToClosed(n); loop != closed {
			t.Errorf("sumTo(%d): loop %d, closed %d", n, loop, closed)
		}
		if loop, closed := sumSquares(n), sumSquaresClosed(n); loop != closed {
			t.Errorf("sumSquares(%d): loop %d, closed %d", n, loop, closed)
		}
		if loop, closed := sumCubes(n), sumCubesClosed(n); loop != closed {
			t.Errorf("sumCubes(%d): loop %d, closed %d", n, loop, closed)
		}
	}
}

func TestLabsRun(t *testing.T) {
	for _, l := range Labs() {
		t.Run(l.Slug, func(t *testing.T) {
			var buf bytes.Buffer
			env := lab.NewEnv(&buf, t.TempDir())
			if err := l.Run(context.Background(), env); err != nil {
				t.Fatalf("%s: %v", l.Ref(), err)
			}
			if buf.Len() == 0 {
				t.Errorf("%s produced no output", l.Ref())
			}
		})
	}
}
