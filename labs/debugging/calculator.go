package debugging

import (
	"context"
	"errors"
	"fmt"

	"github.com/stretchr/testify/assert"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// calculator is the classic first target for unit tests: three methods,
// two of which can fail.
type calculator struct{}

var errDivideByZero = errors.New("cannot divide by zero")

func (calculator) Add(a, b float64) float64 { return a + b }

func (calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func (calculator) Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of %d is undefined", n)
	}
	out := 1
	for i := 2; i <= n; i++ {
		out *= i
	}
	return out, nil
}

// probe satisfies assert.TestingT, so testify assertions can run inside
// a lesson instead of a test. It counts failures rather than printing
// them; the formatted message embeds caller file paths.
type probe struct {
	failed int
}

func (p *probe) Errorf(format string, args ...any) {
	p.failed++
}

func runCalculator(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)
	var calc calculator
	rec := &probe{}

	p.Section("Checks that hold")
	p.KV("add(2, 3) == 5", "%t", assert.Equal(rec, 5.0, calc.Add(2, 3)))
	p.KV("add(-1, 1) == 0", "%t", assert.Equal(rec, 0.0, calc.Add(-1, 1)))

	half, err := calc.Divide(5, 2)
	p.KV("divide(5, 2)", "%v", half)
	p.KV("no error, equals 2.5", "%t",
		assert.NoError(rec, err) && assert.Equal(rec, 2.5, half))

	fact, err := calc.Factorial(5)
	p.KV("factorial(5)", "%d", fact)
	p.KV("no error, equals 120", "%t",
		assert.NoError(rec, err) && assert.Equal(rec, 120, fact))

	p.Section("Checks on the error paths")
	_, err = calc.Divide(5, 0)
	p.KV("divide(5, 0) error", "%v", err)
	p.KV("matches the sentinel", "%t", assert.ErrorIs(rec, err, errDivideByZero))

	_, err = calc.Factorial(-1)
	p.KV("factorial(-1) error", "%v", err)
	p.KV("an error, as required", "%t", assert.Error(rec, err))

	p.Section("A check that fails")
	p.KV("failures so far", "%d", rec.failed)
	p.KV("add(2, 3) == 6", "%t", assert.Equal(rec, 6.0, calc.Add(2, 3)))
	p.KV("failures recorded", "%d", rec.failed)
	p.Println("In a real test the failure carries the expected and actual")
	p.Println("values plus the call site; here the collector just counts it.")

	return nil
}
