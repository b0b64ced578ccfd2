package basics

import (
	"context"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

func runOperators(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	a, b := 17, 5
	p.Printf("a = %d, b = %d\n", a, b)

	p.Section("Arithmetic")
	p.KV("a + b", "%d", a+b)
	p.KV("a - b", "%d", a-b)
	p.KV("a * b", "%d", a*b)
	p.KV("a / b", "%d (integer division)", a/b)
	p.KV("a % b", "%d", a%b)
	p.KV("float64(a) / float64(b)", "%.2f", float64(a)/float64(b))

	p.Section("Comparison")
	p.KV("a == b", "%t", a == b)
	p.KV("a != b", "%t", a != b)
	p.KV("a > b", "%t", a > b)
	p.KV("a <= b", "%t", a <= b)

	p.Section("Logical operators short-circuit")
	calls := 0
	probe := func() bool {
		calls++
		return true
	}
	_ = false && probe()
	p.KV("false && probe()", "probe ran %d times", calls)
	_ = true || probe()
	p.KV("true || probe()", "probe ran %d times", calls)
	_ = true && probe()
	p.KV("true && probe()", "probe ran %d times", calls)

	p.Section("Compound assignment")
	n := 10
	n += 5
	p.KV("n += 5", "%d", n)
	n *= 2
	p.KV("n *= 2", "%d", n)
	n %= 7
	p.KV("n %= 7", "%d", n)
	n <<= 3
	p.KV("n <<= 3", "%d", n)

	return nil
}
