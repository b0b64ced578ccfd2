package debugging

import (
	"context"
	"fmt"
	"io"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// safeIndex turns the runtime's out-of-range panic into an error the
// caller can handle. Recover only works from a deferred function.
func safeIndex(xs []int, i int) (v int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return xs[i], nil
}

// safeDivide does the same for integer division, which panics on a zero
// divisor instead of returning an error like its float cousin.
func safeDivide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return a / b, nil
}

// unwindDemo panics three defers deep and writes a line from each defer
// as the stack unwinds, so the order is visible.
func unwindDemo(out io.Writer) (err error) {
	defer fmt.Fprintln(out, "  deferred first, runs last: outer cleanup still happened")
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered mid-unwind: %v", r)
		}
	}()
	defer fmt.Fprintln(out, "  deferred last, runs first: before recover sees the panic")
	panic("something broke at depth 3")
}

func runRecover(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("A panic is a crash unless somebody recovers")
	xs := []int{10, 20, 30}
	v, err := safeIndex(xs, 1)
	p.KV("safeIndex(xs, 1)", "%d, err=%v", v, err)
	_, err = safeIndex(xs, 7)
	p.KV("safeIndex(xs, 7)", "%v", err)

	p.Section("Deferred calls run while the stack unwinds")
	err = unwindDemo(env.Out)
	p.KV("returned as", "%v", err)

	p.Section("Errors for expected failures, panics for bugs")
	_, err = calculator{}.Divide(1, 0)
	p.KV("float divide by zero", "%v (an error, by contract)", err)
	_, err = safeDivide(1, 0)
	p.KV("int divide by zero", "%v", err)
	p.Println("A caller can forget to check an error; it cannot ignore a")
	p.Println("panic. Reserve panics for states the code promised were")
	p.Println("impossible, and let errors carry everything routine.")

	return nil
}
