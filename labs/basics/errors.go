package basics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// ErrEmptyName is returned by greet when the name is blank.
var ErrEmptyName = errors.New("empty name")

// greet returns a greeting for name, or ErrEmptyName when it is blank.
func greet(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	return "Hello, " + name + "!", nil
}

// parsePositive parses s as a positive integer, wrapping the strconv error
// so callers still see the offending input.
func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("parsing %q: value must be positive", s)
	}
	return n, nil
}

// safeDivide divides a by b, converting the division-by-zero panic into an
// error. Real code checks b first; this shows the recover mechanics.
func safeDivide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return a / b, nil
}

func runErrorValues(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Errors are ordinary return values")
	if _, err := greet(""); err != nil {
		p.KV("greet(\"\")", "error: %v", err)
	}
	msg, _ := greet("gopher")
	p.KV("greet(\"gopher\")", "%s", msg)

	p.Section("Sentinel comparison with errors.Is")
	_, err := greet("   ")
	p.KV("errors.Is(err, ErrEmptyName)", "%t", errors.Is(err, ErrEmptyName))

	p.Section("Wrapping keeps the cause reachable")
	_, err = parsePositive("twelve")
	p.KV("parsePositive(\"twelve\")", "%v", err)
	var numErr *strconv.NumError
	p.KV("errors.As finds *NumError", "%t", errors.As(err, &numErr))
	_, err = parsePositive("-3")
	p.KV("parsePositive(\"-3\")", "%v", err)

	p.Section("Recover converts a panic into an error")
	if _, err := safeDivide(10, 0); err != nil {
		p.KV("safeDivide(10, 0)", "%v", err)
	}
	q, _ := safeDivide(10, 2)
	p.KV("safeDivide(10, 2)", "%d", q)

	return nil
}
