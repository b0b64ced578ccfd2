package mathx

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// quadraticRoots solves ax² + bx + c = 0 over the complex numbers and names
// the root structure the discriminant produced.
func quadraticRoots(a, b, c float64) (r1, r2 complex128, kind string, err error) {
	if a == 0 {
		return 0, 0, "", fmt.Errorf("not quadratic: a must be non-zero")
	}

	disc := b*b - 4*a*c
	switch {
	case disc > 0:
		s := math.Sqrt(disc)
		return complex((-b+s)/(2*a), 0), complex((-b-s)/(2*a), 0), "two real roots", nil
	case disc == 0:
		r := complex(-b/(2*a), 0)
		return r, r, "one repeated root", nil
	default:
		s := math.Sqrt(-disc)
		return complex(-b/(2*a), s/(2*a)), complex(-b/(2*a), -s/(2*a)), "complex conjugates", nil
	}
}

// evalQuadratic computes ax² + bx + c at a complex x, for verification.
func evalQuadratic(a, b, c float64, x complex128) complex128 {
	return complex(a, 0)*x*x + complex(b, 0)*x + complex(c, 0)
}

func runQuadratic(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	cases := []struct {
		a, b, c float64
	}{
		{1, -5, 6},  // (x-2)(x-3)
		{1, -4, 4},  // (x-2)^2
		{1, 0, 1},   // x^2 + 1
		{2, 1, -15}, // non-monic
	}

	for _, cs := range cases {
		p.Section(fmt.Sprintf("%gx² %+gx %+g = 0", cs.a, cs.b, cs.c))
		r1, r2, kind, err := quadraticRoots(cs.a, cs.b, cs.c)
		if err != nil {
			return err
		}
		p.KV("discriminant", "%g", cs.b*cs.b-4*cs.a*cs.c)
		p.KV("kind", "%s", kind)
		p.KV("x1", "%v", r1)
		p.KV("x2", "%v", r2)

		// Substitute back: both residuals should vanish.
		res1 := cmplx.Abs(evalQuadratic(cs.a, cs.b, cs.c, r1))
		res2 := cmplx.Abs(evalQuadratic(cs.a, cs.b, cs.c, r2))
		p.KV("residuals", "%.2e, %.2e", res1, res2)
	}

	p.Section("Degenerate input is rejected")
	if _, _, _, err := quadraticRoots(0, 2, 1); err != nil {
		p.KV("a = 0", "error: %v", err)
	}

	return nil
}
