package scicomp

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

var invPhi = (math.Sqrt(5) - 1) / 2

// goldenSection finds the minimum of a unimodal f on [a, b] by shrinking
// the bracket at the golden ratio until it is narrower than tol.
func goldenSection(f func(float64) float64, a, b, tol float64) float64 {
	for b-a > tol {
		c := b - (b-a)*invPhi
		d := a + (b-a)*invPhi
		if f(c) < f(d) {
			b = d
		} else {
			a = c
		}
	}
	return (a + b) / 2
}

// bisect finds a root of f on [a, b]. The endpoints must bracket the root,
// meaning f(a) and f(b) have opposite signs.
func bisect(f func(float64) float64, a, b, tol float64) (float64, error) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, fmt.Errorf("bisect: f(%g) and f(%g) have the same sign", a, b)
	}
	for b-a > tol {
		mid := (a + b) / 2
		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return (a + b) / 2, nil
}

// rosenbrock is the classic banana-valley test function. Its global
// minimum is 0 at (1, 1), at the end of a long curved valley that makes
// naive descent crawl.
func rosenbrock(x []float64) float64 {
	return 100*(x[1]-x[0]*x[0])*(x[1]-x[0]*x[0]) + (1-x[0])*(1-x[0])
}

func rosenbrockGrad(grad, x []float64) {
	grad[0] = -400*x[0]*(x[1]-x[0]*x[0]) - 2*(1-x[0])
	grad[1] = 200 * (x[1] - x[0]*x[0])
}

func runOptimize(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Golden-section search in 1-D")
	parabola := func(x float64) float64 { return (x - 2) * (x - 2) }
	x := goldenSection(parabola, 0, 5, 1e-8)
	p.KV("min of (x-2)^2 on [0,5]", "x = %.6f (exact 2)", x)
	x = goldenSection(math.Cos, 2, 4, 1e-8)
	p.KV("min of cos on [2,4]", "x = %.6f (exact pi = %.6f)", x, math.Pi)

	p.Section("Nelder-Mead on the Rosenbrock valley")
	start := []float64{-1.2, 1}
	nm, err := optimize.Minimize(optimize.Problem{Func: rosenbrock}, start, nil, &optimize.NelderMead{})
	if err != nil {
		return fmt.Errorf("nelder-mead: %w", err)
	}
	p.KV("start", "(%.1f, %.1f)", start[0], start[1])
	p.KV("found", "(%.4f, %.4f)", nm.X[0], nm.X[1])
	p.KV("f at minimum", "%.2e (exact 0)", nm.F)
	p.KV("function evaluations", "%d", nm.Stats.FuncEvaluations)

	p.Section("Same valley, with the gradient: BFGS")
	prob := optimize.Problem{Func: rosenbrock, Grad: rosenbrockGrad}
	bf, err := optimize.Minimize(prob, start, nil, &optimize.BFGS{})
	if err != nil {
		return fmt.Errorf("bfgs: %w", err)
	}
	p.KV("found", "(%.6f, %.6f)", bf.X[0], bf.X[1])
	p.KV("f at minimum", "%.2e", bf.F)
	p.KV("function evaluations", "%d", bf.Stats.FuncEvaluations)
	p.KV("gradient evaluations", "%d", bf.Stats.GradEvaluations)

	p.Section("Bisection root finding")
	cubic := func(x float64) float64 { return x*x*x - x - 2 }
	root, err := bisect(cubic, 1, 2, 1e-12)
	if err != nil {
		return err
	}
	p.KV("root of x^3-x-2 on [1,2]", "%.10f", root)
	p.KV("f at root", "%.2e", cubic(root))
	root, err = bisect(math.Cos, 1, 2, 1e-12)
	if err != nil {
		return err
	}
	p.KV("root of cos on [1,2]", "%.10f (pi/2 = %.10f)", root, math.Pi/2)
	if _, err := bisect(parabola, 3, 5, 1e-12); err != nil {
		p.KV("no sign change on [3,5]", "%v", err)
	}

	return nil
}
