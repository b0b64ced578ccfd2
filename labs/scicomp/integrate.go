package scicomp

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// sampleFunc evaluates f on n evenly spaced points across [a, b].
func sampleFunc(f func(float64) float64, a, b float64, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	floats.Span(xs, a, b)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = f(x)
	}
	return xs, ys
}

// rk4Solve integrates y' = f(t, y) from (t0, y0) with a fixed step h,
// returning steps+1 values including the initial one.
func rk4Solve(f func(t, y float64) float64, t0, y0, h float64, steps int) []float64 {
	ys := make([]float64, steps+1)
	ys[0] = y0
	t, y := t0, y0
	for i := 1; i <= steps; i++ {
		k1 := f(t, y)
		k2 := f(t+h/2, y+h*k1/2)
		k3 := f(t+h/2, y+h*k2/2)
		k4 := f(t+h, y+h*k3)
		y += h * (k1 + 2*k2 + 2*k3 + k4) / 6
		t += h
		ys[i] = y
	}
	return ys
}

func runIntegrate(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Trapezoid and Simpson on a grid")
	xs, ys := sampleFunc(math.Sin, 0, math.Pi, 101)
	trap := integrate.Trapezoidal(xs, ys)
	simp := integrate.Simpsons(xs, ys)
	p.KV("integral of sin on [0,pi]", "exact 2")
	p.KV("trapezoid, 101 points", "%.8f (err %.1e)", trap, math.Abs(trap-2))
	p.KV("Simpson, same points", "%.8f (err %.1e)", simp, math.Abs(simp-2))

	xs, ys = sampleFunc(func(x float64) float64 { return x * x }, 0, 1, 101)
	p.KV("integral of x^2 on [0,1]", "%.8f (exact %.8f)", integrate.Simpsons(xs, ys), 1.0/3)

	p.Section("Gauss-Legendre quadrature")
	p.Println("  Same sin integral, but with chosen nodes instead of a grid:")
	rows := make([][]string, 0, 4)
	for _, n := range []int{2, 4, 8, 16} {
		got := quad.Fixed(math.Sin, 0, math.Pi, n, quad.Legendre{}, 0)
		rows = append(rows, []string{
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%.10f", got),
			fmt.Sprintf("%.1e", math.Abs(got-2)),
		})
	}
	p.Table([]string{"nodes", "estimate", "error"}, rows)
	quintic := func(x float64) float64 { return math.Pow(x, 5) }
	got := quad.Fixed(quintic, 0, 1, 3, quad.Legendre{}, 0)
	p.KV("x^5 with just 3 nodes", "%.16f (exact %.16f)", got, 1.0/6)
	gauss := quad.Fixed(func(x float64) float64 { return math.Exp(-x * x) }, -6, 6, 40, quad.Legendre{}, 0)
	p.KV("exp(-x^2) over [-6,6]", "%.10f (sqrt(pi) = %.10f)", gauss, math.Sqrt(math.Pi))

	p.Section("An ODE with RK4")
	p.Println("  y' = -2y, y(0) = 1, so y(t) = exp(-2t).")
	decay := func(t, y float64) float64 { return -2 * y }
	sol := rk4Solve(decay, 0, 1, 0.01, 100)
	rows = rows[:0]
	for _, i := range []int{0, 25, 50, 75, 100} {
		t := float64(i) * 0.01
		exact := math.Exp(-2 * t)
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", t),
			fmt.Sprintf("%.8f", sol[i]),
			fmt.Sprintf("%.8f", exact),
			fmt.Sprintf("%.1e", math.Abs(sol[i]-exact)),
		})
	}
	p.Table([]string{"t", "rk4", "exact", "error"}, rows)

	return nil
}
