package numerics

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// eye returns the n-by-n identity matrix as a Dense.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// ones returns an r-by-c matrix of ones.
func ones(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 1
	}
	return mat.NewDense(r, c, data)
}

// arange returns start, start+step, ... stopping before stop. Step must be
// positive.
func arange(start, stop, step float64) []float64 {
	var out []float64
	for v := start; v < stop; v += step {
		out = append(out, v)
	}
	return out
}

// linspace returns n points from start to end inclusive.
func linspace(start, end float64, n int) []float64 {
	return floats.Span(make([]float64, n), start, end)
}

// logspace returns n points spaced evenly on a log scale between 10^start
// and 10^end.
func logspace(start, end float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), math.Pow(10, start), math.Pow(10, end))
}

func runCreate(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("From literal data")
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	dump(p, "a (2x3, row major)", a)
	v := mat.NewVecDense(3, []float64{1.5, 2.5, 3.5})
	dump(p, "v (vector)", v)

	p.Section("Zeros, ones, identity, diagonal")
	dump(p, "zeros(2,3)", mat.NewDense(2, 3, nil))
	dump(p, "ones(2,3)", ones(2, 3))
	dump(p, "eye(3)", eye(3))
	dump(p, "diag(10,20,30)", mat.NewDiagDense(3, []float64{10, 20, 30}))

	p.Section("Ranges")
	p.KV("arange(0, 10, 2.5)", "%v", arange(0, 10, 2.5))
	p.KV("linspace(0, 1, 5)", "%v", linspace(0, 1, 5))
	p.KV("logspace(0, 3, 4)", "%v", logspace(0, 3, 4))

	p.Section("Shape")
	r, c := a.Dims()
	p.KV("a.Dims()", "%d rows, %d cols", r, c)
	p.KV("v.Len()", "%d", v.Len())

	return nil
}
