package numerics

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// flatten copies m into a plain row-major slice.
func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

func runElementwise(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(2, 3, []float64{10, 20, 30, 40, 50, 60})

	p.Section("Arithmetic writes into a receiver")
	var sum mat.Dense
	sum.Add(a, b)
	dump(p, "a + b", &sum)

	var scaled mat.Dense
	scaled.Scale(0.5, a)
	dump(p, "0.5 * a", &scaled)

	var prod mat.Dense
	prod.MulElem(a, b)
	dump(p, "a * b elementwise", &prod)

	var squared mat.Dense
	squared.Apply(func(i, j int, v float64) float64 { return v * v }, a)
	dump(p, "a squared via Apply", &squared)

	p.Section("Vector dot product")
	u := mat.NewVecDense(3, []float64{1, 2, 3})
	w := mat.NewVecDense(3, []float64{4, 5, 6})
	p.KV("u . w", "%g", mat.Dot(u, w))

	p.Section("Reductions")
	p.KV("sum", "%g", mat.Sum(a))
	p.KV("min", "%g", mat.Min(a))
	p.KV("max", "%g", mat.Max(a))
	flat := flatten(a)
	p.KV("mean", "%.2f", stat.Mean(flat, nil))
	p.KV("std dev", "%.2f", stat.StdDev(flat, nil))

	p.Section("Argmax")
	readings := []float64{3.1, 9.7, 2.2, 9.7, 1.0}
	p.KV("readings", "%v", readings)
	p.KV("floats.MaxIdx", "%d (first winner)", floats.MaxIdx(readings))

	return nil
}
