package numerics

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// maskCount returns how many entries of m satisfy pred.
func maskCount(m mat.Matrix, pred func(float64) bool) int {
	r, c := m.Dims()
	count := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if pred(m.At(i, j)) {
				count++
			}
		}
	}
	return count
}

// maskApply zeroes every entry of m that fails pred, returning a new matrix.
func maskApply(m mat.Matrix, pred func(float64) bool) *mat.Dense {
	var out mat.Dense
	out.Apply(func(i, j int, v float64) float64 {
		if pred(v) {
			return v
		}
		return 0
	}, m)
	return &out
}

func runIndex(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	a := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	p.Section("Element access")
	dump(p, "a", a)
	p.KV("a.At(0, 0)", "%g", a.At(0, 0))
	p.KV("a.At(2, 3)", "%g", a.At(2, 3))

	p.Section("Rows and columns")
	dump(p, "row 1 view", a.RowView(1))
	dump(p, "col 2 view", a.ColView(2))
	rowCopy := mat.Row(nil, 1, a)
	p.KV("row 1 as slice", "%v", rowCopy)

	p.Section("Submatrix views share data")
	sub := a.Slice(0, 2, 1, 3).(*mat.Dense)
	dump(p, "a[0:2, 1:3]", sub)
	sub.Set(0, 0, -99)
	p.KV("after sub.Set(0,0,-99), a.At(0,1)", "%g", a.At(0, 1))
	a.Set(0, 1, 2) // restore

	p.Section("Copies stand alone")
	c := mat.DenseCopyOf(a.Slice(0, 2, 1, 3))
	c.Set(0, 0, -77)
	p.KV("copy changed, a.At(0,1) still", "%g", a.At(0, 1))

	p.Section("Masks, the Go way")
	even := func(v float64) bool { return int(v)%2 == 0 }
	p.KV("even entries", "%d of 12", maskCount(a, even))
	dump(p, "evens kept, rest zeroed", maskApply(a, even))

	return nil
}
