package numerics

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

func runMatmul(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})

	p.Section("Product")
	var ab mat.Dense
	ab.Mul(a, b)
	dump(p, "a (2x3)", a)
	dump(p, "b (3x2)", b)
	dump(p, "a x b (2x2)", &ab)

	p.Section("Transpose")
	dump(p, "a.T() (3x2)", a.T())
	var ata mat.Dense
	ata.Mul(a.T(), a)
	dump(p, "a.T() x a (3x3)", &ata)

	p.Section("Identity and trace")
	var ai mat.Dense
	ai.Mul(a, eye(3))
	p.KV("a x I equals a", "%t", mat.Equal(&ai, a))
	p.KV("trace(a.T() x a)", "%g", mat.Trace(&ata))

	p.Section("Inverse")
	m := mat.NewDense(2, 2, []float64{4, 7, 2, 6})
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return fmt.Errorf("inverting matrix: %w", err)
	}
	dump(p, "m", m)
	dump(p, "m^-1", &inv)
	var check mat.Dense
	check.Mul(m, &inv)
	p.KV("m x m^-1 is identity", "%t", mat.EqualApprox(&check, eye(2), 1e-12))

	// A singular matrix has no inverse; the error says so.
	singular := mat.NewDense(2, 2, []float64{1, 2, 2, 4})
	var bad mat.Dense
	err := bad.Inverse(singular)
	p.KV("inverting a singular matrix", "fails: %t", err != nil)

	return nil
}
