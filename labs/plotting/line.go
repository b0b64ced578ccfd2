package plotting

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// curve samples f at n evenly spaced points across [lo, hi].
func curve(f func(float64) float64, lo, hi float64, n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	for i := range pts {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		pts[i].X = x
		pts[i].Y = f(x)
	}
	return pts
}

func runLine(ctx context.Context, env *lab.Env) error {
	rep := report.New(env.Out)

	p := plot.New()
	p.Title.Text = "Damped oscillation"
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "amplitude"

	signal := func(t float64) float64 { return math.Exp(-t/3) * math.Sin(2*t) }
	envelope := func(t float64) float64 { return math.Exp(-t / 3) }

	line, err := plotter.NewLine(curve(signal, 0, 10, 200))
	if err != nil {
		return fmt.Errorf("building signal line: %w", err)
	}
	upper, err := plotter.NewLine(curve(envelope, 0, 10, 200))
	if err != nil {
		return fmt.Errorf("building envelope line: %w", err)
	}
	upper.LineStyle.Width = vg.Points(0.5)

	p.Add(line, upper)
	p.Legend.Add("signal", line)
	p.Legend.Add("envelope", upper)
	p.Legend.Top = true

	out, err := env.Artifact("line-basics.png")
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}

	rep.Section("Line plot")
	rep.KV("series", "signal, envelope")
	rep.KV("points per series", "%d", 200)
	return noteSaved(rep, out)
}
