package plotting

import (
	"context"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// noisyLine samples y = slope*x + intercept plus noise at n points in [0, 10].
// The seed is fixed so the cloud, and the figure, come out the same every run.
func noisyLine(slope, intercept, noise float64, n int, seed int64) plotter.XYs {
	rng := rand.New(rand.NewSource(seed))
	pts := make(plotter.XYs, n)
	for i := range pts {
		x := 10 * float64(i) / float64(n-1)
		pts[i].X = x
		pts[i].Y = slope*x + intercept + noise*rng.NormFloat64()
	}
	return pts
}

// fitLine returns the least-squares slope and intercept for pts.
func fitLine(pts plotter.XYs) (slope, intercept float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept
}

func runScatter(ctx context.Context, env *lab.Env) error {
	rep := report.New(env.Out)

	p := plot.New()
	p.Title.Text = "Noise around a trend"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	tight := noisyLine(2, 1, 0.5, 60, 7)
	loose := noisyLine(2, 1, 4, 60, 11)

	for i, cloud := range []plotter.XYs{tight, loose} {
		sc, err := plotter.NewScatter(cloud)
		if err != nil {
			return fmt.Errorf("building scatter %d: %w", i, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(sc)
	}

	slope, intercept := fitLine(tight)
	fit, err := plotter.NewLine(curve(func(x float64) float64 {
		return slope*x + intercept
	}, 0, 10, 2))
	if err != nil {
		return fmt.Errorf("building fit line: %w", err)
	}
	p.Add(fit)
	p.Legend.Add("fit on tight cloud", fit)
	p.Legend.Top = true
	p.Legend.Left = true

	out, err := env.Artifact("scatter.png")
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}

	rep.Section("Scatter with a fitted line")
	rep.KV("true slope", "%.1f", 2.0)
	rep.KV("fitted slope", "%.2f", slope)
	rep.KV("fitted intercept", "%.2f", intercept)
	rep.KV("slope close to truth", "%t", slope > 1.8 && slope < 2.2)
	return noteSaved(rep, out)
}
