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

func runLayout(ctx context.Context, env *lab.Env) error {
	rep := report.New(env.Out)

	p := plot.New()
	p.Title.Text = "Tuned axes"
	p.X.Label.Text = "angle (rad)"
	p.Y.Label.Text = "sin"

	// The grid goes in first so curves draw on top of it.
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(curve(math.Sin, 0, 2*math.Pi, 100))
	if err != nil {
		return fmt.Errorf("building sine line: %w", err)
	}
	p.Add(line)

	// Pin the ranges instead of letting autoscale pick them.
	p.X.Min, p.X.Max = 0, 2*math.Pi
	p.Y.Min, p.Y.Max = -1.2, 1.2

	// Ticks at multiples of pi/2 read better than decimals here.
	p.X.Tick.Marker = piTicks{}

	out, err := env.Artifact("layout.png")
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}

	rep.Section("Grid and axis control")
	rep.KV("x range", "0 to 2pi, pinned")
	rep.KV("y range", "-1.2 to 1.2, pinned")
	rep.KV("x ticks", "multiples of pi/2")
	return noteSaved(rep, out)
}

// piTicks marks the x axis at multiples of pi/2.
type piTicks struct{}

func (piTicks) Ticks(min, max float64) []plot.Tick {
	labels := []string{"0", "pi/2", "pi", "3pi/2", "2pi"}
	var ticks []plot.Tick
	for i, label := range labels {
		v := float64(i) * math.Pi / 2
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}
