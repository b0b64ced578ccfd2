package plotting

import (
	"context"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// panel builds one titled line plot for the subplot grid.
func panel(title string, f func(float64) float64, lo, hi float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	line, err := plotter.NewLine(curve(f, lo, hi, 100))
	if err != nil {
		return nil, fmt.Errorf("panel %s: %w", title, err)
	}
	p.Add(line)
	return p, nil
}

func runSubplots(ctx context.Context, env *lab.Env) error {
	rep := report.New(env.Out)

	specs := []struct {
		title  string
		f      func(float64) float64
		lo, hi float64
	}{
		{"sin", math.Sin, 0, 2 * math.Pi},
		{"cos", math.Cos, 0, 2 * math.Pi},
		{"x^2", func(x float64) float64 { return x * x }, -2, 2},
		{"sqrt", math.Sqrt, 0, 4},
	}

	const rows, cols = 2, 2
	plots := make([][]*plot.Plot, rows)
	for i := 0; i < rows; i++ {
		plots[i] = make([]*plot.Plot, cols)
		for j := 0; j < cols; j++ {
			p, err := panel(specs[i*cols+j].title, specs[i*cols+j].f, specs[i*cols+j].lo, specs[i*cols+j].hi)
			if err != nil {
				return err
			}
			plots[i][j] = p
		}
	}

	img := vgimg.New(8*vg.Inch, 6*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	out, err := env.Artifact("subplots.png")
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	rep.Section("Subplot grid")
	rep.KV("panels", "%d rows x %d cols", rows, cols)
	rep.KV("titles", "sin, cos, x^2, sqrt")
	return noteSaved(rep, out)
}
