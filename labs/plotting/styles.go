package plotting

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

func runStyles(ctx context.Context, env *lab.Env) error {
	rep := report.New(env.Out)

	p := plot.New()
	p.Title.Text = "One curve, four dress codes"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "x^k / k"

	glyphs := []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.CrossGlyph{},
	}

	for k := 1; k <= 4; k++ {
		f := func(x float64) float64 { return math.Pow(x, float64(k)) / float64(k) }
		pts := curve(f, 0, 2, 21)

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("line %d: %w", k, err)
		}
		line.LineStyle.Color = plotutil.Color(k - 1)
		line.LineStyle.Dashes = plotutil.Dashes(k - 1)
		line.LineStyle.Width = vg.Points(float64(k) * 0.5)

		marks, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("markers %d: %w", k, err)
		}
		marks.GlyphStyle.Shape = glyphs[k-1]
		marks.GlyphStyle.Color = plotutil.Color(k - 1)
		marks.GlyphStyle.Radius = vg.Points(2)

		p.Add(line, marks)
		p.Legend.Add(fmt.Sprintf("k=%d", k), line, marks)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	out, err := env.Artifact("styles.png")
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}

	rep.Section("Styled lines and markers")
	rep.KV("series", "%d", 4)
	rep.KV("glyphs", "circle, square, triangle, cross")
	rep.KV("dash patterns", "cycled via plotutil")
	return noteSaved(rep, out)
}
