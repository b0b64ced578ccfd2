package plotting

import (
	"context"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// enrollmentPie charts how study hours split across tracks.
func enrollmentPie() *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Study hours by track",
			Subtitle: "one week, self reported",
		}),
	)
	pie.AddSeries("tracks", []opts.PieData{
		{Name: "exercises", Value: 9},
		{Name: "reading", Value: 6},
		{Name: "projects", Value: 5},
		{Name: "review", Value: 2},
	})
	return pie
}

// completionBar charts labs finished per weekday.
func completionBar() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Labs finished per day"}),
	)
	bar.SetXAxis([]string{"Mon", "Tue", "Wed", "Thu", "Fri"}).
		AddSeries("labs", []opts.BarData{
			{Value: 3}, {Value: 2}, {Value: 4}, {Value: 1}, {Value: 5},
		})
	return bar
}

func runWebCharts(ctx context.Context, env *lab.Env) error {
	rep := report.New(env.Out)

	out, err := env.Artifact("charts.html")
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}

	page := components.NewPage()
	page.AddCharts(enrollmentPie(), completionBar())
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering charts: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	rep.Section("HTML chart page")
	rep.KV("charts", "pie, bar")
	rep.KV("open with", "any browser")
	return noteSaved(rep, out)
}
