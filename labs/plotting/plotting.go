// Package plotting draws figures with gonum/plot and writes them into the
// lab's artifact directory; nothing opens a window. One lab renders an HTML
// page with go-echarts for the chart types that want a browser.
package plotting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

const Chapter = "plotting"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "line",
			Title:   "Line plot fundamentals",
			Summary: "Titles, axis labels, a legend, and saving to PNG",
			Run:     runLine,
		},
		{
			Chapter: Chapter,
			Slug:    "styles",
			Title:   "Markers and line styles",
			Summary: "Glyph shapes, dash patterns, widths, colors",
			Run:     runStyles,
		},
		{
			Chapter: Chapter,
			Slug:    "layout",
			Title:   "Grid and axis control",
			Summary: "Background grid, axis ranges, tick labels",
			Run:     runLayout,
		},
		{
			Chapter: Chapter,
			Slug:    "subplots",
			Title:   "Subplots",
			Summary: "Four aligned panels drawn into one image",
			Run:     runSubplots,
		},
		{
			Chapter: Chapter,
			Slug:    "scatter",
			Title:   "Scatter studies",
			Summary: "Point clouds, a trend line, correlation by eye",
			Run:     runScatter,
		},
		{
			Chapter: Chapter,
			Slug:    "webcharts",
			Title:   "HTML charts",
			Summary: "A pie and bar page rendered with go-echarts",
			Run:     runWebCharts,
		},
	}
}

// noteSaved reports an artifact in lab output without leaking the absolute
// path, which differs from run to run.
func noteSaved(p *report.Printer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat artifact %s: %w", path, err)
	}
	p.KV("saved", "%s", filepath.Base(path))
	p.KV("non-empty", "%t", info.Size() > 0)
	return nil
}
