package frames

import (
	"context"
	"math"

	"github.com/go-gota/gota/series"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// meanIgnoringNaN averages the non-missing values of s. gota's own Mean
// returns NaN as soon as one value is missing.
func meanIgnoringNaN(s series.Series) float64 {
	var sum float64
	var n int
	for _, v := range s.Float() {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

func runSeries(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Typed columns")
	grades := series.New([]int{87, 74, 91, 66, 79}, series.Int, "grade")
	cities := series.New([]string{"Tallinn", "Riga", "Vilnius"}, series.String, "city")
	p.KV("grades", "%v", grades.Records())
	p.KV("grades type", "%v", grades.Type())
	p.KV("cities", "%v", cities.Records())
	p.KV("len(grades)", "%d", grades.Len())

	p.Section("Summary statistics")
	p.KV("mean", "%.1f", grades.Mean())
	p.KV("median", "%.1f", grades.Median())
	p.KV("min / max", "%.0f / %.0f", grades.Min(), grades.Max())
	p.KV("std dev", "%.2f", grades.StdDev())

	p.Section("Selection")
	topTwo := grades.Subset([]int{2, 0})
	p.KV("subset [2, 0]", "%v", topTwo.Records())
	p.KV("sorted order (indexes)", "%v", grades.Order(false))

	p.Section("Missing values poison plain stats")
	sparse := series.New([]string{"4.5", "", "7.2"}, series.Float, "temp")
	p.KV("records", "%v", sparse.Records())
	p.KV("has missing", "%t", sparse.HasNaN())
	p.KV("gota Mean", "%v", sparse.Mean())
	p.KV("mean ignoring missing", "%.2f", meanIgnoringNaN(sparse))

	return nil
}
