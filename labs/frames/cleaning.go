package frames

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// dropMissingRows removes every row where col has no value.
func dropMissingRows(df dataframe.DataFrame, col string) dataframe.DataFrame {
	mask := df.Col(col).IsNaN()
	var keep []int
	for i, missing := range mask {
		if !missing {
			keep = append(keep, i)
		}
	}
	return df.Subset(keep)
}

// fillMissingWithMean replaces missing values in an integer column with the
// rounded mean of the present ones.
func fillMissingWithMean(df dataframe.DataFrame, col string) dataframe.DataFrame {
	s := df.Col(col)
	mean := meanIgnoringNaN(s)
	fill := int(math.Round(mean))

	vals := s.Float()
	filled := make([]int, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			filled[i] = fill
		} else {
			filled[i] = int(v)
		}
	}
	return df.Mutate(series.New(filled, series.Int, col))
}

// dateFormats lists the shapes normalizeDates accepts, tried in order.
var dateFormats = []string{"2006-01-02", "2006/01/02", "Jan 2, 2006"}

// normalizeDates rewrites every parseable value of col as YYYY-MM-DD and
// counts how many needed fixing. Unparseable values are left alone.
func normalizeDates(df dataframe.DataFrame, col string) (dataframe.DataFrame, int) {
	recs := df.Col(col).Records()
	fixed := 0
	for i, rec := range recs {
		for _, layout := range dateFormats {
			t, err := time.Parse(layout, rec)
			if err != nil {
				continue
			}
			iso := t.Format("2006-01-02")
			if iso != rec {
				recs[i] = iso
				fixed++
			}
			break
		}
	}
	return df.Mutate(series.New(recs, series.String, col)), fixed
}

// capOutliers replaces values of col above limit with the column median.
func capOutliers(df dataframe.DataFrame, col string, limit float64) (dataframe.DataFrame, int) {
	s := df.Col(col)
	median := s.Median()

	vals := s.Float()
	capped := make([]int, len(vals))
	replaced := 0
	for i, v := range vals {
		if v > limit {
			capped[i] = int(median)
			replaced++
		} else {
			capped[i] = int(v)
		}
	}
	return df.Mutate(series.New(capped, series.Int, col)), replaced
}

func runCleaning(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	workouts, err := loadDataset(env, "workouts.csv")
	if err != nil {
		return err
	}

	p.Section("The dirty arrivals")
	rows, cols := workouts.Dims()
	p.KV("dims", "%d rows x %d cols", rows, cols)
	p.KV("calories missing", "%t", workouts.Col("calories").HasNaN())

	p.Section("Empty cells: drop or fill")
	dropped := dropMissingRows(workouts, "calories")
	p.KV("rows after dropping", "%d of %d", dropped.Nrow(), workouts.Nrow())
	filled := fillMissingWithMean(workouts, "calories")
	p.KV("rows after filling", "%d of %d", filled.Nrow(), workouts.Nrow())
	p.KV("fill value (rounded mean)", "%d", int(math.Round(meanIgnoringNaN(workouts.Col("calories")))))
	p.KV("still missing after fill", "%t", filled.Col("calories").HasNaN())

	p.Section("Wrong format: dates")
	normalized, fixedDates := normalizeDates(filled, "date")
	p.KV("dates rewritten", "%d", fixedDates)
	if err := assertNoError(normalized); err != nil {
		return err
	}

	p.Section("Wrong values: outliers")
	p.KV("max duration before", "%.0f", normalized.Col("duration").Max())
	capped, replaced := capOutliers(normalized, "duration", 180)
	p.KV("durations capped", "%d", replaced)
	p.KV("max duration after", "%.0f", capped.Col("duration").Max())

	p.Section("Clean result")
	p.Printf("%v\n", head(capped, 5))

	return nil
}

// assertNoError surfaces a dataframe's deferred error.
func assertNoError(df dataframe.DataFrame) error {
	if df.Error() != nil {
		return fmt.Errorf("dataframe operation: %w", df.Error())
	}
	return nil
}
