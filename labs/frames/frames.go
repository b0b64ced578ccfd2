// Package frames works with gota series and dataframes: building them,
// loading them from the sample datasets, cleaning dirty rows, removing
// duplicates, and asking questions with filter/sort/group. The workouts
// dataset is deliberately dirty; the cleaning labs depend on its flaws.
package frames

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/workbook-dev/workbook/labkit/lab"
)

const Chapter = "frames"

// Labs returns the chapter's lessons in teaching order.
func Labs() []lab.Lab {
	return []lab.Lab{
		{
			Chapter: Chapter,
			Slug:    "series",
			Title:   "Series basics",
			Summary: "Typed columns, summary stats, missing values",
			Run:     runSeries,
		},
		{
			Chapter: Chapter,
			Slug:    "dataframe",
			Title:   "Dataframes",
			Summary: "Construction, shape, dtypes, head/tail, describe",
			Run:     runDataframe,
		},
		{
			Chapter: Chapter,
			Slug:    "load-csv",
			Title:   "Loading CSV data",
			Summary: "Read the sample datasets and inspect what arrived",
			Run:     runLoadCSV,
		},
		{
			Chapter: Chapter,
			Slug:    "cleaning",
			Title:   "Cleaning bad data",
			Summary: "Empty cells, wrong date formats, out-of-range values",
			Run:     runCleaning,
		},
		{
			Chapter: Chapter,
			Slug:    "dedupe",
			Title:   "Duplicates",
			Summary: "Spot repeated rows and drop them",
			Run:     runDedupe,
		},
		{
			Chapter: Chapter,
			Slug:    "queries",
			Title:   "Filter, sort, group",
			Summary: "Row selection, ordering, grouped aggregation",
			Run:     runQueries,
		},
	}
}

// head returns the first n rows of df.
func head(df dataframe.DataFrame, n int) dataframe.DataFrame {
	if n > df.Nrow() {
		n = df.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return df.Subset(idx)
}

// tail returns the last n rows of df.
func tail(df dataframe.DataFrame, n int) dataframe.DataFrame {
	total := df.Nrow()
	if n > total {
		n = total
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = total - n + i
	}
	return df.Subset(idx)
}
