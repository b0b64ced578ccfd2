package frames

import (
	"context"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// duplicateRows returns the indexes of rows that repeat an earlier row
// exactly, column for column.
func duplicateRows(df dataframe.DataFrame) []int {
	seen := make(map[string]bool)
	var dups []int
	for i, row := range df.Records()[1:] {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			dups = append(dups, i)
			continue
		}
		seen[key] = true
	}
	return dups
}

// dropDuplicateRows keeps the first occurrence of every distinct row.
func dropDuplicateRows(df dataframe.DataFrame) dataframe.DataFrame {
	seen := make(map[string]bool)
	var keep []int
	for i, row := range df.Records()[1:] {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}
	return df.Subset(keep)
}

func runDedupe(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	workouts, err := loadDataset(env, "workouts.csv")
	if err != nil {
		return err
	}

	p.Section("Finding repeats")
	dups := duplicateRows(workouts)
	p.KV("rows", "%d", workouts.Nrow())
	p.KV("duplicate rows", "%d", len(dups))
	p.KV("at indexes", "%v", dups)

	p.Section("Dropping them")
	deduped := dropDuplicateRows(workouts)
	p.KV("rows after", "%d", deduped.Nrow())
	p.KV("repeats remain", "%t", len(duplicateRows(deduped)) > 0)

	return nil
}
