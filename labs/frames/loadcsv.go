package frames

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// loadDataset reads one of the materialized sample CSVs into a dataframe.
func loadDataset(env *lab.Env, name string) (dataframe.DataFrame, error) {
	f, err := os.Open(env.Data(name))
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening dataset %s: %w", name, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parsing dataset %s: %w", name, df.Error())
	}
	return df, nil
}

func runLoadCSV(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("students.csv")
	students, err := loadDataset(env, "students.csv")
	if err != nil {
		return err
	}
	rows, cols := students.Dims()
	p.KV("dims", "%d rows x %d cols", rows, cols)
	p.KV("columns", "%v", students.Names())
	p.KV("types", "%v", students.Types())
	p.Printf("%v\n", head(students, 3))

	p.Section("weather.csv")
	weather, err := loadDataset(env, "weather.csv")
	if err != nil {
		return err
	}
	rows, cols = weather.Dims()
	p.KV("dims", "%d rows x %d cols", rows, cols)
	p.KV("columns", "%v", weather.Names())
	p.Printf("%v\n", head(weather, 3))

	p.Section("Column pull")
	grades := students.Col("grade")
	p.KV("grade mean", "%.1f", grades.Mean())
	p.KV("grade max", "%.0f", grades.Max())

	return nil
}
