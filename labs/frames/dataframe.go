package frames

import (
	"context"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

func runDataframe(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("From typed columns")
	df := dataframe.New(
		series.New([]string{"Asha", "Bruno", "Chen", "Dana", "Eero"}, series.String, "name"),
		series.New([]int{21, 24, 22, 23, 21}, series.Int, "age"),
		series.New([]float64{87, 74, 91, 66, 79}, series.Float, "grade"),
	)
	if df.Error() != nil {
		return df.Error()
	}
	p.Printf("%v\n", df)

	p.Section("From records")
	fromRecords := dataframe.LoadRecords([][]string{
		{"city", "population_k"},
		{"Tallinn", "457"},
		{"Riga", "605"},
		{"Vilnius", "602"},
	})
	if fromRecords.Error() != nil {
		return fromRecords.Error()
	}
	p.Printf("%v\n", fromRecords)

	p.Section("Shape and types")
	rows, cols := df.Dims()
	p.KV("dims", "%d rows x %d cols", rows, cols)
	p.KV("names", "%v", df.Names())
	p.KV("types", "%v", df.Types())

	p.Section("Head and tail")
	p.Printf("%v\n", head(df, 2))
	p.Printf("%v\n", tail(df, 2))

	p.Section("Describe")
	p.Printf("%v\n", df.Describe())

	return nil
}
