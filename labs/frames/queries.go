package frames

import (
	"context"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

func runQueries(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	weather, err := loadDataset(env, "weather.csv")
	if err != nil {
		return err
	}

	p.Section("Filter rows")
	warm := weather.Filter(dataframe.F{
		Colname:    "temp_c",
		Comparator: series.Greater,
		Comparando: 19.0,
	})
	if err := assertNoError(warm); err != nil {
		return err
	}
	p.KV("months above 19 C", "%d of %d", warm.Nrow(), weather.Nrow())
	p.Printf("%v\n", warm)

	p.Section("Chained filters AND together")
	tallinnDryish := weather.
		Filter(dataframe.F{Colname: "city", Comparator: series.Eq, Comparando: "Tallinn"}).
		Filter(dataframe.F{Colname: "rain_mm", Comparator: series.Less, Comparando: 85.0})
	if err := assertNoError(tallinnDryish); err != nil {
		return err
	}
	p.Printf("%v\n", tallinnDryish)

	p.Section("Sort")
	hottest := weather.Arrange(dataframe.RevSort("temp_c"))
	if err := assertNoError(hottest); err != nil {
		return err
	}
	p.Printf("%v\n", head(hottest, 3))

	p.Section("Group and aggregate")
	grouped := weather.GroupBy("city")
	if grouped.Err != nil {
		return grouped.Err
	}
	agg := grouped.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_MEAN, dataframe.Aggregation_SUM},
		[]string{"temp_c", "rain_mm"},
	)
	if err := assertNoError(agg); err != nil {
		return err
	}
	// Group order comes from a map; sort to keep the output stable.
	p.Printf("%v\n", agg.Arrange(dataframe.Sort("city")))

	return nil
}
