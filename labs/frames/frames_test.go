package frames

import (
	"bytes"
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/workbook-dev/workbook/internal/datasets"
	"github.com/workbook-dev/workbook/labkit/lab"
)

func workoutFixture() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"duration", "date", "pulse", "calories"},
		{"60", "2024-03-01", "110", "409"},
		{"45", "2024-03-02", "117", "479"},
		{"60", "2024-03-03", "103", ""},
		{"450", "2024/03/04", "104", "253"},
		{"60", "2024-03-05", "98", "269"},
		{"60", "2024-03-05", "98", "269"},
	})
}

func TestHeadTail(t *testing.T) {
	df := workoutFixture()

	h := head(df, 2)
	if h.Nrow() != 2 {
		t.Fatalf("head(df, 2) has %d rows, expected 2", h.Nrow())
	}
	if got := h.Col("date").Records()[0]; got != "2024-03-01" {
		t.Errorf("head starts at %q, expected first row", got)
	}

	tl := tail(df, 2)
	if tl.Nrow() != 2 {
		t.Fatalf("tail(df, 2) has %d rows, expected 2", tl.Nrow())
	}
	if got := tl.Col("date").Records()[1]; got != "2024-03-05" {
		t.Errorf("tail ends at %q, expected last row", got)
	}

	if got := head(df, 100).Nrow(); got != df.Nrow() {
		t.Errorf("head clamps to %d rows, expected %d", got, df.Nrow())
	}
	if got := tail(df, 100).Nrow(); got != df.Nrow() {
		t.Errorf("tail clamps to %d rows, expected %d", got, df.Nrow())
	}
}

func TestMeanIgnoringNaN(t *testing.T) {
	s := series.New([]string{"10", "", "20"}, series.Int, "vals")
	if got := meanIgnoringNaN(s); got != 15 {
		t.Errorf("meanIgnoringNaN = %v, expected 15", got)
	}
	if !math.IsNaN(s.Mean()) {
		t.Errorf("gota Mean = %v, expected NaN with a missing value", s.Mean())
	}

	empty := series.New([]string{"", ""}, series.Int, "vals")
	if got := meanIgnoringNaN(empty); !math.IsNaN(got) {
		t.Errorf("meanIgnoringNaN on all-missing = %v, expected NaN", got)
	}
}

func TestDropMissingRows(t *testing.T) {
	df := workoutFixture()

	got := dropMissingRows(df, "calories")
	if got.Nrow() != df.Nrow()-1 {
		t.Fatalf("dropMissingRows kept %d rows, expected %d", got.Nrow(), df.Nrow()-1)
	}
	if got.Col("calories").HasNaN() {
		t.Error("calories still has missing values after drop")
	}
}

func TestFillMissingWithMean(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"calories"},
		{"400"},
		{""},
		{"200"},
	})

	got := fillMissingWithMean(df, "calories")
	if got.Col("calories").HasNaN() {
		t.Fatal("calories still has missing values after fill")
	}
	if recs := got.Col("calories").Records(); recs[1] != "300" {
		t.Errorf("filled value = %q, expected rounded mean 300", recs[1])
	}
}

func TestNormalizeDates(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"date"},
		{"2024-03-01"},
		{"2024/03/08"},
		{"Mar 5, 2024"},
		{"soon"},
	})

	got, fixed := normalizeDates(df, "date")
	if fixed != 2 {
		t.Fatalf("normalizeDates fixed %d values, expected 2", fixed)
	}
	want := []string{"2024-03-01", "2024-03-08", "2024-03-05", "soon"}
	if recs := got.Col("date").Records(); !reflect.DeepEqual(recs, want) {
		t.Errorf("dates = %v, expected %v", recs, want)
	}
}

func TestCapOutliers(t *testing.T) {
	df := workoutFixture()

	got, replaced := capOutliers(df, "duration", 180)
	if replaced != 1 {
		t.Fatalf("capOutliers replaced %d values, expected 1", replaced)
	}
	if max := got.Col("duration").Max(); max != 60 {
		t.Errorf("max duration after capping = %v, expected median 60", max)
	}
	if got.Nrow() != df.Nrow() {
		t.Errorf("capping changed row count to %d, expected %d", got.Nrow(), df.Nrow())
	}
}

func TestDuplicateRows(t *testing.T) {
	df := workoutFixture()

	dups := duplicateRows(df)
	if want := []int{5}; !reflect.DeepEqual(dups, want) {
		t.Fatalf("duplicateRows = %v, expected %v", dups, want)
	}

	deduped := dropDuplicateRows(df)
	if deduped.Nrow() != df.Nrow()-1 {
		t.Fatalf("dropDuplicateRows kept %d rows, expected %d", deduped.Nrow(), df.Nrow()-1)
	}
	if left := duplicateRows(deduped); len(left) != 0 {
		t.Errorf("duplicates remain after drop: %v", left)
	}
}

func TestLoadDatasetMissing(t *testing.T) {
	env := lab.NewEnv(&bytes.Buffer{}, t.TempDir())
	if _, err := loadDataset(env, "nope.csv"); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestLabsRun(t *testing.T) {
	for _, l := range Labs() {
		t.Run(l.Slug, func(t *testing.T) {
			var buf bytes.Buffer
			env := lab.NewEnv(&buf, t.TempDir())
			if err := datasets.Materialize(env.DataDir); err != nil {
				t.Fatalf("Materialize() error: %v", err)
			}
			if err := l.Run(context.Background(), env); err != nil {
				t.Fatalf("%s: %v", l.Ref(), err)
			}
			if buf.Len() == 0 {
				t.Errorf("%s produced no output", l.Ref())
			}
		})
	}
}
