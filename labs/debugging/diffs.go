package debugging

import (
	"context"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// enrollment is the kind of nested value tests end up comparing: a
// struct holding a slice and a map, which == cannot touch.
type enrollment struct {
	Student string
	Courses []string
	Scores  map[string]int
}

// sampleEnrollment builds a fresh value each call so the demos can
// mutate their copy without sharing the map.
func sampleEnrollment() enrollment {
	return enrollment{
		Student: "Ada",
		Courses: []string{"basics", "algos"},
		Scores:  map[string]int{"basics": 91, "algos": 88},
	}
}

func runDiffs(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Equal or not")
	want := sampleEnrollment()
	got := sampleEnrollment()
	p.KV("fresh copies equal", "%t", cmp.Equal(want, got))
	got.Scores["algos"] = 93
	p.KV("after a score change", "%t", cmp.Equal(want, got))

	p.Section("Reading the diff")
	p.Println("cmp.Diff points straight at the changed field (-want +got):")
	p.Printf("%s", cmp.Diff(want, got))

	p.Section("Approximate floats")
	sum := 0.1 + 0.2
	p.KV("0.1 + 0.2 == 0.3", "%t", sum == 0.3)
	p.KV("equal within 1e-9", "%t",
		cmp.Equal(sum, 0.3, cmpopts.EquateApprox(0, 1e-9)))

	p.Section("Order-insensitive slices")
	a := []string{"regexp", "files", "maps"}
	b := []string{"maps", "regexp", "files"}
	p.KV("as-is", "%t", cmp.Equal(a, b))
	sorted := cmpopts.SortSlices(func(x, y string) bool { return x < y })
	p.KV("with SortSlices", "%t", cmp.Equal(a, b, sorted))

	return nil
}
