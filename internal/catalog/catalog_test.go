package catalog

import (
	"context"
	"testing"

	"github.com/workbook-dev/workbook/labkit/lab"
)

func noop(ctx context.Context, env *lab.Env) error { return nil }

func sampleLab(chapter, slug string) lab.Lab {
	return lab.Lab{
		Chapter: chapter,
		Slug:    slug,
		Title:   "Sample",
		Summary: "A sample lab",
		Run:     noop,
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]lab.Lab{
		sampleLab("basics", "hello"),
		sampleLab("basics", "hello"),
	})
	if err == nil {
		t.Fatal("expected error for duplicate reference")
	}
}

func TestNewRejectsIncomplete(t *testing.T) {
	cases := map[string]lab.Lab{
		"no slug":    {Chapter: "basics", Title: "X", Run: noop},
		"no chapter": {Slug: "hello", Title: "X", Run: noop},
		"no title":   {Chapter: "basics", Slug: "hello", Run: noop},
		"no run":     {Chapter: "basics", Slug: "hello", Title: "X"},
		"slash slug": {Chapter: "basics", Slug: "a/b", Title: "X", Run: noop},
	}
	for name, l := range cases {
		if _, err := New([]lab.Lab{l}); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestResolve(t *testing.T) {
	c, err := New([]lab.Lab{
		sampleLab("basics", "hello"),
		sampleLab("mathx", "bmi"),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	l, err := c.Resolve("mathx/bmi")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if l.Slug != "bmi" {
		t.Errorf("expected bmi, got %q", l.Slug)
	}

	for _, bad := range []string{"mathx", "mathx/", "/bmi", "a/b/c", "mathx/missing"} {
		if _, err := c.Resolve(bad); err == nil {
			t.Errorf("Resolve(%q): expected error", bad)
		}
	}
}

func TestChapterOrderPreserved(t *testing.T) {
	c, err := New([]lab.Lab{
		sampleLab("basics", "one"),
		sampleLab("basics", "two"),
		sampleLab("mathx", "three"),
		sampleLab("basics", "four"),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	chapters := c.Chapters()
	if len(chapters) != 2 || chapters[0] != "basics" || chapters[1] != "mathx" {
		t.Errorf("unexpected chapter order: %v", chapters)
	}

	labs, err := c.Chapter("basics")
	if err != nil {
		t.Fatalf("Chapter() error: %v", err)
	}
	if len(labs) != 3 || labs[0].Slug != "one" || labs[2].Slug != "four" {
		t.Errorf("unexpected chapter labs: %+v", labs)
	}

	if _, err := c.Chapter("quantum"); err == nil {
		t.Error("expected error for unknown chapter")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	want := []string{
		"basics", "mathx", "slices", "fileio", "numerics", "plotting",
		"frames", "scicomp", "algos", "dbase", "webapi", "debugging",
		"textre", "concur",
	}
	got := c.Chapters()
	if len(got) != len(want) {
		t.Fatalf("expected %d chapters, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chapter %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if c.Len() < len(want)*2 {
		t.Errorf("catalog suspiciously small: %d labs", c.Len())
	}
	for _, l := range c.All() {
		if _, err := c.Resolve(l.Ref()); err != nil {
			t.Errorf("lab %s does not resolve: %v", l.Ref(), err)
		}
	}
}
