package workbook

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "workbook.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(c.Chapters) != 14 {
		t.Errorf("expected 14 default chapters, got %d", len(c.Chapters))
	}
	if c.Settings.ArtifactDir != ".wb/artifacts" {
		t.Errorf("expected default artifact dir, got %q", c.Settings.ArtifactDir)
	}
	if c.Settings.NotesDir != "notes" {
		t.Errorf("expected default notes dir, got %q", c.Settings.NotesDir)
	}
	ch, err := c.Chapter("basics")
	if err != nil {
		t.Fatalf("Chapter(basics) error: %v", err)
	}
	if ch.Notes != "basics.md" {
		t.Errorf("expected basics.md, got %q", ch.Notes)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workbook.yaml")
	content := `
settings:
  artifact_dir: out/figures
  verbose: true
chapters:
  basics:
    title: Getting started
  mathx:
    title: Math
    notes: math-notes.md
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Settings.ArtifactDir != "out/figures" {
		t.Errorf("expected out/figures, got %q", c.Settings.ArtifactDir)
	}
	if c.Settings.DataDir != ".wb/data" {
		t.Errorf("expected default data dir, got %q", c.Settings.DataDir)
	}
	if !c.Settings.Verbose {
		t.Error("expected verbose to be true")
	}
	if len(c.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(c.Chapters))
	}
	if got := c.Chapters["basics"].Notes; got != "basics.md" {
		t.Errorf("expected notes default basics.md, got %q", got)
	}
	if got := c.Chapters["mathx"].Notes; got != "math-notes.md" {
		t.Errorf("expected explicit notes kept, got %q", got)
	}
}

func TestLoadRejectsUntitledChapter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workbook.yaml")
	content := `
chapters:
  basics:
    notes: basics.md
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for chapter without title")
	}
}

func TestChapterNotFound(t *testing.T) {
	c := Default()
	if _, err := c.Chapter("quantum"); err == nil {
		t.Fatal("expected error for unknown chapter")
	}
}

func TestChapterNamesSorted(t *testing.T) {
	names := Default().ChapterNames()
	if len(names) != 14 {
		t.Fatalf("expected 14 names, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
}
