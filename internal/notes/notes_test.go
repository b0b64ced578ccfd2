package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleNotes = `# Slices

Go slices are windows onto backing arrays.

- append may reallocate
- copy never does
`

func TestRenderKeepsContent(t *testing.T) {
	out := Render(sampleNotes, 80)
	if out == "" {
		t.Fatal("Render() returned nothing")
	}
	for _, want := range []string{"Slices", "backing arrays", "reallocate"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered notes missing %q", want)
		}
	}
}

func TestRenderDefaultWidth(t *testing.T) {
	if out := Render(sampleNotes, 0); out == "" {
		t.Fatal("Render() with zero width returned nothing")
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slices.md")
	if err := os.WriteFile(path, []byte(sampleNotes), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	out, err := RenderFile(path, 80)
	if err != nil {
		t.Fatalf("RenderFile() error: %v", err)
	}
	if !strings.Contains(out, "Slices") {
		t.Errorf("rendered file missing heading: %q", out)
	}
}

func TestRenderFileMissing(t *testing.T) {
	_, err := RenderFile(filepath.Join(t.TempDir(), "nope.md"), 80)
	if err == nil || !strings.Contains(err.Error(), "reading notes") {
		t.Fatalf("expected a read error, got %v", err)
	}
}
