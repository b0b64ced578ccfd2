// Package lab defines the unit of content in the workbook: a short, linear,
// independently runnable lesson. Chapter packages build their lessons as Lab
// values and expose them through a Labs() function; the catalog assembles
// them and the runner executes them.
package lab

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Lab is one runnable lesson. Chapter and Slug together form its identity;
// the Run function holds the lesson body.
type Lab struct {
	Chapter string
	Slug    string
	Title   string
	Summary string
	Run     func(ctx context.Context, env *Env) error
}

// Ref returns the lab's canonical "chapter/slug" reference.
func (l Lab) Ref() string {
	return l.Chapter + "/" + l.Slug
}

// Env carries everything a lab body may touch at runtime: where to print,
// where to save figures and generated files, and where sample data lives.
// Labs must not write outside these directories.
type Env struct {
	Out         io.Writer // lesson output, captured by the runner
	ArtifactDir string    // figures, charts, reports the lab produces
	DataDir     string    // read-only sample datasets
	ScratchDir  string    // per-run workspace for file exercises
}

// NewEnv returns an Env writing to out with all directories rooted at dir.
// Intended for tests and one-off callers; the runner builds its own.
func NewEnv(out io.Writer, dir string) *Env {
	return &Env{
		Out:         out,
		ArtifactDir: filepath.Join(dir, "artifacts"),
		DataDir:     filepath.Join(dir, "data"),
		ScratchDir:  filepath.Join(dir, "scratch"),
	}
}

// Artifact returns the path for a named artifact, creating the artifact
// directory on first use.
func (e *Env) Artifact(name string) (string, error) {
	if err := os.MkdirAll(e.ArtifactDir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact dir %s: %w", e.ArtifactDir, err)
	}
	return filepath.Join(e.ArtifactDir, name), nil
}

// Scratch returns the path for a named scratch file, creating the scratch
// directory on first use.
func (e *Env) Scratch(name string) (string, error) {
	if err := os.MkdirAll(e.ScratchDir, 0o755); err != nil {
		return "", fmt.Errorf("creating scratch dir %s: %w", e.ScratchDir, err)
	}
	return filepath.Join(e.ScratchDir, name), nil
}

// Data returns the path of a named dataset file. The file is materialized
// by the runner before the lab starts; labs only read it.
func (e *Env) Data(name string) string {
	return filepath.Join(e.DataDir, name)
}
