// Package runner executes labs: it builds the run environment, captures
// output, times the body, and collects produced artifacts into a Result.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/workbook-dev/workbook/internal/datasets"
	"github.com/workbook-dev/workbook/labkit/lab"
)

// Result records the outcome of a single lab run.
type Result struct {
	Ref       string
	RunID     string
	Duration  time.Duration
	Output    string
	Artifacts []string // paths relative to the lab's artifact dir
	Err       error    // the lab's own error; harness failures surface from Run
}

// Passed reports whether the lab completed without error.
func (r *Result) Passed() bool {
	return r.Err == nil
}

// ArtifactDir returns the directory a lab's artifacts land in.
func ArtifactDir(root string, l lab.Lab) string {
	return filepath.Join(root, l.Chapter, l.Slug)
}

// Options configures a Runner.
type Options struct {
	ArtifactDir string    // root for per-lab artifact dirs
	DataDir     string    // shared dataset dir, materialized before each run
	ScratchDir  string    // root for per-lab scratch dirs
	Tee         io.Writer // when set, lab output is streamed here as well
	Verbose     bool      // emit structured run logs
	LogOut      io.Writer // verbose log destination; defaults to stderr
}

// Runner executes labs against a fixed set of directories.
type Runner struct {
	opts  Options
	log   *slog.Logger
	newID func() string
}

// New creates a Runner. Directories are created lazily per run.
func New(opts Options) *Runner {
	logOut := opts.LogOut
	if logOut == nil {
		logOut = os.Stderr
	}
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return &Runner{
		opts:  opts,
		log:   slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: level})),
		newID: uuid.NewString,
	}
}

// Run executes a single lab. The returned error covers harness failures
// only; the lab's own failure is recorded in Result.Err so a batch can
// keep going.
func (r *Runner) Run(ctx context.Context, l lab.Lab) (*Result, error) {
	res := &Result{Ref: l.Ref(), RunID: r.newID()}

	if err := datasets.Materialize(r.opts.DataDir); err != nil {
		return nil, fmt.Errorf("preparing datasets: %w", err)
	}

	artifactDir := ArtifactDir(r.opts.ArtifactDir, l)
	if err := os.MkdirAll(artifactDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact dir %s: %w", artifactDir, err)
	}

	var buf bytes.Buffer
	out := io.Writer(&buf)
	if r.opts.Tee != nil {
		out = io.MultiWriter(r.opts.Tee, &buf)
	}

	env := &lab.Env{
		Out:         out,
		ArtifactDir: artifactDir,
		DataDir:     r.opts.DataDir,
		ScratchDir:  filepath.Join(r.opts.ScratchDir, l.Chapter, l.Slug),
	}

	r.log.Info("lab starting", "ref", res.Ref, "run_id", res.RunID)
	start := time.Now()
	res.Err = l.Run(ctx, env)
	res.Duration = time.Since(start)
	res.Output = buf.String()

	artifacts, err := listArtifacts(artifactDir)
	if err != nil {
		return nil, err
	}
	res.Artifacts = artifacts

	if res.Err != nil {
		r.log.Error("lab failed", "ref", res.Ref, "run_id", res.RunID,
			"duration_ms", res.Duration.Milliseconds(), "err", res.Err.Error())
	} else {
		r.log.Info("lab finished", "ref", res.Ref, "run_id", res.RunID,
			"duration_ms", res.Duration.Milliseconds(), "artifacts", len(res.Artifacts))
	}
	return res, nil
}

// RunAll executes labs in order, continuing past lab failures.
func (r *Runner) RunAll(ctx context.Context, labs []lab.Lab) ([]*Result, error) {
	results := make([]*Result, 0, len(labs))
	for _, l := range labs {
		res, err := r.Run(ctx, l)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// listArtifacts returns the files under dir relative to it, in walk order.
func listArtifacts(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing artifacts in %s: %w", dir, err)
	}
	return out, nil
}
