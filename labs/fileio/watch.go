package fileio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// awaitOps drains watcher events until every file in want has accumulated
// all of its wanted ops, the timeout passes, or ctx is cancelled. It returns
// the ops seen per base name; hitting the timeout is not an error.
func awaitOps(ctx context.Context, w *fsnotify.Watcher, want map[string]fsnotify.Op, timeout time.Duration) (map[string]fsnotify.Op, error) {
	seen := make(map[string]fsnotify.Op)
	deadline := time.After(timeout)
	for {
		if coversAll(seen, want) {
			return seen, nil
		}
		select {
		case <-ctx.Done():
			return seen, ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return seen, errors.New("watcher event channel closed")
			}
			seen[filepath.Base(ev.Name)] |= ev.Op
		case err, ok := <-w.Errors:
			if !ok {
				return seen, errors.New("watcher error channel closed")
			}
			return seen, fmt.Errorf("watcher: %w", err)
		case <-deadline:
			return seen, nil
		}
	}
}

// coversAll reports whether seen includes every op bit want asks for.
func coversAll(seen, want map[string]fsnotify.Op) bool {
	for name, op := range want {
		if seen[name]&op != op {
			return false
		}
	}
	return true
}

// stir performs a small fixed sequence of changes inside dir: create a file,
// extend it, then create a second file. The pauses give the watcher time to
// deliver each batch separately.
func stir(dir string) error {
	journal := filepath.Join(dir, "journal.txt")
	if err := os.WriteFile(journal, []byte("day 1\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", journal, err)
	}
	time.Sleep(50 * time.Millisecond)
	if err := appendLine(journal, "day 2"); err != nil {
		return err
	}
	time.Sleep(50 * time.Millisecond)
	config := filepath.Join(dir, "config.txt")
	if err := os.WriteFile(config, []byte("mode=demo\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", config, err)
	}
	return nil
}

func runWatch(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	dir, err := env.Scratch("watched")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	p.Section("Stirring the directory")
	p.KV("watching", "%s", filepath.Base(dir))
	p.KV("changes", "create journal.txt, append to it, create config.txt")

	done := make(chan error, 1)
	go func() { done <- stir(dir) }()

	want := map[string]fsnotify.Op{
		"journal.txt": fsnotify.Create | fsnotify.Write,
		"config.txt":  fsnotify.Create | fsnotify.Write,
	}
	seen, err := awaitOps(ctx, watcher, want, 3*time.Second)
	if err != nil {
		return err
	}
	if err := <-done; err != nil {
		return err
	}

	p.Section("Events observed")
	for _, name := range []string{"journal.txt", "config.txt"} {
		ops := seen[name]
		p.KV(name+" created", "%t", ops&fsnotify.Create != 0)
		p.KV(name+" written", "%t", ops&fsnotify.Write != 0)
	}

	return nil
}
