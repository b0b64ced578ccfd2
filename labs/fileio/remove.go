package fileio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// exists reports whether path names anything on disk. Errors other than
// not-found are returned as-is.
func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// safeRemove deletes a regular file. It refuses directories and reports
// missing files instead of ignoring them.
func safeRemove(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// removeIfExists deletes a file when present and reports whether it did.
// A missing file is not an error.
func removeIfExists(path string) (bool, error) {
	err := safeRemove(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func runSafeDelete(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Check before deleting")
	target, err := env.Scratch("doomed.txt")
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte("short-lived\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	ok, err := exists(target)
	if err != nil {
		return err
	}
	p.KV("exists before", "%t", ok)
	if err := safeRemove(target); err != nil {
		return err
	}
	ok, err = exists(target)
	if err != nil {
		return err
	}
	p.KV("exists after", "%t", ok)

	p.Section("Deleting what is not there")
	missing, err := env.Scratch("never-written.txt")
	if err != nil {
		return err
	}
	err = safeRemove(missing)
	p.KV("error", "%v", err)
	p.KV("is not-found", "%t", errors.Is(err, fs.ErrNotExist))
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		p.KV("failing op", "%s", pathErr.Op)
		p.KV("failing path", "%s", filepath.Base(pathErr.Path))
	}
	removed, err := removeIfExists(missing)
	if err != nil {
		return err
	}
	p.KV("removeIfExists", "removed=%t", removed)

	p.Section("Files only")
	dirPath, err := env.Scratch("not-a-file")
	if err != nil {
		return err
	}
	if err := os.Mkdir(dirPath, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dirPath, err)
	}
	p.KV("on a directory", "%v", safeRemove(dirPath))

	p.Section("Empty dir vs tree")
	// Remove handles an empty directory; a populated one needs RemoveAll.
	nested := filepath.Join(dirPath, "inner")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", nested, err)
	}
	if err := os.WriteFile(filepath.Join(nested, "leaf.txt"), []byte("x"), 0o644); err != nil {
		return fmt.Errorf("writing leaf: %w", err)
	}
	p.KV("Remove on full dir fails", "%t", os.Remove(dirPath) != nil)
	if err := os.RemoveAll(dirPath); err != nil {
		return fmt.Errorf("removing tree %s: %w", dirPath, err)
	}
	ok, err = exists(dirPath)
	if err != nil {
		return err
	}
	p.KV("tree gone", "%t", !ok)

	empty, err := env.Scratch("empty-dir")
	if err != nil {
		return err
	}
	if err := os.Mkdir(empty, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", empty, err)
	}
	p.KV("Remove on empty dir", "%v", os.Remove(empty))

	return nil
}
