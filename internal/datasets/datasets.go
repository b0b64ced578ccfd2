// Package datasets manages the workbook's sample data: small CSVs embedded in
// the binary and materialized into the data dir on demand, plus optional
// remote datasets fetched over HTTP with checksum verification and a lock file.
package datasets

import (
	"context"
	"crypto/sha256"
	"embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"
)

//go:embed files/*.csv
var embedded embed.FS

// Entry describes one dataset in the catalog.
type Entry struct {
	Name        string // catalog key, e.g. "students"
	File        string // filename written into the data dir
	Description string
	URL         string // empty for embedded datasets
	SHA256      string // "sha256:<hex>" of the file content
	Size        int64
}

// Embedded reports whether the entry ships inside the binary.
func (e Entry) Embedded() bool { return e.URL == "" }

var descriptions = map[string]string{
	"students": "Eight students with age, city, and final grade",
	"weather":  "Summer temperature and rainfall for three Baltic capitals",
	"workouts": "Exercise log with deliberate gaps, bad rows, and duplicates",
}

// remote datasets are listed by hand; embedded ones are derived from the
// files directory at startup.
var remote = []Entry{
	{
		Name:        "airquality",
		File:        "airquality.csv",
		Description: "Fine-particle and NO2 levels for four cities",
		URL:         "https://datasets.workbook.dev/airquality.csv",
		SHA256:      "sha256:44b1e58136e5078fd8bd6488cfc5598a569720343ac3c7fa7069c085a4f02fab",
		Size:        105,
	},
}

var catalog = buildCatalog()

func buildCatalog() []Entry {
	entries, err := embedded.ReadDir("files")
	if err != nil {
		// The files directory is compiled in; failing to read it means the
		// binary itself is broken.
		panic(fmt.Sprintf("datasets: reading embedded files: %v", err))
	}

	var all []Entry
	for _, de := range entries {
		data, err := embedded.ReadFile("files/" + de.Name())
		if err != nil {
			panic(fmt.Sprintf("datasets: reading embedded %s: %v", de.Name(), err))
		}
		name := de.Name()[:len(de.Name())-len(filepath.Ext(de.Name()))]
		all = append(all, Entry{
			Name:        name,
			File:        de.Name(),
			Description: descriptions[name],
			SHA256:      digest(data),
			Size:        int64(len(data)),
		})
	}
	all = append(all, remote...)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Catalog returns every known dataset sorted by name.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a dataset by catalog name.
func Lookup(name string) (Entry, bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// digest returns the canonical checksum string for data.
func digest(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// Status reports how a dataset looks on disk: "missing", "stale" when the
// checksum no longer matches the catalog, or "ok".
func Status(dir string, e Entry) string {
	data, err := os.ReadFile(filepath.Join(dir, e.File))
	if err != nil {
		return "missing"
	}
	if digest(data) != e.SHA256 {
		return "stale"
	}
	return "ok"
}

// Materialize writes every embedded dataset into dir. Files already present
// with a matching checksum are left alone, so repeated calls are cheap and a
// locally corrupted file is repaired.
func Materialize(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	for _, e := range catalog {
		if !e.Embedded() {
			continue
		}
		data, err := embedded.ReadFile("files/" + e.File)
		if err != nil {
			return fmt.Errorf("reading embedded %s: %w", e.File, err)
		}
		path := filepath.Join(dir, e.File)
		if existing, err := os.ReadFile(path); err == nil && digest(existing) == e.SHA256 {
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// Fetch downloads a remote dataset into dataDir, verifies its checksum, and
// records the fetch in the lock file under lockDir. A file already present
// and verified is kept as-is.
func Fetch(ctx context.Context, out io.Writer, e Entry, dataDir, lockDir string) error {
	if e.Embedded() {
		return fmt.Errorf("dataset %s is embedded; nothing to fetch", e.Name)
	}

	path := filepath.Join(dataDir, e.File)
	if data, err := os.ReadFile(path); err == nil && digest(data) == e.SHA256 {
		fmt.Fprintf(out, "  %s already present and verified\n", e.File)
		return nil
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dataDir, err)
	}

	fmt.Fprintf(out, "  Downloading %s (%d bytes)...\n", e.File, e.Size)

	client := &http.Client{Timeout: 2 * time.Minute}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.URL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("downloading dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading dataset body: %w", err)
	}

	fmt.Fprintf(out, "  Verifying checksum...\n")
	if actual := digest(data); actual != e.SHA256 {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", e.SHA256, actual)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	lock, err := loadOrInitLock(lockDir)
	if err != nil {
		return err
	}
	lock.Record(e)
	if err := SaveLock(lockDir, lock); err != nil {
		return err
	}

	fmt.Fprintf(out, "  Fetched %s -> %s\n", e.Name, path)
	return nil
}
