// Command verify-index validates that the workbook's moving parts agree:
// every catalog chapter has config metadata and notes, every check file
// targets a real lab, the embedded datasets materialize, and INDEX.md
// lists every lab.
//
// Usage:
//
//	go run ./cmd/verify-index
//	go run ./cmd/verify-index --index docs/INDEX.md
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/workbook-dev/workbook/internal/catalog"
	"github.com/workbook-dev/workbook/internal/check"
	"github.com/workbook-dev/workbook/internal/datasets"
	"github.com/workbook-dev/workbook/internal/workbook"
)

// checkResult stores the outcome of a single check.
type checkResult struct {
	Name   string
	Passed bool
	Detail string
}

func main() {
	configPath := flag.String("config", workbook.DefaultPath, "path to workbook.yaml")
	indexPath := flag.String("index", "INDEX.md", "path to INDEX.md")
	flag.Parse()

	results := run(*configPath, *indexPath)
	printResults(results)

	for _, r := range results {
		if !r.Passed {
			os.Exit(1)
		}
	}
}

// run performs all validation checks and returns the results.
func run(configPath, indexPath string) []checkResult {
	var results []checkResult

	// 1. Catalog builds
	cat, err := catalog.Default()
	if err != nil {
		return append(results, checkResult{"Catalog builds", false, err.Error()})
	}
	results = append(results, checkResult{"Catalog builds", true, fmt.Sprintf("%d labs", cat.Len())})

	// 2. Config loads
	cfg, err := workbook.Load(configPath)
	if err != nil {
		return append(results, checkResult{"Config loads", false, err.Error()})
	}
	results = append(results, checkResult{"Config loads", true, configPath})

	// 3. Per-chapter metadata and notes
	for _, name := range cat.Chapters() {
		ch, err := cfg.Chapter(name)
		if err != nil {
			results = append(results, checkResult{fmt.Sprintf("[%s] titled in config", name), false, err.Error()})
			continue
		}
		results = append(results, checkResult{fmt.Sprintf("[%s] titled in config", name), true, ch.Title})

		label := fmt.Sprintf("[%s] notes present", name)
		path := filepath.Join(cfg.Settings.NotesDir, ch.Notes)
		info, err := os.Stat(path)
		switch {
		case err != nil:
			results = append(results, checkResult{label, false, path + " not found"})
		case info.Size() == 0:
			results = append(results, checkResult{label, false, path + " is empty"})
		default:
			results = append(results, checkResult{label, true, path})
		}
	}

	// 4. Config chapters all exist in the catalog
	known := make(map[string]bool)
	for _, name := range cat.Chapters() {
		known[name] = true
	}
	var extra []string
	for _, name := range cfg.ChapterNames() {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		results = append(results, checkResult{"Config chapters match catalog", false, "unknown: " + strings.Join(extra, ", ")})
	} else {
		results = append(results, checkResult{"Config chapters match catalog", true, fmt.Sprintf("%d chapters", len(cfg.Chapters))})
	}

	// 5. Check files load and target real labs
	files, err := check.LoadDir(cfg.Settings.ChecksDir)
	if err != nil {
		results = append(results, checkResult{"Check files load", false, err.Error()})
	} else {
		results = append(results, checkResult{"Check files load", true, fmt.Sprintf("%d files", len(files))})

		var unresolved []string
		for _, f := range files {
			if _, err := cat.Resolve(f.Ref); err != nil {
				unresolved = append(unresolved, f.Ref)
			}
		}
		if len(unresolved) > 0 {
			results = append(results, checkResult{"Check refs resolve", false, "unknown: " + strings.Join(unresolved, ", ")})
		} else {
			results = append(results, checkResult{"Check refs resolve", true, fmt.Sprintf("%d refs", len(files))})
		}
	}

	// 6. Embedded datasets materialize
	dataDir, err := os.MkdirTemp("", "wb-verify-")
	if err != nil {
		results = append(results, checkResult{"Datasets materialize", false, err.Error()})
		return results
	}
	defer os.RemoveAll(dataDir)
	if err := datasets.Materialize(dataDir); err != nil {
		results = append(results, checkResult{"Datasets materialize", false, err.Error()})
	} else {
		entries, _ := os.ReadDir(dataDir)
		results = append(results, checkResult{"Datasets materialize", true, fmt.Sprintf("%d files", len(entries))})
	}

	// 7. INDEX.md lists every lab
	data, err := os.ReadFile(indexPath)
	if err != nil {
		return append(results, checkResult{"Index readable", false, err.Error()})
	}
	results = append(results, checkResult{"Index readable", true, indexPath})

	index := string(data)
	var missing []string
	for _, l := range cat.All() {
		if !strings.Contains(index, "`"+l.Ref()+"`") {
			missing = append(missing, l.Ref())
		}
	}
	if len(missing) > 0 {
		results = append(results, checkResult{"Index lists every lab", false, "missing: " + strings.Join(missing, ", ")})
	} else {
		results = append(results, checkResult{"Index lists every lab", true, fmt.Sprintf("%d labs", cat.Len())})
	}

	return results
}

func printResults(results []checkResult) {
	passed, failed := 0, 0
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
			failed++
		} else {
			passed++
		}
		if r.Detail != "" {
			fmt.Printf("  %s  %s — %s\n", status, r.Name, r.Detail)
		} else {
			fmt.Printf("  %s  %s\n", status, r.Name)
		}
	}
	fmt.Printf("\n%d passed, %d failed\n", passed, failed)
}
