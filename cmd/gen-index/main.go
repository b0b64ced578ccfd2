// Command gen-index regenerates INDEX.md from the lab catalog.
// It is run after adding or renaming labs so the index stays in step with
// the chapter packages.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/workbook-dev/workbook/internal/catalog"
	"github.com/workbook-dev/workbook/internal/workbook"
)

// nowFunc is overridden in tests to produce deterministic dates.
var nowFunc = time.Now

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gen-index: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gen-index", flag.ContinueOnError)
	out := fs.String("out", "INDEX.md", "path to the generated index")
	configPath := fs.String("config", workbook.DefaultPath, "path to workbook.yaml")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1. Load config for chapter titles
	cfg, err := workbook.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// 2. Build the catalog
	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	// 3. Render and write
	content := renderIndex(cfg, cat)
	if err := os.WriteFile(*out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}

	fmt.Printf("Wrote %s: %d chapters, %d labs\n", *out, len(cat.Chapters()), cat.Len())
	return nil
}

// renderIndex produces the full INDEX.md contents.
func renderIndex(cfg *workbook.Config, cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("# Workbook index\n\n")
	fmt.Fprintf(&b, "Generated by gen-index on %s. Edit the chapter packages, not this file.\n\n",
		nowFunc().UTC().Format("2006-01-02"))
	fmt.Fprintf(&b, "%d chapters, %d labs.\n", len(cat.Chapters()), cat.Len())

	for _, name := range cat.Chapters() {
		title := name
		if ch, err := cfg.Chapter(name); err == nil {
			title = ch.Title
		}
		fmt.Fprintf(&b, "\n## %s — %s\n\n", name, title)
		b.WriteString("| Ref | Title | Summary |\n")
		b.WriteString("|-----|-------|---------|\n")
		labs, _ := cat.Chapter(name)
		for _, l := range labs {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", l.Ref(), l.Title, l.Summary)
		}
	}

	return b.String()
}
