package fileio

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// writeLines writes lines to path, one per line, creating or truncating the
// file. The write goes through a buffered writer and is flushed before close.
func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// appendLine adds one line to the end of path, creating the file if needed.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}
	if _, err := fmt.Fprintln(f, line); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return f.Close()
}

// inventoryItem is a row in the formatted stock report.
type inventoryItem struct {
	Name  string
	Count int
	Price float64
}

// writeReport renders items as an aligned plain-text report with a total row.
func writeReport(path string, items []inventoryItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	fmt.Fprintf(f, "%-12s %5s %8s\n", "ITEM", "COUNT", "PRICE")
	var total float64
	for _, it := range items {
		fmt.Fprintf(f, "%-12s %5d %8.2f\n", it.Name, it.Count, it.Price)
		total += float64(it.Count) * it.Price
	}
	fmt.Fprintf(f, "%-12s %5s %8.2f\n", "TOTAL", "", total)
	return f.Close()
}

func runWriting(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	p.Section("Create and truncate")
	greeting, err := env.Scratch("greeting.txt")
	if err != nil {
		return err
	}
	if err := os.WriteFile(greeting, []byte("hello, file\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", greeting, err)
	}
	// A second create-style write replaces the old content entirely.
	if err := os.WriteFile(greeting, []byte("hello again\n"), 0o644); err != nil {
		return fmt.Errorf("rewriting %s: %w", greeting, err)
	}
	data, err := os.ReadFile(greeting)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", greeting, err)
	}
	p.KV("after two writes", "%q", string(data))

	p.Section("Multi-line")
	notes, err := env.Scratch("notes.txt")
	if err != nil {
		return err
	}
	lines := []string{"first thought", "second thought", "third thought"}
	if err := writeLines(notes, lines); err != nil {
		return err
	}
	info, err := os.Stat(notes)
	if err != nil {
		return fmt.Errorf("stat %s: %w", notes, err)
	}
	p.KV("lines written", "%d", len(lines))
	p.KV("file size", "%d bytes", info.Size())

	p.Section("Append")
	log, err := env.Scratch("activity.log")
	if err != nil {
		return err
	}
	for _, entry := range []string{"started", "worked", "stopped"} {
		if err := appendLine(log, entry); err != nil {
			return err
		}
	}
	// Appending never disturbs what is already there.
	if err := appendLine(log, "resumed"); err != nil {
		return err
	}
	data, err = os.ReadFile(log)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", log, err)
	}
	p.Printf("%s", data)

	p.Section("Formatted report")
	reportPath, err := env.Artifact("stock-report.txt")
	if err != nil {
		return err
	}
	items := []inventoryItem{
		{Name: "widgets", Count: 12, Price: 3.50},
		{Name: "sprockets", Count: 4, Price: 12.00},
		{Name: "cogs", Count: 31, Price: 0.85},
	}
	if err := writeReport(reportPath, items); err != nil {
		return err
	}
	data, err = os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", reportPath, err)
	}
	p.Printf("%s", data)
	p.KV("saved to", "%s", reportPath)

	return nil
}
