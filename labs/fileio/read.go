package fileio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// readLines returns the lines of path without trailing newlines.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// readChunk returns at most n bytes from the start of path.
func readChunk(path string, n int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return string(buf[:read]), nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(buf), nil
}

// fileStats summarizes a text file the way wc does.
type fileStats struct {
	Lines int
	Words int
	Bytes int
}

// statsOf counts lines, whitespace-separated words, and bytes in path.
func statsOf(path string) (fileStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileStats{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var st fileStats
	st.Bytes = len(data)
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		st.Lines++
		st.Words += len(strings.Fields(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fileStats{}, fmt.Errorf("scanning %s: %w", path, err)
	}
	return st, nil
}

func runReading(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	// The lab provisions its own input so it can run standalone.
	poem, err := env.Scratch("poem.txt")
	if err != nil {
		return err
	}
	text := []string{
		"The file begins with morning light",
		"and bytes march on in ordered rows",
		"a scanner walks them left to right",
		"until the final newline goes",
	}
	if err := writeLines(poem, text); err != nil {
		return err
	}

	p.Section("Whole file at once")
	data, err := os.ReadFile(poem)
	if err != nil {
		return fmt.Errorf("reading %s: %w", poem, err)
	}
	p.KV("total bytes", "%d", len(data))
	p.Printf("%s", data)

	p.Section("Line by line")
	lines, err := readLines(poem)
	if err != nil {
		return err
	}
	for i, line := range lines {
		p.Printf("  line %d: %s\n", i+1, line)
	}

	p.Section("Partial reads")
	head, err := readChunk(poem, 19)
	if err != nil {
		return err
	}
	p.KV("first 19 bytes", "%q", head)
	tiny, err := readChunk(poem, 5)
	if err != nil {
		return err
	}
	p.KV("first 5 bytes", "%q", tiny)

	p.Section("Counts")
	st, err := statsOf(poem)
	if err != nil {
		return err
	}
	p.KV("lines", "%d", st.Lines)
	p.KV("words", "%d", st.Words)
	p.KV("bytes", "%d", st.Bytes)

	return nil
}
