// Package report formats lesson output: section headings, aligned key-value
// rows, and small tables. Every lab writes through a Printer so its output
// lands in whatever destination the runner chose.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes formatted lesson output to a single destination.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Section writes a section heading. Labs use one per demonstrated idea.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.w, "\n--- %s ---\n", title)
}

// Printf writes formatted text, exactly like fmt.Printf.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Println writes its arguments followed by a newline.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// KV writes an aligned label/value row.
func (p *Printer) KV(label string, format string, args ...any) {
	fmt.Fprintf(p.w, "  %-28s %s\n", label, fmt.Sprintf(format, args...))
}

// Table writes rows as aligned columns with a dashed rule under the header.
// Column widths are computed from the widest cell in each column.
func (p *Printer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	p.tableRow(headers, widths)
	rule := make([]string, len(headers))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	p.tableRow(rule, widths)
	for _, row := range rows {
		p.tableRow(row, widths)
	}
}

func (p *Printer) tableRow(cells []string, widths []int) {
	var b strings.Builder
	b.WriteString(" ")
	for i, cell := range cells {
		w := len(cell)
		if i < len(widths) {
			w = widths[i]
		}
		fmt.Fprintf(&b, " %-*s", w, cell)
	}
	fmt.Fprintln(p.w, strings.TrimRight(b.String(), " "))
}
