// Package notes renders chapter notes as styled Markdown for the terminal.
package notes

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

const defaultWidth = 100

// Render converts Markdown to styled terminal text. On any rendering
// problem the raw Markdown comes back instead, so notes always display.
func Render(markdown string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// RenderFile reads a notes file and renders its contents.
func RenderFile(path string, width int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading notes %s: %w", path, err)
	}
	return Render(string(data), width), nil
}
