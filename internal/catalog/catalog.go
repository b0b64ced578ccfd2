// Package catalog assembles and validates the workbook's lab collection.
// The catalog is built from the chapter packages at startup; a broken
// registration fails fast instead of surfacing mid-run.
package catalog

import (
	"fmt"
	"strings"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labs/algos"
	"github.com/workbook-dev/workbook/labs/basics"
	"github.com/workbook-dev/workbook/labs/concur"
	"github.com/workbook-dev/workbook/labs/dbase"
	"github.com/workbook-dev/workbook/labs/debugging"
	"github.com/workbook-dev/workbook/labs/fileio"
	"github.com/workbook-dev/workbook/labs/frames"
	"github.com/workbook-dev/workbook/labs/mathx"
	"github.com/workbook-dev/workbook/labs/numerics"
	"github.com/workbook-dev/workbook/labs/plotting"
	"github.com/workbook-dev/workbook/labs/scicomp"
	"github.com/workbook-dev/workbook/labs/slices"
	"github.com/workbook-dev/workbook/labs/textre"
	"github.com/workbook-dev/workbook/labs/webapi"
)

// Catalog is an ordered, validated collection of labs keyed by their
// chapter/slug reference.
type Catalog struct {
	labs  []lab.Lab
	byRef map[string]lab.Lab
}

// New validates labs and builds a catalog preserving their order.
func New(labs []lab.Lab) (*Catalog, error) {
	c := &Catalog{byRef: make(map[string]lab.Lab, len(labs))}
	for _, l := range labs {
		if l.Chapter == "" || l.Slug == "" {
			return nil, fmt.Errorf("lab %q/%q: chapter and slug are required", l.Chapter, l.Slug)
		}
		if strings.Contains(l.Chapter, "/") || strings.Contains(l.Slug, "/") {
			return nil, fmt.Errorf("lab %s: chapter and slug must not contain '/'", l.Ref())
		}
		if l.Title == "" {
			return nil, fmt.Errorf("lab %s: title is required", l.Ref())
		}
		if l.Run == nil {
			return nil, fmt.Errorf("lab %s: run function is required", l.Ref())
		}
		ref := l.Ref()
		if _, dup := c.byRef[ref]; dup {
			return nil, fmt.Errorf("lab %s: duplicate reference", ref)
		}
		c.byRef[ref] = l
		c.labs = append(c.labs, l)
	}
	return c, nil
}

// Default returns the catalog of every shipped chapter, in the order the
// chapters are meant to be worked through.
func Default() (*Catalog, error) {
	var all []lab.Lab
	for _, chapter := range [][]lab.Lab{
		basics.Labs(),
		mathx.Labs(),
		slices.Labs(),
		fileio.Labs(),
		numerics.Labs(),
		plotting.Labs(),
		frames.Labs(),
		scicomp.Labs(),
		algos.Labs(),
		dbase.Labs(),
		webapi.Labs(),
		debugging.Labs(),
		textre.Labs(),
		concur.Labs(),
	} {
		all = append(all, chapter...)
	}
	return New(all)
}

// All returns every lab in catalog order.
func (c *Catalog) All() []lab.Lab {
	out := make([]lab.Lab, len(c.labs))
	copy(out, c.labs)
	return out
}

// Len returns the number of labs in the catalog.
func (c *Catalog) Len() int {
	return len(c.labs)
}

// Chapters returns the chapter names in catalog order, each once.
func (c *Catalog) Chapters() []string {
	var names []string
	seen := make(map[string]bool)
	for _, l := range c.labs {
		if !seen[l.Chapter] {
			seen[l.Chapter] = true
			names = append(names, l.Chapter)
		}
	}
	return names
}

// Chapter returns the labs of one chapter in catalog order.
func (c *Catalog) Chapter(name string) ([]lab.Lab, error) {
	var out []lab.Lab
	for _, l := range c.labs {
		if l.Chapter == name {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("chapter %q not found in catalog", name)
	}
	return out, nil
}

// Resolve returns the lab named by a chapter/slug reference.
func (c *Catalog) Resolve(ref string) (lab.Lab, error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return lab.Lab{}, fmt.Errorf("invalid lab reference %q (expected chapter/slug)", ref)
	}
	l, ok := c.byRef[ref]
	if !ok {
		return lab.Lab{}, fmt.Errorf("lab %q not found in catalog", ref)
	}
	return l, nil
}
