// Package eval interprets learner scratch files in-process.
//
// Scratch files are small package-main programs kept under exercises/. They
// run through the yaegi interpreter rather than the go toolchain, so a
// half-finished exercise can be tried instantly. Only an allowlisted set of
// standard library packages may be imported.
package eval

import (
	"bytes"
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// DefaultTimeout bounds a single scratch-file run.
const DefaultTimeout = 10 * time.Second

// Interpreter runs scratch files with an import allowlist.
type Interpreter struct {
	allowed map[string]bool
}

// Result holds what a scratch file printed and how long it ran.
type Result struct {
	Output   string
	Duration time.Duration
}

// New returns an Interpreter allowing the standard library packages the
// workbook chapters teach. Filesystem, network, and exec packages stay out.
func New() *Interpreter {
	return &Interpreter{
		allowed: map[string]bool{
			"bytes":         true,
			"encoding/json": true,
			"errors":        true,
			"fmt":           true,
			"maps":          true,
			"math":          true,
			"math/rand":     true,
			"regexp":        true,
			"slices":        true,
			"sort":          true,
			"strconv":       true,
			"strings":       true,
			"time":          true,
			"unicode":       true,
			"unicode/utf8":  true,
		},
	}
}

// RunFile reads and runs a scratch file.
func (ip *Interpreter) RunFile(ctx context.Context, path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scratch file %s: %w", path, err)
	}
	return ip.RunSource(ctx, string(src))
}

// RunSource validates and runs scratch-file source. The program must define
// func main; bare snippets without a package clause are wrapped into one.
// Output captured before a failure or timeout is preserved in the result.
func (ip *Interpreter) RunSource(ctx context.Context, src string) (*Result, error) {
	full := wrapSource(src)

	if err := ip.validateImports(full); err != nil {
		return nil, err
	}

	out := &syncBuffer{}
	i := interp.New(interp.Options{Stdout: out, Stderr: out})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("loading stdlib symbols: %w", err)
	}

	start := time.Now()
	if _, err := i.Eval(full); err != nil {
		return nil, fmt.Errorf("evaluating scratch file: %w", err)
	}

	v, err := i.Eval("main.main")
	if err != nil {
		return nil, fmt.Errorf("scratch file must define func main: %w", err)
	}
	mainFn, ok := v.Interface().(func())
	if !ok {
		return nil, fmt.Errorf("main has the wrong signature (expected func())")
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("scratch file panicked: %v", r)
				return
			}
			done <- nil
		}()
		mainFn()
	}()

	select {
	case err := <-done:
		res := &Result{Output: out.String(), Duration: time.Since(start)}
		if err != nil {
			return res, err
		}
		return res, nil
	case <-ctx.Done():
		res := &Result{Output: out.String(), Duration: time.Since(start)}
		return res, fmt.Errorf("evaluation timed out: %w", ctx.Err())
	}
}

// validateImports rejects any import outside the allowlist before the
// interpreter sees the code.
func (ip *Interpreter) validateImports(src string) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "scratch.go", src, parser.ImportsOnly)
	if err != nil {
		return fmt.Errorf("parsing imports: %w", err)
	}
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return fmt.Errorf("import %s: %w", imp.Path.Value, err)
		}
		if !ip.allowed[path] {
			return fmt.Errorf("import %q is not allowed in scratch files (allowed: %s)",
				path, strings.Join(ip.allowedList(), ", "))
		}
	}
	return nil
}

func (ip *Interpreter) allowedList() []string {
	pkgs := make([]string, 0, len(ip.allowed))
	for pkg := range ip.allowed {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}

func wrapSource(src string) string {
	if strings.Contains(src, "package main") {
		return src
	}
	return "package main\n\n" + src
}

// syncBuffer guards output writes. Interpreted code keeps running on its own
// goroutine after a timeout, so reads and writes must be locked.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.b.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.b.String()
}
