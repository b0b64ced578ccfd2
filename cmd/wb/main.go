// wb is the workbook CLI — it runs labs, renders notes, and checks output.
//
// Usage:
//
//	wb list [chapter]            List labs, optionally one chapter's
//	wb chapters                  List chapters with titles and lab counts
//	wb run <chapter/slug>        Run one lab
//	wb run <chapter>             Run every lab in a chapter
//	wb run all                   Run the whole workbook
//	wb notes <chapter>           Render a chapter's notes in the terminal
//	wb check [ref|chapter]       Run labs and evaluate expected-output checks
//	wb datasets                  List sample datasets and their status
//	wb datasets fetch <name>     Download a remote dataset
//	wb eval <file>               Interpret a scratch file
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/workbook-dev/workbook/internal/catalog"
	"github.com/workbook-dev/workbook/internal/check"
	"github.com/workbook-dev/workbook/internal/datasets"
	"github.com/workbook-dev/workbook/internal/eval"
	"github.com/workbook-dev/workbook/internal/notes"
	"github.com/workbook-dev/workbook/internal/runner"
	"github.com/workbook-dev/workbook/internal/workbook"
	"github.com/workbook-dev/workbook/labkit/lab"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cmd, args, configPath := parseArgs()

	if cmd == "" || cmd == "help" || cmd == "--help" || cmd == "-h" {
		printUsage()
		if cmd == "" {
			os.Exit(1)
		}
		return
	}

	var err error
	switch cmd {
	case "version", "--version", "-v":
		fmt.Printf("wb version %s\n", version)
		return
	case "list":
		err = cmdList(args)
	case "chapters":
		err = cmdChapters(configPath)
	case "run":
		err = cmdRun(configPath, args)
	case "notes":
		err = cmdNotes(configPath, args)
	case "check":
		err = cmdCheck(configPath, args)
	case "datasets":
		err = cmdDatasets(configPath, args)
	case "eval":
		err = cmdEval(args)
	default:
		fmt.Fprintf(os.Stderr, "wb: unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "wb: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs extracts the subcommand, positional args, and --config path from os.Args.
func parseArgs() (command string, args []string, configPath string) {
	configPath = workbook.DefaultPath
	if p := os.Getenv("WB_CONFIG"); p != "" {
		configPath = p
	}

	raw := os.Args[1:]
	var filtered []string
	for i := 0; i < len(raw); i++ {
		if raw[i] == "--config" && i+1 < len(raw) {
			configPath = raw[i+1]
			i++
			continue
		}
		filtered = append(filtered, raw[i])
	}

	if len(filtered) == 0 {
		return "", nil, configPath
	}
	return filtered[0], filtered[1:], configPath
}

func printUsage() {
	fmt.Printf(`wb — study workbook CLI %s

Usage:
  wb [--config <path>] <command> [arguments]

Commands:
  list [chapter]             List labs, optionally one chapter's
  chapters                   List chapters with titles and lab counts
  run <chapter/slug>         Run one lab
  run <chapter>              Run every lab in a chapter
  run all                    Run the whole workbook
  notes <chapter>            Render a chapter's notes in the terminal
  check [ref|chapter]        Run labs and evaluate expected-output checks
  datasets                   List sample datasets and their status
  datasets fetch <name>      Download a remote dataset (checksum verified)
  eval <file>                Interpret a scratch file (stdlib imports only)
  version                    Print the wb version

Options:
  --config <path>   Path to config (default: ./workbook.yaml)

Environment:
  WB_CONFIG         Override default config path
`, version)
}

// ---------------------------------------------------------------------------
// wb list
// ---------------------------------------------------------------------------

func cmdList(args []string) error {
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	labs := cat.All()
	if len(args) > 0 {
		labs, err = cat.Chapter(args[0])
		if err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("  %-24s %-36s %s\n", "REF", "TITLE", "SUMMARY")
	fmt.Printf("  %-24s %-36s %s\n", "---", "-----", "-------")
	for _, l := range labs {
		fmt.Printf("  %-24s %-36s %s\n", l.Ref(), l.Title, l.Summary)
	}
	fmt.Println()
	fmt.Printf("%d labs.\n", len(labs))
	return nil
}

// ---------------------------------------------------------------------------
// wb chapters
// ---------------------------------------------------------------------------

func cmdChapters(configPath string) error {
	cfg, err := workbook.Load(configPath)
	if err != nil {
		return err
	}
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %-12s %-28s %s\n", "CHAPTER", "TITLE", "LABS")
	fmt.Printf("  %-12s %-28s %s\n", "-------", "-----", "----")
	for _, name := range cat.Chapters() {
		title := ""
		if ch, err := cfg.Chapter(name); err == nil {
			title = ch.Title
		}
		labs, _ := cat.Chapter(name)
		fmt.Printf("  %-12s %-28s %d\n", name, title, len(labs))
	}
	fmt.Println()
	return nil
}

// ---------------------------------------------------------------------------
// wb run
// ---------------------------------------------------------------------------

func cmdRun(configPath string, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: wb run <chapter/slug>|<chapter>|all")
	}

	cfg, err := workbook.Load(configPath)
	if err != nil {
		return err
	}
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	labs, err := selectLabs(cat, args[0])
	if err != nil {
		return err
	}

	r := runner.New(runner.Options{
		ArtifactDir: cfg.Settings.ArtifactDir,
		DataDir:     cfg.Settings.DataDir,
		ScratchDir:  cfg.Settings.ScratchDir,
		Tee:         os.Stdout,
		Verbose:     cfg.Settings.Verbose,
	})

	passed, failed := 0, 0
	for _, l := range labs {
		fmt.Printf("\n=== %s — %s ===\n", l.Ref(), l.Title)

		res, err := r.Run(context.Background(), l)
		if err != nil {
			return err
		}
		if res.Err != nil {
			fmt.Printf("\n  FAIL  %s — %v\n", res.Ref, res.Err)
			failed++
			continue
		}
		passed++

		if len(res.Artifacts) > 0 {
			dir := runner.ArtifactDir(cfg.Settings.ArtifactDir, l)
			fmt.Println()
			for _, a := range res.Artifacts {
				fmt.Printf("  saved %s\n", filepath.Join(dir, a))
			}
		}
	}

	if len(labs) > 1 {
		fmt.Printf("\nResults: %d passed, %d failed, %d total\n", passed, failed, passed+failed)
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

// selectLabs resolves a run target: a chapter/slug ref, a chapter name, or "all".
func selectLabs(cat *catalog.Catalog, target string) ([]lab.Lab, error) {
	if target == "all" {
		return cat.All(), nil
	}
	if strings.Contains(target, "/") {
		l, err := cat.Resolve(target)
		if err != nil {
			return nil, err
		}
		return []lab.Lab{l}, nil
	}
	return cat.Chapter(target)
}

// ---------------------------------------------------------------------------
// wb notes
// ---------------------------------------------------------------------------

func cmdNotes(configPath string, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: wb notes <chapter>")
	}

	cfg, err := workbook.Load(configPath)
	if err != nil {
		return err
	}
	ch, err := cfg.Chapter(args[0])
	if err != nil {
		return err
	}

	rendered, err := notes.RenderFile(filepath.Join(cfg.Settings.NotesDir, ch.Notes), 0)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

// ---------------------------------------------------------------------------
// wb check
// ---------------------------------------------------------------------------

func cmdCheck(configPath string, args []string) error {
	cfg, err := workbook.Load(configPath)
	if err != nil {
		return err
	}
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	files, err := check.LoadDir(cfg.Settings.ChecksDir)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		target := args[0]
		var keep []*check.File
		for _, f := range files {
			if f.Ref == target || strings.HasPrefix(f.Ref, target+"/") {
				keep = append(keep, f)
			}
		}
		if len(keep) == 0 {
			return fmt.Errorf("no checks found for %q", target)
		}
		files = keep
	}

	r := runner.New(runner.Options{
		ArtifactDir: cfg.Settings.ArtifactDir,
		DataDir:     cfg.Settings.DataDir,
		ScratchDir:  cfg.Settings.ScratchDir,
		Verbose:     cfg.Settings.Verbose,
	})

	totalPassed := 0
	totalFailed := 0
	for _, f := range files {
		fmt.Printf("\n--- %s ---\n", f.Ref)
		if f.Description != "" {
			fmt.Printf("    %s\n", f.Description)
		}
		fmt.Println()

		l, err := cat.Resolve(f.Ref)
		if err != nil {
			fmt.Printf("  ERROR: %v\n", err)
			totalFailed++
			continue
		}

		res, err := r.Run(context.Background(), l)
		if err != nil {
			return err
		}
		if res.Err != nil {
			fmt.Printf("  ERROR: lab failed: %v\n", res.Err)
			totalFailed++
			continue
		}

		cr := check.Evaluate(f, res.Output, runner.ArtifactDir(cfg.Settings.ArtifactDir, l))
		for _, er := range cr.Expectations {
			if er.Passed {
				fmt.Printf("  PASS  %s\n", er.Name)
				totalPassed++
			} else {
				fmt.Printf("  FAIL  %s\n", er.Name)
				fmt.Printf("        %s\n", er.Detail)
				totalFailed++
			}
		}
	}

	fmt.Printf("\nResults: %d passed, %d failed, %d total\n", totalPassed, totalFailed, totalPassed+totalFailed)

	if totalFailed > 0 {
		os.Exit(1)
	}
	return nil
}

// ---------------------------------------------------------------------------
// wb datasets
// ---------------------------------------------------------------------------

func cmdDatasets(configPath string, args []string) error {
	cfg, err := workbook.Load(configPath)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if args[0] != "fetch" || len(args) < 2 {
			return fmt.Errorf("usage: wb datasets [fetch <name>]")
		}
		name := args[1]
		e, ok := datasets.Lookup(name)
		if !ok {
			return fmt.Errorf("dataset %q not found in catalog", name)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := datasets.Fetch(ctx, os.Stdout, e, cfg.Settings.DataDir, filepath.Dir(cfg.Settings.DataDir)); err != nil {
			return fmt.Errorf("fetching %s: %w", name, err)
		}
		fmt.Printf("Dataset %s ready.\n", name)
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-12s %-9s %-8s %s\n", "NAME", "SOURCE", "STATUS", "DESCRIPTION")
	fmt.Printf("  %-12s %-9s %-8s %s\n", "----", "------", "------", "-----------")
	for _, e := range datasets.Catalog() {
		source := "embedded"
		if !e.Embedded() {
			source = "remote"
		}
		fmt.Printf("  %-12s %-9s %-8s %s\n", e.Name, source, datasets.Status(cfg.Settings.DataDir, e), e.Description)
	}
	fmt.Println()
	fmt.Println("Embedded datasets are written to the data dir automatically before each run.")
	return nil
}

// ---------------------------------------------------------------------------
// wb eval
// ---------------------------------------------------------------------------

func cmdEval(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: wb eval <file.go>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), eval.DefaultTimeout)
	defer cancel()

	res, err := eval.New().RunFile(ctx, args[0])
	if res != nil && res.Output != "" {
		fmt.Print(res.Output)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nDone in %s.\n", res.Duration.Round(time.Millisecond))
	return nil
}
