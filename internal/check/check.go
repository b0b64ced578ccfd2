// Package check loads and evaluates expected-output checks for lab runs.
package check

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is a set of expectations for one lab, loaded from a YAML file.
type File struct {
	Ref          string        `yaml:"ref"`
	Description  string        `yaml:"description"`
	Expectations []Expectation `yaml:"expect"`

	// Path is the file the check was loaded from, set by Load.
	Path string `yaml:"-"`
}

// Expectation is a single assertion against a captured run. Exactly one of
// the kind fields must be set.
type Expectation struct {
	Name        string `yaml:"name"`
	Contains    string `yaml:"contains"`
	NotContains string `yaml:"not_contains"`
	Regex       string `yaml:"regex"`
	EqualsLine  string `yaml:"equals_line"`
	Artifact    string `yaml:"artifact"`

	re *regexp.Regexp // compiled during Load
}

// ExpectationResult records the outcome of a single expectation.
type ExpectationResult struct {
	Name   string
	Passed bool
	Detail string // empty when passed
}

// Result records the outcome of every expectation in one check file.
type Result struct {
	Ref          string
	Passed       bool
	Expectations []ExpectationResult
}

// Load parses and validates a single YAML check file. Regexes are compiled
// here so malformed patterns fail at load time, not mid-evaluation.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading check %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing check %s: %w", path, err)
	}
	f.Path = path

	if f.Ref == "" {
		return nil, fmt.Errorf("check %s: ref is required", path)
	}
	if len(f.Expectations) == 0 {
		return nil, fmt.Errorf("check %s: at least one expectation is required", path)
	}

	for i := range f.Expectations {
		e := &f.Expectations[i]
		if n := e.kinds(); n != 1 {
			return nil, fmt.Errorf("check %s: expectation %d: exactly one of contains, not_contains, regex, equals_line, or artifact must be set", path, i+1)
		}
		if e.Regex != "" {
			re, err := regexp.Compile(e.Regex)
			if err != nil {
				return nil, fmt.Errorf("check %s: expectation %d: invalid regex: %w", path, i+1, err)
			}
			e.re = re
		}
		if e.Name == "" {
			e.Name = e.defaultName()
		}
	}

	return &f, nil
}

// LoadDir loads every .yaml and .yml check file under dir, including
// chapter subdirectories.
func LoadDir(dir string) ([]*File, error) {
	var files []*File
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reading check directory %s: %w", dir, err)
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		f, err := Load(path)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no check files found in %s", dir)
	}

	return files, nil
}

// Evaluate runs every expectation in f against a captured run. Output
// expectations read the captured text; artifact expectations look under
// artifactDir.
func Evaluate(f *File, output, artifactDir string) *Result {
	res := &Result{Ref: f.Ref, Passed: true}
	for i := range f.Expectations {
		er := evalOne(&f.Expectations[i], output, artifactDir)
		res.Expectations = append(res.Expectations, er)
		if !er.Passed {
			res.Passed = false
		}
	}
	return res
}

func evalOne(e *Expectation, output, artifactDir string) ExpectationResult {
	er := ExpectationResult{Name: e.Name}
	if er.Name == "" {
		er.Name = e.defaultName()
	}

	switch {
	case e.Contains != "":
		if !strings.Contains(output, e.Contains) {
			er.Detail = fmt.Sprintf("output does not contain %q", e.Contains)
			return er
		}
	case e.NotContains != "":
		if strings.Contains(output, e.NotContains) {
			er.Detail = fmt.Sprintf("output contains %q", e.NotContains)
			return er
		}
	case e.Regex != "":
		re, err := e.compiled()
		if err != nil {
			er.Detail = fmt.Sprintf("invalid regex: %v", err)
			return er
		}
		if !re.MatchString(output) {
			er.Detail = fmt.Sprintf("output does not match /%s/", e.Regex)
			return er
		}
	case e.EqualsLine != "":
		if !hasLine(output, e.EqualsLine) {
			er.Detail = fmt.Sprintf("no output line equals %q", e.EqualsLine)
			return er
		}
	case e.Artifact != "":
		info, err := os.Stat(filepath.Join(artifactDir, e.Artifact))
		if err != nil {
			er.Detail = fmt.Sprintf("artifact %s not found", e.Artifact)
			return er
		}
		if info.Size() == 0 {
			er.Detail = fmt.Sprintf("artifact %s is empty", e.Artifact)
			return er
		}
	}

	er.Passed = true
	return er
}

// kinds counts how many of the kind fields are set.
func (e *Expectation) kinds() int {
	n := 0
	for _, v := range []string{e.Contains, e.NotContains, e.Regex, e.EqualsLine, e.Artifact} {
		if v != "" {
			n++
		}
	}
	return n
}

// compiled returns the regex compiled at load time, compiling on the spot
// for expectations constructed directly.
func (e *Expectation) compiled() (*regexp.Regexp, error) {
	if e.re != nil {
		return e.re, nil
	}
	return regexp.Compile(e.Regex)
}

func (e *Expectation) defaultName() string {
	switch {
	case e.Contains != "":
		return fmt.Sprintf("output contains %q", e.Contains)
	case e.NotContains != "":
		return fmt.Sprintf("output omits %q", e.NotContains)
	case e.Regex != "":
		return fmt.Sprintf("output matches /%s/", e.Regex)
	case e.EqualsLine != "":
		return fmt.Sprintf("some line equals %q", e.EqualsLine)
	case e.Artifact != "":
		return fmt.Sprintf("artifact %s exists", e.Artifact)
	}
	return "expectation"
}

func hasLine(output, want string) bool {
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimRight(line, "\r") == want {
			return true
		}
	}
	return false
}
