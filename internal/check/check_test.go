package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCheck(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

const sampleCheck = `ref: mathx/bmi
description: BMI calculator output
expect:
  - contains: "BMI"
  - name: category line present
    regex: 'category:\s+\w+'
  - not_contains: "panic"
  - equals_line: "--- BMI calculator ---"
`

func TestLoad(t *testing.T) {
	path := writeCheck(t, t.TempDir(), "mathx/bmi.yaml", sampleCheck)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Ref != "mathx/bmi" {
		t.Errorf("ref = %q, expected mathx/bmi", f.Ref)
	}
	if f.Path != path {
		t.Errorf("path = %q, expected %q", f.Path, path)
	}
	if len(f.Expectations) != 4 {
		t.Fatalf("expected 4 expectations, got %d", len(f.Expectations))
	}
	if f.Expectations[0].Name != `output contains "BMI"` {
		t.Errorf("default name = %q", f.Expectations[0].Name)
	}
	if f.Expectations[1].Name != "category line present" {
		t.Errorf("explicit name = %q", f.Expectations[1].Name)
	}
	if f.Expectations[1].re == nil {
		t.Error("regex was not compiled at load time")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]struct {
		content string
		wantErr string
	}{
		"missing ref": {
			content: "expect:\n  - contains: x\n",
			wantErr: "ref is required",
		},
		"no expectations": {
			content: "ref: mathx/bmi\n",
			wantErr: "at least one expectation",
		},
		"no kind": {
			content: "ref: mathx/bmi\nexpect:\n  - name: empty\n",
			wantErr: "exactly one of",
		},
		"two kinds": {
			content: "ref: mathx/bmi\nexpect:\n  - contains: x\n    regex: y\n",
			wantErr: "exactly one of",
		},
		"bad regex": {
			content: "ref: mathx/bmi\nexpect:\n  - regex: '['\n",
			wantErr: "invalid regex",
		},
		"bad yaml": {
			content: "ref: [unterminated\n",
			wantErr: "parsing check",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeCheck(t, t.TempDir(), "bad.yaml", tc.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeCheck(t, dir, "mathx/bmi.yaml", sampleCheck)
	writeCheck(t, dir, "slices/compare.yml", "ref: slices/compare\nexpect:\n  - contains: equal\n")
	writeCheck(t, dir, "README.md", "not a check file\n")

	files, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 check files, got %d", len(files))
	}
	if files[0].Ref != "mathx/bmi" || files[1].Ref != "slices/compare" {
		t.Errorf("unexpected refs: %q, %q", files[0].Ref, files[1].Ref)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no check files found") {
		t.Fatalf("expected a no-files error, got %v", err)
	}
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err == nil || !strings.Contains(err.Error(), "reading check directory") {
		t.Fatalf("expected a read error, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	artifactDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(artifactDir, "figure.png"), []byte("png bytes"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	if err := os.WriteFile(filepath.Join(artifactDir, "empty.csv"), nil, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	output := "--- BMI calculator ---\n  BMI                          22.86\n  category:                    normal\n"

	f := &File{
		Ref: "mathx/bmi",
		Expectations: []Expectation{
			{Contains: "BMI"},
			{NotContains: "panic"},
			{Regex: `category:\s+normal`},
			{EqualsLine: "--- BMI calculator ---"},
			{Artifact: "figure.png"},
		},
	}

	res := Evaluate(f, output, artifactDir)
	if !res.Passed {
		for _, er := range res.Expectations {
			if !er.Passed {
				t.Errorf("%s: %s", er.Name, er.Detail)
			}
		}
		t.Fatal("expected every expectation to pass")
	}
	if len(res.Expectations) != 5 {
		t.Fatalf("expected 5 results, got %d", len(res.Expectations))
	}

	failing := &File{
		Ref: "mathx/bmi",
		Expectations: []Expectation{
			{Contains: "missing text"},
			{NotContains: "BMI"},
			{Regex: `category:\s+obese`},
			{EqualsLine: "BMI"},
			{Artifact: "missing.png"},
			{Artifact: "empty.csv"},
		},
	}

	res = Evaluate(failing, output, artifactDir)
	if res.Passed {
		t.Fatal("expected the checks to fail")
	}
	wantDetails := []string{
		`output does not contain "missing text"`,
		`output contains "BMI"`,
		`output does not match /category:\s+obese/`,
		`no output line equals "BMI"`,
		"artifact missing.png not found",
		"artifact empty.csv is empty",
	}
	for i, want := range wantDetails {
		if res.Expectations[i].Passed {
			t.Errorf("expectation %d unexpectedly passed", i)
			continue
		}
		if res.Expectations[i].Detail != want {
			t.Errorf("detail %d = %q, expected %q", i, res.Expectations[i].Detail, want)
		}
	}
}

func TestEvaluateLoadedFile(t *testing.T) {
	path := writeCheck(t, t.TempDir(), "mathx/bmi.yaml", sampleCheck)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	output := "--- BMI calculator ---\n  BMI    22.86\n  category:  normal\n"
	res := Evaluate(f, output, t.TempDir())
	if !res.Passed {
		for _, er := range res.Expectations {
			if !er.Passed {
				t.Errorf("%s: %s", er.Name, er.Detail)
			}
		}
	}
}
