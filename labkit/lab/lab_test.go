package lab

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRef(t *testing.T) {
	l := Lab{Chapter: "mathx", Slug: "factorial"}
	if got := l.Ref(); got != "mathx/factorial" {
		t.Errorf("expected mathx/factorial, got %s", got)
	}
}

func TestNewEnvLayout(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(&buf, "/tmp/wb")

	if env.ArtifactDir != filepath.Join("/tmp/wb", "artifacts") {
		t.Errorf("unexpected artifact dir %s", env.ArtifactDir)
	}
	if env.DataDir != filepath.Join("/tmp/wb", "data") {
		t.Errorf("unexpected data dir %s", env.DataDir)
	}
	if env.ScratchDir != filepath.Join("/tmp/wb", "scratch") {
		t.Errorf("unexpected scratch dir %s", env.ScratchDir)
	}
}

func TestArtifactCreatesDir(t *testing.T) {
	env := NewEnv(os.Stdout, t.TempDir())

	path, err := env.Artifact("figure.png")
	if err != nil {
		t.Fatalf("Artifact() error: %v", err)
	}
	info, err := os.Stat(env.ArtifactDir)
	if err != nil {
		t.Fatalf("expected artifact dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected artifact path to be a directory")
	}
	if filepath.Base(path) != "figure.png" {
		t.Errorf("unexpected artifact path %s", path)
	}
}

func TestScratchCreatesDir(t *testing.T) {
	env := NewEnv(os.Stdout, t.TempDir())

	if _, err := env.Scratch("sample.txt"); err != nil {
		t.Fatalf("Scratch() error: %v", err)
	}
	if _, err := os.Stat(env.ScratchDir); err != nil {
		t.Fatalf("expected scratch dir to exist: %v", err)
	}
}
