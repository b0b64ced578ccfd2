// Package workbook parses workbook.yaml, the repository's settings and
// chapter metadata file.
package workbook

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for the config unless WB_CONFIG or
// --config says otherwise.
const DefaultPath = "workbook.yaml"

// Chapter holds the display metadata for one chapter.
type Chapter struct {
	Title string `yaml:"title"`
	Notes string `yaml:"notes"`
}

// Settings holds global paths and flags from the config.
type Settings struct {
	ArtifactDir string `yaml:"artifact_dir"`
	DataDir     string `yaml:"data_dir"`
	ScratchDir  string `yaml:"scratch_dir"`
	NotesDir    string `yaml:"notes_dir"`
	ChecksDir   string `yaml:"checks_dir"`
	Verbose     bool   `yaml:"verbose"`
}

// Config represents a parsed workbook.yaml file.
type Config struct {
	Settings Settings           `yaml:"settings"`
	Chapters map[string]Chapter `yaml:"chapters"`
}

// Load reads and parses a workbook.yaml file. A missing file is not an
// error; the built-in defaults cover the shipped chapters.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	c.applyDefaults()

	for name, ch := range c.Chapters {
		if ch.Title == "" {
			return nil, fmt.Errorf("chapter %q: title is required", name)
		}
	}

	return &c, nil
}

// Default returns the configuration used when no workbook.yaml exists:
// dot-dir paths and the full shipped chapter set.
func Default() *Config {
	c := &Config{Chapters: defaultChapters()}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Settings.ArtifactDir == "" {
		c.Settings.ArtifactDir = ".wb/artifacts"
	}
	if c.Settings.DataDir == "" {
		c.Settings.DataDir = ".wb/data"
	}
	if c.Settings.ScratchDir == "" {
		c.Settings.ScratchDir = ".wb/scratch"
	}
	if c.Settings.NotesDir == "" {
		c.Settings.NotesDir = "notes"
	}
	if c.Settings.ChecksDir == "" {
		c.Settings.ChecksDir = "checks"
	}
	if c.Chapters == nil {
		c.Chapters = defaultChapters()
	}
	for name, ch := range c.Chapters {
		if ch.Notes == "" {
			ch.Notes = name + ".md"
			c.Chapters[name] = ch
		}
	}
}

// Chapter returns a named chapter's metadata, or an error if not found.
func (c *Config) Chapter(name string) (Chapter, error) {
	ch, ok := c.Chapters[name]
	if !ok {
		return Chapter{}, fmt.Errorf("chapter %q not found in config", name)
	}
	return ch, nil
}

// ChapterNames returns all chapter names in sorted order.
func (c *Config) ChapterNames() []string {
	names := make([]string, 0, len(c.Chapters))
	for name := range c.Chapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultChapters() map[string]Chapter {
	titles := map[string]string{
		"basics":    "Language basics",
		"mathx":     "Small math programs",
		"slices":    "Working with slices",
		"fileio":    "File handling",
		"numerics":  "Vectors and matrices",
		"plotting":  "Plotting",
		"frames":    "Dataframes",
		"scicomp":   "Scientific computing",
		"algos":     "Classic algorithms",
		"dbase":     "Databases",
		"webapi":    "Web APIs and scraping",
		"debugging": "Testing and debugging",
		"textre":    "Regular expressions",
		"concur":    "Concurrency",
	}
	chapters := make(map[string]Chapter, len(titles))
	for name, title := range titles {
		chapters[name] = Chapter{Title: title, Notes: name + ".md"}
	}
	return chapters
}
