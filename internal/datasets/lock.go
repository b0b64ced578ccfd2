package datasets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LockFilename is the lock file written under the state dir (.wb by default).
const LockFilename = "datasets-lock.json"

var nowFunc = time.Now

// Lock records which remote datasets were fetched and when.
type Lock struct {
	UpdatedAt time.Time              `json:"updated_at"`
	Fetched   map[string]FetchRecord `json:"fetched"`
}

// FetchRecord captures one verified download.
type FetchRecord struct {
	File      string    `json:"file"`
	URL       string    `json:"url"`
	SHA256    string    `json:"sha256"`
	Size      int64     `json:"size"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Record notes that e was fetched now.
func (l *Lock) Record(e Entry) {
	if l.Fetched == nil {
		l.Fetched = make(map[string]FetchRecord)
	}
	now := nowFunc()
	l.Fetched[e.Name] = FetchRecord{
		File:      e.File,
		URL:       e.URL,
		SHA256:    e.SHA256,
		Size:      e.Size,
		FetchedAt: now,
	}
	l.UpdatedAt = now
}

// LoadLock reads and parses the lock file from the given directory.
func LoadLock(dir string) (*Lock, error) {
	path := filepath.Join(dir, LockFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var l Lock
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", LockFilename, err)
	}
	return &l, nil
}

// SaveLock writes the lock file to the given directory with indented JSON.
func SaveLock(dir string, l *Lock) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating lock dir %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", LockFilename, err)
	}
	data = append(data, '\n')
	path := filepath.Join(dir, LockFilename)
	return os.WriteFile(path, data, 0o644)
}

// LockExists returns true if a lock file exists in the given directory.
func LockExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, LockFilename))
	return err == nil
}

// loadOrInitLock returns the existing lock or a fresh one when none exists.
func loadOrInitLock(dir string) (*Lock, error) {
	if !LockExists(dir) {
		return &Lock{}, nil
	}
	l, err := LoadLock(dir)
	if err != nil {
		return nil, fmt.Errorf("reading existing lock: %w", err)
	}
	return l, nil
}
