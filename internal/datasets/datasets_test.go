package datasets

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// airqualityBody is the exact content the catalog's airquality checksum
// was computed from.
const airqualityBody = "city,pm25,pm10,no2\n" +
	"Tallinn,6.2,11.8,14.3\n" +
	"Riga,8.9,16.4,18.7\n" +
	"Vilnius,9.4,17.1,19.9\n" +
	"Helsinki,5.1,10.2,12.5\n"

func TestCatalog(t *testing.T) {
	entries := Catalog()
	if len(entries) != 4 {
		t.Fatalf("expected 4 datasets, got %d", len(entries))
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		if !strings.HasPrefix(e.SHA256, "sha256:") {
			t.Errorf("%s: checksum %q missing prefix", e.Name, e.SHA256)
		}
		if e.Size == 0 {
			t.Errorf("%s: zero size", e.Name)
		}
		if e.Description == "" {
			t.Errorf("%s: empty description", e.Name)
		}
	}

	want := []string{"airquality", "students", "weather", "workouts"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("position %d: expected %s, got %s", i, n, names[i])
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("students")
	if !ok {
		t.Fatal("expected students to exist")
	}
	if e.File != "students.csv" {
		t.Errorf("expected students.csv, got %s", e.File)
	}
	if !e.Embedded() {
		t.Error("expected students to be embedded")
	}

	aq, ok := Lookup("airquality")
	if !ok {
		t.Fatal("expected airquality to exist")
	}
	if aq.Embedded() {
		t.Error("expected airquality to be remote")
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("expected lookup miss")
	}
}

func TestAirqualityChecksumMatchesBody(t *testing.T) {
	aq, ok := Lookup("airquality")
	if !ok {
		t.Fatal("expected airquality to exist")
	}
	if got := digest([]byte(airqualityBody)); got != aq.SHA256 {
		t.Errorf("catalog checksum %s does not match body digest %s", aq.SHA256, got)
	}
	if int64(len(airqualityBody)) != aq.Size {
		t.Errorf("catalog size %d does not match body length %d", aq.Size, len(airqualityBody))
	}
}

func TestMaterialize(t *testing.T) {
	dir := t.TempDir()
	if err := Materialize(dir); err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	for _, name := range []string{"students.csv", "weather.csv", "workouts.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s materialized: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	// Remote datasets are not materialized.
	if _, err := os.Stat(filepath.Join(dir, "airquality.csv")); err == nil {
		t.Error("expected airquality.csv to be absent")
	}
}

func TestMaterializeRepairsCorruption(t *testing.T) {
	dir := t.TempDir()
	if err := Materialize(dir); err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	path := filepath.Join(dir, "students.csv")
	if err := os.WriteFile(path, []byte("scribbled over\n"), 0o644); err != nil {
		t.Fatalf("corrupting file: %v", err)
	}
	if err := Materialize(dir); err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if strings.Contains(string(data), "scribbled") {
		t.Error("expected corrupted file to be rewritten")
	}
	if !strings.Contains(string(data), "Asha") {
		t.Error("expected original content back")
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(airqualityBody))
	}))
	defer srv.Close()

	e, _ := Lookup("airquality")
	e.URL = srv.URL + "/airquality.csv"

	dataDir := t.TempDir()
	lockDir := t.TempDir()
	var out bytes.Buffer
	if err := Fetch(context.Background(), &out, e, dataDir, lockDir); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dataDir, "airquality.csv"))
	if err != nil {
		t.Fatalf("expected fetched file: %v", err)
	}
	if string(data) != airqualityBody {
		t.Error("fetched content differs from served body")
	}
	if !strings.Contains(out.String(), "Verifying checksum") {
		t.Errorf("expected verification notice in output, got %q", out.String())
	}

	lock, err := LoadLock(lockDir)
	if err != nil {
		t.Fatalf("LoadLock() error: %v", err)
	}
	rec, ok := lock.Fetched["airquality"]
	if !ok {
		t.Fatal("expected lock record for airquality")
	}
	if rec.SHA256 != e.SHA256 {
		t.Errorf("lock checksum %s, expected %s", rec.SHA256, e.SHA256)
	}

	// A second fetch finds the verified file and skips the download.
	out.Reset()
	if err := Fetch(context.Background(), &out, e, dataDir, lockDir); err != nil {
		t.Fatalf("Fetch() second call error: %v", err)
	}
	if !strings.Contains(out.String(), "already present") {
		t.Errorf("expected skip notice, got %q", out.String())
	}
}

func TestFetchChecksumMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tampered content\n"))
	}))
	defer srv.Close()

	e, _ := Lookup("airquality")
	e.URL = srv.URL + "/airquality.csv"

	var out bytes.Buffer
	err := Fetch(context.Background(), &out, e, t.TempDir(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Errorf("expected checksum mismatch, got %v", err)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	e, _ := Lookup("airquality")
	e.URL = srv.URL + "/missing.csv"

	var out bytes.Buffer
	err := Fetch(context.Background(), &out, e, t.TempDir(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("expected HTTP 404 error, got %v", err)
	}
}

func TestFetchRejectsEmbedded(t *testing.T) {
	e, _ := Lookup("students")
	var out bytes.Buffer
	err := Fetch(context.Background(), &out, e, t.TempDir(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "embedded") {
		t.Errorf("expected embedded rejection, got %v", err)
	}
}

func TestLockRoundTrip(t *testing.T) {
	restore := nowFunc
	nowFunc = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
	defer func() { nowFunc = restore }()

	dir := t.TempDir()
	if LockExists(dir) {
		t.Fatal("expected no lock yet")
	}

	var l Lock
	e, _ := Lookup("airquality")
	l.Record(e)
	if err := SaveLock(dir, &l); err != nil {
		t.Fatalf("SaveLock() error: %v", err)
	}
	if !LockExists(dir) {
		t.Fatal("expected lock file")
	}

	got, err := LoadLock(dir)
	if err != nil {
		t.Fatalf("LoadLock() error: %v", err)
	}
	rec := got.Fetched["airquality"]
	if rec.File != "airquality.csv" {
		t.Errorf("expected airquality.csv, got %s", rec.File)
	}
	if !rec.FetchedAt.Equal(nowFunc()) {
		t.Errorf("expected pinned fetch time, got %v", rec.FetchedAt)
	}
}
