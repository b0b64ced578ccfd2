package fileio

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// sensorReading is the record type shuttled through JSON and CSV.
type sensorReading struct {
	Station string  `json:"station"`
	Hour    int     `json:"hour"`
	TempC   float64 `json:"temp_c"`
}

// saveJSON writes readings to path as an indented JSON array.
func saveJSON(path string, readings []sensorReading) error {
	data, err := json.MarshalIndent(readings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding readings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// loadJSON reads a JSON array of readings back from path.
func loadJSON(path string) ([]sensorReading, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var readings []sensorReading
	if err := json.Unmarshal(data, &readings); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return readings, nil
}

// saveCSV writes readings to path with a header row.
func saveCSV(path string, readings []sensorReading) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"station", "hour", "temp_c"}); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range readings {
		row := []string{
			r.Station,
			strconv.Itoa(r.Hour),
			strconv.FormatFloat(r.TempC, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing row for %s: %w", r.Station, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// loadCSV parses readings written by saveCSV, skipping the header.
func loadCSV(path string) ([]sensorReading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	readings := make([]sensorReading, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("row %d: expected 3 fields, got %d", i+2, len(row))
		}
		hour, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing hour: %w", i+2, err)
		}
		temp, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing temp: %w", i+2, err)
		}
		readings = append(readings, sensorReading{Station: row[0], Hour: hour, TempC: temp})
	}
	return readings, nil
}

func runRoundTrip(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	readings := []sensorReading{
		{Station: "north", Hour: 6, TempC: 4.5},
		{Station: "north", Hour: 12, TempC: 11.0},
		{Station: "south", Hour: 6, TempC: 7.2},
		{Station: "south", Hour: 12, TempC: 14.8},
	}

	p.Section("JSON")
	jsonPath, err := env.Scratch("readings.json")
	if err != nil {
		return err
	}
	if err := saveJSON(jsonPath, readings); err != nil {
		return err
	}
	fromJSON, err := loadJSON(jsonPath)
	if err != nil {
		return err
	}
	p.KV("records out", "%d", len(readings))
	p.KV("records back", "%d", len(fromJSON))
	p.KV("round trip exact", "%t", readingsEqual(readings, fromJSON))
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", jsonPath, err)
	}
	p.Printf("%s\n", data)

	p.Section("CSV")
	csvPath, err := env.Scratch("readings.csv")
	if err != nil {
		return err
	}
	if err := saveCSV(csvPath, readings); err != nil {
		return err
	}
	fromCSV, err := loadCSV(csvPath)
	if err != nil {
		return err
	}
	p.KV("records back", "%d", len(fromCSV))
	p.KV("round trip exact", "%t", readingsEqual(readings, fromCSV))
	data, err = os.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", csvPath, err)
	}
	p.Printf("%s", data)

	return nil
}

// readingsEqual compares two reading slices element by element.
func readingsEqual(a, b []sensorReading) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
