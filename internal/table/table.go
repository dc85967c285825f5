// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table persists paper records as a delimited CSV table. The table
// file is the sole durable store between the collect and report stages and
// is overwritten wholesale on each collect run.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/anthology-trends/pkg/types"
)

// Header is the fixed column order of the table file.
var Header = []string{"conference", "year", "title", "code_available", "url"}

// Write serializes records to path as UTF-8 CSV with a header row,
// replacing any existing file.
func Write(path string, records []types.PaperRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating table file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Conference,
			strconv.Itoa(r.Year),
			r.Title,
			strconv.FormatBool(r.CodeAvailable),
			r.URL,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing table file: %w", err)
	}
	return nil
}

// Read loads all records from the table at path. The header row must match
// Header exactly.
func Read(path string) ([]types.PaperRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table file %s is empty", path)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("table file %s: %w", path, err)
	}

	records := make([]types.PaperRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("table file %s row %d: %w", path, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func checkHeader(row []string) error {
	if len(row) != len(Header) {
		return fmt.Errorf("expected %d columns, got %d", len(Header), len(row))
	}
	for i, name := range Header {
		if row[i] != name {
			return fmt.Errorf("expected column %q, got %q", name, row[i])
		}
	}
	return nil
}

func parseRow(row []string) (types.PaperRecord, error) {
	if len(row) != len(Header) {
		return types.PaperRecord{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(row))
	}
	year, err := strconv.Atoi(row[1])
	if err != nil {
		return types.PaperRecord{}, fmt.Errorf("parsing year %q: %w", row[1], err)
	}
	code, err := strconv.ParseBool(row[3])
	if err != nil {
		return types.PaperRecord{}, fmt.Errorf("parsing code_available %q: %w", row[3], err)
	}
	return types.PaperRecord{
		Conference:    row[0],
		Year:          year,
		Title:         row[2],
		CodeAvailable: code,
		URL:           row[4],
	}, nil
}
