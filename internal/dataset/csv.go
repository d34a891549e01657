package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

/*
 * CSV ingestion.
 *
 * Reads header-first CSV into a column-oriented Dataset with scalar typing:
 *   - empty cell            -> nil (null marker)
 *   - parseable number      -> float64
 *   - "true"/"false"        -> bool
 *   - anything else         -> string
 *
 * Typing is per-cell, not per-column: a column mixing "42" and "pending"
 * holds float64 and string values side by side. Rule constraints coerce at
 * evaluation time, so mixed columns degrade to per-value validity failures
 * instead of ingest errors.
 *
 * LoadDir maps each <name>.csv in a directory to dataset id <name>, sorted
 * by filename for deterministic orchestration order.
 */

// ReadCSV parses CSV content into a Dataset. The first record is the header.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string][]any, len(header))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		for i, name := range header {
			columns[name] = append(columns[name], parseCell(record[i]))
		}
	}

	// Columns of an empty table still need entries so New sees them.
	for _, name := range header {
		if _, ok := columns[name]; !ok {
			columns[name] = nil
		}
	}

	return New(header, columns)
}

// ReadCSVFile opens and parses a CSV file.
func ReadCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Named pairs a dataset id with its table, preserving load order.
type Named struct {
	ID   string
	Data *Dataset
}

// LoadDir reads every *.csv file in dir into a Named slice.
// Dataset id is the filename without extension. Sorted by filename so
// repeated runs validate in the same order.
func LoadDir(dir string) ([]Named, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		paths = append(paths, e.Name())
	}
	sort.Strings(paths)

	sets := make([]Named, 0, len(paths))
	for _, name := range paths {
		ds, err := ReadCSVFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		id := strings.TrimSuffix(name, filepath.Ext(name))
		sets = append(sets, Named{ID: id, Data: ds})
	}

	return sets, nil
}

// parseCell converts a raw CSV cell to its scalar value.
func parseCell(raw string) any {
	if raw == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	switch raw {
	case "true", "TRUE", "True":
		return true
	case "false", "FALSE", "False":
		return false
	}
	return raw
}
