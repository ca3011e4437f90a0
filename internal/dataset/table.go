package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"oilstcli/internal/errors"
)

// table is an in-memory tabular source with header-driven column access.
// Columns are addressed by name so sources survive column reordering, and
// every cell stays a string until a loader decides how to type it.
type table struct {
	source  string
	columns map[string]int
	rows    [][]string
}

// readCSVTable loads a delimited file into a table and verifies that every
// required column is present.
func readCSVTable(path, source string, required []string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewSourceNotFoundError(source, err)
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open source %s", source), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Row widths vary in real marketplace exports; column presence is
	// checked against the header instead.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewSchemaError(source, required[0])
	}
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read header of source %s", source), err)
	}

	t := &table{
		source:  source,
		columns: make(map[string]int, len(header)),
	}
	for i, name := range header {
		t.columns[strings.TrimSpace(name)] = i
	}

	for _, column := range required {
		if _, ok := t.columns[column]; !ok {
			return nil, errors.NewSchemaError(source, column)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("failed to read row of source %s", source), err)
		}
		t.rows = append(t.rows, record)
	}

	return t, nil
}

// newTable builds a table from already materialized rows (Excel sheets).
// The first row is the header.
func newTable(source string, rows [][]string, required []string) (*table, error) {
	if len(rows) == 0 {
		return nil, errors.NewSchemaError(source, required[0])
	}

	t := &table{
		source:  source,
		columns: make(map[string]int, len(rows[0])),
	}
	for i, name := range rows[0] {
		t.columns[strings.TrimSpace(name)] = i
	}

	for _, column := range required {
		if _, ok := t.columns[column]; !ok {
			return nil, errors.NewSchemaError(source, column)
		}
	}

	t.rows = rows[1:]
	return t, nil
}

// hasColumn reports whether the source carries the named column.
func (t *table) hasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// get returns the cell of the named column in the given row, trimmed.
// Rows shorter than the header yield empty strings.
func (t *table) get(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// getFloat parses the cell as a float64. Unparseable non-empty values are
// coerced to zero with a debug log, matching the tolerant read of the rest
// of the pipeline.
func (t *table) getFloat(row []string, column string, rowIdx int) float64 {
	raw := t.get(row, column)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Debug("coerced unparseable numeric cell to zero",
			slog.String("source", t.source),
			slog.String("column", column),
			slog.Int("row", rowIdx),
			slog.String("value", raw))
		return 0
	}
	return value
}

// getInt parses the cell as an int with the same coercion policy as getFloat.
func (t *table) getInt(row []string, column string, rowIdx int) int {
	raw := t.get(row, column)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Debug("coerced unparseable integer cell to zero",
			slog.String("source", t.source),
			slog.String("column", column),
			slog.Int("row", rowIdx),
			slog.String("value", raw))
		return 0
	}
	return value
}
