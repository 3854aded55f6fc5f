// Package table provides two-axis access to a CSV file: rows are keyed by
// their first cell and columns by their header cell.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrRowNotFound is returned when no row has the requested key.
	ErrRowNotFound = errors.New("row not found")
	// ErrColumnNotFound is returned when no header cell has the requested key.
	ErrColumnNotFound = errors.New("column not found")
	// ErrKeyNotFound is returned by Get when the key names neither a row nor a column.
	ErrKeyNotFound = errors.New("key not found in table")
	// ErrEmpty is returned when a table has no header row.
	ErrEmpty = errors.New("table is empty")
)

// Table is a CSV file held in memory. The first record is the header. Keys are
// shared between rows and columns, so a key should not label both.
type Table struct {
	records [][]string
	rows    map[string]int
	columns map[string]int
}

// Load reads a CSV file into a Table.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	return New(records)
}

// New builds a Table from already parsed records. The first occurrence of a
// duplicated row or column key wins, matching a linear scan.
func New(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	t := &Table{
		records: records,
		rows:    make(map[string]int, len(records)-1),
		columns: make(map[string]int, len(records[0])),
	}
	for i, key := range records[0] {
		if _, exists := t.columns[key]; !exists {
			t.columns[key] = i
		}
	}
	for i, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		if _, exists := t.rows[row[0]]; !exists {
			t.rows[row[0]] = i + 1
		}
	}
	return t, nil
}

// Header returns the header record.
func (t *Table) Header() []string {
	return append([]string(nil), t.records[0]...)
}

// Records returns every record after the header, in file order.
func (t *Table) Records() [][]string {
	return t.records[1:]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.records) - 1
}

// Row returns the cells of the row labelled key, without the label itself.
func (t *Table) Row(key string) ([]string, error) {
	i, ok := t.rows[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRowNotFound, key)
	}
	return append([]string(nil), t.records[i][1:]...), nil
}

// Column returns the cells below the header cell key. Short rows yield "".
func (t *Table) Column(key string) ([]string, error) {
	j, ok := t.columns[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, key)
	}
	out := make([]string, 0, t.Len())
	for _, row := range t.records[1:] {
		if j < len(row) {
			out = append(out, row[j])
		} else {
			out = append(out, "")
		}
	}
	return out, nil
}

// Get returns the row labelled key, or failing that the column labelled key.
func (t *Table) Get(key string) ([]string, error) {
	if row, err := t.Row(key); err == nil {
		return row, nil
	}
	if col, err := t.Column(key); err == nil {
		return col, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// Cell returns the value at the intersection of a row and a column.
func (t *Table) Cell(row, column string) (string, error) {
	i, ok := t.rows[row]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRowNotFound, row)
	}
	j, ok := t.columns[column]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	if j >= len(t.records[i]) {
		return "", nil
	}
	return t.records[i][j], nil
}
