package phonology

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kerem-kaynak/feature-collisions/pkg/table"
)

// DefaultSymbolColumn is the header of the column holding IPA symbols.
const DefaultSymbolColumn = "IPA"

// ErrBlankSymbol is returned for a feature matrix row with an empty symbol cell.
var ErrBlankSymbol = errors.New("feature matrix row has no symbol")

// FeatureRow is one line of the feature matrix: a symbol and the raw token of
// every feature column. Features holds the column order of Values.
type FeatureRow struct {
	Symbol   string
	Features []string
	Values   map[string]string
}

func (r FeatureRow) order() []string {
	if len(r.Features) == len(r.Values) {
		return r.Features
	}
	names := make([]string, 0, len(r.Values))
	for name := range r.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FeatureMatrix is the typed form of the feature matrix file.
type FeatureMatrix struct {
	SymbolColumn string
	Features     []string
	Rows         []FeatureRow
}

// LoadFeatureMatrix reads a feature matrix CSV whose first column is
// symbolColumn.
func LoadFeatureMatrix(path, symbolColumn string) (*FeatureMatrix, error) {
	t, err := table.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load feature matrix: %w", err)
	}
	return NewFeatureMatrix(t, symbolColumn)
}

// NewFeatureMatrix converts a loaded table into a FeatureMatrix. Rows shorter
// than the header are padded with "" so the token table decides whether a
// blank cell is acceptable. A row whose symbol is empty or only whitespace is
// an error naming its 1-based data row.
func NewFeatureMatrix(t *table.Table, symbolColumn string) (*FeatureMatrix, error) {
	if symbolColumn == "" {
		symbolColumn = DefaultSymbolColumn
	}
	header := t.Header()
	if len(header) == 0 || header[0] != symbolColumn {
		return nil, fmt.Errorf("%w: want %q as first column", ErrSymbolColumn, symbolColumn)
	}

	m := &FeatureMatrix{
		SymbolColumn: symbolColumn,
		Features:     header[1:],
		Rows:         make([]FeatureRow, 0, t.Len()),
	}
	for i, record := range t.Records() {
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			return nil, fmt.Errorf("%w: data row %d", ErrBlankSymbol, i+1)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("feature matrix row %q: %d cells, header has %d", record[0], len(record), len(header))
		}
		row := FeatureRow{
			Symbol:   record[0],
			Features: m.Features,
			Values:   make(map[string]string, len(m.Features)),
		}
		for j, feature := range m.Features {
			if j+1 < len(record) {
				row.Values[feature] = record[j+1]
			} else {
				row.Values[feature] = ""
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}

// Segments builds the base segment for every row, in row order.
func (m *FeatureMatrix) Segments(tokens TokenTable) ([]Segment, error) {
	out := make([]Segment, 0, len(m.Rows))
	for _, row := range m.Rows {
		s, err := FromFeatureRow(row, tokens)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
