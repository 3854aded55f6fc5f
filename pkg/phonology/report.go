package phonology

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultReportPath is where the collisions command writes its report.
const DefaultReportPath = "feature-strings-with-diacritics.csv"

// WriteReport writes one (symbol, fingerprint) CSV row per pair, without a
// header.
func WriteReport(w io.Writer, pairs []Pair) error {
	cw := csv.NewWriter(w)
	for _, p := range pairs {
		if err := cw.Write([]string{p.Symbol, p.Fingerprint}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportFile creates or truncates path and writes the report to it.
func WriteReportFile(path string, pairs []Pair) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	if err := WriteReport(file, pairs); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// PrintCollisions writes a human-readable collision summary.
func PrintCollisions(w io.Writer, collisions []Collision) {
	fmt.Fprintf(w, "There were %d duplicates:\n", len(collisions))
	for _, c := range collisions {
		fmt.Fprintf(w, "\tMatch: %s\n", strings.Join(c.Symbols, " "))
	}
}
