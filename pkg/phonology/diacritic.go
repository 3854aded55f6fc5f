package phonology

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Diacritic is a modifier symbol, the conditions a base segment must meet to
// take it and the feature changes it makes.
type Diacritic struct {
	Symbol     string      `yaml:"IPA"`
	Name       string      `yaml:"name,omitempty"`
	Conditions FeatureSpec `yaml:"conditions"`
	Applies    FeatureSpec `yaml:"applies"`
}

// Catalog is the ordered list of diacritics. It is read-only once loaded.
type Catalog []Diacritic

// LoadCatalog reads a diacritic catalog YAML file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load diacritic catalog: %w", err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes a YAML list of diacritic records. Unknown keys and
// records without a symbol are rejected.
func ParseCatalog(data []byte) (Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var catalog Catalog
	if err := dec.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, nil
		}
		return nil, err
	}
	for i, d := range catalog {
		if d.Symbol == "" {
			return nil, fmt.Errorf("diacritic #%d has no IPA symbol", i+1)
		}
		if _, err := FromSpec(d.Applies); err != nil {
			return nil, fmt.Errorf("diacritic %q applies: %w", d.Symbol, err)
		}
	}
	return catalog, nil
}

// Resolve checks every feature name in the catalog against vocab. Unknown
// names are dropped from applies and kept in conditions, where they can never
// be met. Each unknown reference is reported; none of them is fatal.
func (c Catalog) Resolve(vocab *Vocabulary) (Catalog, []*MissingFeatureError) {
	var issues []*MissingFeatureError
	out := make(Catalog, 0, len(c))

	for _, d := range c {
		for _, names := range [][]string{d.Conditions.Positive, d.Conditions.Negative} {
			for _, name := range names {
				if !vocab.Contains(name) {
					issues = append(issues, &MissingFeatureError{Diacritic: d.Symbol, Feature: name, Role: "conditions"})
				}
			}
		}

		keep := func(names []string) []string {
			kept := make([]string, 0, len(names))
			for _, name := range names {
				if vocab.Contains(name) {
					kept = append(kept, name)
					continue
				}
				issues = append(issues, &MissingFeatureError{Diacritic: d.Symbol, Feature: name, Role: "applies"})
			}
			return kept
		}
		d.Applies = FeatureSpec{
			Positive: keep(d.Applies.Positive),
			Negative: keep(d.Applies.Negative),
		}
		out = append(out, d)
	}
	return out, issues
}
