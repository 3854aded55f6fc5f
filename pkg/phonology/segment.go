package phonology

import (
	"fmt"
	"sort"
	"strings"
)

// Polarity is the value of a single feature within a segment.
type Polarity int

const (
	Unspecified Polarity = iota
	Positive
	Negative
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return "0"
	}
}

// TokenTable maps raw feature matrix cell values to polarities.
type TokenTable map[string]Polarity

// DefaultTokens is the token table used by the bundled feature matrix.
func DefaultTokens() TokenTable {
	return TokenTable{
		"+": Positive,
		"-": Negative,
		"0": Unspecified,
	}
}

// FeatureSpec is a pair of feature name lists. It is used both for the
// conditions a segment must meet and for the changes a diacritic applies.
type FeatureSpec struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// IsEmpty reports whether the spec names no features.
func (s FeatureSpec) IsEmpty() bool {
	return len(s.Positive) == 0 && len(s.Negative) == 0
}

type featureSet map[string]struct{}

func newFeatureSet(names []string) featureSet {
	set := make(featureSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s featureSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s featureSet) sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Segment is a bundle of binary features. A feature absent from both sets is
// unspecified. Segments are never modified after construction.
type Segment struct {
	positive featureSet
	negative featureSet
}

// NewSegment builds a segment from explicit positive and negative names.
func NewSegment(positive, negative []string) (Segment, error) {
	s := Segment{
		positive: newFeatureSet(positive),
		negative: newFeatureSet(negative),
	}
	for name := range s.positive {
		if s.negative.has(name) {
			return Segment{}, fmt.Errorf("%w: %q", ErrConflictingFeature, name)
		}
	}
	return s, nil
}

// FromSpec builds the segment a diacritic's feature changes describe.
func FromSpec(spec FeatureSpec) (Segment, error) {
	return NewSegment(spec.Positive, spec.Negative)
}

// FromFeatureRow builds a segment from one feature matrix row. Cells are
// checked in row.Features order, or sorted by feature name when the row has
// no column order, so a row with several bad cells always reports the same one.
func FromFeatureRow(row FeatureRow, tokens TokenTable) (Segment, error) {
	s := Segment{
		positive: make(featureSet),
		negative: make(featureSet),
	}
	for _, feature := range row.order() {
		token := row.Values[feature]
		polarity, ok := tokens[token]
		if !ok {
			return Segment{}, &MalformedRowError{Symbol: row.Symbol, Feature: feature, Token: token}
		}
		switch polarity {
		case Positive:
			s.positive[feature] = struct{}{}
		case Negative:
			s.negative[feature] = struct{}{}
		}
	}
	return s, nil
}

// Positive returns the positive feature names in sorted order.
func (s Segment) Positive() []string {
	return s.positive.sorted()
}

// Negative returns the negative feature names in sorted order.
func (s Segment) Negative() []string {
	return s.negative.sorted()
}

// Polarity returns the value of a single feature.
func (s Segment) Polarity(feature string) Polarity {
	switch {
	case s.positive.has(feature):
		return Positive
	case s.negative.has(feature):
		return Negative
	default:
		return Unspecified
	}
}

// MeetsConditions reports whether every positive condition is a positive
// feature of s and every negative condition a negative one.
func (s Segment) MeetsConditions(conditions FeatureSpec) bool {
	for _, name := range conditions.Positive {
		if !s.positive.has(name) {
			return false
		}
	}
	for _, name := range conditions.Negative {
		if !s.negative.has(name) {
			return false
		}
	}
	return true
}

// Combine returns s with other's assertions laid over it. Where the two
// disagree other wins; features other leaves unspecified keep s's value.
func (s Segment) Combine(other Segment) Segment {
	out := Segment{
		positive: make(featureSet, len(s.positive)+len(other.positive)),
		negative: make(featureSet, len(s.negative)+len(other.negative)),
	}
	for name := range s.positive {
		if !other.negative.has(name) {
			out.positive[name] = struct{}{}
		}
	}
	for name := range s.negative {
		if !other.positive.has(name) {
			out.negative[name] = struct{}{}
		}
	}
	for name := range other.positive {
		out.positive[name] = struct{}{}
	}
	for name := range other.negative {
		out.negative[name] = struct{}{}
	}
	return out
}

// Key returns a canonical rendering of the full feature state, positive
// names first, each group sorted.
func (s Segment) Key() string {
	var b strings.Builder
	for i, name := range s.Positive() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('+')
		b.WriteString(name)
	}
	for i, name := range s.Negative() {
		if i > 0 || len(s.positive) > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('-')
		b.WriteString(name)
	}
	return b.String()
}

func (s Segment) String() string {
	return "[" + s.Key() + "]"
}
