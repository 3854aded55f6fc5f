package phonology

import (
	"errors"
	"fmt"
)

var (
	// ErrConflictingFeature is returned when a feature is asserted both
	// positive and negative in one specification.
	ErrConflictingFeature = errors.New("feature is both positive and negative")

	// ErrSymbolColumn is returned when a feature matrix does not start with
	// the expected symbol column.
	ErrSymbolColumn = errors.New("feature matrix has no symbol column")
)

// MalformedRowError reports a feature matrix cell holding a token that has no
// polarity in the token table.
type MalformedRowError struct {
	Symbol  string
	Feature string
	Token   string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("segment %q: feature %q has unrecognized value %q", e.Symbol, e.Feature, e.Token)
}

// MissingFeatureError reports a diacritic referencing a feature that is not a
// column of the feature matrix. Role is "conditions" or "applies".
type MissingFeatureError struct {
	Diacritic string
	Feature   string
	Role      string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("diacritic %q: %s references unknown feature %q", e.Diacritic, e.Role, e.Feature)
}
