package phonology

import (
	"fmt"
	"io"
	"strings"
)

// LengthMark is appended to the symbol of a derived long variant.
const LengthMark = "ː"

var (
	syllabicCondition = FeatureSpec{Positive: []string{"syllabic"}}
	longCondition     = FeatureSpec{Positive: []string{"long"}}
	longSegment       = Segment{positive: newFeatureSet([]string{"long"}), negative: featureSet{}}
)

// Pair is a composed symbol and the fingerprint of its segment.
type Pair struct {
	Symbol      string
	Fingerprint string
}

// Generated is a pair together with the segment it was fingerprinted from.
type Generated struct {
	Pair
	Segment Segment
}

// Observer is called once for every pair an Engine emits, in emission order.
type Observer func(Generated)

// Engine applies a diacritic catalog to base segments.
type Engine struct {
	Catalog       Catalog
	Fingerprinter Fingerprinter
	Normalizer    *Normalizer
	Observer      Observer
}

// NewEngine creates an engine with the default symbol normalizer and no
// observer.
func NewEngine(catalog Catalog, fp Fingerprinter) *Engine {
	return &Engine{
		Catalog:       catalog,
		Fingerprinter: fp,
		Normalizer:    NewNormalizer(),
	}
}

func (e *Engine) emit(out []Pair, symbol string, s Segment) []Pair {
	g := Generated{
		Pair: Pair{
			Symbol:      e.Normalizer.Normalize(symbol),
			Fingerprint: e.Fingerprinter.Fingerprint(s),
		},
		Segment: s,
	}
	if e.Observer != nil {
		e.Observer(g)
	}
	return append(out, g.Pair)
}

// Base returns the pair for an undecorated segment.
func (e *Engine) Base(symbol string, base Segment) Pair {
	return e.emit(nil, symbol, base)[0]
}

// Expand returns the pair for base itself followed by one pair for every
// diacritic whose conditions base meets, in catalog order. A syllabic base
// whose composed segment is not long also yields a long variant, marked with
// LengthMark. Diacritics are never stacked.
func (e *Engine) Expand(symbol string, base Segment) ([]Pair, error) {
	out := e.emit(nil, symbol, base)
	syllabic := base.MeetsConditions(syllabicCondition)

	for _, d := range e.Catalog {
		if !base.MeetsConditions(d.Conditions) {
			continue
		}
		changes, err := FromSpec(d.Applies)
		if err != nil {
			return nil, fmt.Errorf("diacritic %q: %w", d.Symbol, err)
		}
		composed := base.Combine(changes)
		out = e.emit(out, symbol+d.Symbol, composed)

		if syllabic && !composed.MeetsConditions(longCondition) {
			out = e.emit(out, symbol+d.Symbol+LengthMark, composed.Combine(longSegment))
		}
	}
	return out, nil
}

// BasePairs fingerprints every row of the matrix without diacritics.
func (e *Engine) BasePairs(m *FeatureMatrix, tokens TokenTable) ([]Pair, error) {
	out := make([]Pair, 0, len(m.Rows))
	for _, row := range m.Rows {
		base, err := FromFeatureRow(row, tokens)
		if err != nil {
			return nil, err
		}
		out = append(out, e.Base(row.Symbol, base))
	}
	return out, nil
}

// Run expands every row of the matrix against the catalog.
func (e *Engine) Run(m *FeatureMatrix, tokens TokenTable) ([]Pair, error) {
	out := make([]Pair, 0, len(m.Rows)*(1+len(e.Catalog)))
	for _, row := range m.Rows {
		base, err := FromFeatureRow(row, tokens)
		if err != nil {
			return nil, err
		}
		pairs, err := e.Expand(row.Symbol, base)
		if err != nil {
			return nil, err
		}
		out = append(out, pairs...)
	}
	return out, nil
}

// DiagnosticObserver prints the feature sets of generated segments whose
// symbol is one of targets. Targets are compared after normalization.
func DiagnosticObserver(w io.Writer, n *Normalizer, targets []string) Observer {
	if len(targets) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		wanted[n.Normalize(t)] = struct{}{}
	}
	return func(g Generated) {
		if _, ok := wanted[g.Symbol]; !ok {
			return
		}
		fmt.Fprintf(w, "Target found: %s\n", g.Symbol)
		fmt.Fprintf(w, "\tPositive: {%s}\n", strings.Join(g.Segment.Positive(), ", "))
		fmt.Fprintf(w, "\tNegative: {%s}\n", strings.Join(g.Segment.Negative(), ", "))
	}
}

// ChainObservers calls each non-nil observer in turn.
func ChainObservers(observers ...Observer) Observer {
	var live []Observer
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(g Generated) {
		for _, o := range live {
			o(g)
		}
	}
}
