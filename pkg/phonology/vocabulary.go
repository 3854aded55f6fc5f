package phonology

import (
	"bytes"
	"errors"
	"sort"

	"github.com/blevesearch/vellum"
)

// Vocabulary is the set of feature names known to a feature matrix, held in
// an FST so lookups and ordered iteration share one structure.
type Vocabulary struct {
	fst   *vellum.FST
	names []string
}

// NewVocabulary builds a vocabulary from feature names. Duplicates collapse.
func NewVocabulary(features []string) (*Vocabulary, error) {
	seen := make(map[string]struct{}, len(features))
	names := make([]string, 0, len(features))
	for _, f := range features {
		if _, dup := seen[f]; dup || f == "" {
			continue
		}
		seen[f] = struct{}{}
		names = append(names, f)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := builder.Insert([]byte(name), uint64(i)); err != nil {
			builder.Close()
			return nil, err
		}
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return &Vocabulary{fst: fst, names: names}, nil
}

// Contains reports whether feature is a known feature name.
func (v *Vocabulary) Contains(feature string) bool {
	if feature == "" {
		return false
	}
	_, exists, _ := v.fst.Get([]byte(feature))
	return exists
}

// Index returns the sorted position of feature, or -1.
func (v *Vocabulary) Index(feature string) int {
	if feature == "" {
		return -1
	}
	i, exists, err := v.fst.Get([]byte(feature))
	if err != nil || !exists {
		return -1
	}
	return int(i)
}

// Names returns every feature name in sorted order, walking the FST.
func (v *Vocabulary) Names() []string {
	out := make([]string, 0, len(v.names))
	it, err := v.fst.Iterator(nil, nil)
	for err == nil {
		key, _ := it.Current()
		out = append(out, string(key))
		err = it.Next()
	}
	if err != nil && !errors.Is(err, vellum.ErrIteratorDone) {
		return append([]string(nil), v.names...)
	}
	return out
}

// Len returns the number of feature names.
func (v *Vocabulary) Len() int {
	return len(v.names)
}

// Close releases FST resources.
func (v *Vocabulary) Close() error {
	if v.fst == nil {
		return nil
	}
	err := v.fst.Close()
	v.fst = nil
	return err
}
