package phonology

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Fingerprinter maps a segment to a canonical string. Two segments with
// different feature states are supposed to get different fingerprints; the
// collision detector exists to catch implementations where they do not.
type Fingerprinter interface {
	Fingerprint(Segment) string
}

// FingerprintFunc adapts a plain function to Fingerprinter.
type FingerprintFunc func(Segment) string

// Fingerprint calls f(s).
func (f FingerprintFunc) Fingerprint(s Segment) string {
	return f(s)
}

// VocabularyFingerprinter renders every vocabulary feature the segment
// specifies, in vocabulary order. Features outside the vocabulary are not
// rendered.
type VocabularyFingerprinter struct {
	features []string
}

// NewVocabularyFingerprinter creates a fingerprinter over vocab.
func NewVocabularyFingerprinter(vocab *Vocabulary) *VocabularyFingerprinter {
	return &VocabularyFingerprinter{features: vocab.Names()}
}

// Fingerprint implements Fingerprinter.
func (v *VocabularyFingerprinter) Fingerprint(s Segment) string {
	var b strings.Builder
	for _, feature := range v.features {
		p := s.Polarity(feature)
		if p == Unspecified {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
		b.WriteString(feature)
	}
	return b.String()
}

// MaskedFingerprinter hides a set of features from the wrapped
// fingerprinter, reproducing a deparser that drops them.
type MaskedFingerprinter struct {
	next    Fingerprinter
	ignored featureSet
}

// NewMaskedFingerprinter wraps next so that the ignored features are
// unspecified in every segment it sees. With nothing to ignore it returns
// next unchanged.
func NewMaskedFingerprinter(next Fingerprinter, ignored []string) Fingerprinter {
	if len(ignored) == 0 {
		return next
	}
	return &MaskedFingerprinter{next: next, ignored: newFeatureSet(ignored)}
}

// Fingerprint implements Fingerprinter.
func (m *MaskedFingerprinter) Fingerprint(s Segment) string {
	masked := Segment{
		positive: make(featureSet, len(s.positive)),
		negative: make(featureSet, len(s.negative)),
	}
	for name := range s.positive {
		if !m.ignored.has(name) {
			masked.positive[name] = struct{}{}
		}
	}
	for name := range s.negative {
		if !m.ignored.has(name) {
			masked.negative[name] = struct{}{}
		}
	}
	return m.next.Fingerprint(masked)
}

// CachedFingerprinter memoizes another fingerprinter by segment key.
type CachedFingerprinter struct {
	next  Fingerprinter
	cache *lru.Cache[string, string]
}

// NewCachedFingerprinter wraps next with an LRU cache of the given size. A
// size of zero or less disables caching and returns next unchanged.
func NewCachedFingerprinter(next Fingerprinter, size int) Fingerprinter {
	if size <= 0 {
		return next
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return next
	}
	return &CachedFingerprinter{next: next, cache: cache}
}

// Fingerprint implements Fingerprinter.
func (c *CachedFingerprinter) Fingerprint(s Segment) string {
	key := s.Key()
	if fp, ok := c.cache.Get(key); ok {
		return fp
	}
	fp := c.next.Fingerprint(s)
	c.cache.Add(key, fp)
	return fp
}

// Len returns the number of cached fingerprints.
func (c *CachedFingerprinter) Len() int {
	return c.cache.Len()
}

// Purge empties the cache.
func (c *CachedFingerprinter) Purge() {
	c.cache.Purge()
}
