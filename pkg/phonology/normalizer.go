package phonology

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// NormalizerConfig selects the steps of the symbol normalizer.
type NormalizerConfig struct {
	NFC                bool
	RemoveControlChars bool
	TrimSpace          bool
}

// DefaultNormalizerConfig enables every step.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		NFC:                true,
		RemoveControlChars: true,
		TrimSpace:          true,
	}
}

// Normalizer applies a configurable pipeline of normalization steps to
// composed IPA symbols.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with the default pipeline.
func NewNormalizer() *Normalizer {
	return NewNormalizerFromConfig(DefaultNormalizerConfig())
}

// NewNormalizerFromConfig creates a normalizer with the enabled steps, in a
// fixed order.
func NewNormalizerFromConfig(cfg NormalizerConfig) *Normalizer {
	var steps []NormalizerFunc
	if cfg.RemoveControlChars {
		steps = append(steps, RemoveControlChars)
	}
	if cfg.TrimSpace {
		steps = append(steps, strings.TrimSpace)
	}
	if cfg.NFC {
		steps = append(steps, NFCCompose)
	}
	return &Normalizer{steps: steps}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	if n == nil {
		return s
	}
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// NFCCompose applies Unicode NFC normalization, so that a + U+0303 and the
// precomposed ã are the same symbol.
func NFCCompose(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes Unicode control characters.
func RemoveControlChars(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
