package phonology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary(t *testing.T) {
	vocab, err := NewVocabulary([]string{"voice", "nasal", "syllabic", "voice", ""})
	require.NoError(t, err)
	defer vocab.Close()

	assert.Equal(t, 3, vocab.Len())
	assert.Equal(t, []string{"nasal", "syllabic", "voice"}, vocab.Names())

	tests := []struct {
		feature string
		exists  bool
		index   int
	}{
		{"nasal", true, 0},
		{"voice", true, 2},
		{"round", false, -1},
		{"voic", false, -1},
		{"", false, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.exists, vocab.Contains(tt.feature), "Contains(%q)", tt.feature)
		assert.Equal(t, tt.index, vocab.Index(tt.feature), "Index(%q)", tt.feature)
	}
}

func TestVocabulary_Empty(t *testing.T) {
	vocab, err := NewVocabulary(nil)
	require.NoError(t, err)
	defer vocab.Close()

	assert.False(t, vocab.Contains("voice"))
	assert.Empty(t, vocab.Names())
}
