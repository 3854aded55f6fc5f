package phonology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSegment(t testing.TB, positive, negative []string) Segment {
	t.Helper()
	s, err := NewSegment(positive, negative)
	require.NoError(t, err, "NewSegment(%v, %v)", positive, negative)
	return s
}

func TestNewSegment_Conflict(t *testing.T) {
	_, err := NewSegment([]string{"voice"}, []string{"voice"})
	assert.ErrorIs(t, err, ErrConflictingFeature)
}

func TestFromFeatureRow(t *testing.T) {
	row := FeatureRow{
		Symbol: "p",
		Values: map[string]string{"voice": "-", "labial": "+", "round": "0"},
	}
	s, err := FromFeatureRow(row, DefaultTokens())
	require.NoError(t, err)

	assert.Equal(t, []string{"labial"}, s.Positive())
	assert.Equal(t, []string{"voice"}, s.Negative())
	assert.Equal(t, Unspecified, s.Polarity("round"))
}

func TestFromFeatureRow_Malformed(t *testing.T) {
	row := FeatureRow{Symbol: "p", Values: map[string]string{"voice": "yes"}}
	_, err := FromFeatureRow(row, DefaultTokens())

	var malformed *MalformedRowError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, MalformedRowError{Symbol: "p", Feature: "voice", Token: "yes"}, *malformed)
}

func TestFromFeatureRow_FirstBadCellInColumnOrder(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		want     string
	}{
		{"column order", []string{"d", "a", "c", "b"}, "d"},
		{"no column order", nil, "a"},
	}

	for _, tt := range tests {
		row := FeatureRow{
			Symbol:   "x",
			Features: tt.features,
			Values:   map[string]string{"a": "?", "b": "?", "c": "?", "d": "?"},
		}
		for i := 0; i < 50; i++ {
			_, err := FromFeatureRow(row, DefaultTokens())
			var malformed *MalformedRowError
			require.ErrorAs(t, err, &malformed, tt.name)
			require.Equal(t, tt.want, malformed.Feature, "%s: attempt %d", tt.name, i)
		}
	}
}

func TestFromFeatureRow_CustomTokens(t *testing.T) {
	tokens := TokenTable{"+": Positive, "-": Negative, "": Unspecified}
	row := FeatureRow{Symbol: "a", Values: map[string]string{"syllabic": "+", "round": ""}}
	s, err := FromFeatureRow(row, tokens)
	require.NoError(t, err)
	assert.Equal(t, Unspecified, s.Polarity("round"), "blank cell should be unspecified")
}

func TestMeetsConditions(t *testing.T) {
	s := mustSegment(t, []string{"syllabic", "voice"}, []string{"long"})

	tests := []struct {
		name       string
		conditions FeatureSpec
		want       bool
	}{
		{"empty", FeatureSpec{}, true},
		{"positive match", FeatureSpec{Positive: []string{"syllabic"}}, true},
		{"both match", FeatureSpec{Positive: []string{"voice"}, Negative: []string{"long"}}, true},
		{"positive missing", FeatureSpec{Positive: []string{"nasal"}}, false},
		{"negative is positive", FeatureSpec{Negative: []string{"voice"}}, false},
		{"unspecified is not negative", FeatureSpec{Negative: []string{"round"}}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.MeetsConditions(tt.conditions), tt.name)
	}
}

func TestMeetsConditions_EmptyAlwaysTrue(t *testing.T) {
	segments := []Segment{
		{},
		mustSegment(t, nil, nil),
		mustSegment(t, []string{"voice"}, nil),
		mustSegment(t, nil, []string{"voice"}),
	}
	for _, s := range segments {
		assert.True(t, s.MeetsConditions(FeatureSpec{}), "%v", s)
	}
}

func TestCombine_RightBiased(t *testing.T) {
	base := mustSegment(t, []string{"voice", "labial"}, []string{"nasal", "long"})
	changes := mustSegment(t, []string{"nasal"}, []string{"voice"})

	got := base.Combine(changes)

	tests := []struct {
		feature string
		want    Polarity
	}{
		{"nasal", Positive},
		{"voice", Negative},
		{"labial", Positive},
		{"long", Negative},
		{"round", Unspecified},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, got.Polarity(tt.feature), tt.feature)
	}

	// Operands are left as they were.
	assert.Equal(t, Negative, base.Polarity("nasal"))
	assert.Equal(t, Negative, changes.Polarity("voice"))
}

func TestCombine_NotCommutative(t *testing.T) {
	a := mustSegment(t, []string{"voice"}, nil)
	b := mustSegment(t, nil, []string{"voice"})

	assert.Equal(t, Negative, a.Combine(b).Polarity("voice"))
	assert.Equal(t, Positive, b.Combine(a).Polarity("voice"))
}

func TestCombine_LeftAssociative(t *testing.T) {
	base := mustSegment(t, []string{"syllabic"}, []string{"nasal", "long"})
	nasal := mustSegment(t, []string{"nasal"}, nil)
	long := mustSegment(t, []string{"long"}, nil)

	assert.Equal(t, "+long +nasal +syllabic", base.Combine(nasal).Combine(long).Key())
}

func TestSegment_NoOverlap(t *testing.T) {
	specs := [][2][]string{
		{{"voice"}, {"nasal"}},
		{{"nasal", "long"}, {"voice"}},
		{nil, {"voice", "long", "nasal"}},
		{{"voice", "long", "nasal"}, nil},
	}

	var segments []Segment
	for _, spec := range specs {
		segments = append(segments, mustSegment(t, spec[0], spec[1]))
	}

	for _, a := range segments {
		for _, b := range segments {
			c := a.Combine(b)
			for _, name := range c.Positive() {
				assert.NotContains(t, c.Negative(), name, "%v.Combine(%v)", a, b)
			}
		}
	}
}

func TestSegment_Key(t *testing.T) {
	tests := []struct {
		positive []string
		negative []string
		want     string
	}{
		{nil, nil, ""},
		{[]string{"voice"}, nil, "+voice"},
		{nil, []string{"voice"}, "-voice"},
		{[]string{"nasal", "labial"}, []string{"voice"}, "+labial +nasal -voice"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustSegment(t, tt.positive, tt.negative).Key())
	}
}
