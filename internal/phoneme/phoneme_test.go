package phoneme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := LoadTable()
	require.NoError(t, err)
	return table
}

func TestLoadTable(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)
	assert.Greater(t, table.Size(), 70)

	vec, ok := table.Vector("t")
	require.True(t, ok)
	assert.Len(t, vec, VectorLen)

	_, ok = table.Vector("ʘ")
	assert.False(t, ok)
}

func TestSegments(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)

	tests := []struct {
		name string
		ipa  string
		want []string
	}{
		{"simple word", "dɔɡ", []string{"d", "ɔ", "ɡ"}},
		{"stress marks stripped", "ˈdɔɡ", []string{"d", "ɔ", "ɡ"}},
		{"affricate stays whole", "tseːn", []string{"ts", "eː", "n"}},
		{"long vowel stays whole", "ʃaːf", []string{"ʃ", "aː", "f"}},
		{"non-syllabic mark stripped", "aɪ̯ns", []string{"a", "ɪ", "n", "s"}},
		{"nasalization stripped", "bɔ̃ʒuʁ", []string{"b", "ɔ", "ʒ", "u", "ʁ"}},
		{"syllable dots and spaces stripped", "ˈʃmɛ.tɐ lɪŋ", []string{"ʃ", "m", "ɛ", "t", "ɐ", "l", "ɪ", "ŋ"}},
		{"unknown rune kept as its own segment", "t✗", []string{"t", "✗"}},
		{"empty input", "", nil},
		{"marks only", "ˈˌ.", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, table.Segments(tt.ipa))
		})
	}
}

func TestComplexity(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)

	tests := []struct {
		name string
		ipa  string
		want float64
	}{
		{"empty yields zero", "", 0.0},
		{"single fully specified segment", "t", 21.0 / 24.0},
		{"single segment with unspecified features", "p", 20.0 / 24.0},
		{"unknown segment maximally complex", "t✗", (21.0/24.0 + 1.0) / 2.0},
		{"word mean", "dɔɡ", (21.0 + 21.0 + 20.0) / 24.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, table.Complexity(tt.ipa), 1e-9)
		})
	}
}

func TestComplexity_StressMarksDoNotChangeScore(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)
	assert.Equal(t, table.Complexity("dɔɡ"), table.Complexity("ˈdɔɡ"))
}

func TestComplexity_Bounds(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)
	for _, ipa := range []string{"dɔɡ", "ʃmɛtɐlɪŋ", "ˈkwɪk", "✗✗✗", "bɔ̃ʒuʁ", "pfɛʁt"} {
		c := table.Complexity(ipa)
		assert.GreaterOrEqual(t, c, 0.0, "ipa %q", ipa)
		assert.LessOrEqual(t, c, 1.0, "ipa %q", ipa)
	}
}
