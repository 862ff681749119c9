package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/phraselevel/internal/domain"
)

func TestDifficultyLevel_Buckets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{0, domain.LevelVeryEasy},
		{19.99, domain.LevelVeryEasy},
		{20, domain.LevelEasy},
		{39.9, domain.LevelEasy},
		{40, domain.LevelMedium},
		{59.9, domain.LevelMedium},
		{60, domain.LevelHard},
		{79.9, domain.LevelHard},
		{80, domain.LevelVeryHard},
		{100, domain.LevelVeryHard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, difficultyLevel(tt.score), "score %.2f", tt.score)
	}
}

func TestScoreComponents_Caps(t *testing.T) {
	t.Parallel()

	// Every input far beyond its cap: the composite must top out at 100.
	c := scoreComponents(100, 50, 30, 10, 1.0)

	assert.Equal(t, 25.0, c.Length)
	assert.Equal(t, 10.0, c.WordCount)
	assert.Equal(t, 40.0, c.AoA)
	assert.Equal(t, 10.0, c.Syllable)
	assert.Equal(t, 15.0, c.Phoneme)
	assert.Equal(t, 100.0, c.Total())
}

func TestScoreComponents_Midrange(t *testing.T) {
	t.Parallel()

	c := scoreComponents(7.5, 5, 10, 2, 0.8)

	assert.InDelta(t, 12.5, c.Length, 1e-9)
	assert.InDelta(t, 5.0, c.WordCount, 1e-9)
	assert.InDelta(t, 20.0, c.AoA, 1e-9)
	assert.InDelta(t, 5.0, c.Syllable, 1e-9)
	assert.InDelta(t, 12.0, c.Phoneme, 1e-9)
	assert.InDelta(t, 54.5, c.Total(), 1e-9)
}

func TestScoreComponents_NoLowerClamp(t *testing.T) {
	t.Parallel()

	// AoA averages below the 2-year origin contribute negatively; the
	// composite only caps from above.
	c := scoreComponents(3, 1, 1.5, 1, 0.6)

	assert.InDelta(t, -1.25, c.AoA, 1e-9)
	assert.Less(t, c.Total(), 20.0)
}

func TestRoundHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30.3, round1(30.26666))
	assert.Equal(t, 2.4, round1(2.35))
	assert.Equal(t, 0.0, round1(0.04))
	assert.Equal(t, 4.14, round2(4.1449))
	assert.Equal(t, 1.67, round2(5.0/3.0))
}
