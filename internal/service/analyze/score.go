package analyze

import (
	"math"

	"github.com/heartmarshall/phraselevel/internal/domain"
)

// fallbackPhonemeComplexity is the aggregate default when no word in the
// phrase produced a usable complexity value.
const fallbackPhonemeComplexity = 0.75

// scoreComponents computes the five weighted sub-scores, each clamped to
// its cap before summing: an average word length of 15 characters maxes the
// length component, 10 words max the count component, the AoA component
// spans the 2-18 year range, a density of 4 syllables per word maxes the
// syllable component. The caps make the composite top out at 100.
func scoreComponents(avgWordLength float64, wordCount int, avgAoA, syllableDensity, phonemeComplexity float64) domain.ScoreComponents {
	return domain.ScoreComponents{
		Length:    math.Min(25, avgWordLength/15*25),
		WordCount: math.Min(10, float64(wordCount)/10*10),
		AoA:       math.Min(40, (avgAoA-2)/16*40),
		Syllable:  math.Min(10, syllableDensity/4*10),
		Phoneme:   phonemeComplexity * 15,
	}
}

// difficultyLevel buckets a raw (unrounded) score into one of the five
// text levels.
func difficultyLevel(score float64) string {
	switch {
	case score < 20:
		return domain.LevelVeryEasy
	case score < 40:
		return domain.LevelEasy
	case score < 60:
		return domain.LevelMedium
	case score < 80:
		return domain.LevelHard
	default:
		return domain.LevelVeryHard
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
