package analyze

import "math"

// scoreRanges are per-language score bounds measured on real phrase sets:
// the 5th and 95th percentile of observed difficulty scores. They anchor
// the linear mapping from score to the 1-1000 level scale. Regenerate with
// the calibrate command when the scoring inputs change.
var scoreRanges = map[string]struct{ min, max float64 }{
	"en-GB": {16.8, 48.3},
	"de-DE": {22.8, 66.0},
	"fr-FR": {41.7, 66.4},
}

// ScoreToLevel maps a difficulty score to a level in [1, 1000] using the
// language's calibrated range. Languages without a calibration pair fall
// back to a direct score*10 mapping.
func ScoreToLevel(score float64, lang string) int {
	r, ok := scoreRanges[lang]
	if !ok {
		return clampLevel(int(math.Round(score * 10)))
	}
	normalized := (score - r.min) / (r.max - r.min)
	return clampLevel(int(math.Round(normalized*999)) + 1)
}

// CalibratedLanguages lists the language tags with a calibration pair.
func CalibratedLanguages() []string {
	return []string{"de-DE", "en-GB", "fr-FR"}
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 1000 {
		return 1000
	}
	return level
}
