package domain

// WordAnalysis holds the per-word signals collected by the scoring pipeline.
type WordAnalysis struct {
	Word string `json:"word"`
	// Lemma is the dictionary base form; nil when the word already is one.
	Lemma *string `json:"lemma,omitempty"`
	// EnglishGloss is the translation used for the AoA lookup; nil for English input.
	EnglishGloss *string `json:"english,omitempty"`
	// AoA is the age of acquisition in years. Always set: words missing from
	// the norms store carry the adult fallback.
	AoA      float64 `json:"aoa"`
	AoAKnown bool    `json:"aoa_known"`
	// Syllables is the vowel-run estimate, at least 1.
	Syllables int     `json:"syllables"`
	IPA       *string `json:"ipa,omitempty"`
	// PhonemeComplexity is in [0,1]; nil when no IPA could be produced.
	PhonemeComplexity *float64 `json:"phoneme_complexity,omitempty"`
}

// ScoreComponents are the five weighted sub-scores of the composite
// difficulty score. Each component is clamped to its cap before summing:
// length 25, word count 10, AoA 40, syllables 10, phonemes 15.
type ScoreComponents struct {
	Length    float64 `json:"length_score"`
	WordCount float64 `json:"word_count_score"`
	AoA       float64 `json:"aoa_score"`
	Syllable  float64 `json:"syllable_score"`
	Phoneme   float64 `json:"phoneme_score"`
}

// Total returns the composite difficulty score. By construction of the
// per-component caps it is always within [0,100].
func (c ScoreComponents) Total() float64 {
	return c.Length + c.WordCount + c.AoA + c.Syllable + c.Phoneme
}

// PhraseAnalysis is the complete result of analyzing one phrase.
type PhraseAnalysis struct {
	Phrase   string `json:"phrase"`
	Language string `json:"language"`

	WordCount int `json:"word_count"`
	// CharCount counts runes of all words, spaces excluded.
	CharCount           int     `json:"char_count"`
	AvgWordLength       float64 `json:"avg_word_length"`
	TotalSyllables      int     `json:"total_syllables"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
	// AvgAoA is always defined for non-empty phrases.
	AvgAoA float64 `json:"avg_aoa"`
	// AoAKnownWords is how many words had a real norms entry (vs. fallback).
	AoAKnownWords int `json:"aoa_known_words"`
	// PhonemeComplexity is the aggregate over words with a positive value,
	// or the adult fallback when none qualify.
	PhonemeComplexity float64 `json:"phoneme_complexity"`

	Score        float64         `json:"difficulty_score"`
	Level        string          `json:"difficulty_level"`
	NumericLevel int             `json:"level"`
	Components   ScoreComponents `json:"score_components"`

	Words []WordAnalysis `json:"word_details"`

	// Err is set only for rejected input (empty phrase); scores are zero then.
	Err string `json:"error,omitempty"`
}

// Difficulty level buckets, in ascending order.
const (
	LevelVeryEasy = "Very Easy"
	LevelEasy     = "Easy"
	LevelMedium   = "Medium"
	LevelHard     = "Hard"
	LevelVeryHard = "Very Hard"
)

// Levels lists the five difficulty buckets in ascending order.
func Levels() []string {
	return []string{LevelVeryEasy, LevelEasy, LevelMedium, LevelHard, LevelVeryHard}
}
