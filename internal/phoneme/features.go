// Package phoneme scores the articulatory complexity of IPA transcriptions
// using a static feature table: one fixed-length ternary vector per phoneme,
// where -1/+1 mark specified features and 0 leaves them unspecified.
package phoneme

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	_ "embed"
)

//go:embed data/features.json
var featuresJSON []byte

// VectorLen is the number of articulatory features per segment.
const VectorLen = 24

type featureFile struct {
	Features []string         `json:"features"`
	Segments map[string][]int `json:"segments"`
}

// Table maps IPA segments to their articulatory feature vectors. It is
// read-only after construction and safe for concurrent use.
type Table struct {
	segments map[string][]int
	maxRunes int
}

// LoadTable parses the embedded feature table. The table ships with the
// binary, so an error here means a broken build, not a runtime condition.
func LoadTable() (*Table, error) {
	var f featureFile
	if err := json.Unmarshal(featuresJSON, &f); err != nil {
		return nil, fmt.Errorf("phoneme: parse feature table: %w", err)
	}
	if len(f.Features) != VectorLen {
		return nil, fmt.Errorf("phoneme: feature table lists %d features, want %d", len(f.Features), VectorLen)
	}

	t := &Table{segments: make(map[string][]int, len(f.Segments))}
	for seg, vec := range f.Segments {
		if len(vec) != VectorLen {
			return nil, fmt.Errorf("phoneme: segment %q has %d features, want %d", seg, len(vec), VectorLen)
		}
		for _, v := range vec {
			if v < -1 || v > 1 {
				return nil, fmt.Errorf("phoneme: segment %q has out-of-range feature value %d", seg, v)
			}
		}
		t.segments[seg] = vec
		if n := utf8.RuneCountInString(seg); n > t.maxRunes {
			t.maxRunes = n
		}
	}
	return t, nil
}

// Vector returns the feature vector for an exact segment.
func (t *Table) Vector(seg string) ([]int, bool) {
	vec, ok := t.segments[seg]
	return vec, ok
}

// Size reports how many segments the table knows.
func (t *Table) Size() int {
	return len(t.segments)
}
