package phoneme

// Complexity scores an IPA transcription in [0, 1]: the mean, across its
// segments, of the fraction of specified (non-zero) features per segment.
// Segments missing from the table contribute the maximum 1.0. An empty
// segmentation yields 0.0.
func (t *Table) Complexity(ipa string) float64 {
	segs := t.Segments(ipa)
	if len(segs) == 0 {
		return 0.0
	}

	total := 0.0
	for _, seg := range segs {
		vec, ok := t.segments[seg]
		if !ok {
			total += 1.0
			continue
		}
		marked := 0
		for _, f := range vec {
			if f != 0 {
				marked++
			}
		}
		total += float64(marked) / float64(len(vec))
	}
	return total / float64(len(segs))
}
