package domain

// LookupOutcome tags where a lookup result came from, so callers and tests
// can distinguish a primary-source answer from a cache hit or a degraded
// fallback without inspecting logs.
type LookupOutcome string

const (
	// OutcomePrimary means the value was computed or fetched from the source.
	OutcomePrimary LookupOutcome = "PRIMARY"
	// OutcomeCached means the value was served from the persistent cache.
	OutcomeCached LookupOutcome = "CACHED"
	// OutcomeFallback means the source failed and the documented fallback
	// value was used instead.
	OutcomeFallback LookupOutcome = "FALLBACK"
)

func (o LookupOutcome) String() string { return string(o) }

func (o LookupOutcome) IsValid() bool {
	switch o {
	case OutcomePrimary, OutcomeCached, OutcomeFallback:
		return true
	}
	return false
}
