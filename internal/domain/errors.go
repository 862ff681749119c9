package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrStoreUnavailable means the AoA norms store is missing and could not
	// be built. It is the only fatal condition: no analysis may run after it.
	ErrStoreUnavailable = errors.New("norms store unavailable")
)
