package syllable

import "errors"

var (
	// ErrInvalidPattern is returned when a custom pattern does not compile.
	ErrInvalidPattern = errors.New("syllable: invalid pattern")

	// ErrEmptyPattern is returned when a custom pattern is an empty string.
	ErrEmptyPattern = errors.New("syllable: empty pattern")
)
