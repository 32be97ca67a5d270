package sentencizer

import "errors"

var (
	// ErrInvalidTerminators is returned when a terminator file cannot be decoded.
	ErrInvalidTerminators = errors.New("sentencizer: invalid terminators file")

	// ErrEmptyTerminator is returned when a terminator file lists an empty symbol.
	ErrEmptyTerminator = errors.New("sentencizer: empty terminator symbol")
)
