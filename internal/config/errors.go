package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment or an env file cannot
	// be read into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrInvalidConfig is returned when a parsed value is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)
