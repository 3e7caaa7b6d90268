package logger

import "errors"

var (
	// ErrInvalidLevel is returned when a level name is not debug, info, warn or error
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidFormat is returned when a format name is neither text nor json
	ErrInvalidFormat = errors.New("invalid log format")
)
