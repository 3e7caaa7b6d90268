package clipboard

import "errors"

var (
	// ErrUnsupported is returned when the system has no clipboard utility
	ErrUnsupported = errors.New("clipboard is not supported on this system")

	// ErrWriteFailed is returned when the clipboard utility fails to store the text
	ErrWriteFailed = errors.New("failed to write to clipboard")
)
