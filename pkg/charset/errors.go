package charset

import "errors"

var (
	// ErrUnsupportedEncoding is returned when a label names no known encoding or the replacement encoding
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrConversionFailed is returned when the encoder or decoder rejects the input
	ErrConversionFailed = errors.New("text conversion failed")
)
