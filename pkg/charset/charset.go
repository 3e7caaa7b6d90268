package charset

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Lookup resolves a WHATWG encoding label.
func Lookup(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil || enc == encoding.Replacement {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, label)
	}
	return enc, nil
}

// Decode converts text in the labelled encoding to UTF-8.
func Decode(text []byte, label string) (string, error) {
	enc, err := Lookup(label)
	if err != nil {
		return "", err
	}

	out, err := enc.NewDecoder().Bytes(text)
	if err != nil {
		return "", errors.Join(ErrConversionFailed, err)
	}
	return string(out), nil
}

// Encode converts UTF-8 text to the labelled encoding.
func Encode(text string, label string) ([]byte, error) {
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}

	out, err := encoding.HTMLEscapeUnsupported(enc.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return nil, errors.Join(ErrConversionFailed, err)
	}
	return out, nil
}
