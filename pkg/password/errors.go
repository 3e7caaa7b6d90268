package password

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidLength          = errors.New("invalid password length: must be between 1 and 65536")
	ErrInconsistentClassifier = errors.New("no candidates, but the minimum count is greater than 0")
	ErrNegativeMinimum        = errors.New("minimum count must not be negative")
	ErrInvalidCandidate       = errors.New("each candidate must be exactly one grapheme cluster")
	ErrOverConstrained        = errors.New("total minimum count is greater than the password length")
	ErrEmptyPool              = errors.New("no candidates for the password")
	ErrInvalidCount           = errors.New("invalid password count: must be at least 1")

	// Runtime errors
	ErrEntropy = errors.New("failed to read from randomness source")
)

// ClassifierError reports a classifier that is not well-formed on its own.
type ClassifierError struct {
	Name         string
	MinimumCount int
	Err          error
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("%s: %v (minimum count: %d)", e.Name, e.Err, e.MinimumCount)
}

func (e *ClassifierError) Unwrap() error {
	return e.Err
}
