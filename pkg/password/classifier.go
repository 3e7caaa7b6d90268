package password

import "github.com/dmitrymomot/passmaker/pkg/grapheme"

// Classifier is a set of candidate characters together with the number of
// them required in every password.
type Classifier struct {
	// Candidates are grapheme clusters. Duplicates are allowed and raise the
	// chance of that candidate being picked.
	Candidates []string

	// MinimumCount is how many characters from Candidates every password
	// contains at least.
	MinimumCount int
}

// NewClassifier segments chars into grapheme clusters and uses them as
// candidates.
func NewClassifier(chars string, minimum int) Classifier {
	return Classifier{
		Candidates:   grapheme.Split(chars),
		MinimumCount: minimum,
	}
}

// Validate reports whether the classifier is usable on its own.
func (c Classifier) Validate() error {
	if c.MinimumCount < 0 {
		return ErrNegativeMinimum
	}
	if c.MinimumCount > 0 && len(c.Candidates) == 0 {
		return ErrInconsistentClassifier
	}
	for _, candidate := range c.Candidates {
		if !grapheme.IsSingle(candidate) {
			return ErrInvalidCandidate
		}
	}
	return nil
}

// without returns a copy of c whose candidates exclude everything in skip.
func (c Classifier) without(skip map[string]struct{}) Classifier {
	kept := make([]string, 0, len(c.Candidates))
	for _, candidate := range c.Candidates {
		if _, ok := skip[candidate]; !ok {
			kept = append(kept, candidate)
		}
	}
	return Classifier{Candidates: kept, MinimumCount: c.MinimumCount}
}
