// Package password generates random passwords that satisfy per-class
// composition rules.
//
// A password is described by a Generator: a target length plus a set of
// Classifiers. Each Classifier is a list of candidate characters and the
// minimum number of them that must appear in every password. Four classes are
// reserved (lowercase, uppercase, number, symbol) and any number of extra
// classes can be appended through Generator.Others, e.g. emoji or kana.
//
// Characters are grapheme clusters, not bytes or runes. A flag, a skin-toned
// emoji or a letter with combining marks is picked, counted and emitted as one
// unit and is never split across two positions of the output.
//
// Some candidates join with their neighbour once emitted: a lone regional
// indicator next to another one, or a bare combining mark after a letter.
// Such candidates are counted as one position each but the output may then
// segment into fewer clusters than Length. Keep them out of the candidate
// lists when the rendered length matters.
//
// # Architecture
//
// Generation runs in two phases over a validated configuration:
//
//  1. Mandatory phase. For each classifier exactly MinimumCount clusters are
//     drawn with replacement from its own candidates.
//  2. Filler phase. The remaining Length - Σ MinimumCount positions are drawn
//     with replacement from the pool, which is the concatenation of every
//     classifier's candidates. Duplicates are kept, so a class with more
//     candidates (or a candidate listed twice) is proportionally more likely
//     to show up in the filler.
//
// The combined clusters are then permuted with a Fisher-Yates shuffle so the
// mandatory characters do not sit at predictable positions, and finally joined.
//
// Every draw goes through a Source. CryptoSource, the default, reads from
// crypto/rand. NewSeededSource yields a reproducible ChaCha20 stream for tests
// and must never be used for real passwords.
//
// # Usage
//
//	import "github.com/dmitrymomot/passmaker/pkg/password"
//
//	gen := password.New(password.WithLength(20))
//	gen.Symbol = password.NewClassifier("!@#$%", 2)
//	gen.Others = append(gen.Others, password.NewClassifier("🇯🇵🇺🇸", 1))
//
//	pw, err := gen.Generate()
//	if err != nil {
//	    // configuration error, see below
//	}
//
// The Generator is a plain record: fields may be changed between calls and
// the configuration is validated again on every Generate or GenerateN.
//
// # Error Handling
//
// Validation is exhaustive and happens before any randomness is drawn. All
// problems found are joined with errors.Join and can be matched with errors.Is:
//
//   - ErrInvalidLength: Length is below 1 or above MaxLength.
//   - ErrInconsistentClassifier: a positive MinimumCount without candidates.
//   - ErrNegativeMinimum, ErrInvalidCandidate: malformed classifier.
//   - ErrOverConstrained: minimums add up to more than Length.
//   - ErrEmptyPool: no candidates at all.
//
// Classifier problems are wrapped in *ClassifierError which names the
// offending class. ErrEntropy is the only runtime failure and means the
// Source could not deliver random data.
package password
