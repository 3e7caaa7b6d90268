package main

import (
	"fmt"

	"github.com/dmitrymomot/passmaker/pkg/charset"
	"github.com/dmitrymomot/passmaker/pkg/grapheme"
	"github.com/dmitrymomot/passmaker/pkg/password"
)

// options are the parsed command line values.
type options struct {
	length      int
	count       int
	concurrency int

	uppercase      string
	uppercaseMin   int
	lowercase      string
	lowercaseMin   int
	number         string
	numberMin      int
	symbol         string
	symbolMin      int
	otherCandidate []string
	otherMin       []int

	excludeSimilar    bool
	includeWhitespace bool
	null              bool
	clipboard         bool
	encoding          string
	completion        string
	verbose           bool
}

// classifier decodes raw candidates and disables the class when they are empty.
func classifier(raw, label string, minimum int) (password.Classifier, error) {
	text, err := charset.Decode([]byte(raw), label)
	if err != nil {
		return password.Classifier{}, err
	}
	if text == "" {
		minimum = 0
	}
	return password.Classifier{Candidates: grapheme.Split(text), MinimumCount: minimum}, nil
}

// others pairs --other-candidates with --other-minimum-count. The shorter
// list is padded with empty candidates or zero minimums.
func (o options) others() ([]password.Classifier, error) {
	n := max(len(o.otherCandidate), len(o.otherMin))
	if n == 0 {
		return nil, nil
	}

	list := make([]password.Classifier, n)
	for i := range list {
		if i < len(o.otherCandidate) {
			text, err := charset.Decode([]byte(o.otherCandidate[i]), o.encoding)
			if err != nil {
				return nil, err
			}
			list[i].Candidates = grapheme.Split(text)
		}
		if i < len(o.otherMin) {
			list[i].MinimumCount = o.otherMin[i]
		}
	}
	return list, nil
}

// generator turns the options into a password generator.
func (o options) generator(src password.Source) (*password.Generator, error) {
	g := password.New(
		password.WithSource(src),
		password.WithLength(o.length),
		password.WithConcurrency(o.concurrency),
	)

	classes := []struct {
		dst     *password.Classifier
		raw     string
		minimum int
	}{
		{&g.Uppercase, o.uppercase, o.uppercaseMin},
		{&g.Lowercase, o.lowercase, o.lowercaseMin},
		{&g.Number, o.number, o.numberMin},
		{&g.Symbol, o.symbol, o.symbolMin},
	}
	for _, c := range classes {
		cl, err := classifier(c.raw, o.encoding, c.minimum)
		if err != nil {
			return nil, err
		}
		*c.dst = cl
	}

	others, err := o.others()
	if err != nil {
		return nil, err
	}
	g.Others = others
	g.ExcludeSimilar = o.excludeSimilar
	g.IncludeWhitespace = o.includeWhitespace

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid password settings: %w", err)
	}
	return g, nil
}
