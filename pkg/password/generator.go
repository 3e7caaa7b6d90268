package password

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/passmaker/pkg/grapheme"
)

// Generator holds a password configuration. Fields can be changed freely
// between calls; validation runs on every Generate and GenerateN.
type Generator struct {
	// Length is the number of grapheme clusters in every password.
	Length int

	Lowercase Classifier
	Uppercase Classifier
	Number    Classifier
	Symbol    Classifier

	// Others are user-defined classes, each with its own minimum.
	Others []Classifier

	// ExcludeSimilar removes "i", "l", "1", "o", "0" and "O" from every class.
	ExcludeSimilar bool

	// IncludeWhitespace adds a space to the filler pool. Leading or trailing
	// spaces are easy to lose on input, so it is off by default.
	IncludeWhitespace bool

	source      Source
	concurrency int
}

// Option configures a Generator created with New.
type Option func(*Generator)

// WithSource sets the randomness source. Nil is ignored.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithLength overrides the default password length.
func WithLength(n int) Option {
	return func(g *Generator) {
		g.Length = n
	}
}

// WithConcurrency sets how many passwords GenerateN builds in parallel.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.concurrency = n
		}
	}
}

// New returns a Generator with the default configuration: 16 characters with
// at least one lowercase letter, uppercase letter, digit and ASCII symbol.
func New(opts ...Option) *Generator {
	g := &Generator{
		Length:      DefaultLength,
		Lowercase:   NewClassifier(DefaultLowercase, 1),
		Uppercase:   NewClassifier(DefaultUppercase, 1),
		Number:      NewClassifier(DefaultNumbers, 1),
		Symbol:      NewClassifier(DefaultSymbols, 1),
		source:      CryptoSource(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// plan is a validated snapshot of the configuration.
type plan struct {
	length    int
	mandatory []Classifier
	pool      []string
}

type namedClassifier struct {
	name string
	Classifier
}

// classifiers lists every class in a fixed order with ExcludeSimilar applied.
func (g *Generator) classifiers() []namedClassifier {
	list := make([]namedClassifier, 0, 4+len(g.Others))
	list = append(list,
		namedClassifier{"lowercase", g.Lowercase},
		namedClassifier{"uppercase", g.Uppercase},
		namedClassifier{"number", g.Number},
		namedClassifier{"symbol", g.Symbol},
	)
	for i, c := range g.Others {
		list = append(list, namedClassifier{fmt.Sprintf("others[%d]", i), c})
	}

	if g.ExcludeSimilar {
		for i := range list {
			list[i].Classifier = list[i].without(similar)
		}
	}
	return list
}

// Pool returns the filler pool for the current configuration: the candidates
// of all classes concatenated in order, duplicates included.
func (g *Generator) Pool() []string {
	var pool []string
	for _, c := range g.classifiers() {
		pool = append(pool, c.Candidates...)
	}
	if g.IncludeWhitespace {
		pool = append(pool, whitespace)
	}
	return pool
}

// Validate checks the configuration without drawing any randomness.
// All problems are reported at once.
func (g *Generator) Validate() error {
	_, err := g.prepare()
	return err
}

func (g *Generator) prepare() (*plan, error) {
	var errs []error

	if g.Length < 1 || g.Length > MaxLength {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrInvalidLength, g.Length))
	}

	p := &plan{length: g.Length}
	total := 0
	for _, c := range g.classifiers() {
		p.pool = append(p.pool, c.Candidates...)
		total += max(c.MinimumCount, 0)

		if err := c.Validate(); err != nil {
			errs = append(errs, &ClassifierError{Name: c.name, MinimumCount: c.MinimumCount, Err: err})
			continue
		}
		if c.MinimumCount > 0 {
			p.mandatory = append(p.mandatory, c.Classifier)
		}
	}
	if g.IncludeWhitespace {
		p.pool = append(p.pool, whitespace)
	}

	if total > g.Length {
		errs = append(errs, fmt.Errorf("%w: total minimum count is %d, but the password length is %d",
			ErrOverConstrained, total, g.Length))
	}
	if len(p.pool) == 0 {
		errs = append(errs, ErrEmptyPool)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return p, nil
}

func (g *Generator) entropy() Source {
	if g.source == nil {
		return CryptoSource()
	}
	return g.source
}

// Generate validates the configuration and returns one password.
// On error the returned password is always empty.
func (g *Generator) Generate() (string, error) {
	p, err := g.prepare()
	if err != nil {
		return "", err
	}
	return build(p, g.entropy())
}

// GenerateN returns count passwords built from a single validation of the
// configuration. Passwords are independent of each other; with concurrency
// above 1 they are built in parallel and returned in index order.
func (g *Generator) GenerateN(ctx context.Context, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, count)
	}
	p, err := g.prepare()
	if err != nil {
		return nil, err
	}

	src := g.entropy()
	passwords := make([]string, count)

	if g.concurrency <= 1 {
		for i := range passwords {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if passwords[i], err = build(p, src); err != nil {
				return nil, err
			}
		}
		return passwords, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i := range passwords {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pw, err := build(p, src)
			if err != nil {
				return err
			}
			passwords[i] = pw
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return passwords, nil
}

// build draws the mandatory and filler clusters, shuffles and joins them.
func build(p *plan, src Source) (string, error) {
	clusters := make([]string, 0, p.length)

	for _, c := range p.mandatory {
		for range c.MinimumCount {
			s, err := pick(src, c.Candidates)
			if err != nil {
				return "", err
			}
			clusters = append(clusters, s)
		}
	}

	for len(clusters) < p.length {
		s, err := pick(src, p.pool)
		if err != nil {
			return "", err
		}
		clusters = append(clusters, s)
	}

	if err := shuffle(src, clusters); err != nil {
		return "", err
	}
	return grapheme.Join(clusters), nil
}

func pick(src Source, candidates []string) (string, error) {
	i, err := src.IntN(len(candidates))
	if err != nil {
		return "", err
	}
	return candidates[i], nil
}

// shuffle is a Fisher-Yates permutation driven by src.
func shuffle(src Source, clusters []string) error {
	for i := len(clusters) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		clusters[i], clusters[j] = clusters[j], clusters[i]
	}
	return nil
}
