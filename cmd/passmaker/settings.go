package main

import (
	"github.com/dmitrymomot/passmaker/pkg/config"
	"github.com/dmitrymomot/passmaker/pkg/password"
)

const envPrefix = "PASSMAKER_"

// settings are the flag defaults, read from PASSMAKER_* variables.
// Candidate lists stay nil when unset so the built-in sets apply; to disable
// a class pass an empty candidate flag.
type settings struct {
	Length      int `env:"LENGTH" envDefault:"16"`
	Count       int `env:"COUNT" envDefault:"1"`
	Concurrency int `env:"CONCURRENCY" envDefault:"1"`

	UppercaseCandidates   *string `env:"UPPERCASE_CANDIDATES"`
	UppercaseMinimumCount int     `env:"UPPERCASE_MINIMUM_COUNT" envDefault:"1"`
	LowercaseCandidates   *string `env:"LOWERCASE_CANDIDATES"`
	LowercaseMinimumCount int     `env:"LOWERCASE_MINIMUM_COUNT" envDefault:"1"`
	NumberCandidates      *string `env:"NUMBER_CANDIDATES"`
	NumberMinimumCount    int     `env:"NUMBER_MINIMUM_COUNT" envDefault:"1"`
	SymbolCandidates      *string `env:"SYMBOL_CANDIDATES"`
	SymbolMinimumCount    int     `env:"SYMBOL_MINIMUM_COUNT" envDefault:"1"`

	ExcludeSimilar    bool   `env:"EXCLUDE_SIMILAR"`
	IncludeWhitespace bool   `env:"INCLUDE_WHITESPACE"`
	Null              bool   `env:"NULL"`
	Encoding          string `env:"ENCODING" envDefault:"utf-8"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func loadSettings(environment map[string]string) (settings, error) {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if environment != nil {
		opts = append(opts, config.WithEnvironment(environment))
	}

	var s settings
	if err := config.Load(&s, opts...); err != nil {
		return settings{}, err
	}
	return s, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func (s settings) uppercase() string { return valueOr(s.UppercaseCandidates, password.DefaultUppercase) }
func (s settings) lowercase() string { return valueOr(s.LowercaseCandidates, password.DefaultLowercase) }
func (s settings) numbers() string   { return valueOr(s.NumberCandidates, password.DefaultNumbers) }
func (s settings) symbols() string   { return valueOr(s.SymbolCandidates, password.DefaultSymbols) }
