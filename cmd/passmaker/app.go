package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/passmaker/pkg/clipboard"
	"github.com/dmitrymomot/passmaker/pkg/logger"
	"github.com/dmitrymomot/passmaker/pkg/password"
)

const appName = "passmaker"

type runIDKey struct{}

// runtime holds everything the command touches outside of its arguments.
type runtime struct {
	stdout    io.Writer
	stderr    io.Writer
	clipboard clipboard.Writer
	// environ replaces the process environment when not nil.
	environ map[string]string
	// source overrides the randomness source when not nil.
	source password.Source
}

func defaultRuntime() runtime {
	return runtime{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clipboard: clipboard.System(),
	}
}

func newApp(rt runtime) (*cli.App, error) {
	s, err := loadSettings(rt.environ)
	if err != nil {
		return nil, err
	}

	var (
		opts       options
		otherCands cli.StringSlice
		otherMins  cli.IntSlice
	)

	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Generate random passwords"
	app.UsageText = appName + " [options]"
	app.Version = version
	app.Writer = rt.stdout
	app.ErrWriter = rt.stderr
	app.EnableBashCompletion = true
	app.DisableSliceFlagSeparator = true
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:        "length",
			Value:       s.Length,
			Destination: &opts.length,
			Usage:       "Number of characters in each password",
		},
		&cli.IntFlag{
			Name:        "count",
			Value:       s.Count,
			Destination: &opts.count,
			Usage:       "Number of passwords to output",
		},
		&cli.StringFlag{
			Name:        "uppercase-candidates",
			Value:       s.uppercase(),
			Destination: &opts.uppercase,
			Usage:       "Uppercase candidates. An empty value excludes uppercases",
		},
		&cli.IntFlag{
			Name:        "uppercase-minimum-count",
			Value:       s.UppercaseMinimumCount,
			Destination: &opts.uppercaseMin,
			Usage:       "Minimum number of uppercases in each password",
		},
		&cli.StringFlag{
			Name:        "lowercase-candidates",
			Value:       s.lowercase(),
			Destination: &opts.lowercase,
			Usage:       "Lowercase candidates. An empty value excludes lowercases",
		},
		&cli.IntFlag{
			Name:        "lowercase-minimum-count",
			Value:       s.LowercaseMinimumCount,
			Destination: &opts.lowercaseMin,
			Usage:       "Minimum number of lowercases in each password",
		},
		&cli.StringFlag{
			Name:        "number-candidates",
			Value:       s.numbers(),
			Destination: &opts.number,
			Usage:       "Number candidates. An empty value excludes numbers",
		},
		&cli.IntFlag{
			Name:        "number-minimum-count",
			Value:       s.NumberMinimumCount,
			Destination: &opts.numberMin,
			Usage:       "Minimum number of numbers in each password",
		},
		&cli.StringFlag{
			Name:        "symbol-candidates",
			Value:       s.symbols(),
			Destination: &opts.symbol,
			Usage:       "Symbol candidates. An empty value excludes symbols",
		},
		&cli.IntFlag{
			Name:        "symbol-minimum-count",
			Value:       s.SymbolMinimumCount,
			Destination: &opts.symbolMin,
			Usage:       "Minimum number of symbols in each password",
		},
		&cli.StringSliceFlag{
			Name:        "other-candidates",
			Destination: &otherCands,
			Usage:       "Candidates of an extra character class. Repeat the flag to add more classes",
		},
		&cli.IntSliceFlag{
			Name:        "other-minimum-count",
			Destination: &otherMins,
			Usage:       "Minimum count for the extra class at the same position. Missing values are 0",
		},
		&cli.BoolFlag{
			Name:        "exclude-similar",
			Value:       s.ExcludeSimilar,
			Destination: &opts.excludeSimilar,
			Usage:       "Leave out characters that are easy to confuse (i, l, 1, o, 0, O)",
		},
		&cli.BoolFlag{
			Name:        "include-whitespace",
			Value:       s.IncludeWhitespace,
			Destination: &opts.includeWhitespace,
			Usage:       "Allow spaces in passwords",
		},
		&cli.BoolFlag{
			Name:        "null",
			Value:       s.Null,
			Destination: &opts.null,
			Usage:       "Separate passwords with NUL instead of newline",
		},
		&cli.BoolFlag{
			Name:        "clipboard",
			Destination: &opts.clipboard,
			Usage:       "Copy the passwords to the clipboard instead of printing them",
		},
		&cli.StringFlag{
			Name:        "encoding",
			Value:       s.Encoding,
			Destination: &opts.encoding,
			Usage:       "Encoding of the candidate flags and of the output",
		},
		&cli.StringFlag{
			Name:        "completion",
			Destination: &opts.completion,
			Usage:       "Print the completion script for `SHELL` (bash, zsh, fish, powershell)",
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Value:       s.Concurrency,
			Destination: &opts.concurrency,
			Usage:       "Number of passwords built in parallel",
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Destination: &opts.verbose,
			Usage:       "Log debug information to stderr",
		},
	}

	app.Action = func(c *cli.Context) error {
		if opts.completion != "" {
			return writeCompletion(rt.stdout, c.App, opts.completion)
		}

		opts.otherCandidate = otherCands.Value()
		opts.otherMin = otherMins.Value()

		log, err := newLogger(rt.stderr, s, opts.verbose)
		if err != nil {
			return err
		}
		return run(c.Context, rt, opts, log)
	}

	return app, nil
}

func newLogger(w io.Writer, s settings, verbose bool) (*slog.Logger, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	format, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component(appName)),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}

func run(ctx context.Context, rt runtime, opts options, log *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
	start := time.Now()

	g, err := opts.generator(rt.source)
	if err != nil {
		log.DebugContext(ctx, "rejected password settings", logger.Error(err))
		return err
	}

	passwords, err := g.GenerateN(ctx, opts.count)
	if err != nil {
		log.DebugContext(ctx, "password generation failed", logger.Error(err))
		return err
	}

	text := formatPasswords(passwords, opts.null)
	if err := writePasswords(rt.stdout, rt.clipboard, text, opts.encoding, opts.clipboard); err != nil {
		log.DebugContext(ctx, "failed to write passwords", logger.Error(err))
		return err
	}

	log.DebugContext(ctx, "passwords generated",
		logger.Length(opts.length),
		logger.Count(opts.count),
		logger.Encoding(opts.encoding),
		logger.Duration(time.Since(start)),
	)
	return nil
}
