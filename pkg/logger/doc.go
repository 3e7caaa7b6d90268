// Package logger builds *slog.Logger instances for command-line tools.
//
// A single factory, New, creates a logger configured by Option functions:
//
//   • Output format: text (default, human readable) or json
//   • Minimum level (default: warn, so a normal run prints nothing)
//   • Destination writer (default: os.Stderr, keeping stdout clean for
//     program output such as generated passwords)
//   • Static attributes added to every record
//   • ContextExtractor callbacks that copy values from context.Context into
//     each record, e.g. a per-run identifier
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler, applies static
// attributes and wraps the result in a handler decorator that runs the
// registered extractors on every Handle call. Helper constructors in attr.go
// keep attribute keys consistent across the code base.
//
// # Usage
//
//	import "github.com/dmitrymomot/passmaker/pkg/logger"
//
//	level, _ := logger.ParseLevel("debug")
//	log := logger.New(
//	    logger.WithLevel(level),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.DebugContext(ctx, "passwords generated", logger.Count(5), logger.Length(16))
//
// # Error Handling
//
// Error produces an attribute only for non-nil errors, so
//
//	log.Warn("clipboard unavailable", logger.Error(err))
//
// needs no nil check. ParseLevel and ParseFormat report unknown names with
// ErrInvalidLevel and ErrInvalidFormat.
package logger
