package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Length records a password length under the key "length".
func Length(n int) slog.Attr {
	return slog.Int("length", n)
}

// Count records how many items were processed under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Encoding records a text encoding label under the key "encoding".
func Encoding(label string) slog.Attr {
	return slog.String("encoding", label)
}

// Duration records elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
