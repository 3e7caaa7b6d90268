package password_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/passmaker/pkg/password"
)

func BenchmarkGenerate(b *testing.B) {
	b.Run("Default", func(b *testing.B) {
		g := password.New()
		b.ReportAllocs()
		for b.Loop() {
			_, _ = g.Generate()
		}
	})

	b.Run("Seeded", func(b *testing.B) {
		g := password.New(password.WithSource(password.NewSeededSource(1)))
		b.ReportAllocs()
		for b.Loop() {
			_, _ = g.Generate()
		}
	})

	b.Run("Emoji", func(b *testing.B) {
		g := password.New()
		g.Others = []password.Classifier{password.NewClassifier("🏳️‍🌈❤️‍🔥👨‍👩‍👦🇯🇵", 4)}
		b.ReportAllocs()
		for b.Loop() {
			_, _ = g.Generate()
		}
	})
}

func BenchmarkGenerateLength(b *testing.B) {
	for _, tc := range []struct {
		name   string
		length int
	}{
		{"16", 16},
		{"64", 64},
		{"1024", 1024},
	} {
		b.Run(tc.name, func(b *testing.B) {
			g := password.New(password.WithLength(tc.length))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = g.Generate()
			}
		})
	}
}

func BenchmarkGenerateN(b *testing.B) {
	for _, tc := range []struct {
		name    string
		workers int
	}{
		{"Sequential", 1},
		{"Parallel4", 4},
	} {
		b.Run(tc.name, func(b *testing.B) {
			g := password.New(password.WithConcurrency(tc.workers))
			ctx := context.Background()
			b.ReportAllocs()
			for b.Loop() {
				_, _ = g.GenerateN(ctx, 100)
			}
		})
	}
}
