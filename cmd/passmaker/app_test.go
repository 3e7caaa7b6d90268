package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passmaker/pkg/charset"
	"github.com/dmitrymomot/passmaker/pkg/clipboard"
	"github.com/dmitrymomot/passmaker/pkg/grapheme"
	"github.com/dmitrymomot/passmaker/pkg/password"
)

type testEnv struct {
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	clipboard *clipboard.Memory
	environ   map[string]string
}

func newTestEnv() *testEnv {
	return &testEnv{
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
		clipboard: &clipboard.Memory{},
		environ:   map[string]string{},
	}
}

func (e *testEnv) run(args ...string) error {
	app, err := newApp(runtime{
		stdout:    e.stdout,
		stderr:    e.stderr,
		clipboard: e.clipboard,
		environ:   e.environ,
		source:    password.NewSeededSource(42),
	})
	if err != nil {
		return err
	}
	return app.Run(append([]string{appName}, args...))
}

func TestApp_Default(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run())

	out := env.stdout.String()
	assert.Len(t, out, 17)
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Empty(t, env.clipboard.Text())
}

func TestApp_Count(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run("--count", "5"))

	lines := strings.Split(strings.TrimSuffix(env.stdout.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		assert.Len(t, line, 16)
		seen[line] = struct{}{}
	}
	assert.Len(t, seen, 5)
}

func TestApp_Concurrency(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run("--count", "20", "--concurrency", "4", "--length", "8"))

	lines := strings.Split(strings.TrimSuffix(env.stdout.String(), "\n"), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.Len(t, line, 8)
	}
}

func TestApp_NullSeparator(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run("--count", "2", "--length", "4", "--null"))

	out := env.stdout.String()
	assert.Len(t, out, 10)
	assert.Equal(t, 2, strings.Count(out, "\x00"))
	assert.NotContains(t, out, "\n")
	assert.True(t, strings.HasSuffix(out, "\x00"))
}

func TestApp_Clipboard(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run("--clipboard"))

	assert.Empty(t, env.stdout.String())
	assert.Len(t, env.clipboard.Text(), 17)
}

func TestApp_OtherCandidates(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run(
		"--length", "8",
		"--other-candidates", "🚀🐱",
		"--other-candidates", "🇯🇵🇺🇸",
		"--other-minimum-count", "1",
		"--other-minimum-count", "2",
	))

	out := strings.TrimSuffix(env.stdout.String(), "\n")
	clusters := grapheme.Split(out)
	assert.Len(t, clusters, 8)

	count := func(set ...string) int {
		n := 0
		for _, c := range clusters {
			for _, s := range set {
				if c == s {
					n++
				}
			}
		}
		return n
	}
	assert.GreaterOrEqual(t, count("🚀", "🐱"), 1)
	assert.GreaterOrEqual(t, count("🇯🇵", "🇺🇸"), 2)
}

func TestApp_Encoding(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run(
		"--length", "5",
		"--encoding", "euc-jp",
		"--other-candidates", "\xA4\xA2\xA4\xA4",
		"--other-minimum-count", "1",
	))

	out := env.stdout.Bytes()
	assert.Len(t, out, 7)
	assert.True(t,
		bytes.Contains(out, []byte("\xA4\xA2")) || bytes.Contains(out, []byte("\xA4\xA4")),
		"output %q has no kana", out)
}

func TestApp_EnvironmentDefaults(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.environ = map[string]string{
		"PASSMAKER_LENGTH":               "8",
		"PASSMAKER_COUNT":                "3",
		"PASSMAKER_SYMBOL_CANDIDATES":    "#",
		"PASSMAKER_SYMBOL_MINIMUM_COUNT": "2",
	}
	require.NoError(t, env.run())

	lines := strings.Split(strings.TrimSuffix(env.stdout.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 8)
		assert.GreaterOrEqual(t, strings.Count(line, "#"), 2)
		for _, r := range strings.ReplaceAll(line, "#", "") {
			assert.False(t, strings.ContainsRune(password.DefaultSymbols, r), "unexpected symbol %q", r)
		}
	}
}

func TestApp_FlagsOverrideEnvironment(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.environ = map[string]string{"PASSMAKER_LENGTH": "8"}
	require.NoError(t, env.run("--length", "12"))

	assert.Len(t, env.stdout.String(), 13)
}

func TestApp_InvalidEnvironment(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.environ = map[string]string{"PASSMAKER_LENGTH": "long"}
	assert.Error(t, env.run())
}

func TestApp_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "zero length",
			args: []string{"--length", "0"},
			want: password.ErrInvalidLength,
		},
		{
			name: "length above maximum",
			args: []string{"--length", "70000"},
			want: password.ErrInvalidLength,
		},
		{
			name: "over constrained",
			args: []string{"--length", "3"},
			want: password.ErrOverConstrained,
		},
		{
			name: "empty pool",
			args: []string{
				"--uppercase-candidates", "",
				"--lowercase-candidates", "",
				"--number-candidates", "",
				"--symbol-candidates", "",
			},
			want: password.ErrEmptyPool,
		},
		{
			name: "other minimum without candidates",
			args: []string{"--other-minimum-count", "3"},
			want: password.ErrInconsistentClassifier,
		},
		{
			name: "zero count",
			args: []string{"--count", "0"},
			want: password.ErrInvalidCount,
		},
		{
			name: "unknown encoding",
			args: []string{"--encoding", "invalid"},
			want: charset.ErrUnsupportedEncoding,
		},
		{
			name: "unknown shell",
			args: []string{"--completion", "tcsh"},
			want: errUnsupportedShell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			err := env.run(tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, env.stdout.String())
		})
	}
}

func TestApp_Verbose(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run("--verbose"))

	logs := env.stderr.String()
	assert.Contains(t, logs, "passwords generated")
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "component=passmaker")
}

func TestApp_QuietByDefault(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	require.NoError(t, env.run())
	assert.Empty(t, env.stderr.String())
}
