package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passmaker/pkg/clipboard"
)

func TestFormatPasswords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "password1\npassword2\n", formatPasswords([]string{"password1", "password2"}, false))
	assert.Equal(t, "password1\x00password2\x00", formatPasswords([]string{"password1", "password2"}, true))
	assert.Equal(t, "only\n", formatPasswords([]string{"only"}, false))
}

func TestWritePasswords(t *testing.T) {
	t.Parallel()

	t.Run("stdout in utf-8", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cb := &clipboard.Memory{}
		require.NoError(t, writePasswords(&buf, cb, "あい\n", "utf-8", false))
		assert.Equal(t, "あい\n", buf.String())
		assert.Empty(t, cb.Text())
	})

	t.Run("stdout in shift_jis", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, writePasswords(&buf, &clipboard.Memory{}, "あ😀\n", "shift_jis", false))
		assert.Equal(t, []byte("\x82\xA0&#128512;\n"), buf.Bytes())
	})

	t.Run("clipboard ignores encoding", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cb := &clipboard.Memory{}
		require.NoError(t, writePasswords(&buf, cb, "あい\n", "shift_jis", true))
		assert.Equal(t, "あい\n", cb.Text())
		assert.Zero(t, buf.Len())
	})

	t.Run("clipboard failure", func(t *testing.T) {
		t.Parallel()

		failing := clipboard.WriterFunc(func(string) error {
			return clipboard.ErrUnsupported
		})
		err := writePasswords(&bytes.Buffer{}, failing, "x\n", "utf-8", true)
		assert.True(t, errors.Is(err, clipboard.ErrUnsupported))
	})
}
