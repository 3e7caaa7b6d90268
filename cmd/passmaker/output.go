package main

import (
	"io"
	"strings"

	"github.com/dmitrymomot/passmaker/pkg/charset"
	"github.com/dmitrymomot/passmaker/pkg/clipboard"
)

// formatPasswords joins the passwords and terminates the last one with the
// same separator.
func formatPasswords(passwords []string, null bool) string {
	sep := "\n"
	if null {
		sep = "\x00"
	}
	return strings.Join(passwords, sep) + sep
}

// writePasswords sends text to the clipboard as UTF-8, or to w in the
// requested encoding.
func writePasswords(w io.Writer, cb clipboard.Writer, text, label string, toClipboard bool) error {
	if toClipboard {
		return cb.WriteAll(text)
	}

	out, err := charset.Encode(text, label)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
