// Package clipboard writes text to the system clipboard.
//
// It is a thin adapter over github.com/atotto/clipboard that exposes the
// operation behind the Writer interface, so callers can swap in an in-memory
// implementation in tests. On Linux one of xclip, xsel or wl-clipboard must be
// installed; otherwise System returns ErrUnsupported.
package clipboard
