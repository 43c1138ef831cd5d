package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is an interactive terminal. nem's log output
// goes to the command's stderr, which tests replace with a buffer; only
// writers exposing a file descriptor can be terminals.
func IsTTY(w io.Writer) bool {
	fd, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fd.Fd()))
}

// SupportsColor decides whether the handler colours level labels and
// attribute keys on w.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

// supportsColor applies the environment overrides: NO_COLOR
// (https://no-color.org), even when empty, and TERM=dumb both win over a
// terminal.
func supportsColor(isTTY bool) bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	switch {
	case noColor, os.Getenv("TERM") == "dumb":
		return false
	default:
		return isTTY
	}
}
