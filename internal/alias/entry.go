package alias

import (
	"strings"
	"unicode"
)

// Entry is one alias: a command line, the short code that invokes it and
// an optional description.
type Entry struct {
	Command     string `toml:"cmd" json:"command" yaml:"command"`
	Code        string `toml:"code" json:"code" yaml:"code"`
	Description string `toml:"desc" json:"description" yaml:"description"`
}

// Words splits the command on whitespace. The first word is the
// executable; the rest are its default arguments. No quoting rules apply.
func (e Entry) Words() []string {
	return strings.Fields(e.Command)
}

// Executable returns the first word of the command, or "" when blank.
func (e Entry) Executable() string {
	words := e.Words()
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// ValidateCode checks that code is usable on a command line.
func ValidateCode(code string) error {
	if code == "" {
		return ErrInvalidCode
	}
	if strings.IndexFunc(code, unicode.IsSpace) >= 0 {
		return ErrInvalidCode
	}
	return nil
}
