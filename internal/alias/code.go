package alias

import (
	"strings"
	"unicode/utf8"
)

// GenerateCode builds a default code from the first character of each
// word, ignoring any leading run of '-' on a word. Words that are empty
// after trimming contribute nothing. While the candidate is in existing,
// a literal "1" is appended (e, e1, e11, ...).
//
// An empty result is possible when every word is hyphens only.
func GenerateCode(words []string, existing []string) string {
	var sb strings.Builder
	for _, w := range words {
		w = strings.TrimLeft(w, "-")
		if w == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(w)
		sb.WriteRune(r)
	}
	code := sb.String()

	taken := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		taken[c] = struct{}{}
	}
	for {
		if _, ok := taken[code]; !ok {
			return code
		}
		code += "1"
	}
}
