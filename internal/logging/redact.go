package logging

import "strings"

// secretKeyPatterns are substrings of attribute keys whose values are masked.
var secretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"API_KEY",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes mark values that are credentials whatever their key.
var tokenPrefixes = []string{
	"ghp_", "gho_", "ghu_", "ghs_", "ghr_",
	"sk-",
	"AKIA",
	"xoxb-", "xoxp-", "xoxa-", "xoxr-",
}

// shouldMask reports whether an attribute key names a secret.
func shouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, p := range secretKeyPatterns {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}

// Redact masks every whitespace-separated word of s that starts with a
// known token prefix. Alias commands are logged through it.
func Redact(s string) string {
	if !containsTokenPrefix(s) {
		return s
	}
	words := strings.Fields(s)
	for i, w := range words {
		for _, p := range tokenPrefixes {
			if strings.HasPrefix(w, p) {
				words[i] = maskValue(w)
				break
			}
		}
	}
	return strings.Join(words, " ")
}

func containsTokenPrefix(s string) bool {
	for _, p := range tokenPrefixes {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// maskValue keeps the last four characters of longer values.
func maskValue(v string) string {
	if len(v) <= 4 {
		return "********"
	}
	return "****" + v[len(v)-4:]
}
