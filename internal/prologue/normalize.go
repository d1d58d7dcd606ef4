package prologue

import (
	"strings"
	"unicode"
)

// NormalizeName converts a section name to its canonical spelling:
// words are title-cased, "of" stays lowercase, and fully
// uppercase/underscore words (ADAM, SUN/123 style tokens) are kept
// untouched. The operation is idempotent, so names can be normalized on
// every store and lookup without drift.
func NormalizeName(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		switch {
		case isUpperToken(word):
			// e.g. "ADAM" in "ADAM Parameters"
		case strings.EqualFold(word, "of"):
			words[i] = "of"
		default:
			lower := strings.ToLower(word)
			words[i] = strings.ToUpper(lower[:1]) + lower[1:]
		}
	}
	return strings.Join(words, " ")
}

// isUpperToken reports whether the word consists only of uppercase
// letters, digits and underscores, with at least one uppercase letter.
func isUpperToken(word string) bool {
	hasUpper := false
	for _, r := range word {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r) || r == '_':
		default:
			return false
		}
	}
	return hasUpper
}
