package poly

import (
	"strings"
	"unicode"
)

// SignedTerm is a lexical term of a textual polynomial: the raw text of a
// monomial together with the sign byte preceding it.
type SignedTerm struct {
	Sign byte
	Term string
}

// SplitSignedTerms splits s into its signed terms. All whitespace is removed
// first; the string is then scanned left to right and cut at every byte
// present in signs, the characters between two signs forming the term of the
// first. If defaultSign is non-zero and s does not start with a sign,
// defaultSign is prepended. With a zero defaultSign, text before the first
// sign still belongs to the first term, and an input with no sign at all
// yields no terms.
func SplitSignedTerms(s, signs string, defaultSign byte) []SignedTerm {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if defaultSign != 0 && (s == "" || strings.IndexByte(signs, s[0]) < 0) {
		s = string(defaultSign) + s
	}

	var terms []SignedTerm
	var sign byte
	prefix := ""
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(signs, s[i]) < 0 {
			continue
		}
		if sign == 0 {
			prefix = s[:i]
		} else {
			terms = append(terms, SignedTerm{Sign: sign, Term: prefix + s[start:i]})
			prefix = ""
		}
		sign = s[i]
		start = i + 1
	}
	if sign != 0 {
		terms = append(terms, SignedTerm{Sign: sign, Term: prefix + s[start:]})
	}
	return terms
}
