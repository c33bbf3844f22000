// Package fuzzy decides whether a search query matches a piece of Korean or
// English text.
package fuzzy

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	hangulFirst = '가'
	hangulLast  = '힣'

	// minWordLen is the shortest Latin query word that has to be found.
	minWordLen = 2
)

// Match reports whether query matches text. Both are lower-cased first.
// They are also NFC-normalized, which goes beyond plain lower-casing: a
// query or text typed as decomposed jamo is composed into Hangul syllables
// before the rules below apply, and precomposed input is unchanged.
// The rules, first hit wins:
//
//  1. query is a substring of text;
//  2. query contains a Hangul syllable: some two-syllable window of query
//     occurs in text (a one-character query needs the plain substring);
//  3. query contains a Latin letter: every query word of two or more
//     characters is a prefix of, or equal to, some word of text;
//  4. otherwise no match.
func Match(text, query string) bool {
	text = strings.ToLower(norm.NFC.String(text))
	query = strings.ToLower(norm.NFC.String(query))

	if strings.Contains(text, query) {
		return true
	}

	switch {
	case containsHangul(query):
		return matchHangul(text, query)
	case containsLatin(query):
		return matchWords(text, query)
	default:
		return false
	}
}

func matchHangul(text, query string) bool {
	runes := []rune(query)
	if len(runes) < 2 {
		return strings.Contains(text, query)
	}

	for i := 0; i < len(runes)-1; i++ {
		if strings.Contains(text, string(runes[i:i+2])) {
			return true
		}
	}
	return false
}

func matchWords(text, query string) bool {
	textWords := strings.Fields(text)

	for _, qw := range strings.Fields(query) {
		if utf8.RuneCountInString(qw) < minWordLen {
			continue
		}
		if !hasWordWithPrefix(textWords, qw) {
			return false
		}
	}
	return true
}

// hasWordWithPrefix reports whether some word starts with prefix. Equality
// is the degenerate prefix case.
func hasWordWithPrefix(words []string, prefix string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

func containsHangul(s string) bool {
	for _, r := range s {
		if r >= hangulFirst && r <= hangulLast {
			return true
		}
	}
	return false
}

func containsLatin(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
