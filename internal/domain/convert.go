package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// SafeParseInt reads a leading base-10 integer from s and returns def when
// there is none. Leading whitespace and a single sign are accepted and parsing
// stops at the first non-digit, so "12abc" is 12 and "1.9" is 1.
func SafeParseInt(s string, def int) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return def
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return def
	}
	return n
}

// SafeString returns s, or def when s is empty.
func SafeString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
