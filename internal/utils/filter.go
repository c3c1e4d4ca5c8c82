package utils

import (
	"strings"
	"unicode"
)

// IsSeparator reports whether r may join the words of a multi-word token
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '\''
}

// IsOnlyNumbers checks if a string consists entirely of digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars reports runes that are neither letters, digits nor separators
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsValidToken reports whether s is worth a lexical lookup: non-empty, not
// purely numeric and free of punctuation other than separators.
func IsValidToken(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	return !ContainsSpecialChars(s)
}
