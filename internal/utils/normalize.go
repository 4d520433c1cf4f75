package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// wordPattern matches runs of letters, digits and underscores.
// Apostrophes and hyphens split tokens, so "amin'ny" yields "amin" and "ny".
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Normalize lowercases and trims a single word.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tokenize lowercases s and returns its word tokens in order.
// Punctuation is discarded, never returned as a token.
func Tokenize(s string) []string {
	return wordPattern.FindAllString(Normalize(s), -1)
}

// LowerRunes lowercases s one rune at a time.
// The result always has the same rune count as s, which keeps character
// offsets computed on it valid for the original text.
func LowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// IsWordRune reports whether r counts as a word character for boundary checks.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
