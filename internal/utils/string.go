package utils

import (
	"fmt"
	"unicode"
)

// CapitalPositions records which runes of s are uppercase.
func CapitalPositions(s string) []bool {
	runes := []rune(s)
	positions := make([]bool, len(runes))
	hasUpper := false
	for i, r := range runes {
		if unicode.IsUpper(r) {
			positions[i] = true
			hasUpper = true
		}
	}
	if !hasUpper {
		return nil
	}
	return positions
}

// ApplyCapitals re-applies a capitalization pattern from CapitalPositions to word.
// Positions past the end of the pattern are left as they are.
func ApplyCapitals(word string, positions []bool) string {
	if len(positions) == 0 {
		return word
	}
	runes := []rune(word)
	for i := 0; i < len(runes) && i < len(positions); i++ {
		if positions[i] {
			runes[i] = unicode.ToUpper(runes[i])
		}
	}
	return string(runes)
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 1000 && n > -1000 {
		return fmt.Sprintf("%d", n)
	}
	str := fmt.Sprintf("%d", n)
	sign := ""
	if str[0] == '-' {
		sign, str = "-", str[1:]
	}
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return sign + result
}
