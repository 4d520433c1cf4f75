package spell

import (
	"strings"

	"github.com/bastiangx/teny/internal/utils"
)

var (
	nativePrefixes = []string{"mi", "ma", "man", "mam", "maha", "mpan", "mpam", "fi", "fan", "fam"}
	nativeSuffixes = []string{"ana", "ina", "na"}
)

// LikelyNative guesses whether word is Malagasy from its affixes alone.
func LikelyNative(word string) bool {
	w := utils.Normalize(word)
	if w == "" {
		return false
	}
	for _, p := range nativePrefixes {
		if strings.HasPrefix(w, p) {
			return true
		}
	}
	for _, s := range nativeSuffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}
