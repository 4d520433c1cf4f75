package spell

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio scores how close a and b are on a 0 to 100 scale. It is the
// normalized insertion/deletion distance, so transpositions cost two edits.
// Two empty strings score 100.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	d := edlib.LCSEditDistance(a, b)
	return 100 * (1 - float64(d)/float64(total))
}
