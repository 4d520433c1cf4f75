package lexicon

import (
	"sort"
)

// WordCount pairs a word with an occurrence count.
type WordCount struct {
	Word  string `json:"word" msgpack:"w"`
	Count int    `json:"count" msgpack:"c"`
}

// mergeCounts collapses repeated words, keeping the first position and the
// last count seen, the way a map literal with a repeated key behaves.
func mergeCounts(in []WordCount) []WordCount {
	pos := make(map[string]int, len(in))
	out := make([]WordCount, 0, len(in))
	for _, wc := range in {
		if i, ok := pos[wc.Word]; ok {
			out[i].Count = wc.Count
			continue
		}
		pos[wc.Word] = len(out)
		out = append(out, wc)
	}
	return out
}

// rankCounts returns a copy ordered by descending count.
// Equal counts keep their input order.
func rankCounts(in []WordCount) []WordCount {
	out := make([]WordCount, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Words strips counts, truncating to limit when limit > 0.
func Words(in []WordCount, limit int) []string {
	if limit > 0 && len(in) > limit {
		in = in[:limit]
	}
	out := make([]string, len(in))
	for i, wc := range in {
		out[i] = wc.Word
	}
	return out
}
