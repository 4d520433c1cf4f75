package lexicon

import (
	"github.com/bastiangx/teny/internal/utils"
)

// FrequencyTable maps single words to non-negative counts.
type FrequencyTable struct {
	entries []WordCount
	ranked  []WordCount
	index   map[string]int
}

// NewFrequencyTable normalizes keys and drops blanks and negative counts.
func NewFrequencyTable(entries []WordCount) *FrequencyTable {
	clean := make([]WordCount, 0, len(entries))
	for _, wc := range entries {
		wc.Word = utils.Normalize(wc.Word)
		if wc.Word == "" || wc.Count < 0 {
			continue
		}
		clean = append(clean, wc)
	}
	clean = mergeCounts(clean)

	t := &FrequencyTable{
		entries: clean,
		ranked:  rankCounts(clean),
		index:   make(map[string]int, len(clean)),
	}
	for i, wc := range clean {
		t.index[wc.Word] = i
	}
	return t
}

// Get returns the count for word.
func (t *FrequencyTable) Get(word string) (int, bool) {
	i, ok := t.index[word]
	if !ok {
		return 0, false
	}
	return t.entries[i].Count, true
}

// Position returns the insertion position of word, or -1.
func (t *FrequencyTable) Position(word string) int {
	if i, ok := t.index[word]; ok {
		return i
	}
	return -1
}

// Top returns up to n entries by descending count, ties in insertion order.
func (t *FrequencyTable) Top(n int) []WordCount {
	if n <= 0 || n > len(t.ranked) {
		n = len(t.ranked)
	}
	return t.ranked[:n]
}

// Entries returns the table in insertion order. Callers must not modify it.
func (t *FrequencyTable) Entries() []WordCount {
	return t.entries
}

// Len returns the number of words.
func (t *FrequencyTable) Len() int {
	return len(t.entries)
}
