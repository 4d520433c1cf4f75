package lexicon

import (
	"github.com/bastiangx/teny/internal/utils"
)

// Pair is one Malagasy to French translation.
type Pair struct {
	Malagasy string `json:"mg" msgpack:"mg"`
	French   string `json:"fr" msgpack:"fr"`
}

// TranslationTable looks words up in both directions.
// The reverse side is keyed by the lowercased French text; when two Malagasy
// words share a translation the later one wins.
type TranslationTable struct {
	pairs   []Pair
	forward map[string]string
	reverse map[string]string
}

// NewTranslationTable normalizes Malagasy keys and indexes both directions.
func NewTranslationTable(pairs []Pair) *TranslationTable {
	t := &TranslationTable{
		forward: make(map[string]string, len(pairs)),
		reverse: make(map[string]string, len(pairs)),
	}
	pos := make(map[string]int, len(pairs))
	for _, p := range pairs {
		p.Malagasy = utils.Normalize(p.Malagasy)
		if p.Malagasy == "" || p.French == "" {
			continue
		}
		if i, ok := pos[p.Malagasy]; ok {
			t.pairs[i] = p
		} else {
			pos[p.Malagasy] = len(t.pairs)
			t.pairs = append(t.pairs, p)
		}
	}
	for _, p := range t.pairs {
		t.forward[p.Malagasy] = p.French
		t.reverse[utils.Normalize(p.French)] = p.Malagasy
	}
	return t
}

// ToFrench looks up a normalized Malagasy word.
func (t *TranslationTable) ToFrench(word string) (string, bool) {
	fr, ok := t.forward[word]
	return fr, ok
}

// ToMalagasy looks up a normalized French word or phrase.
func (t *TranslationTable) ToMalagasy(word string) (string, bool) {
	mg, ok := t.reverse[word]
	return mg, ok
}

// Pairs returns the table in insertion order. Callers must not modify it.
func (t *TranslationTable) Pairs() []Pair {
	return t.pairs
}

// Len returns the number of Malagasy entries.
func (t *TranslationTable) Len() int {
	return len(t.pairs)
}
