package lexicon

import (
	"github.com/bastiangx/teny/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is the ordered set of known word forms.
// Words are stored lowercased; iteration order is insertion order.
type Dictionary struct {
	words []string
	index map[string]int
	trie  *patricia.Trie
}

// NewDictionary normalizes words, drops blanks and repeats, and indexes the rest.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		index: make(map[string]int, len(words)),
		trie:  patricia.NewTrie(),
	}
	for _, w := range words {
		w = utils.Normalize(w)
		if w == "" {
			continue
		}
		if _, seen := d.index[w]; seen {
			continue
		}
		d.index[w] = len(d.words)
		d.trie.Insert(patricia.Prefix(w), len(d.words))
		d.words = append(d.words, w)
	}
	return d
}

// Contains reports exact membership of an already normalized word.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[word]
	return ok
}

// Position returns the insertion position of word, or -1.
func (d *Dictionary) Position(word string) int {
	if i, ok := d.index[word]; ok {
		return i
	}
	return -1
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the words in insertion order. Callers must not modify it.
func (d *Dictionary) Words() []string {
	return d.words
}

// WithPrefix visits every word starting with prefix, in trie order.
// The callback receives the word and its insertion position.
func (d *Dictionary) WithPrefix(prefix string, visit func(word string, pos int)) {
	err := d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		pos, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		visit(string(p), pos)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting dictionary subtree: %v", err)
	}
}
