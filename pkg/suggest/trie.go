package suggest

import (
	"github.com/bastiangx/teny/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// entry is the trie item: a word's frequency and when it was added.
type entry struct {
	freq  int
	order int
}

// SearchTrie collects every word under lowerPrefix, skipping the prefix
// itself and words below minThreshold. Results are in trie order.
func SearchTrie(trie *patricia.Trie, lowerPrefix string, capitalPositions []bool, minThreshold int) []Suggestion {
	if trie == nil {
		return []Suggestion{}
	}

	var suggestions []Suggestion

	err := trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}

		e, ok := item.(entry)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		if e.freq < minThreshold {
			return nil
		}

		suggestions = append(suggestions, Suggestion{
			Word:      utils.ApplyCapitals(word, capitalPositions),
			Frequency: e.freq,
			order:     e.order,
		})
		return nil
	})

	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}

	return suggestions
}
