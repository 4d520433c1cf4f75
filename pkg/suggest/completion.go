package suggest

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

var stringPool = sync.Map{}

func internString(s string) string {
	if cached, exists := stringPool.Load(s); exists {
		return cached.(string)
	}
	stringPool.Store(s, s)
	return s
}

// Suggestion is one completion with its corpus frequency and 1-based rank.
type Suggestion struct {
	Word      string `json:"word" msgpack:"w"`
	Frequency int    `json:"frequency" msgpack:"f"`
	Rank      uint16 `json:"rank" msgpack:"r"`
	order     int
}

// CompleterOptions bound the prefixes a Completer answers.
type CompleterOptions struct {
	MinPrefix    int
	MaxPrefix    int
	MinFrequency int
}

// Completer suggests known words that start with a typed prefix.
// Build it fully before sharing it; lookups are read-only.
type Completer struct {
	trie         *patricia.Trie
	totalWords   int
	maxFrequency int
	wordFreqs    map[string]int
	opts         CompleterOptions
}

// NewCompleter returns an empty completer.
func NewCompleter(opts CompleterOptions) *Completer {
	if opts.MinPrefix <= 0 {
		opts.MinPrefix = 1
	}
	return &Completer{
		trie:      patricia.NewTrie(),
		wordFreqs: make(map[string]int),
		opts:      opts,
	}
}

// NewLexiconCompleter indexes the dictionary words first, then any counted
// word the dictionary lacks. Dictionary words without a count get zero.
func NewLexiconCompleter(words []string, counts []lexicon.WordCount, opts CompleterOptions) *Completer {
	c := NewCompleter(opts)
	freq := make(map[string]int, len(counts))
	for _, wc := range counts {
		freq[wc.Word] = wc.Count
	}
	for _, w := range words {
		c.AddWord(w, freq[w])
	}
	for _, wc := range counts {
		if _, ok := c.wordFreqs[wc.Word]; !ok {
			c.AddWord(wc.Word, wc.Count)
		}
	}
	log.Debugf("Completer indexed %d words", c.totalWords)
	return c
}

// AddWord inserts word or updates its frequency. A re-added word keeps its
// original position for tie-breaking.
func (c *Completer) AddWord(word string, frequency int) {
	word = internString(utils.Normalize(word))
	if word == "" {
		return
	}
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
	if item := c.trie.Get(patricia.Prefix(word)); item != nil {
		e := item.(entry)
		e.freq = frequency
		c.trie.Set(patricia.Prefix(word), e)
		c.wordFreqs[word] = frequency
		return
	}
	c.trie.Insert(patricia.Prefix(word), entry{freq: frequency, order: c.totalWords})
	c.wordFreqs[word] = frequency
	c.totalWords++
}

// Complete returns up to limit words extending prefix, most frequent first,
// equal frequencies in insertion order. The prefix's capitalization is copied
// onto each suggestion. A limit <= 0 returns every match.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	prefix = strings.TrimSpace(prefix)
	n := utf8.RuneCountInString(prefix)
	if n < c.opts.MinPrefix || (c.opts.MaxPrefix > 0 && n > c.opts.MaxPrefix) {
		return []Suggestion{}
	}
	if !utils.IsValidInput(prefix) {
		log.Debugf("Skipping completion for invalid prefix %q", prefix)
		return []Suggestion{}
	}

	lowerPrefix := strings.ToLower(prefix)
	capitalPositions := utils.CapitalPositions(prefix)

	found := SearchTrie(c.trie, lowerPrefix, capitalPositions, c.opts.MinFrequency)

	filter := utils.NewSuggestionFilter(prefix)
	suggestions := make([]Suggestion, 0, len(found))
	for _, s := range found {
		if filter.ShouldInclude(s.Word) {
			suggestions = append(suggestions, s)
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].order < suggestions[j].order
	})

	if len(suggestions) > limit && limit > 0 {
		suggestions = suggestions[:limit]
	}
	ranks := utils.CreateRankList(len(suggestions))
	for i := range suggestions {
		suggestions[i].Rank = ranks[i]
	}
	return suggestions
}

// Stats returns statistics about the indexed words.
func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":   c.totalWords,
		"maxFrequency": c.maxFrequency,
	}
}
