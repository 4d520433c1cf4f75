// Package morph strips Malagasy affixes to find word roots.
package morph

import (
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// AffixSet finds the longest prefix or suffix of a word that is also a
// known affix. Suffixes are kept in a trie of reversed strings.
type AffixSet struct {
	prefixes *patricia.Trie
	suffixes *patricia.Trie
}

// NewAffixSet indexes prefixes and suffixes. Order does not matter: the
// longest applicable affix always wins.
func NewAffixSet(prefixes, suffixes []string) *AffixSet {
	a := &AffixSet{prefixes: patricia.NewTrie(), suffixes: patricia.NewTrie()}
	for _, p := range prefixes {
		if p != "" {
			a.prefixes.Insert(patricia.Prefix(p), p)
		}
	}
	for _, s := range suffixes {
		if s != "" {
			a.suffixes.Insert(patricia.Prefix(reverse(s)), s)
		}
	}
	return a
}

// LongestPrefix returns the longest known prefix of word. The prefix may
// be the whole word.
func (a *AffixSet) LongestPrefix(word string) (string, bool) {
	return longest(a.prefixes, word, utf8.RuneCountInString(word)+1)
}

// LongestSuffix returns the longest known suffix of word that leaves at
// least one character behind.
func (a *AffixSet) LongestSuffix(word string) (string, bool) {
	return longest(a.suffixes, reverse(word), utf8.RuneCountInString(word))
}

// longest picks the longest affix on the path of key shorter than n runes.
func longest(trie *patricia.Trie, key string, n int) (string, bool) {
	best := ""
	err := trie.VisitPrefixes(patricia.Prefix(key), func(_ patricia.Prefix, item patricia.Item) error {
		affix, ok := item.(string)
		if !ok {
			log.Errorf("Unknown affix item type: %T", item)
			return nil
		}
		if l := utf8.RuneCountInString(affix); l < n && l > utf8.RuneCountInString(best) {
			best = affix
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting affix trie: %v", err)
	}
	return best, best != ""
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
