package lexicon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
)

// Order is the n of the n-gram model: keys hold up to Order-1 words.
const Order = 3

// ContextKey is the canonical n-gram table key.
// A one-word context leaves the first slot empty, so ContextKey{"", "ny"}
// and NewContextKey("ny") are the same value. Keys compare with ==.
type ContextKey [Order - 1]string

// NewContextKey builds a key from the trailing Order-1 tokens.
// Tokens are used as given; normalize them first.
func NewContextKey(tokens ...string) ContextKey {
	var k ContextKey
	if len(tokens) > len(k) {
		tokens = tokens[len(tokens)-len(k):]
	}
	copy(k[len(k)-len(tokens):], tokens)
	return k
}

// Len returns how many words the key holds.
func (k ContextKey) Len() int {
	n := 0
	for _, w := range k {
		if w != "" {
			n++
		}
	}
	return n
}

// Words returns the non-empty words of the key in order.
func (k ContextKey) Words() []string {
	out := make([]string, 0, len(k))
	for _, w := range k {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Backoff drops the oldest word.
func (k ContextKey) Backoff() ContextKey {
	return NewContextKey(k[len(k)-1])
}

func (k ContextKey) String() string {
	return strings.Join(k.Words(), " ")
}

// quotedPart matches one single or double quoted string inside a tuple literal.
var quotedPart = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'|"((?:[^"\\]|\\.)*)"`)

// ParseContextKey reads a textual key from a data file.
// Accepted forms are space separated words ("ny trano") and tuple literals
// ("('ny', 'trano')" or "('ny',)"). Tuple literals are matched strictly:
// only quoted strings, commas and spaces may appear between the parentheses.
func ParseContextKey(s string) (ContextKey, error) {
	s = strings.TrimSpace(s)
	var words []string

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		inner := s[1 : len(s)-1]
		for _, m := range quotedPart.FindAllStringSubmatch(inner, -1) {
			w := m[1]
			if w == "" {
				w = m[2]
			}
			words = append(words, unescapeQuoted(w))
		}
		between := quotedPart.ReplaceAllString(inner, "")
		if strings.Trim(between, " ,") != "" || strings.Contains(between, ",,") {
			return ContextKey{}, fmt.Errorf("malformed tuple key %q", s)
		}
	} else {
		words = strings.Fields(s)
	}
	return contextKeyFromWords(words, s)
}

func contextKeyFromWords(words []string, raw string) (ContextKey, error) {
	if len(words) == 0 || len(words) > Order-1 {
		return ContextKey{}, fmt.Errorf("context key %q must hold 1 to %d words", raw, Order-1)
	}
	for i, w := range words {
		w = utils.Normalize(w)
		if w == "" {
			return ContextKey{}, fmt.Errorf("context key %q has an empty word", raw)
		}
		words[i] = w
	}
	return NewContextKey(words...), nil
}

func unescapeQuoted(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// NgramRow is one context with its candidate next words.
type NgramRow struct {
	Context ContextKey  `msgpack:"k"`
	Next    []WordCount `msgpack:"n"`
}

// NgramTable maps context keys to ranked candidate next words.
type NgramTable struct {
	rows   []NgramRow
	ranked map[ContextKey][]WordCount
}

// NewNgramTable indexes rows. Non-positive counts and blank words are
// dropped; a repeated context replaces the earlier one.
func NewNgramTable(rows []NgramRow) *NgramTable {
	t := &NgramTable{ranked: make(map[ContextKey][]WordCount, len(rows))}
	pos := make(map[ContextKey]int, len(rows))

	for _, row := range rows {
		if row.Context.Len() == 0 {
			continue
		}
		next := make([]WordCount, 0, len(row.Next))
		for _, wc := range row.Next {
			wc.Word = utils.Normalize(wc.Word)
			if wc.Word == "" || wc.Count <= 0 {
				continue
			}
			next = append(next, wc)
		}
		next = mergeCounts(next)
		if len(next) == 0 {
			continue
		}
		clean := NgramRow{Context: row.Context, Next: next}
		if i, ok := pos[row.Context]; ok {
			t.rows[i] = clean
		} else {
			pos[row.Context] = len(t.rows)
			t.rows = append(t.rows, clean)
		}
		t.ranked[row.Context] = rankCounts(next)
	}
	return t
}

// Lookup returns candidates for key by descending count, ties in insertion order.
func (t *NgramTable) Lookup(key ContextKey) ([]WordCount, bool) {
	c, ok := t.ranked[key]
	return c, ok
}

// Rows returns the table in insertion order. Callers must not modify it.
func (t *NgramTable) Rows() []NgramRow {
	return t.rows
}

// Len returns the number of contexts.
func (t *NgramTable) Len() int {
	return len(t.rows)
}
