// Package spell finds dictionary words close to a misspelled input.
package spell

import (
	"sort"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/phonotactics"
)

const (
	// DefaultMinScore is the lowest Ratio a suggestion may have.
	DefaultMinScore = 70.0
	// DefaultMaxSuggestions caps the suggestion list.
	DefaultMaxSuggestions = 5
)

// WordList is the dictionary view the checker needs.
type WordList interface {
	Contains(word string) bool
	Words() []string
}

// Candidate is a dictionary word and its similarity to the input.
type Candidate struct {
	Word  string  `json:"word" msgpack:"word"`
	Score float64 `json:"score" msgpack:"score"`
}

// Result is the outcome of checking one word.
type Result struct {
	Correct           bool     `json:"correct" msgpack:"correct"`
	Suggestions       []string `json:"suggestions" msgpack:"suggestions"`
	PhoneticErrors    []string `json:"phonetic_errors" msgpack:"phonetic_errors"`
	PhoneticallyValid bool     `json:"phonetically_valid" msgpack:"phonetically_valid"`
}

// Options tune a Checker. Zero fields take the defaults.
type Options struct {
	MinScore       float64
	MaxSuggestions int
	CacheSize      int
}

// Checker reports whether words are known and suggests corrections.
// It is safe for concurrent use.
type Checker struct {
	words     WordList
	validator *phonotactics.Validator
	minScore  float64
	max       int
	cache     *HotCache
}

// NewChecker builds a checker over words. A nil validator uses the default rules.
func NewChecker(words WordList, validator *phonotactics.Validator, opts Options) *Checker {
	if validator == nil {
		validator = phonotactics.Default()
	}
	if opts.MinScore <= 0 {
		opts.MinScore = DefaultMinScore
	}
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultMaxSuggestions
	}
	return &Checker{
		words:     words,
		validator: validator,
		minScore:  opts.MinScore,
		max:       opts.MaxSuggestions,
		cache:     NewHotCache(opts.CacheSize),
	}
}

// Check looks word up and, when it is unknown, suggests close dictionary words.
// Phonotactic violations are reported either way. Blank input is never
// correct and gets neither suggestions nor phonetic errors.
func (c *Checker) Check(word string) Result {
	lower := utils.Normalize(word)
	if lower == "" {
		return Result{
			Suggestions:       []string{},
			PhoneticErrors:    []string{},
			PhoneticallyValid: true,
		}
	}

	ph := c.validator.Validate(lower)
	res := Result{
		Suggestions:       []string{},
		PhoneticErrors:    ph.Errors,
		PhoneticallyValid: ph.Valid,
	}
	if c.words != nil && c.words.Contains(lower) {
		res.Correct = true
		return res
	}
	for _, cand := range c.Suggest(lower, c.max) {
		res.Suggestions = append(res.Suggestions, cand.Word)
	}
	return res
}

// Suggest scores every dictionary word against word and returns up to limit
// of those reaching the minimum score, best first. Equal scores keep
// dictionary order. A limit <= 0 uses the configured maximum.
func (c *Checker) Suggest(word string, limit int) []Candidate {
	if limit <= 0 {
		limit = c.max
	}
	lower := utils.Normalize(word)
	if lower == "" || c.words == nil {
		return []Candidate{}
	}

	all, ok := c.cache.Get(lower)
	if !ok {
		all = c.rank(lower)
		c.cache.Put(lower, all)
	}
	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]Candidate, len(all))
	copy(out, all)
	return out
}

// rank returns every qualifying candidate, sorted.
func (c *Checker) rank(word string) []Candidate {
	var out []Candidate
	for _, w := range c.words.Words() {
		if s := Ratio(word, w); s >= c.minScore {
			out = append(out, Candidate{Word: w, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Validate runs only the phonotactic rules.
func (c *Checker) Validate(word string) phonotactics.Result {
	return c.validator.Validate(strings.TrimSpace(word))
}

// Stats reports cache counters.
func (c *Checker) Stats() map[string]int {
	return c.cache.Stats()
}
