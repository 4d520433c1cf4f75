// Package phonotactics flags letter clusters that cannot occur in Malagasy.
package phonotactics

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is one forbidden cluster.
type Rule struct {
	Pattern string
	re      *regexp.Regexp
}

// Result lists every rule a word breaks.
type Result struct {
	Valid  bool     `json:"is_valid" msgpack:"is_valid"`
	Errors []string `json:"errors" msgpack:"errors"`
}

// Validator checks words against an ordered rule list. It is immutable and
// safe for concurrent use.
type Validator struct {
	rules []Rule
}

// DefaultPatterns returns the forbidden clusters in check order.
// "^nk" only applies at the start of a word.
func DefaultPatterns() []string {
	return []string{"nb", "mk", "^nk", "dt", "bp", "sz"}
}

// New compiles patterns. They are matched against the lowercased word.
func New(patterns []string) (*Validator, error) {
	v := &Validator{rules: make([]Rule, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("phonotactic pattern %q: %w", p, err)
		}
		v.rules = append(v.rules, Rule{Pattern: p, re: re})
	}
	return v, nil
}

// Default returns a validator over DefaultPatterns.
func Default() *Validator {
	v, err := New(DefaultPatterns())
	if err != nil {
		panic(err)
	}
	return v
}

// Validate reports every violated rule, in rule order. An empty word is valid.
func (v *Validator) Validate(word string) Result {
	lower := strings.ToLower(word)
	errs := []string{}
	for _, r := range v.rules {
		if r.re.MatchString(lower) {
			errs = append(errs, Describe(r.Pattern))
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Describe renders the message reported for a violated pattern.
func Describe(pattern string) string {
	return "Combinaison interdite trouvée: " + pattern
}
