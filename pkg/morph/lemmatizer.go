package morph

import (
	"fmt"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
)

// Kind tells how a lemma was found.
type Kind string

const (
	KindIrregular Kind = "irregular"
	KindBase      Kind = "base"
	KindDerived   Kind = "derived"
)

// Irregular maps a surface form straight to its root.
type Irregular struct {
	Form string
	Root string
}

// Rules is the full configuration of a Lemmatizer.
type Rules struct {
	Prefixes   []string
	Suffixes   []string
	Irregulars []Irregular
	Categories []CategoryRule
}

// DefaultRules returns the built-in Malagasy affix tables.
func DefaultRules() Rules {
	return Rules{
		Prefixes: []string{"maha", "mpam", "mpan", "mam", "man", "fam", "fan", "mi", "ma", "fi", "f"},
		Suffixes: []string{"ana", "ina", "na", "a"},
		Irregulars: []Irregular{
			{"mandeha", "lasa"},
			{"mipetraka", "petraka"},
			{"mihinana", "hinana"},
			{"misotro", "sotro"},
			{"mihira", "hira"},
			{"miasa", "asa"},
			{"manao", "vita"},
			{"manosika", "tosika"},
		},
		Categories: DefaultCategoryRules(),
	}
}

// Lemma is the decomposition of one word. Prefix and Suffix are nil when
// nothing was stripped.
type Lemma struct {
	Lemma    string   `json:"lemma" msgpack:"lemma"`
	Original string   `json:"original" msgpack:"original"`
	Prefix   *string  `json:"prefix" msgpack:"prefix"`
	Suffix   *string  `json:"suffix" msgpack:"suffix"`
	Type     Kind     `json:"type" msgpack:"type"`
	Category Category `json:"category" msgpack:"category"`
	Analysis string   `json:"analysis" msgpack:"analysis"`
}

// Lemmatizer is immutable once built.
type Lemmatizer struct {
	affixes    *AffixSet
	irregulars map[string]string
	categories []CategoryRule
}

// NewLemmatizer builds a lemmatizer from rules.
func NewLemmatizer(rules Rules) *Lemmatizer {
	irr := make(map[string]string, len(rules.Irregulars))
	for _, i := range rules.Irregulars {
		irr[utils.Normalize(i.Form)] = i.Root
	}
	return &Lemmatizer{
		affixes:    NewAffixSet(rules.Prefixes, rules.Suffixes),
		irregulars: irr,
		categories: rules.Categories,
	}
}

// Default returns a lemmatizer over DefaultRules.
func Default() *Lemmatizer {
	return NewLemmatizer(DefaultRules())
}

// Lemmatize finds the root of word. Irregular forms are looked up first.
// Otherwise the longest prefix is stripped, then the longest suffix of what
// remains. A prefix may consume the whole word; a suffix never empties the
// root.
func (l *Lemmatizer) Lemmatize(word string) Lemma {
	w := utils.Normalize(word)
	res := Lemma{Lemma: w, Original: w, Type: KindBase}

	if root, ok := l.irregulars[w]; ok {
		res.Lemma = root
		res.Type = KindIrregular
	} else {
		root := w
		var prefix, suffix string
		if p, ok := l.affixes.LongestPrefix(root); ok {
			prefix = p
			root = root[len(p):]
		}
		if s, ok := l.affixes.LongestSuffix(root); ok {
			suffix = s
			root = root[:len(root)-len(s)]
		}
		if prefix != "" || suffix != "" {
			res.Lemma = root
			res.Type = KindDerived
			res.Prefix = optional(prefix)
			res.Suffix = optional(suffix)
		}
	}

	res.Category = Classify(l.categories, deref(res.Prefix), deref(res.Suffix))
	res.Analysis = describe(res)
	return res
}

func describe(l Lemma) string {
	switch l.Type {
	case KindIrregular:
		return fmt.Sprintf("Verbe irrégulier : '%s' → racine '%s'", l.Original, l.Lemma)
	case KindBase:
		return fmt.Sprintf("Mot de base (pas de décomposition) : '%s'", l.Original)
	}
	var parts []string
	if l.Prefix != nil {
		parts = append(parts, fmt.Sprintf("préfixe '%s'", *l.Prefix))
	}
	parts = append(parts, fmt.Sprintf("racine '%s'", l.Lemma))
	if l.Suffix != nil {
		parts = append(parts, fmt.Sprintf("suffixe '%s'", *l.Suffix))
	}
	return "Décomposition : " + strings.Join(parts, " + ")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
