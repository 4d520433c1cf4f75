package morph

import "slices"

// Category is a coarse part-of-speech guess made from affixes.
type Category string

const (
	CategoryActiveVerb    Category = "verbe_actif"
	CategoryCausativeVerb Category = "verbe_causatif"
	CategoryDerivedNoun   Category = "nom_dérivé"
	CategoryPassive       Category = "forme_passive_circonstancielle"
	CategoryStative       Category = "adjectif_stative"
	CategoryBase          Category = "base_word"
)

// CategoryRule maps an affix combination to a category.
type CategoryRule struct {
	Match    func(prefix, suffix string) bool
	Category Category
}

func prefixIn(set ...string) func(string, string) bool {
	return func(prefix, _ string) bool { return slices.Contains(set, prefix) }
}

func suffixIn(set ...string) func(string, string) bool {
	return func(_, suffix string) bool { return slices.Contains(set, suffix) }
}

// DefaultCategoryRules is checked top to bottom; the first match wins.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{prefixIn("mi", "man", "mam", "mpan", "mpam"), CategoryActiveVerb},
		{prefixIn("maha"), CategoryCausativeVerb},
		{prefixIn("fi", "fan", "fam", "f"), CategoryDerivedNoun},
		{suffixIn("ana", "ina"), CategoryPassive},
		{prefixIn("ma"), CategoryStative},
	}
}

// Classify returns the category of the first matching rule, or CategoryBase.
// Absent affixes are passed as "".
func Classify(rules []CategoryRule, prefix, suffix string) Category {
	for _, r := range rules {
		if r.Match(prefix, suffix) {
			return r.Category
		}
	}
	return CategoryBase
}
