package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLemmatizeIrregular(t *testing.T) {
	l := Default()

	res := l.Lemmatize("Mandeha")
	assert.Equal(t, "lasa", res.Lemma)
	assert.Equal(t, "mandeha", res.Original)
	assert.Equal(t, KindIrregular, res.Type)
	assert.Nil(t, res.Prefix)
	assert.Nil(t, res.Suffix)
	assert.Equal(t, CategoryBase, res.Category)
	assert.Equal(t, "Verbe irrégulier : 'mandeha' → racine 'lasa'", res.Analysis)

	assert.Equal(t, "hinana", l.Lemmatize("mihinana").Lemma)
	assert.Equal(t, "hinana", l.Lemmatize(" MIHINANA ").Lemma)
}

func TestLemmatizeDerived(t *testing.T) {
	l := Default()

	tests := []struct {
		word     string
		lemma    string
		prefix   string
		suffix   string
		category Category
	}{
		{"fanabeazana", "abeaz", "fan", "ana", CategoryDerivedNoun},
		{"mividy", "vidy", "mi", "", CategoryActiveVerb},
		{"mahay", "y", "maha", "", CategoryCausativeVerb},
		{"tanana", "tan", "", "ana", CategoryPassive},
		{"marina", "r", "ma", "ina", CategoryPassive},
		{"mpanabe", "abe", "mpan", "", CategoryActiveVerb},
		{"ana", "a", "", "na", CategoryBase},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			res := l.Lemmatize(tt.word)
			assert.Equal(t, KindDerived, res.Type)
			assert.Equal(t, tt.lemma, res.Lemma)
			assert.Equal(t, tt.word, res.Original)
			if tt.prefix == "" {
				assert.Nil(t, res.Prefix)
			} else {
				require.NotNil(t, res.Prefix)
				assert.Equal(t, tt.prefix, *res.Prefix)
			}
			if tt.suffix == "" {
				assert.Nil(t, res.Suffix)
			} else {
				require.NotNil(t, res.Suffix)
				assert.Equal(t, tt.suffix, *res.Suffix)
			}
			assert.Equal(t, tt.category, res.Category)
		})
	}

	assert.Equal(t,
		"Décomposition : préfixe 'fan' + racine 'abeaz' + suffixe 'ana'",
		l.Lemmatize("fanabeazana").Analysis)
}

func TestLemmatizeBase(t *testing.T) {
	l := Default()
	for _, w := range []string{"trano", "a", ""} {
		res := l.Lemmatize(w)
		assert.Equal(t, KindBase, res.Type, w)
		assert.Equal(t, w, res.Lemma)
		assert.Equal(t, CategoryBase, res.Category)
	}
	assert.Equal(t, "Mot de base (pas de décomposition) : 'trano'", l.Lemmatize("trano").Analysis)
}

func TestLemmatizeSuffixNeverEmptiesRoot(t *testing.T) {
	l := Default()
	tests := []struct {
		word   string
		lemma  string
		prefix string
		suffix string
	}{
		{"ana", "a", "", "na"},
		{"ina", "i", "", "na"},
		{"mana", "a", "man", ""},
		{"fana", "a", "fan", ""},
		{"mia", "a", "mi", ""},
		{"fa", "a", "f", ""},
		{"mpama", "a", "mpam", ""},
		{"tsara", "tsar", "", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			res := l.Lemmatize(tt.word)
			assert.Equal(t, tt.lemma, res.Lemma)
			assert.Equal(t, tt.prefix, deref(res.Prefix))
			assert.Equal(t, tt.suffix, deref(res.Suffix))
		})
	}
}

func TestLemmatizeWholeWordPrefix(t *testing.T) {
	l := Default()
	tests := []struct {
		word     string
		category Category
	}{
		{"maha", CategoryCausativeVerb},
		{"ma", CategoryStative},
		{"mam", CategoryActiveVerb},
		{"mpan", CategoryActiveVerb},
		{"fan", CategoryDerivedNoun},
		{"fi", CategoryDerivedNoun},
		{"f", CategoryDerivedNoun},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			res := l.Lemmatize(tt.word)
			assert.Equal(t, KindDerived, res.Type)
			assert.Empty(t, res.Lemma)
			require.NotNil(t, res.Prefix)
			assert.Equal(t, tt.word, *res.Prefix)
			assert.Nil(t, res.Suffix)
			assert.Equal(t, tt.category, res.Category)
		})
	}
}

func TestAffixSetLongestMatch(t *testing.T) {
	a := NewAffixSet([]string{"f", "fan", "fa"}, []string{"a", "na", "ana"})

	p, ok := a.LongestPrefix("fanorona")
	require.True(t, ok)
	assert.Equal(t, "fan", p)

	p, ok = a.LongestPrefix("fan")
	require.True(t, ok)
	assert.Equal(t, "fan", p)

	p, ok = a.LongestPrefix("f")
	require.True(t, ok)
	assert.Equal(t, "f", p)

	_, ok = a.LongestPrefix("trano")
	assert.False(t, ok)

	s, ok := a.LongestSuffix("tanana")
	require.True(t, ok)
	assert.Equal(t, "ana", s)

	s, ok = a.LongestSuffix("ana")
	require.True(t, ok)
	assert.Equal(t, "na", s)

	_, ok = a.LongestSuffix("a")
	assert.False(t, ok)
}

func TestClassifyFirstRuleWins(t *testing.T) {
	rules := DefaultCategoryRules()
	assert.Equal(t, CategoryActiveVerb, Classify(rules, "mi", "ana"))
	assert.Equal(t, CategoryPassive, Classify(rules, "", "ina"))
	assert.Equal(t, CategoryStative, Classify(rules, "ma", ""))
	assert.Equal(t, CategoryBase, Classify(rules, "", "na"))
	assert.Equal(t, CategoryBase, Classify(nil, "mi", ""))
}
