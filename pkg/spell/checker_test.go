package spell

import (
	"testing"

	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultChecker() *Checker {
	return NewChecker(lexicon.DefaultDictionary(), nil, Options{CacheSize: 16})
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, Ratio("trano", "trano"))
	assert.Equal(t, 100.0, Ratio("", ""))
	assert.Equal(t, 0.0, Ratio("abc", ""))
	assert.InDelta(t, 90.909, Ratio("tranoo", "trano"), 0.001)
	assert.InDelta(t, 80.0, Ratio("tranoo", "rano"), 0.001)
	assert.Equal(t, Ratio("vary", "vay"), Ratio("vay", "vary"))
}

func TestCheckKnownWords(t *testing.T) {
	c := defaultChecker()
	for _, w := range lexicon.DefaultDictionary().Words() {
		res := c.Check(w)
		assert.True(t, res.Correct, w)
		assert.Empty(t, res.Suggestions, w)
	}
	res := c.Check("  TRANO ")
	assert.True(t, res.Correct)
}

func TestCheckMisspelled(t *testing.T) {
	c := defaultChecker()
	res := c.Check("tranoo")
	assert.False(t, res.Correct)
	require.GreaterOrEqual(t, len(res.Suggestions), 2)
	assert.Equal(t, []string{"trano", "rano"}, res.Suggestions[:2])
	assert.LessOrEqual(t, len(res.Suggestions), DefaultMaxSuggestions)
	assert.True(t, res.PhoneticallyValid)
	assert.Empty(t, res.PhoneticErrors)

	cands := c.Suggest("tranoo", 0)
	for i := 1; i < len(cands); i++ {
		assert.GreaterOrEqual(t, cands[i-1].Score, cands[i].Score)
	}
	for _, cand := range cands {
		assert.GreaterOrEqual(t, cand.Score, DefaultMinScore)
	}
}

func TestCheckReportsPhoneticErrors(t *testing.T) {
	c := defaultChecker()
	res := c.Check("amkary")
	assert.False(t, res.Correct)
	assert.False(t, res.PhoneticallyValid)
	assert.Equal(t, []string{"Combinaison interdite trouvée: mk"}, res.PhoneticErrors)
}

func TestCheckBlank(t *testing.T) {
	c := defaultChecker()
	for _, in := range []string{"", "   ", "\t"} {
		res := c.Check(in)
		assert.False(t, res.Correct)
		assert.Empty(t, res.Suggestions)
		assert.Empty(t, res.PhoneticErrors)
		assert.NotNil(t, res.Suggestions)
	}
}

func TestSuggestTiesKeepDictionaryOrder(t *testing.T) {
	c := NewChecker(lexicon.NewDictionary([]string{"bata", "pata", "rata", "zzzz"}), nil, Options{})
	cands := c.Suggest("xata", 2)
	require.Len(t, cands, 2)
	assert.Equal(t, "bata", cands[0].Word)
	assert.Equal(t, "pata", cands[1].Word)
	assert.InDelta(t, 75.0, cands[0].Score, 0.001)
}

func TestSuggestEmptyDictionary(t *testing.T) {
	c := NewChecker(lexicon.NewDictionary(nil), nil, Options{})
	res := c.Check("trano")
	assert.False(t, res.Correct)
	assert.Empty(t, res.Suggestions)

	c = NewChecker(nil, nil, Options{})
	assert.Empty(t, c.Suggest("trano", 5))
}

func TestSuggestIsIdempotent(t *testing.T) {
	c := defaultChecker()
	first := c.Suggest("mandeah", 5)
	first[0].Word = "mutated"
	second := c.Suggest("mandeah", 5)
	assert.NotEqual(t, "mutated", second[0].Word)
	assert.Equal(t, 1, c.Stats()["spellCacheHits"])
}

func TestHotCacheEvictsLeastRecentlyUsed(t *testing.T) {
	hc := NewHotCache(2)
	hc.Put("a", []Candidate{{Word: "a"}})
	hc.Put("b", []Candidate{{Word: "b"}})
	_, ok := hc.Get("a")
	require.True(t, ok)
	hc.Put("c", []Candidate{{Word: "c"}})

	_, ok = hc.Get("b")
	assert.False(t, ok)
	_, ok = hc.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, hc.Stats()["spellCacheWords"])

	off := NewHotCache(0)
	off.Put("a", nil)
	_, ok = off.Get("a")
	assert.False(t, ok)
}

func TestLikelyNative(t *testing.T) {
	assert.True(t, LikelyNative("Mihinana"))
	assert.True(t, LikelyNative("fanabeazana"))
	assert.True(t, LikelyNative("tanana"))
	assert.False(t, LikelyNative("trano"))
	assert.False(t, LikelyNative(""))
}
