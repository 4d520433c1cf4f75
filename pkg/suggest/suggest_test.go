package suggest

import (
	"testing"

	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPredictor() *Predictor {
	return NewPredictor(lexicon.DefaultNgrams(), lexicon.DefaultFrequencies())
}

func TestPredictBigram(t *testing.T) {
	p := defaultPredictor()
	got := p.PredictDetailed("ny", 5)
	assert.Equal(t, []string{"trano", "tanana", "vary", "rano"}, got.Words)
	assert.Equal(t, LevelBigram, got.Level)
	assert.Equal(t, "ny", got.Context)

	assert.Equal(t, []string{"trano", "tanana"}, p.Predict("ny", 2))
}

func TestPredictTrigram(t *testing.T) {
	p := defaultPredictor()
	got := p.PredictDetailed("Tonga ny Trano!", 5)
	assert.Equal(t, []string{"lehibe", "kely", "tsara"}, got.Words)
	assert.Equal(t, LevelTrigram, got.Level)
	assert.Equal(t, "ny trano", got.Context)
}

func TestPredictBacksOffToLastWord(t *testing.T) {
	p := defaultPredictor()
	backoff := p.PredictDetailed("xyz manao", 5)
	assert.Equal(t, p.Predict("manao", 5), backoff.Words)
	assert.Equal(t, "ahoana", backoff.Words[0])
	assert.Equal(t, LevelBigram, backoff.Level)
	assert.Equal(t, "manao", backoff.Context)
}

func TestPredictFrequencyFallback(t *testing.T) {
	p := defaultPredictor()
	want := []string{"ny", "sy", "amin", "dia", "fa"}
	for _, ctx := range []string{"", "   ", "?!.", "zzz qqq"} {
		got := p.PredictDetailed(ctx, 0)
		assert.Equal(t, want, got.Words, ctx)
		assert.Equal(t, LevelFrequency, got.Level, ctx)
	}
}

func TestPredictEmptyTables(t *testing.T) {
	p := NewPredictor(lexicon.NewNgramTable(nil), lexicon.NewFrequencyTable(nil))
	assert.Empty(t, p.Predict("ny", 5))
	assert.Empty(t, NewPredictor(nil, nil).Predict("ny", 5))
}

func defaultCompleter() *Completer {
	return NewLexiconCompleter(
		lexicon.DefaultDictionary().Words(),
		lexicon.DefaultFrequencies().Entries(),
		CompleterOptions{MinPrefix: 1, MaxPrefix: 60},
	)
}

func TestCompleteRanksByFrequency(t *testing.T) {
	c := defaultCompleter()
	got := c.Complete("ma", 5)
	require.Len(t, got, 5)
	words := make([]string, len(got))
	for i, s := range got {
		words[i] = s.Word
		assert.Equal(t, uint16(i+1), s.Rank)
	}
	assert.Equal(t, []string{"malagasy", "manao", "mahajanga", "manosika", "mandeha"}, words)
	assert.Equal(t, 50, got[0].Frequency)
}

func TestCompleteKeepsCapitals(t *testing.T) {
	c := defaultCompleter()
	got := c.Complete("Ma", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Malagasy", got[0].Word)
	assert.Equal(t, "Manao", got[1].Word)
}

func TestCompleteSkipsExactAndInvalid(t *testing.T) {
	c := defaultCompleter()
	assert.Empty(t, c.Complete("trano", 5))
	assert.Empty(t, c.Complete("", 5))
	assert.Empty(t, c.Complete("123", 5))
	assert.Empty(t, c.Complete("m@", 5))

	got := c.Complete("ho", 5)
	require.Len(t, got, 1)
	assert.Equal(t, "ho avy", got[0].Word)
}

func TestCompletePrefixBounds(t *testing.T) {
	c := NewLexiconCompleter([]string{"trano", "tranobe"}, nil, CompleterOptions{MinPrefix: 2, MaxPrefix: 4})
	assert.Empty(t, c.Complete("t", 5))
	assert.Len(t, c.Complete("tr", 5), 2)
	assert.Empty(t, c.Complete("trano", 5))
}

func TestAddWordUpdatesFrequency(t *testing.T) {
	c := NewCompleter(CompleterOptions{})
	c.AddWord("vary", 1)
	c.AddWord("vava", 1)
	c.AddWord("Vary", 9)

	got := c.Complete("va", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "vary", got[0].Word)
	assert.Equal(t, 9, got[0].Frequency)
	assert.Equal(t, 2, c.Stats()["totalWords"])
	assert.Equal(t, 9, c.Stats()["maxFrequency"])
}
