package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	a := Default()

	tests := []struct {
		text       string
		label      Label
		score      float64
		confidence float64
		pos, neg   int
	}{
		{"Tsara be!", Positive, 1, 0.75, 1, 0},
		{"tsy tsara", Negative, -1, 0.5, 0, 1},
		{"ratsy sy tsara", Neutral, 0, 0.67, 1, 1},
		{"tsy ratsy loatra", Positive, 1, 0.5, 1, 0},
		{"faly aho fa malahelo izy sady kivy", Negative, -0.33, 0.43, 1, 2},
		{"trano", Neutral, 0, 0, 0, 0},
		{"", Neutral, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := a.Analyze(tt.text)
			assert.Equal(t, tt.label, res.Sentiment)
			assert.InDelta(t, tt.score, res.Score, 1e-9)
			assert.InDelta(t, tt.confidence, res.Confidence, 1e-9)
			assert.Equal(t, tt.pos, res.PositiveCount)
			assert.Equal(t, tt.neg, res.NegativeCount)
			assert.NotNil(t, res.Details)
		})
	}
}

func TestAnalyzeDetails(t *testing.T) {
	a := Default()

	res := a.Analyze("tsy tsara")
	require.Len(t, res.Details, 1)
	assert.Equal(t, Detail{
		Word:         "tsara",
		BaseType:     "positive",
		ActualEffect: "negative",
		Reason:       "negated",
		Weight:       1,
	}, res.Details[0])

	res = a.Analyze("mamy indrindra")
	require.Len(t, res.Details, 1)
	assert.Equal(t, Detail{Word: "mamy", Type: "positive", Weight: 1.5}, res.Details[0])
}

func TestAnalyzeMultiWordEntriesNeverMatch(t *testing.T) {
	a := Default()
	res := a.Analyze("tonga soa")
	require.Len(t, res.Details, 1)
	assert.Equal(t, "soa", res.Details[0].Word)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	a := Default()
	assert.Equal(t, a.Analyze("tsy ratsy loatra"), a.Analyze("tsy ratsy loatra"))
}

func TestRound2HalfToEven(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.125, 0.12},
		{0.375, 0.38},
		{-0.125, -0.12},
		{0.5, 0.5},
		{2.0 / 3, 0.67},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, round2(tt.in), 1e-9, "round2(%v)", tt.in)
	}
}
