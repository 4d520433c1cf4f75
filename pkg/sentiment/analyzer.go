// Package sentiment scores text polarity from a word list.
package sentiment

import (
	"math"

	"github.com/bastiangx/teny/internal/utils"
)

// Label is the overall polarity of a text.
type Label string

const (
	Positive Label = "positif"
	Negative Label = "négatif"
	Neutral  Label = "neutre"
)

// Polarity of a single word.
const (
	polarityPositive = "positive"
	polarityNegative = "negative"
)

// Threshold is the score beyond which a text stops being neutral.
const Threshold = 0.2

// intensifierWeight is applied when the next token is an intensifier.
const intensifierWeight = 1.5

// Detail explains how one token counted. Negated tokens report their
// base polarity and the flipped effect instead of Type.
type Detail struct {
	Word         string  `json:"word" msgpack:"word"`
	Type         string  `json:"type,omitempty" msgpack:"type,omitempty"`
	BaseType     string  `json:"base_type,omitempty" msgpack:"base_type,omitempty"`
	ActualEffect string  `json:"actual_effect,omitempty" msgpack:"actual_effect,omitempty"`
	Reason       string  `json:"reason,omitempty" msgpack:"reason,omitempty"`
	Weight       float64 `json:"weight" msgpack:"weight"`
}

// Result is the polarity of a text. Score is in [-1, 1], Confidence in [0, 1].
type Result struct {
	Sentiment     Label    `json:"sentiment" msgpack:"sentiment"`
	Score         float64  `json:"score" msgpack:"score"`
	Confidence    float64  `json:"confidence" msgpack:"confidence"`
	PositiveCount int      `json:"positive_count" msgpack:"positive_count"`
	NegativeCount int      `json:"negative_count" msgpack:"negative_count"`
	Details       []Detail `json:"details" msgpack:"details"`
}

// Analyzer is immutable and safe for concurrent use.
type Analyzer struct {
	positive     map[string]bool
	negative     map[string]bool
	intensifiers map[string]bool
	negations    map[string]bool
}

func set(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[utils.Normalize(w)] = true
	}
	return m
}

// New builds an analyzer from lx.
func New(lx Lexicon) *Analyzer {
	return &Analyzer{
		positive:     set(lx.Positive),
		negative:     set(lx.Negative),
		intensifiers: set(lx.Intensifiers),
		negations:    set(lx.Negations),
	}
}

// Default returns an analyzer over DefaultLexicon.
func Default() *Analyzer {
	return New(DefaultLexicon())
}

// Analyze scores text. A polar word preceded by a negation counts for the
// opposite side; one followed by an intensifier weighs 1.5. Both can apply
// to the same word, and the weight is not compounded.
func (a *Analyzer) Analyze(text string) Result {
	tokens := utils.Tokenize(text)
	res := Result{Sentiment: Neutral, Details: []Detail{}}
	if len(tokens) == 0 {
		return res
	}

	var pos, neg float64
	for i, tok := range tokens {
		var base string
		switch {
		case a.positive[tok]:
			base = polarityPositive
		case a.negative[tok]:
			base = polarityNegative
		default:
			continue
		}

		negated := i > 0 && a.negations[tokens[i-1]]
		weight := 1.0
		if i < len(tokens)-1 && a.intensifiers[tokens[i+1]] {
			weight = intensifierWeight
		}

		effect := base
		d := Detail{Word: tok, Weight: weight}
		if negated {
			effect = opposite(base)
			d.BaseType = base
			d.ActualEffect = effect
			d.Reason = "negated"
		} else {
			d.Type = base
		}
		if effect == polarityPositive {
			pos += weight
		} else {
			neg += weight
		}
		res.Details = append(res.Details, d)
	}

	var score, confidence float64
	if total := pos + neg; total > 0 {
		score = (pos - neg) / total
		confidence = math.Min(total/float64(len(tokens)), 1.0)
	}

	switch {
	case score > Threshold:
		res.Sentiment = Positive
	case score < -Threshold:
		res.Sentiment = Negative
	}
	res.Score = round2(score)
	res.Confidence = round2(confidence)
	res.PositiveCount = int(pos)
	res.NegativeCount = int(neg)
	return res
}

func opposite(p string) string {
	if p == polarityPositive {
		return polarityNegative
	}
	return polarityPositive
}

func round2(f float64) float64 {
	return math.RoundToEven(f*100) / 100
}
