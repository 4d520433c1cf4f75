package suggest

import (
	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
)

// DefaultLimit is used when a caller asks for zero or fewer predictions.
const DefaultLimit = 5

// Level names the table a prediction came from.
type Level string

const (
	LevelTrigram   Level = "trigram"
	LevelBigram    Level = "bigram"
	LevelFrequency Level = "frequency"
)

// NgramSource looks up candidate next words, ranked.
type NgramSource interface {
	Lookup(key lexicon.ContextKey) ([]lexicon.WordCount, bool)
}

// RankedWords returns the globally most frequent words.
type RankedWords interface {
	Top(n int) []lexicon.WordCount
}

// Prediction is a ranked list of next words and where it came from.
type Prediction struct {
	Words   []string `json:"suggestions" msgpack:"suggestions"`
	Level   Level    `json:"level" msgpack:"level"`
	Context string   `json:"context" msgpack:"context"`
}

// Predictor backs off from two words of context to one, then to plain word
// frequency. Both tables are read-only.
type Predictor struct {
	ngrams NgramSource
	freqs  RankedWords
}

// NewPredictor builds a predictor over the given tables.
func NewPredictor(ngrams NgramSource, freqs RankedWords) *Predictor {
	return &Predictor{ngrams: ngrams, freqs: freqs}
}

// Predict returns up to limit likely next words for context.
func (p *Predictor) Predict(context string, limit int) []string {
	return p.PredictDetailed(context, limit).Words
}

// PredictDetailed is Predict plus the backoff level and context key used.
// The result is empty only when every table is.
func (p *Predictor) PredictDetailed(context string, limit int) Prediction {
	if limit <= 0 {
		limit = DefaultLimit
	}
	tokens := utils.Tokenize(context)
	if len(tokens) > 0 && p.ngrams != nil {
		key := lexicon.NewContextKey(tokens...)
		if next, ok := p.ngrams.Lookup(key); ok {
			return Prediction{Words: lexicon.Words(next, limit), Level: levelFor(key), Context: key.String()}
		}
		if key.Len() > 1 {
			key = key.Backoff()
			if next, ok := p.ngrams.Lookup(key); ok {
				return Prediction{Words: lexicon.Words(next, limit), Level: LevelBigram, Context: key.String()}
			}
		}
	}
	return Prediction{Words: p.frequent(limit), Level: LevelFrequency}
}

func (p *Predictor) frequent(limit int) []string {
	if p.freqs == nil {
		return []string{}
	}
	return lexicon.Words(p.freqs.Top(limit), 0)
}

func levelFor(key lexicon.ContextKey) Level {
	if key.Len() > 1 {
		return LevelTrigram
	}
	return LevelBigram
}
