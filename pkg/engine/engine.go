// Package engine wires the lexicon into every analysis component and serves
// the operations exposed over IPC, HTTP and the repl.
package engine

import (
	"fmt"
	"time"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/ner"
	"github.com/bastiangx/teny/pkg/phonotactics"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/bastiangx/teny/pkg/spell"
	"github.com/bastiangx/teny/pkg/suggest"
	"github.com/bastiangx/teny/pkg/translate"
	"github.com/charmbracelet/log"
)

// Engine answers every analysis request from one immutable lexicon.
// Build a new Engine to pick up new data; never mutate one in place.
type Engine struct {
	lex        *lexicon.Lexicon
	limits     Limits
	validator  *phonotactics.Validator
	checker    *spell.Checker
	predictor  *suggest.Predictor
	completer  *suggest.Completer
	lemmatizer *morph.Lemmatizer
	scanner    *ner.Scanner
	translator *translate.Translator
	sentiment  *sentiment.Analyzer
	builtAt    time.Time
}

// Limits bound request sizes.
type Limits struct {
	DefaultLimit int
	MaxLimit     int
	MaxInput     int
}

// New builds an engine over lx. A nil cfg uses config defaults.
func New(lx *lexicon.Lexicon, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if lx == nil {
		lx = lexicon.Default()
	}
	validator := phonotactics.Default()

	e := &Engine{
		lex: lx,
		limits: Limits{
			DefaultLimit: cfg.Predict.DefaultLimit,
			MaxLimit:     cfg.Server.MaxLimit,
			MaxInput:     cfg.Server.MaxInput,
		},
		validator: validator,
		checker: spell.NewChecker(lx.Dictionary, validator, spell.Options{
			MinScore:       cfg.Spell.MinScore,
			MaxSuggestions: cfg.Spell.MaxSuggestions,
			CacheSize:      cfg.Spell.CacheSize,
		}),
		predictor: suggest.NewPredictor(lx.Ngrams, lx.Frequencies),
		completer: suggest.NewLexiconCompleter(lx.Dictionary.Words(), lx.Frequencies.Entries(), suggest.CompleterOptions{
			MinPrefix: cfg.Predict.MinPrefix,
			MaxPrefix: cfg.Predict.MaxPrefix,
		}),
		lemmatizer: morph.Default(),
		scanner:    ner.NewScanner(lx.Gazetteers),
		translator: translate.New(lx.Translations),
		sentiment:  sentiment.Default(),
		builtAt:    time.Now(),
	}
	log.Debugf("Engine ready: %d words, %d n-gram contexts, %d entity names",
		lx.Dictionary.Len(), lx.Ngrams.Len(), e.scanner.PatternCount())
	return e
}

// Load reads the lexicon named by cfg and builds an engine over it. It never
// fails: a snapshot that does not open is skipped for the data directory,
// which itself falls back to built-in tables per table.
func Load(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	lx, err := LoadLexicon(cfg.Data)
	if err != nil {
		log.Warnf("Falling back to data dir: %v", err)
		lx = lexicon.Load(ResolveDataDir(cfg.Data.Dir))
	}
	return New(lx, cfg)
}

// LoadLexicon resolves the data source of dc. Unlike Load it reports a
// snapshot that cannot be opened.
func LoadLexicon(dc config.DataConfig) (*lexicon.Lexicon, error) {
	if dc.Snapshot != "" {
		lx, err := lexicon.OpenSnapshot(dc.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot: %w", err)
		}
		log.Infof("Loaded lexicon snapshot %s", dc.Snapshot)
		return lx, nil
	}
	return lexicon.Load(ResolveDataDir(dc.Dir)), nil
}

// ResolveDataDir finds the data directory for dir, looking next to the
// binary, the working directory and the config dir.
func ResolveDataDir(dir string) string {
	pr, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to create path resolver: %v", err)
		return dir
	}
	return pr.GetDataDir(dir, lexicon.MarkerFiles()...)
}

// Lexicon returns the tables the engine was built from.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// Limits returns the configured request bounds.
func (e *Engine) Limits() Limits {
	return e.limits
}

func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		limit = e.limits.DefaultLimit
	}
	if e.limits.MaxLimit > 0 && limit > e.limits.MaxLimit {
		limit = e.limits.MaxLimit
	}
	return limit
}

// CheckSpelling reports whether word is known, with suggestions and
// phonotactic errors.
func (e *Engine) CheckSpelling(word string) spell.Result {
	return e.checker.Check(word)
}

// Suggest returns scored spelling candidates for word. A limit of zero
// means spell.max_suggestions.
func (e *Engine) Suggest(word string, limit int) []spell.Candidate {
	if e.limits.MaxLimit > 0 && limit > e.limits.MaxLimit {
		limit = e.limits.MaxLimit
	}
	return e.checker.Suggest(word, limit)
}

// Predict returns likely next words for context.
func (e *Engine) Predict(context string, limit int) suggest.Prediction {
	return e.predictor.PredictDetailed(context, e.clampLimit(limit))
}

// Complete returns known words extending prefix.
func (e *Engine) Complete(prefix string, limit int) []suggest.Suggestion {
	return e.completer.Complete(prefix, e.clampLimit(limit))
}

// Lemmatize decomposes word into prefix, root and suffix.
func (e *Engine) Lemmatize(word string) morph.Lemma {
	return e.lemmatizer.Lemmatize(word)
}

// ExtractEntities tags gazetteer names in text.
func (e *Engine) ExtractEntities(text string) []ner.Span {
	return e.scanner.Extract(text)
}

// ValidatePhonetics checks word against the forbidden clusters.
func (e *Engine) ValidatePhonetics(word string) phonotactics.Result {
	return e.validator.Validate(word)
}

// Translate looks word up in one direction.
func (e *Engine) Translate(word string, dir translate.Direction) (string, bool) {
	return e.translator.Translate(word, dir)
}

// TranslateAll looks word up in both directions.
func (e *Engine) TranslateAll(word string) translate.Translations {
	return e.translator.All(word)
}

// AnalyzeSentiment scores the polarity of text.
func (e *Engine) AnalyzeSentiment(text string) sentiment.Result {
	return e.sentiment.Analyze(text)
}

// LikelyNative guesses from affixes whether word is Malagasy.
func (e *Engine) LikelyNative(word string) bool {
	return spell.LikelyNative(word)
}

// Stats merges table sizes, completer and spell cache counters.
func (e *Engine) Stats() map[string]int {
	stats := e.lex.Stats()
	for k, v := range e.completer.Stats() {
		stats[k] = v
	}
	for k, v := range e.checker.Stats() {
		stats[k] = v
	}
	stats["entityPatterns"] = e.scanner.PatternCount()
	stats["uptimeSeconds"] = int(time.Since(e.builtAt).Seconds())
	return stats
}

// Sources tells where each table came from.
func (e *Engine) Sources() map[lexicon.Table]lexicon.Source {
	return e.lex.Sources
}
