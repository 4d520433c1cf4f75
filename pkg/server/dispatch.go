package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/morph"
	"github.com/bastiangx/teny/pkg/ner"
	"github.com/bastiangx/teny/pkg/spell"
	"github.com/bastiangx/teny/pkg/suggest"
	"github.com/bastiangx/teny/pkg/translate"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
)

// Op names an engine operation.
type Op string

const (
	OpCheck     Op = "check"
	OpSuggest   Op = "suggest"
	OpPredict   Op = "predict"
	OpComplete  Op = "complete"
	OpTranslate Op = "translate"
	OpSentiment Op = "sentiment"
	OpLemmatize Op = "lemmatize"
	OpEntities  Op = "entities"
	OpPhonetics Op = "phonetics"
	OpNative    Op = "native"
	OpHealth    Op = "health"
	OpStats     Op = "stats"
	OpReload    Op = "reload"
)

// Ops lists every supported op.
func Ops() []Op {
	return []Op{
		OpCheck, OpSuggest, OpPredict, OpComplete, OpTranslate, OpSentiment,
		OpLemmatize, OpEntities, OpPhonetics, OpNative, OpHealth, OpStats, OpReload,
	}
}

func knownOp(op Op) bool {
	for _, o := range Ops() {
		if o == op {
			return true
		}
	}
	return false
}

var (
	ErrUnknownOp      = errors.New("unknown op")
	ErrInvalidRequest = errors.New("invalid request")
	ErrInputTooLong   = errors.New("input too long")
	ErrReloadFailed   = errors.New("reload failed")
)

// Error is a failed request with an HTTP-style status code.
// It unwraps to one of the Err values above.
type Error struct {
	Code    int
	Message string
	kind    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.kind
}

func badRequest(format string, args ...any) *Error {
	return &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), kind: ErrInvalidRequest}
}

// SuggestResult lists scored spelling candidates.
type SuggestResult struct {
	Word       string            `json:"word" msgpack:"word"`
	Candidates []spell.Candidate `json:"candidates" msgpack:"candidates"`
}

// CompletionResult lists completions of a prefix.
type CompletionResult struct {
	Prefix      string               `json:"prefix" msgpack:"prefix"`
	Suggestions []suggest.Suggestion `json:"suggestions" msgpack:"suggestions"`
	Count       int                  `json:"count" msgpack:"count"`
}

// TranslationResult is one lookup. Translation is nil when the word is unknown.
type TranslationResult struct {
	Word        string              `json:"word" msgpack:"word"`
	Direction   translate.Direction `json:"direction" msgpack:"direction"`
	Translation *string             `json:"translation" msgpack:"translation"`
}

// LemmaResult wraps a lemma the way the HTTP API returns it.
type LemmaResult struct {
	Lemma morph.Lemma `json:"lemma" msgpack:"lemma"`
}

// EntitiesResult lists entity spans in text order.
type EntitiesResult struct {
	Entities []ner.Span `json:"entities" msgpack:"entities"`
}

// NativeResult is the affix-based native word guess.
type NativeResult struct {
	Word         string `json:"word" msgpack:"word"`
	LikelyNative bool   `json:"likely_native" msgpack:"likely_native"`
}

// HealthResult reports liveness.
type HealthResult struct {
	Status string `json:"status" msgpack:"status"`
}

// StatsResult reports table sizes and where each table came from.
type StatsResult struct {
	Stats   map[string]int                   `json:"stats" msgpack:"stats"`
	Sources map[lexicon.Table]lexicon.Source `json:"sources" msgpack:"sources"`
	Reloads int64                            `json:"reloads" msgpack:"reloads"`
}

// Dispatcher validates requests and runs them against the current engine.
// It is safe for concurrent use.
type Dispatcher struct {
	holder   *engine.Holder
	validate *validator.Validate
}

// NewDispatcher returns a dispatcher reading engines from holder.
func NewDispatcher(holder *engine.Holder) *Dispatcher {
	d := &Dispatcher{holder: holder, validate: validator.New()}
	_ = d.validate.RegisterValidation("op", func(fl validator.FieldLevel) bool {
		return knownOp(Op(fl.Field().String()))
	})
	_ = d.validate.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		_, err := translate.ParseDirection(fl.Field().String())
		return err == nil
	})
	_ = d.validate.RegisterValidation("maxinput", func(fl validator.FieldLevel) bool {
		limit := d.holder.Get().Limits().MaxInput
		return limit <= 0 || len(fl.Field().String()) <= limit
	})
	return d
}

// Dispatch runs req. The returned error is always an *Error.
func (d *Dispatcher) Dispatch(req Request) (any, error) {
	start := time.Now()
	res, err := d.dispatch(req)
	status := "ok"
	if err != nil {
		status = "error"
	}
	observeRequest(req.Op, status, time.Since(start))
	return res, err
}

func (d *Dispatcher) dispatch(req Request) (any, error) {
	if err := d.validate.Struct(req); err != nil {
		return nil, validationError(req, err)
	}

	e := d.holder.Get()
	switch req.Op {
	case OpCheck:
		return e.CheckSpelling(req.Text), nil
	case OpSuggest:
		return SuggestResult{Word: req.Text, Candidates: e.Suggest(req.Text, req.Limit)}, nil
	case OpPredict:
		return e.Predict(req.Text, req.Limit), nil
	case OpComplete:
		s := e.Complete(req.Text, req.Limit)
		return CompletionResult{Prefix: req.Text, Suggestions: s, Count: len(s)}, nil
	case OpTranslate:
		dir, _ := translate.ParseDirection(req.Direction)
		res := TranslationResult{Word: req.Text, Direction: dir}
		if t, ok := e.Translate(req.Text, dir); ok {
			res.Translation = &t
		}
		return res, nil
	case OpSentiment:
		return e.AnalyzeSentiment(req.Text), nil
	case OpLemmatize:
		return LemmaResult{Lemma: e.Lemmatize(req.Text)}, nil
	case OpEntities:
		return EntitiesResult{Entities: e.ExtractEntities(req.Text)}, nil
	case OpPhonetics:
		return e.ValidatePhonetics(req.Text), nil
	case OpNative:
		return NativeResult{Word: req.Text, LikelyNative: e.LikelyNative(req.Text)}, nil
	case OpHealth:
		return HealthResult{Status: "ok"}, nil
	case OpStats:
		return StatsResult{Stats: e.Stats(), Sources: e.Sources(), Reloads: d.holder.Reloads()}, nil
	case OpReload:
		ne, err := d.holder.Reload(nil)
		if err != nil {
			return nil, &Error{Code: http.StatusInternalServerError, Message: err.Error(), kind: ErrReloadFailed}
		}
		recordLexicon(ne.Lexicon())
		lexiconReloads.Inc()
		return StatsResult{Stats: ne.Stats(), Sources: ne.Sources(), Reloads: d.holder.Reloads()}, nil
	}
	return nil, &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown op %q", req.Op), kind: ErrUnknownOp}
}

func validationError(req Request, err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return badRequest("invalid request: %v", err)
	}
	var msgs []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "op", "required":
			if fe.Field() == "Op" {
				return &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown op %q", req.Op), kind: ErrUnknownOp}
			}
		case "maxinput":
			return &Error{Code: http.StatusRequestEntityTooLarge, Message: ErrInputTooLong.Error(), kind: ErrInputTooLong}
		case "direction":
			msgs = append(msgs, fmt.Sprintf("unknown translation direction %q", req.Direction))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	log.Debugf("Rejected request %s: %v", req.ID, msgs)
	return badRequest("%s", strings.Join(msgs, "; "))
}
