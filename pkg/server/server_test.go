package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/bastiangx/teny/pkg/spell"
	"github.com/bastiangx/teny/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type wireReply struct {
	ID     string             `msgpack:"id"`
	Op     string             `msgpack:"op"`
	Result msgpack.RawMessage `msgpack:"r"`
	Time   int64              `msgpack:"t"`
	Error  string             `msgpack:"e"`
	Code   int                `msgpack:"c"`
}

func newHolder(cfg *config.Config) *engine.Holder {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return engine.NewHolder(engine.New(lexicon.Default(), cfg), cfg)
}

func encodeAll(t *testing.T, msgs ...any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, m := range msgs {
		require.NoError(t, enc.Encode(m))
	}
	return &buf
}

func runIPC(t *testing.T, cfg *config.Config, msgs ...any) []wireReply {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var out bytes.Buffer
	s := NewServerWithIO(newHolder(cfg), cfg.Server, encodeAll(t, msgs...), &out)
	require.NoError(t, s.Start(context.Background()))

	var replies []wireReply
	dec := msgpack.NewDecoder(&out)
	for {
		var r wireReply
		err := dec.Decode(&r)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		replies = append(replies, r)
	}
	return replies
}

func TestIPCRoundTrip(t *testing.T) {
	replies := runIPC(t, nil,
		Request{ID: "req_001", Op: OpCheck, Text: "tranoo"},
		Request{ID: "req_002", Op: OpPredict, Text: "ny", Limit: 2},
		Request{ID: "req_003", Op: OpTranslate, Text: "merci", Direction: "fr_to_mg"},
	)
	require.Len(t, replies, 3)

	assert.Equal(t, "req_001", replies[0].ID)
	assert.Equal(t, "check", replies[0].Op)
	var check spell.Result
	require.NoError(t, msgpack.Unmarshal(replies[0].Result, &check))
	assert.False(t, check.Correct)
	assert.Equal(t, "trano", check.Suggestions[0])

	var pred suggest.Prediction
	require.NoError(t, msgpack.Unmarshal(replies[1].Result, &pred))
	assert.Equal(t, []string{"trano", "tanana"}, pred.Words)
	assert.Equal(t, suggest.LevelBigram, pred.Level)

	var tr TranslationResult
	require.NoError(t, msgpack.Unmarshal(replies[2].Result, &tr))
	require.NotNil(t, tr.Translation)
	assert.Equal(t, "misaotra", *tr.Translation)
}

func TestIPCAssignsMissingID(t *testing.T) {
	replies := runIPC(t, nil, Request{Op: OpHealth})
	require.Len(t, replies, 1)
	assert.Len(t, replies[0].ID, 36)
	assert.Empty(t, replies[0].Error)
}

func TestIPCErrorsKeepLoopRunning(t *testing.T) {
	replies := runIPC(t, nil,
		"not a request",
		Request{ID: "a", Op: "foo"},
		Request{ID: "b", Op: OpTranslate, Text: "trano", Direction: "sideways"},
		Request{ID: "c", Op: OpHealth},
	)
	require.Len(t, replies, 4)

	assert.Equal(t, http.StatusBadRequest, replies[0].Code)
	assert.Equal(t, "invalid request", replies[0].Error)

	assert.Equal(t, "a", replies[1].ID)
	assert.Equal(t, http.StatusBadRequest, replies[1].Code)
	assert.Contains(t, replies[1].Error, `unknown op "foo"`)

	assert.Equal(t, http.StatusBadRequest, replies[2].Code)
	assert.Contains(t, replies[2].Error, "sideways")

	assert.Equal(t, "c", replies[3].ID)
	assert.Zero(t, replies[3].Code)
}

func TestIPCInputTooLong(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxInput = 10
	replies := runIPC(t, cfg, Request{ID: "x", Op: OpCheck, Text: strings.Repeat("a", 11)})
	require.Len(t, replies, 1)
	assert.Equal(t, http.StatusRequestEntityTooLarge, replies[0].Code)
	assert.Equal(t, ErrInputTooLong.Error(), replies[0].Error)
}

func TestIPCRateLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.RateLimit = 0.001
	cfg.Server.RateBurst = 1
	replies := runIPC(t, cfg,
		Request{ID: "1", Op: OpHealth},
		Request{ID: "2", Op: OpHealth},
	)
	require.Len(t, replies, 2)
	assert.Zero(t, replies[0].Code)
	assert.Equal(t, http.StatusTooManyRequests, replies[1].Code)
	assert.Equal(t, "2", replies[1].ID)
}

func TestIPCEmptyInput(t *testing.T) {
	assert.Empty(t, runIPC(t, nil))
}

func TestDispatcherOps(t *testing.T) {
	d := NewDispatcher(newHolder(nil))

	for _, op := range Ops() {
		_, err := d.Dispatch(Request{Op: op, Text: "trano"})
		assert.NoError(t, err, "op %s", op)
	}

	res, err := d.Dispatch(Request{Op: OpLemmatize, Text: "mividy"})
	require.NoError(t, err)
	assert.Equal(t, "vidy", res.(LemmaResult).Lemma.Lemma)

	res, err = d.Dispatch(Request{Op: OpEntities, Text: "Tonga soa eto Antananarivo"})
	require.NoError(t, err)
	require.Len(t, res.(EntitiesResult).Entities, 1)

	res, err = d.Dispatch(Request{Op: OpComplete, Text: "ma", Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, res.(CompletionResult).Count)

	res, err = d.Dispatch(Request{Op: OpTranslate, Text: "tsyfantatra"})
	require.NoError(t, err)
	assert.Nil(t, res.(TranslationResult).Translation)
}

func TestDispatcherValidation(t *testing.T) {
	d := NewDispatcher(newHolder(nil))

	_, err := d.Dispatch(Request{})
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, http.StatusBadRequest, derr.Code)
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, err = d.Dispatch(Request{Op: OpTranslate, Direction: "up"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = d.Dispatch(Request{Op: OpPredict, Limit: -1})
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Message, "limit")
}
