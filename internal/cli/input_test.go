package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRepl(t *testing.T, op, input string) string {
	t.Helper()
	cfg := config.DefaultConfig()
	h := engine.NewHolder(engine.New(lexicon.Default(), cfg), cfg)
	var out bytes.Buffer
	require.NoError(t, NewInputHandler(h, op, 5, &out).Start(strings.NewReader(input)))
	return out.String()
}

func TestReplDefaultOp(t *testing.T) {
	out := runRepl(t, "check", "tranoo\ntrano\n")
	assert.Contains(t, out, "did you mean")
	assert.Contains(t, out, "trano")
	assert.Contains(t, out, "correct")
}

func TestReplInlineOps(t *testing.T) {
	out := runRepl(t, "", ":complete ma\n:translate merci fr_to_mg\n:entities Tonga soa eto Antananarivo")
	assert.Contains(t, out, "Found 5 suggestions for prefix 'ma'")
	assert.Contains(t, out, "misaotra")
	assert.Contains(t, out, "VILLE")
}

func TestReplSwitchOp(t *testing.T) {
	out := runRepl(t, "check", ":op lemmatize\nmividy\n")
	assert.Contains(t, out, "current op: lemmatize")
	assert.Contains(t, out, "vidy")
}

func TestReplUnknownOp(t *testing.T) {
	out := runRepl(t, "", ":foo bar\n:help\n")
	assert.Contains(t, out, `unknown op "foo"`)
	assert.Contains(t, out, "ops: check")
}
