package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, `
[spell]
min_score = 80.0

[data]
dir = "/srv/teny"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 80.0, cfg.Spell.MinScore)
	assert.Equal(t, 5, cfg.Spell.MaxSuggestions)
	assert.Equal(t, "/srv/teny", cfg.Data.Dir)
	assert.Equal(t, DefaultConfig().Server, cfg.Server)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// max_limit has the wrong type, so strict decoding fails
	path := writeFile(t, t.TempDir(), FileName, `
[server]
max_limit = "lots"
addr = ":9000"

[predict]
default_limit = 8
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 64, cfg.Server.MaxLimit)
	assert.Equal(t, 8, cfg.Predict.DefaultLimit)
}

func TestLoadConfigGarbageFallsBackToDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "[[[ not toml")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSanitize(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, `
[spell]
min_score = 150.0
max_suggestions = 0

[predict]
min_prefix = 4
max_prefix = 2
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 70.0, cfg.Spell.MinScore)
	assert.Equal(t, 5, cfg.Spell.MaxSuggestions)
	assert.Equal(t, 4, cfg.Predict.MinPrefix)
	assert.Equal(t, 60, cfg.Predict.MaxPrefix)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.toml", `
[cli]
default_op = "lemma"
`)
	cfg, used := LoadConfigWithPriority(path)
	assert.Equal(t, path, used)
	assert.Equal(t, "lemma", cfg.CLI.DefaultOp)
}
