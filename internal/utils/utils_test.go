package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Tonga ny Trano!", []string{"tonga", "ny", "trano"}},
		{"amin'ny", []string{"amin", "ny"}},
		{"  manao   ahoana?  ", []string{"manao", "ahoana"}},
		{"...", nil},
		{"", nil},
		{"taona 2024_b", []string{"taona", "2024_b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestLowerRunesKeepsLength(t *testing.T) {
	in := "Université d'ANTANANARIVO"
	out := LowerRunes(in)
	assert.Len(t, out, len([]rune(in)))
	assert.Equal(t, "université d'antananarivo", string(out))
}

func TestCapitals(t *testing.T) {
	assert.Nil(t, CapitalPositions("trano"))
	pos := CapitalPositions("TrA")
	assert.Equal(t, []bool{true, false, true}, pos)
	assert.Equal(t, "TrAno", ApplyCapitals("trano", pos))
	assert.Equal(t, "Tr", ApplyCapitals("tr", pos))
}

func TestFormatWithCommas(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-45000:   "-45,000",
		-999:     "-999",
	}
	for n, want := range tests {
		assert.Equal(t, want, FormatWithCommas(n))
	}
}

func TestIsValidInput(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"ma", true},
		{"amin'ny", true},
		{"", false},
		{"123", false},
		{"ma$", false},
		{"aaa", false},
		{"aa", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsValidInput(tt.input), "input %q", tt.input)
	}
}

func TestSuggestionFilter(t *testing.T) {
	f := NewSuggestionFilter("Ma")
	assert.False(t, f.ShouldInclude("ma"))
	assert.True(t, f.ShouldInclude("manao"))
	assert.False(t, f.ShouldInclude("manao"))
}

func TestCreateRankList(t *testing.T) {
	assert.Equal(t, []uint16{}, CreateRankList(0))
	assert.Equal(t, []uint16{1, 2, 3}, CreateRankList(3))
}

func TestGetDataDir(t *testing.T) {
	pr, err := NewPathResolver()
	require.NoError(t, err)

	dir := t.TempDir()
	assert.Equal(t, dir, pr.GetDataDir(dir, "dictionary.json"))

	missing := filepath.Join(dir, "nope")
	assert.Equal(t, missing, pr.GetDataDir(missing, "dictionary.json"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dictionary.json"), []byte("[]"), 0644))
	assert.True(t, isValidDataDir(dir, []string{"dictionary.json"}))
	assert.False(t, isValidDataDir(dir, []string{"ngrams.json"}))
}
