package translate

import (
	"testing"

	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tr := New(lexicon.DefaultTranslations())

	fr, ok := tr.Translate("  Salama ", ToFrench)
	require.True(t, ok)
	assert.Equal(t, "bonjour", fr)

	mg, ok := tr.Translate("MERCI", ToMalagasy)
	require.True(t, ok)
	assert.Equal(t, "misaotra", mg)

	_, ok = tr.Translate("bonjour", ToFrench)
	assert.False(t, ok)
	_, ok = tr.Translate("", ToFrench)
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	tr := New(lexicon.DefaultTranslations())

	all := tr.All("salama")
	require.NotNil(t, all.MgToFr)
	assert.Equal(t, "bonjour", *all.MgToFr)
	assert.Nil(t, all.FrToMg)

	all = tr.All("bonjour")
	assert.Nil(t, all.MgToFr)
	require.NotNil(t, all.FrToMg)
	assert.Equal(t, "salama", *all.FrToMg)

	assert.Equal(t, Translations{}, New(nil).All("salama"))
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"":         ToFrench,
		"mg_to_fr": ToFrench,
		"FR":       ToFrench,
		"fr_to_mg": ToMalagasy,
		"mg":       ToMalagasy,
	} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDirection("en")
	assert.Error(t, err)
}
