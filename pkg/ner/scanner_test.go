package ner

import (
	"testing"

	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultScanner() *Scanner {
	return NewScanner(lexicon.DefaultGazetteers())
}

func TestExtractCity(t *testing.T) {
	s := defaultScanner()
	text := "Tonga soa eto Antananarivo, renivohitr'i Madagasikara"
	spans := s.Extract(text)
	require.Len(t, spans, 1)

	sp := spans[0]
	assert.Equal(t, "Antananarivo", sp.Text)
	assert.Equal(t, 14, sp.Start)
	assert.Equal(t, 26, sp.End)
	assert.Equal(t, lexicon.EntityCity, sp.Type)
	assert.Equal(t, "antananarivo", sp.Entity)
	assert.Equal(t, "Analamanga", sp.Info["region"])
	assert.Equal(t, "Capitale", sp.Info["label"])
	assert.Equal(t, text[sp.Start:sp.End], sp.Text)
}

func TestExtractMultiWordNames(t *testing.T) {
	s := defaultScanner()
	spans := s.Extract("Nosy Be sy Diana, ary Marc Ravalomanana.")
	require.Len(t, spans, 3)

	assert.Equal(t, "Nosy Be", spans[0].Text)
	assert.Equal(t, lexicon.EntityCity, spans[0].Type)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 7, spans[0].End)

	assert.Equal(t, "Diana", spans[1].Text)
	assert.Equal(t, lexicon.EntityRegion, spans[1].Type)

	assert.Equal(t, "Marc Ravalomanana", spans[2].Text)
	assert.Equal(t, lexicon.EntityPersonality, spans[2].Type)
	assert.Equal(t, "président", spans[2].Info["category"])

	assert.Empty(t, s.Extract("Nosy ary Be"))
}

func TestExtractRespectsWordBoundaries(t *testing.T) {
	s := defaultScanner()
	assert.Empty(t, s.Extract("Antananarivoville"))
	assert.Empty(t, s.Extract("sofian sy savany"))
	assert.Empty(t, s.Extract("jirama2"))

	spans := s.Extract("(Jirama)")
	require.Len(t, spans, 1)
	assert.Equal(t, 1, spans[0].Start)
}

func TestExtractOverlapsAcrossGazetteers(t *testing.T) {
	s := defaultScanner()
	spans := s.Extract("Université d'Antananarivo")
	require.Len(t, spans, 2)

	assert.Equal(t, lexicon.EntityOrganization, spans[0].Type)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 25, spans[0].End)
	assert.Equal(t, "Université d'Antananarivo", spans[0].Text)

	assert.Equal(t, lexicon.EntityCity, spans[1].Type)
	assert.Equal(t, 13, spans[1].Start)
	assert.Equal(t, 25, spans[1].End)
	assert.Equal(t, "Antananarivo", spans[1].Text)
}

func TestExtractRepeatedOccurrences(t *testing.T) {
	s := defaultScanner()
	spans := s.Extract("JIRAMA, jirama!")
	require.Len(t, spans, 2)
	assert.Equal(t, "JIRAMA", spans[0].Text)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, "jirama", spans[1].Text)
	assert.Equal(t, 8, spans[1].Start)
}

func TestExtractSameNameInTwoGazetteers(t *testing.T) {
	cities := lexicon.NewGazetteer(lexicon.GazetteerCities, lexicon.EntityCity,
		[]lexicon.GazetteerEntry{{Name: "Sava"}})
	regions := lexicon.NewGazetteer(lexicon.GazetteerRegions, lexicon.EntityRegion,
		[]lexicon.GazetteerEntry{{Name: "sava"}})
	s := NewScanner([]*lexicon.Gazetteer{cities, regions})
	assert.Equal(t, 1, s.PatternCount())

	spans := s.Extract("any Sava")
	require.Len(t, spans, 2)
	assert.Equal(t, lexicon.EntityCity, spans[0].Type)
	assert.Equal(t, lexicon.EntityRegion, spans[1].Type)
}

func TestExtractEmpty(t *testing.T) {
	assert.Empty(t, defaultScanner().Extract(""))
	assert.Empty(t, defaultScanner().Extract("tsy misy"))
	assert.Empty(t, NewScanner(nil).Extract("Antananarivo"))
}

func TestExtractInfoIsCopied(t *testing.T) {
	s := defaultScanner()
	spans := s.Extract("Antsirabe")
	require.Len(t, spans, 1)
	spans[0].Info["region"] = "changed"
	assert.Equal(t, "Vakinankaratra", s.Extract("Antsirabe")[0].Info["region"])
}
