// Package ner tags gazetteer names found in free text.
package ner

import (
	"maps"
	"sort"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/lexicon"
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Span is one entity occurrence. Start and End are character offsets into
// the original text; Text keeps its original casing.
type Span struct {
	Text   string             `json:"text" msgpack:"text"`
	Start  int                `json:"start" msgpack:"start"`
	End    int                `json:"end" msgpack:"end"`
	Type   lexicon.EntityType `json:"type" msgpack:"type"`
	Entity string             `json:"entity" msgpack:"entity"`
	Info   map[string]string  `json:"info" msgpack:"info"`
}

// ref points at one gazetteer entry.
type ref struct {
	gazetteer int
	entry     int
}

// Scanner matches every gazetteer entry in one pass over the text.
// It is immutable and safe for concurrent use.
type Scanner struct {
	automaton  aho.AhoCorasick
	patterns   []string
	refs       [][]ref
	gazetteers []*lexicon.Gazetteer
}

// NewScanner compiles the entries of gazetteers into a single automaton.
// A name listed in several gazetteers is one pattern with several refs.
func NewScanner(gazetteers []*lexicon.Gazetteer) *Scanner {
	s := &Scanner{gazetteers: gazetteers}
	index := make(map[string]int)
	for gi, g := range gazetteers {
		for ei, e := range g.Entries {
			p, ok := index[e.Name]
			if !ok {
				p = len(s.patterns)
				index[e.Name] = p
				s.patterns = append(s.patterns, e.Name)
				s.refs = append(s.refs, nil)
			}
			s.refs[p] = append(s.refs[p], ref{gazetteer: gi, entry: ei})
		}
	}
	if len(s.patterns) > 0 {
		builder := aho.NewAhoCorasickBuilder(aho.Opts{DFA: true})
		s.automaton = builder.Build(s.patterns)
	}
	return s
}

// PatternCount returns the number of distinct names compiled.
func (s *Scanner) PatternCount() int {
	return len(s.patterns)
}

type hit struct {
	start, end int
}

type found struct {
	span Span
	ref  ref
}

// Extract returns every entity occurrence in text, ordered by start offset.
// Matching is case-insensitive and only whole words count, so a name never
// matches inside a longer word. Occurrences of one name never overlap each
// other; spans from different entries may, and all of them are returned.
func (s *Scanner) Extract(text string) []Span {
	if len(s.patterns) == 0 || text == "" {
		return []Span{}
	}

	original := []rune(text)
	lowered := utils.LowerRunes(text)
	lower := string(lowered)

	// byte offset in lower -> rune offset
	runeAt := make([]int, len(lower)+1)
	ri := 0
	for bi := range lower {
		runeAt[bi] = ri
		ri++
	}
	runeAt[len(lower)] = ri

	hits := make(map[int][]hit)
	iter := s.automaton.IterOverlappingByte([]byte(lower))
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		hits[m.Pattern()] = append(hits[m.Pattern()], hit{
			start: runeAt[m.Start()],
			end:   runeAt[m.End()],
		})
	}

	var out []found
	for p, hs := range hits {
		sort.Slice(hs, func(i, j int) bool { return hs[i].start < hs[j].start })
		lastEnd := -1
		for _, h := range hs {
			if h.start < lastEnd || !atBoundary(lowered, h.start) || !atBoundary(lowered, h.end) {
				continue
			}
			lastEnd = h.end
			for _, r := range s.refs[p] {
				g := s.gazetteers[r.gazetteer]
				e := g.Entries[r.entry]
				out = append(out, found{
					span: Span{
						Text:   string(original[h.start:h.end]),
						Start:  h.start,
						End:    h.end,
						Type:   g.Type,
						Entity: e.Name,
						Info:   maps.Clone(e.Info),
					},
					ref: r,
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.span.Start != b.span.Start {
			return a.span.Start < b.span.Start
		}
		if a.ref.gazetteer != b.ref.gazetteer {
			return a.ref.gazetteer < b.ref.gazetteer
		}
		return a.ref.entry < b.ref.entry
	})

	spans := make([]Span, len(out))
	for i, f := range out {
		spans[i] = f.span
	}
	return spans
}

// atBoundary reports whether a word boundary sits before rune i: exactly
// one of its neighbours is a word character. Text edges count as non-word.
func atBoundary(text []rune, i int) bool {
	before := i > 0 && utils.IsWordRune(text[i-1])
	after := i < len(text) && utils.IsWordRune(text[i])
	return before != after
}
