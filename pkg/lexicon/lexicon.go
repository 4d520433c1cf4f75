/*
Package lexicon holds the read-only tables every analyzer consults.

A Lexicon is built once, either from a data directory (see Load), from a
compiled bbolt snapshot (see OpenSnapshot) or from the built-in defaults, and
is never modified afterwards. Each table falls back to its built-in default
on its own, so a data directory holding only ngrams.json still yields a full
lexicon.

Data directory layout:

	data/
	  dictionary.json        ["trano", "vary", ...]
	  ngrams.json            {"ny": {"trano": 5}, "ny trano": {"lehibe": 3}}
	  word_frequencies.json  {"ny": 100, "sy": 80}
	  translations.json      {"salama": "bonjour"}
	  gazetteers.yaml        cities: {antananarivo: {region: Analamanga}}

Any file may use the .yaml or .yml extension instead. Key order in the files
is kept and decides ties wherever counts are equal.
*/
package lexicon

// Table names a lexicon table.
type Table string

const (
	TableDictionary   Table = "dictionary"
	TableNgrams       Table = "ngrams"
	TableFrequencies  Table = "word_frequencies"
	TableTranslations Table = "translations"
	TableGazetteers   Table = "gazetteers"
)

// Tables lists every table in load order.
func Tables() []Table {
	return []Table{TableDictionary, TableNgrams, TableFrequencies, TableTranslations, TableGazetteers}
}

// Source says where a table's content came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceFile     Source = "file"
	SourceSnapshot Source = "snapshot"
)

// Lexicon bundles every table. All fields are set and read-only after construction.
type Lexicon struct {
	Dictionary   *Dictionary
	Frequencies  *FrequencyTable
	Ngrams       *NgramTable
	Translations *TranslationTable
	Gazetteers   []*Gazetteer
	Sources      map[Table]Source
}

// Default returns a lexicon made only of built-in tables.
func Default() *Lexicon {
	lx := &Lexicon{
		Dictionary:   DefaultDictionary(),
		Frequencies:  DefaultFrequencies(),
		Ngrams:       DefaultNgrams(),
		Translations: DefaultTranslations(),
		Gazetteers:   DefaultGazetteers(),
		Sources:      make(map[Table]Source, len(Tables())),
	}
	for _, t := range Tables() {
		lx.Sources[t] = SourceDefault
	}
	return lx
}

// Gazetteer returns the gazetteer with the given name, or nil.
func (lx *Lexicon) Gazetteer(name string) *Gazetteer {
	for _, g := range lx.Gazetteers {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Stats returns table sizes keyed by table name.
func (lx *Lexicon) Stats() map[string]int {
	entities := 0
	for _, g := range lx.Gazetteers {
		entities += g.Len()
	}
	return map[string]int{
		string(TableDictionary):   lx.Dictionary.Len(),
		string(TableNgrams):       lx.Ngrams.Len(),
		string(TableFrequencies):  lx.Frequencies.Len(),
		string(TableTranslations): lx.Translations.Len(),
		string(TableGazetteers):   entities,
	}
}
