package lexicon

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// errEmpty marks a data file with no content.
var errEmpty = errors.New("empty document")

// Load reads every table it can find in dir. It never fails: a missing table
// is replaced by its default quietly, an unreadable one with a warning.
// An empty dir yields Default().
func Load(dir string) *Lexicon {
	lx := Default()
	if dir == "" {
		log.Debug("No data dir given, using built-in lexicon")
		return lx
	}
	if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
		log.Warnf("Data dir %s not usable, using built-in lexicon", dir)
		return lx
	}

	for _, table := range Tables() {
		path, ok := tableFile(dir, table)
		if !ok {
			log.Debugf("No %s file in %s, using built-in table", table, dir)
			continue
		}
		if err := loadTable(lx, table, path); err != nil {
			log.Warnf("Failed to load %s from %s: %v. Using built-in table...", table, path, err)
			continue
		}
		lx.Sources[table] = SourceFile
		log.Debugf("Loaded %s from %s", table, path)
	}
	return lx
}

func loadTable(lx *Lexicon, table Table, path string) error {
	if _, err := ValidateFileFormat(path); err != nil {
		return err
	}
	root, err := decodeOrdered(path)
	if err != nil {
		return err
	}
	switch table {
	case TableDictionary:
		words, err := parseWordList(root)
		if err != nil {
			return err
		}
		lx.Dictionary = NewDictionary(words)
	case TableFrequencies:
		counts, err := parseCounts(root)
		if err != nil {
			return err
		}
		lx.Frequencies = NewFrequencyTable(counts)
	case TableNgrams:
		rows, err := parseNgrams(root)
		if err != nil {
			return err
		}
		lx.Ngrams = NewNgramTable(rows)
	case TableTranslations:
		pairs, err := parseTranslations(root)
		if err != nil {
			return err
		}
		lx.Translations = NewTranslationTable(pairs)
	case TableGazetteers:
		gazetteers, err := parseGazetteers(root)
		if err != nil {
			return err
		}
		lx.Gazetteers = gazetteers
	default:
		return fmt.Errorf("unknown table %q", table)
	}
	return nil
}

// decodeOrdered parses a JSON or YAML file into a node tree, which keeps
// mapping keys in file order.
func decodeOrdered(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errEmpty
	}
	return doc.Content[0], nil
}

func expectKind(n *yaml.Node, kind yaml.Kind, what string) error {
	if n.Kind != kind {
		return fmt.Errorf("line %d: %s must be a %s", n.Line, what, kindName(kind))
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "string"
	}
	return "node"
}

// eachPair walks a mapping node in order.
func eachPair(n *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping keys must be strings", k.Line)
		}
		if err := fn(k.Value, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func parseWordList(n *yaml.Node) ([]string, error) {
	if err := expectKind(n, yaml.SequenceNode, "dictionary"); err != nil {
		return nil, err
	}
	words := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		if err := expectKind(item, yaml.ScalarNode, "dictionary word"); err != nil {
			return nil, err
		}
		words = append(words, item.Value)
	}
	return words, nil
}

func parseCounts(n *yaml.Node) ([]WordCount, error) {
	if err := expectKind(n, yaml.MappingNode, "frequency table"); err != nil {
		return nil, err
	}
	counts := make([]WordCount, 0, len(n.Content)/2)
	err := eachPair(n, func(word string, v *yaml.Node) error {
		var c int
		if err := v.Decode(&c); err != nil {
			return fmt.Errorf("line %d: count for %q: %w", v.Line, word, err)
		}
		counts = append(counts, WordCount{Word: word, Count: c})
		return nil
	})
	return counts, err
}

// parseNgrams accepts either a mapping keyed by textual context keys or a
// list of {context: [...], next: {...}} records.
func parseNgrams(n *yaml.Node) ([]NgramRow, error) {
	switch n.Kind {
	case yaml.MappingNode:
		var rows []NgramRow
		err := eachPair(n, func(key string, v *yaml.Node) error {
			ctx, err := ParseContextKey(key)
			if err != nil {
				return fmt.Errorf("line %d: %w", v.Line, err)
			}
			next, err := parseCounts(v)
			if err != nil {
				return err
			}
			rows = append(rows, NgramRow{Context: ctx, Next: next})
			return nil
		})
		return rows, err
	case yaml.SequenceNode:
		rows := make([]NgramRow, 0, len(n.Content))
		for _, item := range n.Content {
			row, err := parseNgramRecord(item)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("line %d: n-gram table must be a mapping or a list", n.Line)
}

func parseNgramRecord(n *yaml.Node) (NgramRow, error) {
	var row NgramRow
	if err := expectKind(n, yaml.MappingNode, "n-gram record"); err != nil {
		return row, err
	}
	var haveContext, haveNext bool
	err := eachPair(n, func(key string, v *yaml.Node) error {
		switch key {
		case "context":
			var words []string
			if v.Kind == yaml.ScalarNode {
				ctx, err := ParseContextKey(v.Value)
				if err != nil {
					return err
				}
				row.Context, haveContext = ctx, true
				return nil
			}
			if err := v.Decode(&words); err != nil {
				return fmt.Errorf("line %d: context: %w", v.Line, err)
			}
			ctx, err := contextKeyFromWords(words, fmt.Sprint(words))
			if err != nil {
				return err
			}
			row.Context, haveContext = ctx, true
		case "next":
			next, err := parseCounts(v)
			if err != nil {
				return err
			}
			row.Next, haveNext = next, true
		}
		return nil
	})
	if err != nil {
		return row, err
	}
	if !haveContext || !haveNext {
		return row, fmt.Errorf("line %d: n-gram record needs both context and next", n.Line)
	}
	return row, nil
}

func parseTranslations(n *yaml.Node) ([]Pair, error) {
	if err := expectKind(n, yaml.MappingNode, "translation table"); err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(n.Content)/2)
	err := eachPair(n, func(mg string, v *yaml.Node) error {
		if err := expectKind(v, yaml.ScalarNode, "translation of "+mg); err != nil {
			return err
		}
		pairs = append(pairs, Pair{Malagasy: mg, French: v.Value})
		return nil
	})
	return pairs, err
}

// parseGazetteers reads a mapping of gazetteer name to entries. Gazetteers
// the file leaves out keep their defaults; unknown names are skipped.
func parseGazetteers(n *yaml.Node) ([]*Gazetteer, error) {
	if err := expectKind(n, yaml.MappingNode, "gazetteer file"); err != nil {
		return nil, err
	}
	out := DefaultGazetteers()
	err := eachPair(n, func(name string, v *yaml.Node) error {
		typ, ok := TypeFor(name)
		if !ok {
			log.Warnf("Skipping unknown gazetteer %q", name)
			return nil
		}
		if err := expectKind(v, yaml.MappingNode, "gazetteer "+name); err != nil {
			return err
		}
		var entries []GazetteerEntry
		err := eachPair(v, func(entity string, meta *yaml.Node) error {
			info := map[string]string{}
			if meta.Kind != yaml.ScalarNode || meta.Tag != "!!null" {
				if err := meta.Decode(&info); err != nil {
					return fmt.Errorf("line %d: metadata for %q: %w", meta.Line, entity, err)
				}
			}
			entries = append(entries, GazetteerEntry{Name: entity, Info: info})
			return nil
		})
		if err != nil {
			return err
		}
		for i, g := range out {
			if g.Name == name {
				out[i] = NewGazetteer(name, typ, entries)
			}
		}
		return nil
	})
	return out, err
}
