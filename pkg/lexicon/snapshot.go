package lexicon

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"
)

// SnapshotFileName is the conventional name of a compiled lexicon.
const SnapshotFileName = "lexicon.db"

// snapshotVersion is bumped whenever the stored layout changes.
const snapshotVersion = 1

var (
	bucketMeta   = []byte("meta")
	bucketTables = []byte("tables")
	keyVersion   = []byte("version")
	keyBuiltAt   = []byte("built_at")
	keySources   = []byte("sources")
)

// ErrSnapshotVersion is returned for snapshots written by an incompatible build.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// SaveSnapshot writes every table of lx into a bbolt file at path,
// replacing whatever tables it held. Values are msgpack encoded.
func SaveSnapshot(path string, lx *Lexicon) error {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return fmt.Errorf("bbolt open: %w", err)
	}
	defer db.Close()

	values := map[Table]any{
		TableDictionary:   lx.Dictionary.Words(),
		TableFrequencies:  lx.Frequencies.Entries(),
		TableNgrams:       lx.Ngrams.Rows(),
		TableTranslations: lx.Translations.Pairs(),
		TableGazetteers:   lx.Gazetteers,
	}
	encoded := make(map[Table][]byte, len(values))
	for table, v := range values {
		b, err := encodeValue(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", table, err)
		}
		encoded[table] = b
	}
	meta := map[string][]byte{}
	for k, v := range map[string]any{
		string(keyVersion): snapshotVersion,
		string(keyBuiltAt): time.Now().UTC().Format(time.RFC3339),
		string(keySources): lx.Sources,
	} {
		b, err := encodeValue(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		meta[k] = b
	}

	return db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketTables) != nil {
			if err := tx.DeleteBucket(bucketTables); err != nil {
				return err
			}
		}
		tb, err := tx.CreateBucket(bucketTables)
		if err != nil {
			return err
		}
		for table, b := range encoded {
			if err := tb.Put([]byte(table), b); err != nil {
				return err
			}
		}
		mb, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}
		for k, b := range meta {
			if err := mb.Put([]byte(k), b); err != nil {
				return err
			}
		}
		return nil
	})
}

// OpenSnapshot reads a lexicon written by SaveSnapshot. Tables missing from
// the file fall back to their defaults. The database is closed before return.
func OpenSnapshot(path string) (*Lexicon, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	defer db.Close()

	raw := make(map[Table][]byte)
	var versionRaw []byte
	err = db.View(func(tx *bolt.Tx) error {
		mb := tx.Bucket(bucketMeta)
		if mb == nil {
			return fmt.Errorf("%s: missing meta bucket", path)
		}
		// bbolt memory is only valid inside the transaction, so copy out
		versionRaw = bytes.Clone(mb.Get(keyVersion))
		tb := tx.Bucket(bucketTables)
		if tb == nil {
			return nil
		}
		for _, t := range Tables() {
			if v := tb.Get([]byte(t)); v != nil {
				raw[t] = bytes.Clone(v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var version int
	if err := msgpack.Unmarshal(versionRaw, &version); err != nil || version != snapshotVersion {
		return nil, fmt.Errorf("%s: %w (got %d)", path, ErrSnapshotVersion, version)
	}

	lx := Default()
	for _, t := range Tables() {
		b, ok := raw[t]
		if !ok {
			log.Warnf("Snapshot %s has no %s table, using built-in table", path, t)
			continue
		}
		if err := decodeTable(lx, t, b); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		lx.Sources[t] = SourceSnapshot
	}
	return lx, nil
}

func decodeTable(lx *Lexicon, t Table, b []byte) error {
	switch t {
	case TableDictionary:
		var words []string
		if err := msgpack.Unmarshal(b, &words); err != nil {
			return err
		}
		lx.Dictionary = NewDictionary(words)
	case TableFrequencies:
		var counts []WordCount
		if err := msgpack.Unmarshal(b, &counts); err != nil {
			return err
		}
		lx.Frequencies = NewFrequencyTable(counts)
	case TableNgrams:
		var rows []NgramRow
		if err := msgpack.Unmarshal(b, &rows); err != nil {
			return err
		}
		lx.Ngrams = NewNgramTable(rows)
	case TableTranslations:
		var pairs []Pair
		if err := msgpack.Unmarshal(b, &pairs); err != nil {
			return err
		}
		lx.Translations = NewTranslationTable(pairs)
	case TableGazetteers:
		var gs []*Gazetteer
		if err := msgpack.Unmarshal(b, &gs); err != nil {
			return err
		}
		out := make([]*Gazetteer, 0, len(gs))
		for _, g := range gs {
			out = append(out, NewGazetteer(g.Name, g.Type, g.Entries))
		}
		lx.Gazetteers = out
	}
	return nil
}

// encodeValue uses sorted map keys so identical lexicons give identical bytes.
func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
