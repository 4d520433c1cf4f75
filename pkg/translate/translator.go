// Package translate looks words up in the Malagasy/French dictionary.
package translate

import (
	"fmt"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
)

// Direction is a translation direction.
type Direction string

const (
	ToFrench   Direction = "mg_to_fr"
	ToMalagasy Direction = "fr_to_mg"
)

// ParseDirection accepts the canonical names plus a few short forms.
// An empty string means ToFrench.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mg_to_fr", "mg-fr", "fr", "to_french":
		return ToFrench, nil
	case "fr_to_mg", "fr-mg", "mg", "to_malagasy":
		return ToMalagasy, nil
	}
	return "", fmt.Errorf("unknown translation direction %q", s)
}

// Table is a bidirectional word table with normalized keys.
type Table interface {
	ToFrench(word string) (string, bool)
	ToMalagasy(word string) (string, bool)
}

// Translations holds both directions for one word; a nil side has no entry.
type Translations struct {
	MgToFr *string `json:"mg_to_fr" msgpack:"mg_to_fr"`
	FrToMg *string `json:"fr_to_mg" msgpack:"fr_to_mg"`
}

// Translator is a thin, read-only view over a Table.
type Translator struct {
	table Table
}

// New returns a translator over table.
func New(table Table) *Translator {
	return &Translator{table: table}
}

// Translate looks word up in one direction. Case and surrounding space are ignored.
func (t *Translator) Translate(word string, dir Direction) (string, bool) {
	w := utils.Normalize(word)
	if w == "" || t.table == nil {
		return "", false
	}
	if dir == ToMalagasy {
		return t.table.ToMalagasy(w)
	}
	return t.table.ToFrench(w)
}

// All looks word up in both directions.
func (t *Translator) All(word string) Translations {
	var out Translations
	if fr, ok := t.Translate(word, ToFrench); ok {
		out.MgToFr = &fr
	}
	if mg, ok := t.Translate(word, ToMalagasy); ok {
		out.FrToMg = &mg
	}
	return out
}
