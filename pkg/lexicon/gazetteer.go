package lexicon

import (
	"github.com/bastiangx/teny/internal/utils"
)

// EntityType is the tag attached to spans found in a gazetteer.
type EntityType string

const (
	EntityCity         EntityType = "VILLE"
	EntityRegion       EntityType = "REGION"
	EntityPersonality  EntityType = "PERSONNALITÉ"
	EntityOrganization EntityType = "ORGANISATION"
)

// Gazetteer names, in scan order.
const (
	GazetteerCities        = "cities"
	GazetteerRegions       = "regions"
	GazetteerPersonalities = "personalities"
	GazetteerOrganizations = "organizations"
)

// GazetteerNames lists the gazetteers in the order they are scanned.
func GazetteerNames() []string {
	return []string{
		GazetteerCities,
		GazetteerRegions,
		GazetteerPersonalities,
		GazetteerOrganizations,
	}
}

// TypeFor returns the entity type of a known gazetteer name.
func TypeFor(name string) (EntityType, bool) {
	switch name {
	case GazetteerCities:
		return EntityCity, true
	case GazetteerRegions:
		return EntityRegion, true
	case GazetteerPersonalities:
		return EntityPersonality, true
	case GazetteerOrganizations:
		return EntityOrganization, true
	}
	return "", false
}

// GazetteerEntry is one canonical name with its metadata.
type GazetteerEntry struct {
	Name string            `json:"name" msgpack:"n"`
	Info map[string]string `json:"info" msgpack:"i"`
}

// Gazetteer is a named lookup table of entity names.
type Gazetteer struct {
	Name    string           `msgpack:"name"`
	Type    EntityType       `msgpack:"type"`
	Entries []GazetteerEntry `msgpack:"entries"`
}

// NewGazetteer lowercases entry names and drops blanks and repeats.
// A repeated name keeps its first position and its last metadata.
func NewGazetteer(name string, typ EntityType, entries []GazetteerEntry) *Gazetteer {
	g := &Gazetteer{Name: name, Type: typ}
	pos := make(map[string]int, len(entries))
	for _, e := range entries {
		e.Name = utils.Normalize(e.Name)
		if e.Name == "" {
			continue
		}
		if e.Info == nil {
			e.Info = map[string]string{}
		}
		if i, ok := pos[e.Name]; ok {
			g.Entries[i] = e
			continue
		}
		pos[e.Name] = len(g.Entries)
		g.Entries = append(g.Entries, e)
	}
	return g
}

// Len returns the number of entries.
func (g *Gazetteer) Len() int {
	return len(g.Entries)
}
