package geo

import "strings"

// Entry is a single curated gazetteer record. State is a lower-cased
// region qualifier (US state code, or country code for non-US cities)
// used to disambiguate same-named cities.
type Entry struct {
	City  string
	State string
	Coord Coordinate
}

// Gazetteer is a read-only place-name lookup table. It is built once,
// never mutated afterwards, and safe for concurrent readers. Lookups are
// keyed by (city, state); a bare-city lookup is available as an explicit
// secondary tier that returns the first entry registered under that city
// name, so the curated table controls which same-named city wins.
type Gazetteer struct {
	byCityState map[string]Coordinate
	byCity      map[string]Coordinate
	entries     []Entry // insertion order, for the resolver's scan
}

// NewGazetteer builds a Gazetteer from the given entries. City and state
// are normalized (lower-cased, trimmed) before indexing. For duplicate
// bare city names, the first entry wins the bare-city index.
func NewGazetteer(entries []Entry) *Gazetteer {
	g := &Gazetteer{
		byCityState: make(map[string]Coordinate, len(entries)),
		byCity:      make(map[string]Coordinate, len(entries)),
		entries:     make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		city := Normalize(e.City)
		state := Normalize(e.State)
		if city == "" {
			continue
		}
		g.byCityState[cityStateKey(city, state)] = e.Coord
		if _, seen := g.byCity[city]; !seen {
			g.byCity[city] = e.Coord
		}
		g.entries = append(g.entries, Entry{City: city, State: state, Coord: e.Coord})
	}
	return g
}

// Lookup returns the coordinate for an exact (city, state) pair.
func (g *Gazetteer) Lookup(city, state string) (Coordinate, bool) {
	c, ok := g.byCityState[cityStateKey(Normalize(city), Normalize(state))]
	return c, ok
}

// LookupCity returns the coordinate for a bare city name, ignoring state.
// This is the secondary tier: ambiguous names resolve to the first curated
// entry rather than failing.
func (g *Gazetteer) LookupCity(city string) (Coordinate, bool) {
	c, ok := g.byCity[Normalize(city)]
	return c, ok
}

// Entries returns the normalized entries in insertion order.
func (g *Gazetteer) Entries() []Entry {
	return g.entries
}

// Len returns the number of entries in the table.
func (g *Gazetteer) Len() int {
	return len(g.entries)
}

// Normalize lower-cases and trims a place name for use as a lookup key.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cityStateKey(city, state string) string {
	return city + "|" + state
}
