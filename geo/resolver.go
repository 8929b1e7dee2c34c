package geo

import "strings"

// Resolver turns free-text location strings (as typed by a buyer or stored
// on a vendor) into coordinates using a gazetteer. It is intentionally
// approximate: downstream matching falls back to text comparison anyway, so
// some coordinate beats no coordinate.
type Resolver struct {
	gazetteer *Gazetteer
}

// NewResolver returns a Resolver backed by the given gazetteer.
func NewResolver(g *Gazetteer) *Resolver {
	return &Resolver{gazetteer: g}
}

// Resolve geocodes a free-text location. Resolution stages, cheapest first:
//
//  1. exact bare-city lookup of the whole normalized text
//  2. "City, State" split on the first comma, exact (city, state) lookup,
//     then bare-city lookup of the part before the comma
//  3. linear scan of the table accepting the first entry whose city name
//     contains, or is contained by, the normalized text
//
// The scan is O(N) over a few hundred entries and runs once per query, not
// per record, so it stays cheap. The second return value is false when no
// stage produces a match; that is an expected outcome, not an error.
func (r *Resolver) Resolve(locationText string) (Coordinate, bool) {
	text := Normalize(locationText)
	if text == "" {
		return Coordinate{}, false
	}

	if c, ok := r.gazetteer.LookupCity(text); ok {
		return c, true
	}

	if city, state, found := strings.Cut(text, ","); found {
		city = strings.TrimSpace(city)
		state = strings.TrimSpace(state)
		if c, ok := r.gazetteer.Lookup(city, state); ok {
			return c, true
		}
		if c, ok := r.gazetteer.LookupCity(city); ok {
			return c, true
		}
	}

	for _, e := range r.gazetteer.Entries() {
		if strings.Contains(text, e.City) || strings.Contains(e.City, text) {
			return e.Coord, true
		}
	}

	return Coordinate{}, false
}
