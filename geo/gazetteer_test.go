package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGazetteer() *Gazetteer {
	return NewGazetteer([]Entry{
		{City: "Springfield", State: "IL", Coord: Coordinate{Lat: 39.7817, Lon: -89.6501}},
		{City: "Springfield", State: "MA", Coord: Coordinate{Lat: 42.1015, Lon: -72.5898}},
		{City: "Chicago", State: "IL", Coord: Coordinate{Lat: 41.8781, Lon: -87.6298}},
		{City: "  Portland ", State: " OR ", Coord: Coordinate{Lat: 45.5152, Lon: -122.6784}},
	})
}

func TestGazetteer_LookupCityState(t *testing.T) {
	g := testGazetteer()

	c, ok := g.Lookup("Springfield", "MA")
	require.True(t, ok)
	assert.InDelta(t, 42.1015, c.Lat, 0.0001)

	c, ok = g.Lookup("Springfield", "IL")
	require.True(t, ok)
	assert.InDelta(t, 39.7817, c.Lat, 0.0001)

	_, ok = g.Lookup("Springfield", "TX")
	assert.False(t, ok)
}

func TestGazetteer_LookupCity_FirstEntryWins(t *testing.T) {
	g := testGazetteer()

	// bare-city lookup on an ambiguous name returns the first curated entry
	c, ok := g.LookupCity("springfield")
	require.True(t, ok)
	assert.InDelta(t, 39.7817, c.Lat, 0.0001)
}

func TestGazetteer_Normalization(t *testing.T) {
	g := testGazetteer()

	c, ok := g.Lookup("  PORTLAND  ", "or")
	require.True(t, ok)
	assert.InDelta(t, 45.5152, c.Lat, 0.0001)

	c, ok = g.LookupCity("CHICAGO")
	require.True(t, ok)
	assert.InDelta(t, 41.8781, c.Lat, 0.0001)
}

func TestGazetteer_NotFound(t *testing.T) {
	g := testGazetteer()

	_, ok := g.LookupCity("atlantis")
	assert.False(t, ok)
	_, ok = g.LookupCity("")
	assert.False(t, ok)
}

func TestGazetteer_SkipsEmptyCityEntries(t *testing.T) {
	g := NewGazetteer([]Entry{
		{City: "", State: "XX", Coord: Coordinate{Lat: 1, Lon: 1}},
		{City: "Chicago", State: "IL", Coord: Coordinate{Lat: 41.8781, Lon: -87.6298}},
	})
	assert.Equal(t, 1, g.Len())
}

func TestDefaultGazetteer(t *testing.T) {
	g := DefaultGazetteer()
	require.Greater(t, g.Len(), 100)

	c, ok := g.Lookup("New York", "NY")
	require.True(t, ok)
	assert.InDelta(t, 40.7128, c.Lat, 0.0001)
	assert.InDelta(t, -74.0060, c.Lon, 0.0001)

	// every curated coordinate must be a plausible lat/lon
	for _, e := range g.Entries() {
		assert.GreaterOrEqual(t, e.Coord.Lat, -90.0, "entry %s %s", e.City, e.State)
		assert.LessOrEqual(t, e.Coord.Lat, 90.0, "entry %s %s", e.City, e.State)
		assert.GreaterOrEqual(t, e.Coord.Lon, -180.0, "entry %s %s", e.City, e.State)
		assert.LessOrEqual(t, e.Coord.Lon, 180.0, "entry %s %s", e.City, e.State)
	}
}
