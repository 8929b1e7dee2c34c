package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	newYork    = Coordinate{Lat: 40.7128, Lon: -74.0060}
	losAngeles = Coordinate{Lat: 34.0522, Lon: -118.2437}
	chicago    = Coordinate{Lat: 41.8781, Lon: -87.6298}
	london     = Coordinate{Lat: 51.5074, Lon: -0.1278}
	paris      = Coordinate{Lat: 48.8566, Lon: 2.3522}
	sydney     = Coordinate{Lat: -33.8688, Lon: 151.2093}
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	for _, c := range []Coordinate{newYork, losAngeles, sydney, {}, {Lat: 90}, {Lat: -90, Lon: 180}} {
		assert.InDelta(t, 0, DistanceKm(c, c), 0.01)
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][2]Coordinate{
		{newYork, losAngeles},
		{london, paris},
		{sydney, chicago},
		{{Lat: 0, Lon: -179.9}, {Lat: 0, Lon: 179.9}},
	}
	for _, p := range pairs {
		assert.Equal(t, DistanceKm(p[0], p[1]), DistanceKm(p[1], p[0]))
	}
}

func TestDistanceKm_KnownCityPairs(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Coordinate
		wantKm float64
	}{
		{"new york to los angeles", newYork, losAngeles, 3936},
		{"london to paris", london, paris, 344},
		{"new york to chicago", newYork, chicago, 1145},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			// published figures are good to about 1%
			assert.InDelta(t, tt.wantKm, got, tt.wantKm*0.01)
		})
	}
}

func TestDistanceKm_NeverNegative(t *testing.T) {
	coords := []Coordinate{newYork, losAngeles, london, sydney, {}, {Lat: 89.9, Lon: 0}, {Lat: -89.9, Lon: 0}}
	for _, a := range coords {
		for _, b := range coords {
			assert.GreaterOrEqual(t, DistanceKm(a, b), 0.0)
		}
	}
}

func TestDistanceKm_AntipodalStaysFinite(t *testing.T) {
	a := Coordinate{Lat: 0, Lon: 0}
	b := Coordinate{Lat: 0, Lon: 180}
	got := DistanceKm(a, b)
	// half the Earth's circumference at the equator
	assert.InDelta(t, 20015, got, 20015*0.01)
}
