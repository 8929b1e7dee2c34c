package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() *Resolver {
	return NewResolver(testGazetteer())
}

func TestResolver_EmptyInput(t *testing.T) {
	r := testResolver()

	_, ok := r.Resolve("")
	assert.False(t, ok)
	_, ok = r.Resolve("   ")
	assert.False(t, ok)
}

func TestResolver_ExactCity(t *testing.T) {
	r := testResolver()

	c, ok := r.Resolve("Chicago")
	require.True(t, ok)
	assert.InDelta(t, 41.8781, c.Lat, 0.0001)
}

func TestResolver_CityStateComma(t *testing.T) {
	r := testResolver()

	// the state after the comma disambiguates same-named cities
	c, ok := r.Resolve("Springfield, MA")
	require.True(t, ok)
	assert.InDelta(t, 42.1015, c.Lat, 0.0001)

	c, ok = r.Resolve("springfield, il")
	require.True(t, ok)
	assert.InDelta(t, 39.7817, c.Lat, 0.0001)

	// unknown state falls back to the bare-city tier
	c, ok = r.Resolve("Springfield, Oz")
	require.True(t, ok)
	assert.InDelta(t, 39.7817, c.Lat, 0.0001)
}

func TestResolver_SubstringScan(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name    string
		input   string
		wantLat float64
	}{
		{"key inside text", "downtown chicago area", 41.8781},
		{"text inside key", "chicag", 41.8781},
		{"neighborhood prefix", "greater portland metro", 45.5152},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := r.Resolve(tt.input)
			require.True(t, ok)
			assert.InDelta(t, tt.wantLat, c.Lat, 0.0001)
		})
	}
}

func TestResolver_NotFound(t *testing.T) {
	r := testResolver()

	_, ok := r.Resolve("xyzzy")
	assert.False(t, ok)
	_, ok = r.Resolve("12345")
	assert.False(t, ok)
}

func TestResolver_ScanOrderIsDeterministic(t *testing.T) {
	r := testResolver()

	// "springfield" matches two entries; the scan must always pick the
	// first one in table order
	for i := 0; i < 10; i++ {
		c, ok := r.Resolve("springfield outskirts")
		require.True(t, ok)
		assert.InDelta(t, 39.7817, c.Lat, 0.0001)
	}
}
