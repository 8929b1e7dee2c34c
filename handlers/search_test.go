package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmart/matching"
)

func TestParseLocationQuery_Defaults(t *testing.T) {
	q, err := ParseLocationQuery(url.Values{"city": {"Chicago"}})
	require.NoError(t, err)

	assert.Equal(t, "Chicago", q.City)
	assert.Equal(t, matching.DefaultSearchRadiusKm, q.RadiusKm)
}

func TestParseLocationQuery_AllFields(t *testing.T) {
	q, err := ParseLocationQuery(url.Values{
		"city":        {"Springfield"},
		"state":       {"IL"},
		"postal_code": {"62701"},
		"radius":      {"40"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Springfield", q.City)
	assert.Equal(t, "IL", q.State)
	assert.Equal(t, "62701", q.PostalCode)
	assert.Equal(t, 40.0, q.RadiusKm)
}

func TestParseLocationQuery_ZipAlias(t *testing.T) {
	q, err := ParseLocationQuery(url.Values{"zip": {"90210"}})
	require.NoError(t, err)
	assert.Equal(t, "90210", q.PostalCode)
}

func TestParseLocationQuery_InvalidRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius string
	}{
		{"non-numeric", "abc"},
		{"negative", "-5"},
		{"zero", "0"},
		{"not a number literal", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLocationQuery(url.Values{"radius": {tt.radius}})
			assert.Error(t, err)
		})
	}
}
