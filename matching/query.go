package matching

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultSearchRadiusKm is the buyer search radius applied when a
	// query does not specify one.
	DefaultSearchRadiusKm = 25.0

	// DefaultDeliveryRadiusKm is the vendor delivery radius assumed for
	// vendors that never declared one.
	DefaultDeliveryRadiusKm = 10.0
)

// LocationQuery is a buyer's location as supplied with a search request.
// It is constructed once per request and never mutated; the engine only
// reads it. Field-level validation (string lengths, radius bounds) belongs
// to the caller; the engine only rejects queries that would corrupt the
// distance math.
type LocationQuery struct {
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	RadiusKm   float64 `json:"radius_km"`
}

// Validate rejects queries whose radius cannot participate in a distance
// comparison. A malformed radius indicates a caller bug, so it surfaces as
// an error rather than being silently coerced.
func (q LocationQuery) Validate() error {
	if math.IsNaN(q.RadiusKm) || math.IsInf(q.RadiusKm, 0) {
		return fmt.Errorf("location query: radius is not a finite number")
	}
	if q.RadiusKm <= 0 {
		return fmt.Errorf("location query: radius must be positive, got %v", q.RadiusKm)
	}
	return nil
}

// HasLocationText reports whether the buyer supplied at least one of
// city, state, or postal code.
func (q LocationQuery) HasLocationText() bool {
	return q.City != "" || q.State != "" || q.PostalCode != ""
}

// SearchString joins the non-empty query fields with spaces, lower-cased.
// Delivery-area and product-area tags match against this string.
func (q LocationQuery) SearchString() string {
	return strings.ToLower(joinNonEmpty(" ", q.City, q.State, q.PostalCode))
}

// ResolveText is the free-text form of the query handed to the geocode
// resolver: "City, State" when both are present, so the resolver's
// comma-split stage can use the state for disambiguation.
func (q LocationQuery) ResolveText() string {
	return joinNonEmpty(", ", q.City, q.State)
}

// effectiveRadiusKm reconciles the buyer's search radius with a vendor's
// delivery radius. Both are upper bounds; only their intersection is a
// valid service area.
func effectiveRadiusKm(q LocationQuery, vendorRadiusKm float64) float64 {
	if vendorRadiusKm <= 0 {
		vendorRadiusKm = DefaultDeliveryRadiusKm
	}
	return math.Min(q.RadiusKm, vendorRadiusKm)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
