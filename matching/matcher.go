package matching

import (
	"strings"

	"localmart/geo"
	"localmart/models"
)

// tierResult is the tri-state outcome of a single matching tier.
type tierResult int

const (
	// tierSkip means the tier had nothing to evaluate (missing data);
	// evaluation moves on to the next tier.
	tierSkip tierResult = iota
	// tierNoMatch means the tier evaluated and did not match. A later
	// tier may still grant eligibility; no tier can veto.
	tierNoMatch
	// tierMatch grants eligibility immediately.
	tierMatch
)

// tierFunc is one heuristic stage of the match procedure.
type tierFunc func(v models.Vendor, q LocationQuery) tierResult

// Matcher decides, per vendor and buyer query, whether the vendor may
// serve that buyer. The decision is a tiered OR of independent heuristics
// evaluated in a fixed order, highest confidence first:
//
//  1. geo: buyer and vendor both resolve to coordinates; distance within
//     the effective radius min(buyer radius, vendor delivery radius)
//  2. delivery-area tags: bidirectional substring against the buyer's
//     joined search string
//  3. derived coordinates: the vendor's city/state text resolved through
//     the gazetteer, then the geo check again
//  4. text fallback: case-insensitive per-field substring comparison
//
// Any tier matching grants eligibility. A Matcher is stateless apart from
// its resolver and safe for concurrent use.
type Matcher struct {
	resolver *geo.Resolver
	tiers    []tierFunc
}

// NewMatcher returns a Matcher backed by the given geocode resolver.
func NewMatcher(r *geo.Resolver) *Matcher {
	m := &Matcher{resolver: r}
	m.tiers = []tierFunc{
		m.geoTier,
		m.deliveryAreaTier,
		m.derivedCoordinateTier,
		m.textFallbackTier,
	}
	return m
}

// IsEligible reports whether the vendor may serve the buyer's location.
// Unapproved vendors are never eligible, nor are vendors with neither a
// store location nor delivery-area tags (nothing to match against).
func (m *Matcher) IsEligible(v models.Vendor, q LocationQuery) bool {
	if !v.Approved {
		return false
	}
	if !v.HasStoreLocation() && len(v.DeliveryAreas) == 0 {
		return false
	}

	for _, tier := range m.tiers {
		if tier(v, q) == tierMatch {
			return true
		}
	}
	return false
}

// geoTier compares explicit coordinates on both sides against the
// effective radius.
func (m *Matcher) geoTier(v models.Vendor, q LocationQuery) tierResult {
	if !v.HasCoordinates() {
		return tierSkip
	}
	buyer, ok := m.resolver.Resolve(q.ResolveText())
	if !ok {
		return tierSkip
	}
	return m.withinRadius(buyer, geo.Coordinate{Lat: v.Latitude, Lon: v.Longitude}, v, q)
}

// deliveryAreaTier matches the vendor's free-text delivery-area tags
// against the buyer's joined search string, substring in either direction.
func (m *Matcher) deliveryAreaTier(v models.Vendor, q LocationQuery) tierResult {
	if len(v.DeliveryAreas) == 0 || !q.HasLocationText() {
		return tierSkip
	}
	search := q.SearchString()
	for _, area := range v.DeliveryAreas {
		if containsEither(search, strings.ToLower(strings.TrimSpace(area))) {
			return tierMatch
		}
	}
	return tierNoMatch
}

// derivedCoordinateTier handles vendors without explicit coordinates by
// resolving their stored city/state text, then repeating the geo check.
func (m *Matcher) derivedCoordinateTier(v models.Vendor, q LocationQuery) tierResult {
	if v.HasCoordinates() {
		return tierSkip // geoTier already covered this vendor
	}
	vendorText := joinNonEmpty(", ", v.City, v.State)
	derived, ok := m.resolver.Resolve(vendorText)
	if !ok {
		return tierSkip
	}
	buyer, ok := m.resolver.Resolve(q.ResolveText())
	if !ok {
		return tierSkip
	}
	return m.withinRadius(buyer, derived, v, q)
}

// textFallbackTier compares query fields to vendor store-location fields
// directly; a match on any single field suffices. Substring containment is
// symmetric, same as the tag tier.
func (m *Matcher) textFallbackTier(v models.Vendor, q LocationQuery) tierResult {
	pairs := [][2]string{
		{q.City, v.City},
		{q.State, v.State},
		{q.PostalCode, v.PostalCode},
	}
	evaluated := false
	for _, p := range pairs {
		a := strings.ToLower(strings.TrimSpace(p[0]))
		b := strings.ToLower(strings.TrimSpace(p[1]))
		if a == "" || b == "" {
			continue
		}
		evaluated = true
		if containsEither(a, b) {
			return tierMatch
		}
	}
	if !evaluated {
		return tierSkip
	}
	return tierNoMatch
}

func (m *Matcher) withinRadius(buyer, vendor geo.Coordinate, v models.Vendor, q LocationQuery) tierResult {
	if geo.DistanceKm(buyer, vendor) <= effectiveRadiusKm(q, v.DeliveryRadiusKm) {
		return tierMatch
	}
	return tierNoMatch
}

// containsEither reports whether a contains b or b contains a. Both sides
// must be non-empty. Short inputs can over-match (a two-letter state code
// inside unrelated text); the tradeoff is deliberate, recall over
// precision.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
