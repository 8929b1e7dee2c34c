package matching

import (
	"strings"

	"localmart/models"
)

// FilterVendors returns the vendors eligible to serve the buyer's
// location, preserving input order. The only error is an invalid query,
// which is rejected up front rather than coerced.
func (m *Matcher) FilterVendors(q LocationQuery, vendors []models.Vendor) ([]models.Vendor, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	eligible := []models.Vendor{}
	for _, v := range vendors {
		if m.IsEligible(v, q) {
			eligible = append(eligible, v)
		}
	}
	return eligible, nil
}

// FilterProducts returns the active products visible to the buyer. A
// product passes when its vendor is eligible and, if the product declares
// availability areas, at least one area tag matches the buyer's search
// string. Products with no area tags inherit vendor eligibility
// unconditionally, which lets a vendor serve a broad region while
// restricting specific items to a narrower one.
func (m *Matcher) FilterProducts(q LocationQuery, vendors []models.Vendor, products []models.Product) ([]models.Product, error) {
	eligible, err := m.FilterVendors(q, vendors)
	if err != nil {
		return nil, err
	}

	eligibleIDs := make(map[int64]struct{}, len(eligible))
	for _, v := range eligible {
		eligibleIDs[v.ID] = struct{}{}
	}

	search := q.SearchString()
	visible := []models.Product{}
	for _, p := range products {
		if !p.Active {
			continue
		}
		if _, ok := eligibleIDs[p.VendorID]; !ok {
			continue
		}
		if len(p.AvailableInAreas) > 0 && !areaMatches(p.AvailableInAreas, search) {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

func areaMatches(areas []string, search string) bool {
	for _, area := range areas {
		if containsEither(search, strings.ToLower(strings.TrimSpace(area))) {
			return true
		}
	}
	return false
}
