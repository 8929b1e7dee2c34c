package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"localmart/database"
	"localmart/matching"
)

// ParseLocationQuery extracts the buyer's location filters from the URL
// query. A missing radius gets the default; a radius that is present but
// not a positive number is rejected so a caller bug fails fast instead of
// being coerced into a silent default.
func ParseLocationQuery(query url.Values) (matching.LocationQuery, error) {
	q := matching.LocationQuery{
		City:       query.Get("city"),
		State:      query.Get("state"),
		PostalCode: query.Get("postal_code"),
		RadiusKm:   matching.DefaultSearchRadiusKm,
	}
	if q.PostalCode == "" {
		q.PostalCode = query.Get("zip")
	}

	if radiusStr := query.Get("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return q, fmt.Errorf("invalid radius %q: %w", radiusStr, err)
		}
		q.RadiusKm = radius
	}

	return q, q.Validate()
}

// VendorSearchHandler returns the vendors eligible to serve the buyer's
// location.
func VendorSearchHandler(db *sql.DB, matcher *matching.Matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := ParseLocationQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		vendors, err := database.LoadVendors(db)
		if err != nil {
			log.Println("Vendor snapshot query error:", err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		eligible, err := matcher.FilterVendors(q, vendors)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"vendors": eligible,
			"count":   len(eligible),
		})
	}
}

// ProductSearchHandler returns the active products visible to the buyer:
// products of eligible vendors, narrowed by product-level area tags.
func ProductSearchHandler(db *sql.DB, matcher *matching.Matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := ParseLocationQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		vendors, err := database.LoadVendors(db)
		if err != nil {
			log.Println("Vendor snapshot query error:", err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		products, err := database.LoadProducts(db)
		if err != nil {
			log.Println("Product snapshot query error:", err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		visible, err := matcher.FilterProducts(q, vendors, products)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"products": visible,
			"count":    len(visible),
		})
	}
}
