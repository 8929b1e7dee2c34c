package database

import (
	"database/sql"

	"github.com/lib/pq"

	"localmart/models"
)

// LoadVendors reads the full vendor snapshot the matching engine filters
// against. The engine treats the returned slice as read-only; nothing here
// is cached between requests.
func LoadVendors(db *sql.DB) ([]models.Vendor, error) {
	rows, err := db.Query(`
		SELECT v.id, v.vendor_name,
		       COALESCE(v.city, ''), COALESCE(v.state, ''), COALESCE(v.postal_code, ''),
		       COALESCE(v.latitude, 0), COALESCE(v.longitude, 0),
		       COALESCE(v.geo_status, 'PENDING'),
		       COALESCE(v.delivery_areas, '{}'),
		       COALESCE(v.delivery_radius_km, 0),
		       v.approved
		FROM vendors v
		ORDER BY v.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := []models.Vendor{}
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(&v.ID, &v.VendorName, &v.City, &v.State, &v.PostalCode,
			&v.Latitude, &v.Longitude, &v.GeoStatus,
			pq.Array(&v.DeliveryAreas), &v.DeliveryRadiusKm, &v.Approved); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

// LoadProducts reads the full product snapshot, inactive rows included;
// the matching engine drops inactive products itself.
func LoadProducts(db *sql.DB) ([]models.Product, error) {
	rows, err := db.Query(`
		SELECT p.id, p.vendor_id, p.product_name, p.price, p.active,
		       COALESCE(p.available_in_areas, '{}'),
		       COALESCE(p.image_url, '')
		FROM products p
		ORDER BY p.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.VendorID, &p.ProductName, &p.Price, &p.Active,
			pq.Array(&p.AvailableInAreas), &p.ImageURL); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// LoadDeliveryAreas returns the distinct delivery-area tags declared by
// approved vendors, for filter population on the client.
func LoadDeliveryAreas(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`
		SELECT DISTINCT unnest(delivery_areas) AS area
		FROM vendors
		WHERE approved = true
		ORDER BY area ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []string{}
	for rows.Next() {
		var area string
		if err := rows.Scan(&area); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, rows.Err()
}
