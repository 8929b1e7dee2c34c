package models

// Geo resolution status values shared by the vendors table and the
// geocoding worker. A vendor only carries usable explicit coordinates
// once its status is RESOLVED.
const (
	GeoStatusPending  = "PENDING"
	GeoStatusResolved = "RESOLVED"
)

// Vendor represents the core model for a marketplace seller, including its
// (optional) store location, delivery reach, and approval state. The
// location fields are a read-only snapshot for the matching engine:
// City/State/PostalCode hold the stored store-location text, and
// Latitude/Longitude are only meaningful when GeoStatus is RESOLVED.
type Vendor struct {
	ID               int64    `json:"id,string"`
	VendorName       string   `json:"vendor_name" db:"vendor_name"`
	City             string   `json:"city,omitempty"`
	State            string   `json:"state,omitempty"`
	PostalCode       string   `json:"postal_code,omitempty"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	GeoStatus        string   `json:"geo_status"`
	DeliveryAreas    []string `json:"delivery_areas,omitempty"`
	DeliveryRadiusKm float64  `json:"delivery_radius_km"`
	Approved         bool     `json:"approved"`
}

// HasCoordinates reports whether the vendor carries explicit, resolved
// store coordinates.
func (v Vendor) HasCoordinates() bool {
	return v.GeoStatus == GeoStatusResolved
}

// HasStoreLocation reports whether the vendor has any store location data
// at all, either text fields or resolved coordinates.
func (v Vendor) HasStoreLocation() bool {
	return v.City != "" || v.State != "" || v.PostalCode != "" || v.HasCoordinates()
}

// Product represents a catalog item owned by a vendor. An empty
// AvailableInAreas list means the product is visible wherever its vendor
// is eligible; a non-empty list narrows visibility to those areas.
type Product struct {
	ID               int64    `json:"id,string"`
	VendorID         int64    `json:"vendor_id,string"`
	ProductName      string   `json:"product_name" db:"product_name"`
	Price            float64  `json:"price"`
	Active           bool     `json:"active"`
	AvailableInAreas []string `json:"available_in_areas,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
}
