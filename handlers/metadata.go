package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"localmart/database"
	"localmart/geo"
)

// CitiesHandler serves the gazetteer's known cities for filter population.
// The table is a compiled-in constant, so no database round-trip is needed.
func CitiesHandler(gazetteer *geo.Gazetteer) http.HandlerFunc {
	type cityEntry struct {
		City      string  `json:"city"`
		State     string  `json:"state"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		entries := gazetteer.Entries()
		cities := make([]cityEntry, 0, len(entries))
		for _, e := range entries {
			cities = append(cities, cityEntry{
				City:      e.City,
				State:     e.State,
				Latitude:  e.Coord.Lat,
				Longitude: e.Coord.Lon,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cities)
	}
}

// DeliveryAreasHandler retrieves the distinct delivery-area tags declared
// by approved vendors, to populate the searchable area filter.
func DeliveryAreasHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := database.LoadDeliveryAreas(db)
		if err != nil {
			log.Println("Delivery areas query error:", err)
			http.Error(w, "Something went wrong", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(areas)
	}
}
