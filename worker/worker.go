package worker

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"localmart/geo"
	"localmart/models"
)

const (
	BatchSize        = 200
	WorkerPoolSize   = 50
	IntervalDuration = 2 * time.Second
)

// StartGeocodingWorker kicks off a background routine that resolves store
// coordinates for vendors still marked PENDING. Resolution tries the
// in-process gazetteer first (free, offline); vendors the gazetteer does
// not know fall through to the Google Maps API when a key is configured.
func StartGeocodingWorker(db *sql.DB, resolver *geo.Resolver) {
	log.Printf("Starting Geocoding Worker (Batch: %d, Concurrency: %d, Interval: %v)", BatchSize, WorkerPoolSize, IntervalDuration)
	ticker := time.NewTicker(IntervalDuration)
	go func() {
		for range ticker.C {
			processPendingVendors(db, resolver)
		}
	}()
}

// processPendingVendors retrieves a batch of vendors with PENDING
// geo_status and attempts to resolve their coordinates.
func processPendingVendors(db *sql.DB, resolver *geo.Resolver) {
	query := fmt.Sprintf("SELECT id, vendor_name, COALESCE(city, ''), COALESCE(state, '') FROM vendors WHERE geo_status = '%s' LIMIT %d", models.GeoStatusPending, BatchSize)
	rows, err := db.Query(query)
	if err != nil {
		log.Println("Worker query error:", err)
		return
	}
	defer rows.Close()

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, WorkerPoolSize)

	for rows.Next() {
		var id int64
		var name, city, state string
		if err := rows.Scan(&id, &name, &city, &state); err != nil {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(id int64, name, city, state string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			lat, lon, err := resolveVendor(resolver, city, state, apiKey)
			if err != nil {
				log.Printf("Geocoding failed for vendor [%d] %s: %v", id, name, err)
				return
			}

			_, err = db.Exec(`
				UPDATE vendors
				SET latitude = $1, longitude = $2, geo_status = $3
				WHERE id = $4
			`, lat, lon, models.GeoStatusResolved, id)

			if err != nil {
				log.Printf("Failed to update vendor %d: %v", id, err)
			} else {
				log.Printf("Resolved: %s (%v, %v)", name, lat, lon)
			}
		}(id, name, city, state)
	}

	wg.Wait()
}

func resolveVendor(resolver *geo.Resolver, city, state, apiKey string) (float64, float64, error) {
	text := city
	if state != "" {
		text = fmt.Sprintf("%s, %s", city, state)
	}

	if coord, ok := resolver.Resolve(text); ok {
		return coord.Lat, coord.Lon, nil
	}

	if apiKey == "" {
		return 0, 0, fmt.Errorf("location %q not in gazetteer and GOOGLE_MAPS_API_KEY not set", text)
	}
	return fetchCoordinates(text, apiKey)
}

func fetchCoordinates(address, apiKey string) (float64, float64, error) {
	apiURL := fmt.Sprintf("https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s", url.QueryEscape(address), apiKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(apiURL)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	var result struct {
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
		Status string `json:"status"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, 0, err
	}

	if result.Status != "OK" {
		return 0, 0, fmt.Errorf("API error: %s", result.Status)
	}

	if len(result.Results) == 0 {
		return 0, 0, fmt.Errorf("no results found")
	}

	return result.Results[0].Geometry.Location.Lat, result.Results[0].Geometry.Location.Lng, nil
}
