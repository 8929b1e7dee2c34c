package main

import (
	"log"
	"net/http"
	"os"

	"localmart/database"
	"localmart/geo"
	"localmart/handlers"
	"localmart/matching"
	"localmart/worker"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// main initializes the server, database connection, the geo-eligibility
// matching engine, and the background geocoding worker.
func main() {
	_ = godotenv.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	gazetteer := geo.DefaultGazetteer()
	resolver := geo.NewResolver(gazetteer)
	matcher := matching.NewMatcher(resolver)

	go worker.StartGeocodingWorker(db, resolver)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/vendors", handlers.VendorSearchHandler(db, matcher))
	mux.HandleFunc("GET /api/products", handlers.ProductSearchHandler(db, matcher))
	mux.HandleFunc("GET /api/cities", handlers.CitiesHandler(gazetteer))
	mux.HandleFunc("GET /api/delivery-areas", handlers.DeliveryAreasHandler(db))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:5174"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3003"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("Server failed:", err)
	}
}
