package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/revlytics/lead-insights-service/internal/config"
	"github.com/revlytics/lead-insights-service/internal/enrich"
	"github.com/revlytics/lead-insights-service/internal/httpserver"
	"github.com/revlytics/lead-insights-service/internal/seed"
	"github.com/revlytics/lead-insights-service/internal/store"
)

// main boots the service: config → DB → schema → seed → HTTP server.
func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Ensure required tables/indexes exist so `docker compose up --build` is enough.
	if err := db.EnsureSchema(); err != nil {
		log.Fatal(err)
	}

	// One-time CSV import; a populated leads table makes this a no-op.
	if err := seed.LoadLeads(context.Background(), db, cfg.LeadsCSV); err != nil {
		log.Fatal(err)
	}

	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY not set; leads will be served without enrichment")
	}
	enricher := enrich.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.EnrichTimeout)

	router := httpserver.NewRouter(db, enricher)

	log.Printf("server started on :%s", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
