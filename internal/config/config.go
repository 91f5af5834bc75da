package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime configuration required by the service.
type Config struct {
	DBURL         string
	Port          string
	LeadsCSV      string
	OpenAIAPIKey  string
	OpenAIModel   string
	EnrichTimeout time.Duration
}

// Load reads required values from environment variables.
//
// OPENAI_API_KEY may be empty: startup proceeds, and every enrichment call
// fails into the empty-result path instead.
func Load() (Config, error) {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DB_URL required")
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	leadsCSV := strings.TrimSpace(os.Getenv("LEADS_CSV"))
	if leadsCSV == "" {
		leadsCSV = "data/leads.csv"
	}

	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}

	// Bounds each external enrichment call so a stalled completion request
	// cannot hang the lead-listing handler indefinitely.
	enrichTimeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("ENRICH_TIMEOUT_SECONDS")); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("ENRICH_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		enrichTimeout = time.Duration(secs) * time.Second
	}

	return Config{
		DBURL:         dbURL,
		Port:          port,
		LeadsCSV:      leadsCSV,
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:   model,
		EnrichTimeout: enrichTimeout,
	}, nil
}
