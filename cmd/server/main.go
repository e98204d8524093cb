package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/semaphore"

	"github.com/shopsearch/backend/config"
	httpDelivery "github.com/shopsearch/backend/internal/delivery/http"
	"github.com/shopsearch/backend/internal/infrastructure/scraperapi"
	"github.com/shopsearch/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopSearch Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Provider: %s (country: %s)", cfg.Scraper.BaseURL, cfg.Scraper.CountryCode)

	// Initialize infrastructure dependencies
	scraperClient := scraperapi.NewClient(scraperapi.ClientConfig{
		APIKey:              cfg.Scraper.APIKey,
		BaseURL:             cfg.Scraper.BaseURL,
		CountryCode:         cfg.Scraper.CountryCode,
		Timeout:             cfg.Scraper.Timeout,
		MaxIdleConns:        cfg.Scraper.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Scraper.MaxIdleConnsPerHost,
		RequestsPerSecond:   cfg.Scraper.RequestsPerSecond,
		Burst:               cfg.Scraper.Burst,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		scraperClient.SetDebug(true)
		log.Printf("Provider client debug mode enabled")
	}

	// One admission limiter shared by every concurrent search, so total
	// in-flight detail requests stay bounded process-wide
	detailLimiter := semaphore.NewWeighted(cfg.Search.DetailConcurrency)
	log.Printf("Detail fetch concurrency: %d", cfg.Search.DetailConcurrency)

	// Initialize usecase layer
	detailFetcher := usecase.NewDetailFetcher(scraperClient, detailLimiter)
	searchService := usecase.NewSearchService(
		scraperClient,
		detailFetcher,
		usecase.SearchServiceConfig{
			DefaultTopN:   cfg.Search.DefaultTopN,
			DefaultRegion: cfg.Scraper.CountryCode,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
