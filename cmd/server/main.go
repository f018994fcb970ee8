package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/techadvisor/backend/config"
	httpDelivery "github.com/techadvisor/backend/internal/delivery/http"
	"github.com/techadvisor/backend/internal/domain"
	"github.com/techadvisor/backend/internal/infrastructure/benchmark"
	"github.com/techadvisor/backend/internal/infrastructure/cache"
	"github.com/techadvisor/backend/internal/infrastructure/catalog"
	"github.com/techadvisor/backend/internal/infrastructure/scraper"
	"github.com/techadvisor/backend/internal/infrastructure/search"
	"github.com/techadvisor/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debug := cfg.Server.Environment == "development"

	log.Printf("Starting TechAdvisor Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	var resultStore domain.ResultStore
	if cfg.Cache.Type == "redis" {
		redisStore, err := cache.NewRedisStore(context.Background(), cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		resultStore = redisStore
	} else {
		resultStore = cache.NewMemoryStore(cfg.Cache.TTL)
	}
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	var searchProvider domain.SearchProvider
	if cfg.Search.APIKey != "" {
		searchProvider = search.NewBraveClient(cfg.Search.APIKey, cfg.Search.BaseURL, search.BraveClientConfig{
			Timeout:   cfg.Search.Timeout,
			RateDelay: cfg.Search.RateDelay,
			MaxRetry:  cfg.Search.MaxRetry,
		})
		log.Printf("Search API configured: %s", cfg.Search.BaseURL)
	} else {
		log.Printf("WARNING: search API key not configured, pipeline degrades to catalog-only results")
	}

	registry := scraper.NewRegistry()
	fetcher := scraper.NewFetcher(registry, scraper.FetcherConfig{
		PageLoadTimeout:    cfg.Scraper.PageLoadTimeout,
		Headless:           cfg.Scraper.Headless,
		EnableDebugLogging: debug,
	})
	orchestrator := scraper.NewOrchestrator(fetcher, registry, scraper.OrchestratorConfig{
		Workers:            cfg.Scraper.MaxWorkers,
		OverallTimeout:     cfg.Scraper.OverallTimeout,
		EnableDebugLogging: debug,
	})
	log.Printf("Scraper: %d workers, %s overall timeout, %d supported sites",
		cfg.Scraper.MaxWorkers, cfg.Scraper.OverallTimeout, len(registry.Domains()))

	catalogStore := catalog.NewStore()

	// Benchmark scores are optional: ranking works without them.
	var benchmarks domain.BenchmarkStore
	if store, err := benchmark.Open(cfg.Benchmark.SQLitePath); err != nil {
		log.Printf("WARNING: benchmark db unavailable (%v), ranking proceeds without score bonuses", err)
	} else {
		defer store.Close()
		benchmarks = store
		log.Printf("Benchmark db: %s", cfg.Benchmark.SQLitePath)
	}

	// Initialize usecase layer
	candidateService := usecase.NewCandidateService(
		usecase.NewQueryParser(debug),
		usecase.NewStrategyBuilder(registry.Domains(), debug),
		usecase.NewRelevanceFilter(debug),
		usecase.NewRankingService(benchmarks, debug),
		searchProvider,
		orchestrator,
		catalogStore,
		resultStore,
		usecase.CandidateServiceConfig{
			MaxFetchTasks:      cfg.Scraper.MaxAttempts,
			EnableDebugLogging: debug,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(candidateService)

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
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
