package scraper

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/techadvisor/backend/internal/domain"
	"github.com/techadvisor/backend/internal/infrastructure/monitoring"
)

// OrchestratorConfig tunes the scrape worker pool.
type OrchestratorConfig struct {
	Workers            int           // concurrent fetches
	OverallTimeout     time.Duration // hard deadline for the whole batch
	FetchAttempts      int           // attempts per task including the first
	EnableDebugLogging bool
}

// Orchestrator fans fetch tasks out over a bounded worker pool under one
// hard deadline. Late results are abandoned rather than awaited: a slow
// site never stalls the whole request.
type Orchestrator struct {
	fetcher  domain.PageFetcher
	registry *Registry
	cfg      OrchestratorConfig
}

// NewOrchestrator creates the scrape orchestrator.
func NewOrchestrator(fetcher domain.PageFetcher, registry *Registry, cfg OrchestratorConfig) *Orchestrator {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.OverallTimeout <= 0 {
		cfg.OverallTimeout = 30 * time.Second
	}
	if cfg.FetchAttempts <= 0 {
		cfg.FetchAttempts = 2
	}
	return &Orchestrator{fetcher: fetcher, registry: registry, cfg: cfg}
}

// Run executes the tasks and returns every product parsed before the
// deadline. Per-task failures are logged and skipped.
func (o *Orchestrator) Run(ctx context.Context, tasks []domain.FetchTask) []domain.RawProduct {
	if len(tasks) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.OverallTimeout)
	defer cancel()

	taskCh := make(chan domain.FetchTask)
	resultCh := make(chan domain.RawProduct)

	var wg sync.WaitGroup
	for i := 0; i < o.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.worker(ctx, taskCh, resultCh)
		}()
	}

	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var results []domain.RawProduct
	for {
		select {
		case r, ok := <-resultCh:
			if !ok {
				return results
			}
			results = append(results, r)
		case <-ctx.Done():
			if o.cfg.EnableDebugLogging {
				log.Printf("[SCRAPE] deadline reached with %d/%d results", len(results), len(tasks))
			}
			return results
		}
	}
}

func (o *Orchestrator) worker(ctx context.Context, taskCh <-chan domain.FetchTask, resultCh chan<- domain.RawProduct) {
	for task := range taskCh {
		if ctx.Err() != nil {
			return
		}

		raw, err := o.scrapeOne(ctx, task)
		if err != nil {
			log.Printf("[SCRAPE] %s failed: %v", task.URL, err)
			continue
		}

		select {
		case resultCh <- *raw:
		case <-ctx.Done():
			return
		}
	}
}

// scrapeOne fetches and parses a single product page, recording the
// outcome per site.
func (o *Orchestrator) scrapeOne(ctx context.Context, task domain.FetchTask) (*domain.RawProduct, error) {
	adapter, err := o.registry.Lookup(task.URL)
	if err != nil {
		monitoring.FetchesTotal.WithLabelValues("unknown", "unsupported").Inc()
		return nil, err
	}

	html, err := fetchWithRetry(ctx, o.cfg.FetchAttempts, func(ctx context.Context) (string, error) {
		return o.fetcher.Fetch(ctx, task.URL)
	})
	if err != nil {
		monitoring.FetchesTotal.WithLabelValues(adapter.Domain, fetchStatus(err)).Inc()
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		monitoring.FetchesTotal.WithLabelValues(adapter.Domain, "parse_error").Inc()
		return nil, err
	}

	raw, err := adapter.Parse(doc, task.URL)
	if err != nil {
		monitoring.FetchesTotal.WithLabelValues(adapter.Domain, "parse_error").Inc()
		return nil, err
	}
	raw.Query = task.Query

	monitoring.FetchesTotal.WithLabelValues(adapter.Domain, "ok").Inc()
	return raw, nil
}

func fetchStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrBlocked):
		return "blocked"
	case errors.Is(err, domain.ErrFetchTimeout):
		return "timeout"
	default:
		return "error"
	}
}
