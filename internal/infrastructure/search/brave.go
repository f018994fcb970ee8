package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/techadvisor/backend/internal/domain"
	"github.com/techadvisor/backend/internal/infrastructure/monitoring"
)

const (
	maxQueryLength = 500
	maxHitCount    = 20
)

// braveResponse mirrors the parts of the Brave Search API payload we use
type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// BraveClient handles communication with the Brave Search API
type BraveClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	maxRetry    int
}

// BraveClientConfig tunes timeouts and pacing for the Brave client.
type BraveClientConfig struct {
	Timeout   time.Duration
	RateDelay time.Duration // minimum spacing between requests
	MaxRetry  int           // retries after the first attempt
}

// NewBraveClient creates a new Brave Search API client
func NewBraveClient(apiKey, baseURL string, cfg BraveClientConfig) *BraveClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	// The free Brave plan allows roughly one request per second; the
	// limiter spaces calls instead of eating 429 responses.
	rateDelay := cfg.RateDelay
	if rateDelay <= 0 {
		rateDelay = 1100 * time.Millisecond
	}
	maxRetry := cfg.MaxRetry
	if maxRetry < 0 {
		maxRetry = 0
	}

	return &BraveClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Every(rateDelay), 1),
		maxRetry:    maxRetry,
	}
}

// Search queries Brave for Turkish shopping results, optionally restricted
// to one site. count is clamped to the API's 1-20 window.
func (c *BraveClient) Search(ctx context.Context, query string, count int, site string) ([]domain.SearchHit, error) {
	if query == "" || len(query) > maxQueryLength {
		return nil, domain.ErrInvalidQuery
	}
	if count < 1 {
		count = 1
	}
	if count > maxHitCount {
		count = maxHitCount
	}

	q := query
	if site != "" {
		q = fmt.Sprintf("%s site:%s", query, site)
	}

	params := url.Values{}
	params.Add("q", q)
	params.Add("count", fmt.Sprintf("%d", count))
	params.Add("country", "tr")
	params.Add("search_lang", "tr")
	params.Add("safesearch", "off")

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= c.maxRetry+1; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[BRAVE] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			monitoring.SearchRequestsTotal.WithLabelValues("ok").Inc()
			return parseHits(body, site)
		case resp.StatusCode == http.StatusTooManyRequests:
			log.Printf("[BRAVE] Rate limited (attempt %d) for query: %q", attempt, q)
			monitoring.SearchRequestsTotal.WithLabelValues("rate_limited").Inc()
			lastErr = domain.ErrRateLimited
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		case resp.StatusCode == http.StatusUnauthorized,
			resp.StatusCode == http.StatusForbidden,
			resp.StatusCode == http.StatusUnprocessableEntity:
			// Key or plan problems never recover within a request.
			log.Printf("[BRAVE] API rejected request - Status: %d, Body: %s", resp.StatusCode, string(body))
			monitoring.SearchRequestsTotal.WithLabelValues("auth_error").Inc()
			return nil, fmt.Errorf("%w: status %d", domain.ErrSearchUnavailable, resp.StatusCode)
		default:
			log.Printf("[BRAVE] API error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			monitoring.SearchRequestsTotal.WithLabelValues("error").Inc()
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSearchUnavailable, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET request with the Brave auth headers
func (c *BraveClient) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}

	return resp, nil
}

// parseHits converts the Brave payload into domain search hits
func parseHits(body []byte, site string) ([]domain.SearchHit, error) {
	var parsed braveResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	hits := make([]domain.SearchHit, 0, len(parsed.Web.Results))
	for _, r := range parsed.Web.Results {
		if r.URL == "" {
			continue
		}
		hits = append(hits, domain.SearchHit{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Description,
			Site:    site,
		})
	}
	return hits, nil
}
