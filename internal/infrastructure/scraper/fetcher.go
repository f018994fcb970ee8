package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"github.com/techadvisor/backend/internal/domain"
)

// HTML shorter than this is a bot-protection interstitial, not a product
// page.
const minPageSize = 3000

// userAgents rotated per fetch to look like ordinary browser traffic.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36",
}

func pickUserAgent() string {
	return userAgents[rand.Intn(len(userAgents))]
}

// FetcherConfig tunes the headless browser fetcher.
type FetcherConfig struct {
	PageLoadTimeout    time.Duration
	Headless           bool
	EnableDebugLogging bool
}

// Fetcher renders product pages with a headless browser. Each fetch gets
// a fresh browser so sites cannot correlate requests, and each shop
// domain is paced by its own rate limiter.
type Fetcher struct {
	registry *Registry
	cfg      FetcherConfig

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewFetcher creates a page fetcher over the adapter registry.
func NewFetcher(registry *Registry, cfg FetcherConfig) *Fetcher {
	if cfg.PageLoadTimeout <= 0 {
		cfg.PageLoadTimeout = 35 * time.Second
	}
	return &Fetcher{
		registry: registry,
		cfg:      cfg,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch renders the product page and returns its markup. The URL must
// belong to a supported shop.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	adapter, err := f.registry.Lookup(url)
	if err != nil {
		return "", err
	}

	if err := f.limiter(adapter.Domain).Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.cfg.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(pickUserAgent()),
		chromedp.Flag("lang", "tr-TR,tr"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	actions := []chromedp.Action{
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": "tr-TR,tr;q=0.9,en;q=0.5"}),
		chromedp.Navigate(url),
		chromedp.Evaluate(`Object.defineProperty(navigator, 'webdriver', {get: () => undefined});`, nil),
	}
	if adapter.PreCapture != nil {
		actions = append(actions, adapter.PreCapture)
	}
	var html string
	actions = append(actions,
		scrollSoft(2, 500*time.Millisecond),
		waitForAny(adapter.WaitForAny, f.cfg.PageLoadTimeout),
		chromedp.OuterHTML("html", &html),
	)

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrFetchTimeout) {
			return "", fmt.Errorf("%w: %s", domain.ErrFetchTimeout, adapter.Domain)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}

	if len(html) < minPageSize {
		if f.cfg.EnableDebugLogging {
			log.Printf("[FETCH] %s returned %d bytes, treating as bot block", adapter.Domain, len(html))
		}
		return "", fmt.Errorf("%w: %s", domain.ErrBlocked, adapter.Domain)
	}
	return html, nil
}

// limiter returns the per-domain pacer, creating it on first use.
func (f *Fetcher) limiter(domainKey string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.limiters[domainKey]
	if !ok {
		l = rate.NewLimiter(rate.Every(2*time.Second), 1)
		f.limiters[domainKey] = l
	}
	return l
}

// waitForAny polls until at least one selector is rendered and visible.
func waitForAny(selectors []string, timeout time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if len(selectors) == 0 {
			return nil
		}
		script, err := visibleSelectorScript(selectors)
		if err != nil {
			return err
		}

		deadline := time.Now().Add(timeout)
		for time.Now().Before(deadline) {
			var found string
			if err := chromedp.Evaluate(script, &found).Do(ctx); err != nil {
				return err
			}
			if found != "" {
				return nil
			}
			if err := chromedp.Sleep(500 * time.Millisecond).Do(ctx); err != nil {
				return err
			}
		}
		return domain.ErrFetchTimeout
	})
}
