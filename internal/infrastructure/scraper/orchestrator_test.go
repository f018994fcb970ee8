package scraper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techadvisor/backend/internal/domain"
)

// stubFetcher serves canned HTML per URL, optionally after a delay.
type stubFetcher struct {
	pages map[string]string
	errs  map[string]error
	delay time.Duration
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", domain.ErrFetchTimeout, ctx.Err())
		}
	}
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	return f.pages[url], nil
}

const vatanFixtureURL = "https://www.vatanbilgisayar.com/asus-tuf.html"

const vatanFixtureHTML = `<html><body>
	<h1 class="product-detail__title">ASUS TUF Gaming F15 fiyatı</h1>
	<span class="product-list__price">38.999 TL</span>
</body></html>`

func TestOrchestratorRun(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{vatanFixtureURL: vatanFixtureHTML}}
	o := NewOrchestrator(fetcher, NewRegistry(), OrchestratorConfig{})

	tasks := []domain.FetchTask{
		{URL: vatanFixtureURL, Category: domain.CategoryLaptop, Query: "rtx 4060 laptop"},
	}

	results := o.Run(context.Background(), tasks)
	require.Len(t, results, 1)
	assert.Equal(t, "ASUS TUF Gaming F15", results[0].Name)
	assert.Equal(t, float64(38999), results[0].Price)
	assert.Equal(t, "rtx 4060 laptop", results[0].Query)
}

func TestOrchestratorRun_SkipsFailedTasks(t *testing.T) {
	blockedURL := "https://www.vatanbilgisayar.com/blocked.html"
	fetcher := &stubFetcher{
		pages: map[string]string{vatanFixtureURL: vatanFixtureHTML},
		errs:  map[string]error{blockedURL: domain.ErrBlocked},
	}
	o := NewOrchestrator(fetcher, NewRegistry(), OrchestratorConfig{})

	tasks := []domain.FetchTask{
		{URL: blockedURL},
		{URL: vatanFixtureURL},
		{URL: "https://www.example.com/unsupported"},
	}

	results := o.Run(context.Background(), tasks)
	require.Len(t, results, 1)
	assert.Equal(t, "ASUS TUF Gaming F15", results[0].Name)
}

func TestOrchestratorRun_DeadlineAbandonsSlowTasks(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[string]string{vatanFixtureURL: vatanFixtureHTML},
		delay: 5 * time.Second,
	}
	o := NewOrchestrator(fetcher, NewRegistry(), OrchestratorConfig{
		OverallTimeout: 100 * time.Millisecond,
	})

	start := time.Now()
	results := o.Run(context.Background(), []domain.FetchTask{{URL: vatanFixtureURL}})
	elapsed := time.Since(start)

	assert.Empty(t, results)
	assert.Less(t, elapsed, 2*time.Second, "deadline must not wait for slow fetches")
}

func TestOrchestratorRun_EmptyTaskList(t *testing.T) {
	o := NewOrchestrator(&stubFetcher{}, NewRegistry(), OrchestratorConfig{})
	assert.Empty(t, o.Run(context.Background(), nil))
}

func TestFetchWithRetry(t *testing.T) {
	t.Run("retries transient errors", func(t *testing.T) {
		calls := 0
		html, err := fetchWithRetry(context.Background(), 3, func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", domain.ErrConnection
			}
			return "<html></html>", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry bot blocks", func(t *testing.T) {
		calls := 0
		_, err := fetchWithRetry(context.Background(), 3, func(context.Context) (string, error) {
			calls++
			return "", domain.ErrBlocked
		})
		assert.ErrorIs(t, err, domain.ErrBlocked)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		calls := 0
		_, err := fetchWithRetry(context.Background(), 2, func(context.Context) (string, error) {
			calls++
			return "", domain.ErrConnection
		})
		assert.ErrorIs(t, err, domain.ErrConnection)
		assert.Equal(t, 2, calls)
	})
}
