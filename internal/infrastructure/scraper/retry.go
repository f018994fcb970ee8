package scraper

import (
	"context"
	"errors"
	"time"

	"github.com/techadvisor/backend/internal/domain"
)

// retryBaseDelay is doubled after each failed attempt.
const retryBaseDelay = 500 * time.Millisecond

// isTransient reports whether a fetch error is worth retrying. Bot blocks
// and unsupported sites fail the same way every time; timeouts already
// consumed their share of the deadline.
func isTransient(err error) bool {
	return errors.Is(err, domain.ErrConnection) || errors.Is(err, domain.ErrRateLimited)
}

// fetchWithRetry runs fn up to attempts times with exponential backoff on
// transient errors, honoring context cancellation between attempts.
func fetchWithRetry(ctx context.Context, attempts int, fn func(context.Context) (string, error)) (string, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	delay := retryBaseDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		html, err := fn(ctx)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !isTransient(err) || attempt == attempts {
			break
		}

		select {
		case <-time.After(delay):
			delay *= 2
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}
