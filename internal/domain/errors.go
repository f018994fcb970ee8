package domain

import "errors"

var (
	// ErrInvalidQuery is returned for malformed caller input (empty query,
	// out-of-range result count). It is the only error the pipeline
	// propagates to its caller.
	ErrInvalidQuery = errors.New("invalid query parameters")

	// ErrBlocked marks a 403-style bot defense. Not retried.
	ErrBlocked = errors.New("request blocked by site")

	// ErrRateLimited marks a 429 from a site or provider. Retried with backoff.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrFetchTimeout marks a page load that exceeded its deadline.
	ErrFetchTimeout = errors.New("page fetch timed out")

	// ErrConnection marks a network-level failure. Retried with backoff.
	ErrConnection = errors.New("connection failed")

	// ErrParse marks an adapter that loaded the page but could not extract
	// the required fields. Not retried; the task is treated as no-result.
	ErrParse = errors.New("failed to extract product fields")

	// ErrUnsupportedSite is returned when no adapter matches a URL.
	ErrUnsupportedSite = errors.New("no adapter for site")

	// ErrCacheMiss is returned when a key is absent or expired.
	ErrCacheMiss = errors.New("cache miss")

	// ErrSearchUnavailable is returned when the web-search provider cannot
	// serve a request (auth failure, quota, unreachable).
	ErrSearchUnavailable = errors.New("web search unavailable")
)
