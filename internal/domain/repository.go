package domain

import "context"

// ResultStore caches ranked candidate lists keyed by "query-category".
// Keys are used verbatim: case or whitespace variants of the same semantic
// query are distinct entries.
type ResultStore interface {
	Get(ctx context.Context, key string) ([]Candidate, error)
	Set(ctx context.Context, key string, items []Candidate) error
}

// SearchProvider is the external web-search boundary. Implementations must
// tolerate rate limiting and auth failures by returning an error the caller
// can downgrade to an empty result; they never panic the pipeline.
type SearchProvider interface {
	Search(ctx context.Context, query string, count int, site string) ([]SearchHit, error)
}

// PageFetcher renders a product page and returns its markup. Errors are
// classified (ErrBlocked, ErrRateLimited, ErrFetchTimeout, ErrConnection)
// so the retry wrapper can back off only where useful.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ScrapeOrchestrator executes fetch tasks under bounded concurrency and a
// hard overall deadline, returning whatever parsed in time. Per-task
// failures are absorbed: a result slice shorter than the task list is the
// normal outcome, not an error.
type ScrapeOrchestrator interface {
	Run(ctx context.Context, tasks []FetchTask) []RawProduct
}

// CatalogProvider exposes the static local product catalog, read-only.
type CatalogProvider interface {
	All() []Candidate
	ByCategory(category string) []Candidate
}

// BenchmarkStore looks up a precomputed price/performance score by product
// name. A missing score is not an error: ok is false and score is zero.
type BenchmarkStore interface {
	FinalScoreByName(ctx context.Context, name string) (score float64, ok bool, err error)
}
