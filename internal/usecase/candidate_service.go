package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/techadvisor/backend/internal/domain"
)

// contentBlocklist holds domains that show up in search results but never
// carry a purchasable product page (comparison and news sites).
var contentBlocklist = []string{"epey.com", "versus.com", "donanimhaber.com"}

// hepsiburadaProductPattern isolates the canonical product id segment.
// Hepsiburada result URLs often carry store and campaign suffixes after
// the "-p-<id>" segment that break the product page render.
var hepsiburadaProductPattern = regexp.MustCompile(`-p-[A-Za-z0-9]+`)

// CandidateServiceConfig holds tuning knobs for the aggregation pipeline.
type CandidateServiceConfig struct {
	// MaxFetchTasks bounds how many product pages one query may scrape.
	MaxFetchTasks int
	// HitsPerSearch is the result count requested per strategy/site pair.
	HitsPerSearch int
	EnableDebugLogging bool
}

// CandidateService runs the full aggregation pipeline: parse the query,
// search the web per strategy and site, scrape the hits, filter, merge
// with the local catalog, rank and cache.
type CandidateService struct {
	parser     *QueryParser
	strategies *StrategyBuilder
	filter     *RelevanceFilter
	ranker     *RankingService

	search  domain.SearchProvider
	scraper domain.ScrapeOrchestrator
	catalog domain.CatalogProvider
	cache   domain.ResultStore

	maxFetchTasks      int
	hitsPerSearch      int
	enableDebugLogging bool
}

// NewCandidateService creates the pipeline service with its dependencies.
// search and scraper may be nil, which degrades the pipeline to
// catalog-only results.
func NewCandidateService(
	parser *QueryParser,
	strategies *StrategyBuilder,
	filter *RelevanceFilter,
	ranker *RankingService,
	search domain.SearchProvider,
	scraper domain.ScrapeOrchestrator,
	catalog domain.CatalogProvider,
	cache domain.ResultStore,
	cfg CandidateServiceConfig,
) *CandidateService {
	maxFetchTasks := cfg.MaxFetchTasks
	if maxFetchTasks <= 0 {
		maxFetchTasks = 15
	}
	hitsPerSearch := cfg.HitsPerSearch
	if hitsPerSearch <= 0 {
		hitsPerSearch = 5
	}

	return &CandidateService{
		parser:             parser,
		strategies:         strategies,
		filter:             filter,
		ranker:             ranker,
		search:             search,
		scraper:            scraper,
		catalog:            catalog,
		cache:              cache,
		maxFetchTasks:      maxFetchTasks,
		hitsPerSearch:      hitsPerSearch,
		enableDebugLogging: cfg.EnableDebugLogging,
	}
}

// GatherCandidates returns the ranked candidate list for a query.
// Flow: check cache -> search -> scrape -> filter -> merge with catalog ->
// rank -> cache -> return top limit. Web-side failures degrade to
// catalog-only results instead of failing the request.
func (s *CandidateService) GatherCandidates(ctx context.Context, query string, limit int) ([]domain.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}

	parsed := s.parser.Parse(query)
	cacheKey := fmt.Sprintf("%s-%s", query, parsed.Category)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if s.enableDebugLogging {
			log.Printf("[PIPELINE] cache hit for %q (%d candidates)", cacheKey, len(cached))
		}
		return topCandidates(cached, limit), nil
	}

	webCandidates := s.gatherFromWeb(ctx, query, parsed)
	localCandidates := s.gatherFromCatalog(parsed)

	merged := mergeCandidates(webCandidates, localCandidates)
	ranked := s.ranker.Rank(ctx, merged, query)

	if err := s.cache.Set(ctx, cacheKey, ranked); err != nil {
		log.Printf("[PIPELINE] cache store failed for %q: %v", cacheKey, err)
	}

	return topCandidates(ranked, limit), nil
}

// gatherFromWeb runs search and scrape and returns the filtered web-side
// candidates. Any failure along the way returns what was collected so far.
func (s *CandidateService) gatherFromWeb(ctx context.Context, query string, parsed domain.ParsedQuery) []domain.Candidate {
	if s.search == nil || s.scraper == nil {
		return nil
	}

	searchCategory := DetectSearchCategory(query)
	hits := s.collectHits(ctx, query, searchCategory)
	if len(hits) == 0 {
		return nil
	}

	tasks := s.buildFetchTasks(hits, parsed)
	raw := s.scraper.Run(ctx, tasks)

	var accepted []domain.Candidate
	for i := range raw {
		if !raw[i].Valid() {
			continue
		}
		c := domain.FromRawProduct(&raw[i], parsed.Category)
		if !s.filter.Accept(&c, parsed.Category, parsed.Budget) {
			continue
		}
		accepted = append(accepted, c)
	}

	if s.enableDebugLogging {
		log.Printf("[PIPELINE] web: %d hits -> %d tasks -> %d scraped -> %d accepted",
			len(hits), len(tasks), len(raw), len(accepted))
	}
	return accepted
}

// collectHits walks strategy x priority-site pairs until enough validated
// hits accumulate. Search errors are logged and skipped so one rate-limited
// or failing call never kills the whole pipeline.
func (s *CandidateService) collectHits(ctx context.Context, query, searchCategory string) []domain.SearchHit {
	strategies := s.strategies.Build(query)
	sites := s.strategies.PrioritySites(searchCategory)

	seen := make(map[string]bool)
	var hits []domain.SearchHit

	for i, strategy := range strategies {
		for _, site := range sites {
			if len(hits) >= s.maxFetchTasks {
				return hits
			}

			found, err := s.search.Search(ctx, strategy, s.hitsPerSearch, site)
			if err != nil {
				log.Printf("[PIPELINE] search failed for %q on %s: %v", strategy, site, err)
				continue
			}

			for _, hit := range found {
				if seen[hit.URL] {
					continue
				}
				seen[hit.URL] = true

				hit.Strategy = i
				hit.Site = site
				if !s.strategies.ValidateHit(hit, searchCategory) {
					continue
				}
				hits = append(hits, hit)
				if len(hits) >= s.maxFetchTasks {
					return hits
				}
			}
		}
	}
	return hits
}

// buildFetchTasks converts validated hits into scrape tasks, dropping
// blocklisted content domains and normalizing known-problematic URLs.
func (s *CandidateService) buildFetchTasks(hits []domain.SearchHit, parsed domain.ParsedQuery) []domain.FetchTask {
	tasks := make([]domain.FetchTask, 0, len(hits))
	for _, hit := range hits {
		if len(tasks) >= s.maxFetchTasks {
			break
		}
		if containsAny(hit.URL, contentBlocklist) {
			continue
		}
		tasks = append(tasks, domain.FetchTask{
			URL:      cleanProductURL(hit.URL),
			Category: parsed.Category,
			Query:    parsed.OriginalQuery,
		})
	}
	return tasks
}

// gatherFromCatalog pulls the local catalog subset for the parsed category.
// Only relevance filtering applies here: catalog prices are trusted, the
// budget band is the ranker's job.
func (s *CandidateService) gatherFromCatalog(parsed domain.ParsedQuery) []domain.Candidate {
	if s.catalog == nil {
		return nil
	}

	var pool []domain.Candidate
	if parsed.Category != "" {
		pool = s.catalog.ByCategory(parsed.Category)
	} else {
		pool = s.catalog.All()
	}

	var out []domain.Candidate
	for _, c := range pool {
		if parsed.Category != "" && !s.filter.IsRelevant(c.Name, parsed.Category) {
			continue
		}
		c.Source = domain.SourceLocalDatabase
		out = append(out, c)
	}
	return out
}

// mergeCandidates concatenates web results ahead of catalog results and
// drops duplicates by identity key. Web entries win ties because their
// price and URL are fresher than the static catalog's.
func mergeCandidates(web, local []domain.Candidate) []domain.Candidate {
	seen := make(map[string]bool, len(web)+len(local))
	merged := make([]domain.Candidate, 0, len(web)+len(local))

	for _, group := range [][]domain.Candidate{web, local} {
		for _, c := range group {
			key := c.DedupKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, c)
		}
	}
	return merged
}

// Recommendation knobs. The budget headroom lets a slightly over-budget
// product still compete when it fits the request better.
const (
	recommendLimit       = 3
	budgetHeadroomFactor = 1.25
	featureCoverageBonus = 10.0
)

// Recommend returns up to three catalog products fitted to the query's
// category, budget and requested features. This path never touches the
// web: it serves instant advice from the curated catalog.
func (s *CandidateService) Recommend(ctx context.Context, query string) ([]domain.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}
	if s.catalog == nil {
		return nil, nil
	}

	parsed := s.parser.Parse(query)

	var pool []domain.Candidate
	if parsed.Category != "" {
		pool = s.catalog.ByCategory(parsed.Category)
	} else {
		pool = s.catalog.All()
	}

	var fitted []domain.Candidate
	for _, c := range pool {
		if parsed.Budget > 0 && float64(c.Price) > float64(parsed.Budget)*budgetHeadroomFactor {
			continue
		}
		c.Source = domain.SourceLocalDatabase
		c.Score = s.ranker.Score(ctx, &c, query)
		c.Score += featureCoverageBonus * float64(len(ProductFeatures(&c, parsed.Features)))
		fitted = append(fitted, c)
	}

	sort.SliceStable(fitted, func(i, j int) bool {
		return fitted[i].Score > fitted[j].Score
	})
	return topCandidates(fitted, recommendLimit), nil
}

// cleanProductURL normalizes Hepsiburada product URLs down to the
// "-p-<id>" segment, stripping store and campaign suffixes.
func cleanProductURL(url string) string {
	if !strings.Contains(url, "hepsiburada.com") {
		return url
	}
	if m := hepsiburadaProductPattern.FindStringIndex(url); m != nil {
		return url[:m[1]]
	}
	return url
}

// topCandidates returns the first limit entries, or everything when limit
// is not positive.
func topCandidates(items []domain.Candidate, limit int) []domain.Candidate {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
