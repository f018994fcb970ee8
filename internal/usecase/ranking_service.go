package usecase

import (
	"context"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/techadvisor/backend/internal/domain"
)

// Scoring weights. Raw scores accumulate unbounded, then get clamped to
// scoreCeiling and rescaled to 0-100.
const (
	exactMatchBonus   = 100.0
	nameWordBonus     = 25.0
	specWordBonus     = 10.0
	laptopFitBonus    = 40.0
	desktopDamping    = 0.3
	componentBonus    = 40.0
	brandMatchBonus   = 20.0
	underBudgetBonus  = 30.0
	nearBudgetBonus   = 15.0
	specRichnessBonus = 15.0
	minPenaltyFactor  = 0.1
	benchmarkBonusCap = 20.0

	scoreCeiling = 250.0
)

// rankBudgetPattern extracts a budget from the query for the price
// adjustment. Deliberately simpler than the query parser's extraction: a
// number glued to a thousands marker.
var rankBudgetPattern = regexp.MustCompile(`(\d+)(?:000|k|bin)`)

// Signal vocabularies for ranking.
var (
	rankLaptopIndicators  = []string{"laptop", "notebook", "gaming", "taşınabilir", "inc", "inç"}
	rankDesktopIndicators = []string{"masaüstü", "desktop", "hazır sistem", "gaming pc"}
	rankComponentTerms    = []string{"rtx", "gtx", "radeon", "intel", "amd", "nvidia", "4060", "4070", "3060", "3070"}
	rankCommonBrands      = []string{"msi", "asus", "hp", "acer", "lenovo", "dell", "apple", "samsung", "casper"}
)

// RankingService scores candidates against the original query text using
// weighted signal matching and sorts them. An optional benchmark store
// folds a precomputed price/performance score into the result.
type RankingService struct {
	benchmarks         domain.BenchmarkStore
	enableDebugLogging bool
}

// NewRankingService creates a ranking service. benchmarks may be nil.
func NewRankingService(benchmarks domain.BenchmarkStore, enableDebugLogging bool) *RankingService {
	return &RankingService{
		benchmarks:         benchmarks,
		enableDebugLogging: enableDebugLogging,
	}
}

// Score computes the 0-100 relevance of one candidate for the query.
func (s *RankingService) Score(ctx context.Context, c *domain.Candidate, query string) float64 {
	if c == nil || strings.TrimSpace(query) == "" {
		return 0
	}

	score := 0.0
	queryLower := strings.ToLower(strings.TrimSpace(query))
	nameLower := strings.ToLower(c.Name)
	specsText := specsAsText(c.Specs)

	// Full query contained in the product name.
	if strings.Contains(nameLower, queryLower) {
		score += exactMatchBonus
	}

	// Significant query words in name and specs.
	for word := range querySignificantWords(queryLower) {
		if strings.Contains(nameLower, word) {
			score += nameWordBonus
		}
		if strings.Contains(specsText, word) {
			score += specWordBonus
		}
	}

	// Category fit for laptop queries. Desktop contamination damps the
	// whole accumulated score multiplicatively, exactly once, before any
	// budget adjustment.
	if detectCategory(queryLower) == domain.CategoryLaptop {
		hasLaptop := containsAny(nameLower, rankLaptopIndicators)
		hasDesktop := containsAny(nameLower, rankDesktopIndicators)
		if hasDesktop && !hasLaptop {
			score *= desktopDamping
		} else if hasLaptop {
			score += laptopFitBonus
		}
	}

	// Component tokens appearing on both sides.
	for _, term := range rankComponentTerms {
		if strings.Contains(queryLower, term) && strings.Contains(nameLower, term) {
			score += componentBonus
		}
	}

	// Brand appearing on both sides.
	for _, brand := range rankCommonBrands {
		if strings.Contains(queryLower, brand) && strings.Contains(nameLower, brand) {
			score += brandMatchBonus
		}
	}

	// Budget adjustment, only when both a price and a budget exist.
	if c.Price > 0 {
		if budget := rankBudget(queryLower); budget > 0 {
			price := float64(c.Price)
			diff := math.Abs(price-budget) / budget
			switch {
			case price > budget*1.05:
				factor := math.Max(minPenaltyFactor, 1-diff*1.5)
				score *= factor
				if s.enableDebugLogging {
					log.Printf("[RANK] budget penalty %.2f for %q (price %d, budget %.0f)", factor, c.Name, c.Price, budget)
				}
			case price <= budget:
				score += underBudgetBonus
			case diff < 0.10:
				score += nearBudgetBonus
			}
		}
	}

	// Spec richness.
	if len(c.Specs) > 5 {
		score += specRichnessBonus
	}

	// Price/performance enrichment from the benchmark store.
	score += s.benchmarkBonus(ctx, c.Name)

	// Clamp and rescale to 0-100, two decimals.
	normalized := math.Min(score, scoreCeiling) / scoreCeiling * 100
	return math.Round(normalized*100) / 100
}

// Rank scores every candidate and sorts them descending. The sort is
// stable: ties keep their merge order.
func (s *RankingService) Rank(ctx context.Context, candidates []domain.Candidate, query string) []domain.Candidate {
	for i := range candidates {
		candidates[i].Score = s.Score(ctx, &candidates[i], query)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// benchmarkBonus looks up the candidate's precomputed price/performance
// score. Absence is not an error; lookup failures only cost the bonus.
func (s *RankingService) benchmarkBonus(ctx context.Context, name string) float64 {
	if s.benchmarks == nil {
		return 0
	}
	final, ok, err := s.benchmarks.FinalScoreByName(ctx, name)
	if err != nil || !ok {
		return 0
	}
	bonus := final * 0.1
	if bonus > benchmarkBonusCap {
		bonus = benchmarkBonusCap
	}
	if bonus < 0 {
		bonus = 0
	}
	return bonus
}

// rankBudget pulls a thousands-marked budget from the query text.
func rankBudget(queryLower string) float64 {
	m := rankBudgetPattern.FindStringSubmatch(queryLower)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return float64(n) * 1000
}

// querySignificantWords returns the unique query words longer than two
// characters.
func querySignificantWords(queryLower string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(queryLower) {
		if len([]rune(w)) > 2 {
			words[w] = struct{}{}
		}
	}
	return words
}

// specsAsText flattens spec values into one lowercase string.
func specsAsText(specs map[string]string) string {
	if len(specs) == 0 {
		return ""
	}
	values := make([]string, 0, len(specs))
	for _, v := range specs {
		values = append(values, v)
	}
	return strings.ToLower(strings.Join(values, " "))
}
