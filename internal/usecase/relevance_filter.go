package usecase

import (
	"log"
	"strings"

	"github.com/techadvisor/backend/internal/domain"
)

// Price tolerance bands around the budget. Percentage tolerance shrinks as
// absolute amounts grow.
const (
	smallBudgetLimit     = 20000
	smallBudgetTolerance = 0.20
	largeBudgetTolerance = 0.15
)

// Category-specific minimum viable prices, independent of any budget.
// Listings below these are implausible and almost always accessories or
// mislabeled parts.
const (
	minPriceDefault = 3000
	minPriceLaptop  = 8000
	minPricePhone   = 2000
)

const minProductNameLength = 8

// refurbishedKeywords mark used/refurbished/display listings.
var refurbishedKeywords = []string{
	"yenilenmiş", "refurbished", "ikinci el", "2. el", "teşhir", "outlet",
}

// irrelevantProductKeywords mark obvious accessory listings.
var irrelevantProductKeywords = []string{
	"soğutucu", "cooling", "cooler", "stand", "mousepad", "mouse pad",
	"kılıf", "çanta", "kablo", "şarj", "adaptör",
	"temizlik", "clean", "koruyucu", "protector", "film",
	"sticker", "çıkartma", "skin",
}

// Category signal vocabularies for cross-contamination checks.
var (
	laptopPositiveSignals  = []string{"laptop", "notebook", "gaming", "taşınabilir", "portable"}
	desktopNegativeSignals = []string{"masaüstü", "desktop", "hazır sistem", "gaming pc", "masa üstü"}
	laptopTechSignals      = []string{"inc", "inç", "15.6", "14", "17.3", "hz", "taşınabilir"}

	desktopPositiveSignals = []string{"masaüstü", "desktop", "hazır sistem", "gaming pc", "oyuncu bilgisayarı"}
	laptopNegativeSignals  = []string{"laptop", "notebook", "dizüstü", "taşınabilir", "portable", " inç", `"`}

	phonePositiveSignals  = []string{"telefon", "phone", "galaxy", "iphone", "xiaomi", "redmi"}
	tabletNegativeSignals = []string{"tablet", "ipad", "tab"}
)

// RelevanceFilter rejects off-category, refurbished and price-implausible
// candidates. All rejections are non-fatal; the filter never errors.
type RelevanceFilter struct {
	enableDebugLogging bool
}

// NewRelevanceFilter creates a new relevance filter
func NewRelevanceFilter(enableDebugLogging bool) *RelevanceFilter {
	return &RelevanceFilter{
		enableDebugLogging: enableDebugLogging,
	}
}

// IsRelevant checks a product name against the target category. This is
// the category half of the gate; price checks are separate so local
// catalog items can skip them.
func (f *RelevanceFilter) IsRelevant(name, targetCategory string) bool {
	if name == "" {
		return false
	}

	lower := strings.ToLower(name)

	// Refurbished and second-hand listings go first.
	for _, keyword := range refurbishedKeywords {
		if strings.Contains(lower, keyword) {
			f.logDecision(name, "refurbished: "+keyword, false)
			return false
		}
	}

	// Obvious accessories.
	for _, keyword := range irrelevantProductKeywords {
		if strings.Contains(lower, keyword) {
			f.logDecision(name, "accessory: "+keyword, false)
			return false
		}
	}

	// Category cross-contamination.
	switch strings.ToLower(targetCategory) {
	case strings.ToLower(domain.CategoryLaptop):
		hasLaptop := containsAny(lower, laptopPositiveSignals)
		hasDesktop := containsAny(lower, desktopNegativeSignals)
		if hasDesktop && !hasLaptop {
			f.logDecision(name, "desktop listing in laptop search", false)
			return false
		}
		if !hasLaptop && !containsAny(lower, laptopTechSignals) {
			f.logDecision(name, "no laptop signal", false)
			return false
		}
	case strings.ToLower(domain.CategoryDesktop):
		hasDesktop := containsAny(lower, desktopPositiveSignals)
		hasLaptop := containsAny(lower, laptopNegativeSignals)
		if hasLaptop && !hasDesktop {
			f.logDecision(name, "laptop listing in desktop search", false)
			return false
		}
	case strings.ToLower(domain.CategoryPhone):
		hasPhone := containsAny(lower, phonePositiveSignals)
		hasTablet := containsAny(lower, tabletNegativeSignals)
		if hasTablet && !hasPhone {
			f.logDecision(name, "tablet listing in phone search", false)
			return false
		}
	}

	// Truncated or garbage titles.
	if len(strings.TrimSpace(name)) < minProductNameLength {
		f.logDecision(name, "name too short", false)
		return false
	}

	f.logDecision(name, "passed", true)
	return true
}

// PriceWithinBudget checks the price against a tolerance band around the
// budget. Unknown price or budget always passes; the band only applies
// when both are known.
func (f *RelevanceFilter) PriceWithinBudget(price int, budget int) bool {
	if budget == 0 || price == 0 {
		return true
	}

	tolerance := largeBudgetTolerance
	if budget <= smallBudgetLimit {
		tolerance = smallBudgetTolerance
	}

	lower := float64(budget) * (1 - tolerance)
	upper := float64(budget) * (1 + tolerance)
	ok := float64(price) >= lower && float64(price) <= upper

	if !ok && f.enableDebugLogging {
		log.Printf("[FILTER] price %d outside band %.0f-%.0f (budget %d)", price, lower, upper, budget)
	}
	return ok
}

// MinPrice returns the category's minimum viable price.
func MinPrice(category string) int {
	switch strings.ToLower(category) {
	case strings.ToLower(domain.CategoryLaptop):
		return minPriceLaptop
	case strings.ToLower(domain.CategoryPhone):
		return minPricePhone
	default:
		return minPriceDefault
	}
}

// Accept runs the full web-candidate gate: category relevance, budget
// band, then the category price floor. First failure wins.
func (f *RelevanceFilter) Accept(c *domain.Candidate, targetCategory string, budget int) bool {
	if !f.IsRelevant(c.Name, targetCategory) {
		return false
	}
	if budget > 0 && !f.PriceWithinBudget(c.Price, budget) {
		return false
	}
	if c.Price == 0 || c.Price < MinPrice(targetCategory) {
		f.logDecision(c.Name, "below minimum viable price", false)
		return false
	}
	return true
}

func (f *RelevanceFilter) logDecision(name, reason string, passed bool) {
	if !f.enableDebugLogging {
		return
	}
	status := "rejected"
	if passed {
		status = "passed"
	}
	if len(name) > 50 {
		name = name[:50]
	}
	log.Printf("[FILTER] %s: %s (%s)", status, name, reason)
}
