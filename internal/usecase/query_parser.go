package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/techadvisor/backend/internal/domain"
)

// QueryParser turns free-text product queries into structured intent.
// Parsing never fails: absent signals simply leave fields empty.
type QueryParser struct {
	enableDebugLogging bool
}

// Compiled regex patterns for intent extraction
var (
	gpuHintPattern = regexp.MustCompile(`\b(rtx|gtx)\s*(\d{4})\b`)
	cpuHintPattern = regexp.MustCompile(`\b(i[3579]|ryzen\s*[3579])\b`)

	// Hardware model tokens that look like budgets but are not
	// (RTX 4060, RX 6600, i5-13400F, Ryzen 5 5600X). These must be
	// scrubbed before the budget patterns run.
	hardwareModelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(rtx|gtx)\s*[34567][0-9]{2,3}[a-z]*\b`),
		regexp.MustCompile(`\b(rx|radeon)\s*[3456789][0-9]{2,3}[a-z]*\b`),
		regexp.MustCompile(`\bi[3579][\s-]?[0-9]{4,5}[a-z]*\b`),
		regexp.MustCompile(`\bryzen\s*[3579][\s-]?[0-9]{4}[a-z]*\b`),
	}

	// Budget patterns, tried most-explicit first. Patterns whose index is
	// in budgetThousandsPattern carry an implicit x1000 multiplier.
	budgetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:bin|k)\s*(?:tl|lira)`),
		regexp.MustCompile(`(\d+)\s*(?:bin|k)(?:\s|$)`),
		regexp.MustCompile(`(\d{4,})\s*(?:tl|lira)`),
		regexp.MustCompile(`(\d+)\.\d{3}\s*(?:tl|lira)`),
		regexp.MustCompile(`\b(\d{4,})\b`),
	}
	budgetThousandsPattern = map[int]bool{0: true, 1: true}
)

// Budget sanity bounds in TL. Numbers outside this band are treated as
// model numbers or noise, never as a budget.
const (
	minBudget = 1000
	maxBudget = 200000
)

// knownBrands recognized in queries, checked in order.
var knownBrands = []string{
	"Apple", "Samsung", "Xiaomi", "Asus", "Acer", "Lenovo", "MSI", "HP", "Dell",
	"Razer", "Google", "Huawei", "Casper", "OnePlus", "Honor", "Realme", "Oppo",
	"Vivo", "Nokia", "Nothing", "Monster", "Gigabyte", "Microsoft",
}

// Category vocabularies, checked in fixed priority order: phone, laptop,
// desktop. First match wins; ambiguous queries resolve by this order.
var (
	phoneKeywords   = []string{"telefon", "phone", "smartphone", "cep"}
	laptopKeywords  = []string{"laptop", "notebook", "dizüstü"}
	desktopKeywords = []string{"masaüstü", "pc", "desktop"}
)

// featureSynonyms maps a feature tag to the query tokens that request it.
var featureSynonyms = map[string][]string{
	"kamera":   {"kamera", "camera", "mp", "megapiksel", "megapixel"},
	"ekran":    {"ekran", "screen", "display", "amoled", "oled", "ips", "hz", "inç", "inch"},
	"batarya":  {"batarya", "pil", "battery", "mah"},
	"depolama": {"depolama", "disk", "ssd", "hdd", "gb", "tb"},
	"ram":      {"ram", "bellek"},
	"işlemci":  {"işlemci", "cpu", "processor", "chip"},
	"gpu":      {"gpu", "ekran kartı", "graphic card"},
}

// featureOrder keeps feature extraction deterministic.
var featureOrder = []string{"kamera", "ekran", "batarya", "depolama", "ram", "işlemci", "gpu"}

// NewQueryParser creates a new query parser
func NewQueryParser(enableDebugLogging bool) *QueryParser {
	return &QueryParser{
		enableDebugLogging: enableDebugLogging,
	}
}

// Parse extracts category, brand, component hints, budget and feature tags
// from a free-text query. The zero ParsedQuery is returned for empty input.
func (p *QueryParser) Parse(query string) domain.ParsedQuery {
	if strings.TrimSpace(query) == "" {
		return domain.ParsedQuery{}
	}

	lower := strings.ToLower(query)

	pq := domain.ParsedQuery{
		OriginalQuery: query,
		Category:      detectCategory(lower),
		Brand:         guessBrand(lower),
		GPUHint:       gpuHintPattern.FindString(lower),
		CPUHint:       cpuHintPattern.FindString(lower),
		Budget:        extractBudget(lower),
		Features:      ExtractFeatures(lower),
	}

	if p.enableDebugLogging {
		log.Printf("[PARSE] %q -> category=%q brand=%q gpu=%q cpu=%q budget=%d features=%v",
			query, pq.Category, pq.Brand, pq.GPUHint, pq.CPUHint, pq.Budget, pq.Features)
	}

	return pq
}

// detectCategory maps query text to one of the three product categories.
// Checked in priority order phone -> laptop -> desktop; first match wins.
func detectCategory(lower string) string {
	if containsAny(lower, phoneKeywords) {
		return domain.CategoryPhone
	}
	if containsAny(lower, laptopKeywords) {
		return domain.CategoryLaptop
	}
	if containsAny(lower, desktopKeywords) {
		return domain.CategoryDesktop
	}
	return ""
}

// guessBrand returns the first known brand mentioned in the text.
func guessBrand(lower string) string {
	for _, brand := range knownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return ""
}

// extractBudget pulls a plausible budget out of the query. Hardware model
// numbers are scrubbed first so "RTX 4060" never reads as 4060 TL.
func extractBudget(lower string) int {
	scrubbed := lower
	for _, pattern := range hardwareModelPatterns {
		scrubbed = pattern.ReplaceAllString(scrubbed, "")
	}

	for i, pattern := range budgetPatterns {
		m := pattern.FindStringSubmatch(scrubbed)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if budgetThousandsPattern[i] {
			value *= 1000
		}
		if value >= minBudget && value <= maxBudget {
			return value
		}
	}

	return 0
}

// ExtractFeatures returns the feature tags requested by the query text,
// resolved through the synonym table.
func ExtractFeatures(text string) []string {
	lower := strings.ToLower(text)
	var features []string
	for _, key := range featureOrder {
		if containsAny(lower, featureSynonyms[key]) {
			features = append(features, key)
		}
	}
	return features
}

// ProductFeatures reports which of the requested feature tags a candidate's
// specs actually cover.
func ProductFeatures(c *domain.Candidate, requested []string) []string {
	var parts []string
	for k, v := range c.Specs {
		parts = append(parts, k, v)
	}
	specsText := strings.ToLower(strings.Join(parts, " "))

	var found []string
	for _, key := range requested {
		if containsAny(specsText, featureSynonyms[key]) {
			found = append(found, key)
		}
	}
	return found
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
