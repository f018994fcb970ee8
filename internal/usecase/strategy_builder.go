package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/techadvisor/backend/internal/domain"
)

// Search categories used to drive external web search. These are coarser
// than the catalog categories and always resolve to something: ambiguous
// queries default to laptop, the most general of the three.
const (
	SearchCategoryLaptop  = "laptop"
	SearchCategoryDesktop = "desktop"
	SearchCategoryPhone   = "phone"
)

// maxStrategies caps the search fan-out per query.
const maxStrategies = 8

// searchCategoryKeywords are the query phrasings per search category.
// The first entry is the canonical phrase used when composing strategies.
var searchCategoryKeywords = map[string][]string{
	SearchCategoryLaptop:  {"laptop", "notebook", "dizüstü", "gaming laptop", "iş laptopı", "ultrabook"},
	SearchCategoryDesktop: {"masaüstü", "desktop", "gaming pc", "bilgisayar", "pc kasa", "workstation", "hazır sistem"},
	SearchCategoryPhone:   {"telefon", "smartphone", "cep telefonu", "akıllı telefon", "mobile phone"},
}

// searchCategoryOrder fixes the detection order.
var searchCategoryOrder = []string{SearchCategoryLaptop, SearchCategoryDesktop, SearchCategoryPhone}

// desktopPrioritySites are system-integrator domains queried before the
// generic marketplaces for desktop searches, since marketplaces tend to
// return bare components instead of full systems.
var desktopPrioritySites = []string{
	"vatanbilgisayar.com",
	"incehesap.com",
	"itopya.com",
	"sinerjibilgisayar.com",
	"gaming.gen.tr",
	"gamegaraj.com",
}

// Strategy composition regexes
var (
	strategyGPUPattern   = regexp.MustCompile(`(rtx|gtx|radeon)[\s-]?(\d{4}(?:\s*ti|\s*super)?)`)
	strategyCPUPattern   = regexp.MustCompile(`(i[3579]|ryzen\s*[3579])[\s-]?(\d{4,}[fgkxt]*)`)
	strategyBrandPattern = regexp.MustCompile(`\b(asus|msi|hp|acer|lenovo|samsung|apple|xiaomi)\b`)
)

// noiseWords stripped from the query before it is used as a strategy.
var strategyNoiseWords = map[string]bool{
	"fiyat": true, "civarı": true, "yaklaşık": true, "ortalama": true,
	"tl": true, "lira": true,
}

// Hit validation blocklists. Category and listing pages are useless to the
// scraper; only concrete product pages survive.
var (
	hitURLBlocklist = []string{
		"/sr?", "?pi=", "/liste/", "/magaza/", "/kategori", "/category",
		"/c-", "-c-", "/brand/", "/marka/", "/y-s", "pc-toplama", "/tum-urunler",
		"/s/", "/sr/",
	}
	hitTitleBlocklist = []string{
		"fiyatları", "modelleri", "seçenekleri", "çeşitleri", "keşfet",
		"kategorisi", "listesi", "koleksiyonu", "serisi", "oyun keyfi",
		"ürünlerde hediye", "tüm ürünler", "kampanyaları", "ile tanışın",
	}
	hitAccessoryBlocklist = []string{
		"aksesuarı", "aksesuar", "accessory", "kılıf", "çanta", "kablo",
		"şarj", "adaptör", "temizlik", "koruyucu", "stand", "mousepad",
	}

	// Desktop searches: titles that are clearly a lone component or a
	// review rather than a full system.
	desktopComponentOnlyMarkers = []string{
		"işlemci fiyati", "cpu fiyati", "işlemci incelemesi",
		"kutulu işlemci", "tray işlemci", "box işlemci",
		"işlemci özellikleri", "cpu özellikleri", "cpu incelemesi",
		"ekran kartı fiyati", "gpu fiyati", "ekran kartı özellikleri",
		"gddr6x", "nvidia ekran kartı", "geforce rtx", "geforce gtx",
	}
	desktopSystemMarkers = []string{
		"hazır sistem", "gaming pc", "masaüstü bilgisayar", "desktop pc",
		"oyuncu bilgisayar", "gaming bilgisayar", "tam sistem",
	}
	desktopComponentWords = []string{"işlemci", "cpu", "ekran kartı", "gpu"}

	hitProductURLMarkers = []string{"-p-hbcv", "-p-", ".html", "/urun/", "/product/"}
	hitModelNumberRe     = regexp.MustCompile(`\d{4,}[fgkxt]?\b`)
	hitCapacityRe        = regexp.MustCompile(`\b\d{1,3}\s?(gb|tb)\b`)
	hitVariantRe         = regexp.MustCompile(`\b(pro|max|ultra|plus|lite|fe)\b`)
)

// StrategyBuilder turns a query into an ordered list of search strategies
// and a prioritized site list, and validates raw search hits.
type StrategyBuilder struct {
	supportedSites     []string
	enableDebugLogging bool
}

// NewStrategyBuilder creates a strategy builder over the given scrapeable
// site domains.
func NewStrategyBuilder(supportedSites []string, enableDebugLogging bool) *StrategyBuilder {
	return &StrategyBuilder{
		supportedSites:     supportedSites,
		enableDebugLogging: enableDebugLogging,
	}
}

// DetectSearchCategory resolves the search category for a query. Unlike
// catalog category detection this never returns empty: technical tokens
// are used as fallback signals and the final default is laptop.
func DetectSearchCategory(query string) string {
	lower := strings.ToLower(query)

	for _, category := range searchCategoryOrder {
		for _, keyword := range searchCategoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}

	// GPU tokens: gaming hardware, laptop unless the query says desktop.
	if containsAny(lower, []string{"rtx", "gtx", "radeon", "geforce", "nvidia", "amd radeon"}) {
		if containsAny(lower, []string{"masaüstü", "desktop", "kasa", "pc"}) {
			return SearchCategoryDesktop
		}
		return SearchCategoryLaptop
	}

	// CPU tokens
	if containsAny(lower, []string{"intel", "amd", "ryzen", "core i"}) {
		if containsAny(lower, []string{"masaüstü", "desktop", "kasa"}) {
			return SearchCategoryDesktop
		}
		return SearchCategoryLaptop
	}

	// RAM/storage tokens: low RAM plus a phone brand reads as phone.
	if containsAny(lower, []string{"gb ram", "ssd", "hdd", "nvme"}) {
		if strings.Contains(lower, "ram") &&
			containsAny(lower, []string{"2gb", "3gb", "4gb", "6gb", "8gb", "12gb", "16gb"}) &&
			containsAny(lower, []string{"samsung", "apple", "iphone", "xiaomi", "huawei"}) {
			return SearchCategoryPhone
		}
		return SearchCategoryLaptop
	}

	if containsAny(lower, []string{"mp kamera", "mah", "android", "ios", "iphone", "5g", "dual sim", "parmak izi"}) {
		return SearchCategoryPhone
	}
	if containsAny(lower, []string{"iphone", "samsung galaxy", "xiaomi", "huawei", "oppo", "realme", "oneplus"}) {
		return SearchCategoryPhone
	}

	return SearchCategoryLaptop
}

// Build produces the ordered strategy list for a query, most specific
// first, deduplicated and capped at maxStrategies.
func (b *StrategyBuilder) Build(query string) []string {
	category := DetectSearchCategory(query)
	lower := strings.ToLower(query)

	gpu := strategyGPUPattern.FindString(lower)
	cpu := strategyCPUPattern.FindString(lower)
	brand := strategyBrandPattern.FindString(lower)
	component := gpu
	if component == "" {
		component = cpu
	}

	var strategies []string

	// 1. Most specific: brand + component + category phrase
	if brand != "" && component != "" {
		if category == SearchCategoryDesktop {
			strategies = append(strategies,
				brand+" gaming pc "+component,
				brand+" hazır sistem "+component)
		} else {
			strategies = append(strategies,
				brand+" "+searchCategoryKeywords[category][0]+" "+component)
		}
	}

	// 2. Cleaned original query
	if cleaned := cleanStrategyQuery(query); len(cleaned) > 5 {
		strategies = append(strategies, cleaned)
	}

	// 3. Desktop: full-system phrasings around the components
	if category == SearchCategoryDesktop {
		if gpu != "" && cpu != "" {
			strategies = append(strategies,
				"gaming pc "+cpu+" "+gpu,
				"hazır sistem "+cpu+" "+gpu)
		}
		if cpu != "" && !containsAny(lower, []string{"hazır sistem", "gaming pc"}) {
			strategies = append(strategies,
				"hazır sistem "+cpu,
				"gaming pc "+cpu)
		}
		if gpu != "" {
			strategies = append(strategies, "gaming pc "+gpu)
		}
	} else {
		// 4. Component and brand combinations for the other categories
		if gpu != "" {
			strategies = append(strategies, searchCategoryKeywords[category][0]+" "+gpu)
		}
		if cpu != "" {
			strategies = append(strategies, searchCategoryKeywords[category][0]+" "+cpu)
		}
		if brand != "" {
			strategies = append(strategies, brand+" "+searchCategoryKeywords[category][0])
		}
	}

	// 5. Fallback: the raw query
	if len(strategies) == 0 {
		strategies = append(strategies, query)
	}

	// Dedup preserving order, drop trivially short entries, cap fan-out.
	seen := make(map[string]bool, len(strategies))
	unique := make([]string, 0, len(strategies))
	for _, s := range strategies {
		if seen[s] || len(strings.TrimSpace(s)) <= 3 {
			continue
		}
		seen[s] = true
		unique = append(unique, s)
	}
	if len(unique) > maxStrategies {
		unique = unique[:maxStrategies]
	}

	if b.enableDebugLogging {
		log.Printf("[STRATEGY] query=%q category=%s strategies=%v", query, category, unique)
	}

	return unique
}

// PrioritySites returns the scrapeable domains in query order for the
// category. Desktop reorders system-integrator sites to the front.
func (b *StrategyBuilder) PrioritySites(category string) []string {
	if category != SearchCategoryDesktop {
		return append([]string(nil), b.supportedSites...)
	}

	sites := make([]string, 0, len(b.supportedSites))
	inPriority := make(map[string]bool, len(desktopPrioritySites))
	for _, site := range desktopPrioritySites {
		inPriority[site] = true
		sites = append(sites, site)
	}
	for _, site := range b.supportedSites {
		if !inPriority[site] {
			sites = append(sites, site)
		}
	}
	return sites
}

// ValidateHit gates raw search hits before they become fetch tasks.
// It rejects category/listing pages, accessories and cross-category
// contamination, then requires a positive product signal.
func (b *StrategyBuilder) ValidateHit(hit domain.SearchHit, category string) bool {
	title := strings.ToLower(hit.Title)
	url := strings.ToLower(hit.URL)

	if containsAny(url, hitURLBlocklist) {
		return false
	}
	if containsAny(title, hitTitleBlocklist) {
		return false
	}
	if containsAny(title, hitAccessoryBlocklist) {
		return false
	}

	switch category {
	case SearchCategoryDesktop:
		if containsAny(title, []string{"laptop", "notebook", "dizüstü"}) {
			return false
		}
		if containsAny(title, desktopComponentOnlyMarkers) {
			return false
		}
		// A component word without any full-system signal in title or URL
		// is a bare part listing.
		if containsAny(title, desktopComponentWords) && !containsAny(title, desktopSystemMarkers) {
			if !containsAny(url, []string{"hazirsistem", "gaming-pc", "bilgisayar", "sistem"}) {
				return false
			}
		}
	case SearchCategoryLaptop:
		if strings.Contains(title, "ekran kartı") &&
			!strings.Contains(title, "laptop") && !strings.Contains(title, "notebook") {
			return false
		}
		if containsAny(title, []string{"masaüstü", "desktop pc", "kasa", "hazır sistem"}) {
			return false
		}
	}

	if containsAny(url, hitProductURLMarkers) {
		return true
	}
	if hitModelNumberRe.MatchString(title) || hitCapacityRe.MatchString(title) || hitVariantRe.MatchString(title) {
		return true
	}

	return false
}

// cleanStrategyQuery strips budget/noise words so the remaining tokens
// form a usable search phrase.
func cleanStrategyQuery(query string) string {
	var kept []string
	for _, word := range strings.Fields(query) {
		if strategyNoiseWords[strings.ToLower(word)] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
