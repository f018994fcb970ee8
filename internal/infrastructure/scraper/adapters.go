package scraper

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/techadvisor/backend/internal/domain"
)

// commonBrands recognized in product titles, checked in order.
var commonBrands = []string{
	"MSI", "Apple", "Samsung", "Xiaomi", "Asus", "Acer", "Lenovo", "HP", "Dell", "Huawei",
	"Gigabyte", "Monster", "AMD", "Intel", "CASPER", "ASUS ROG", "ASRock", "Inno3D", "Palit",
	"Zotac", "Sapphire", "PowerColor", "XFX", "PNY", "NVIDIA", "AIGO", "Corsair", "Kingston",
	"Crucial", "WD", "Seagate", "GAMING", "GAMEGARAGE", "INCEHESAP",
}

// SiteAdapter binds one supported shop to its render hints and parser.
// WaitForAny lists selectors of which at least one must become visible
// before the page is considered loaded. PreCapture runs before that wait
// to dismiss popups and expand spec sections.
type SiteAdapter struct {
	Domain     string
	WaitForAny []string
	PreCapture chromedp.Action
	Parse      func(doc *goquery.Document, url string) (*domain.RawProduct, error)
}

// Registry holds the supported site adapters in priority order.
type Registry struct {
	adapters []*SiteAdapter
}

// NewRegistry creates the registry with every built-in site adapter.
func NewRegistry() *Registry {
	return &Registry{adapters: builtinAdapters()}
}

// Lookup finds the adapter whose domain appears in the URL.
func (r *Registry) Lookup(url string) (*SiteAdapter, error) {
	for _, a := range r.adapters {
		if strings.Contains(url, a.Domain) {
			return a, nil
		}
	}
	return nil, domain.ErrUnsupportedSite
}

// Domains returns the supported shop domains in registry order.
func (r *Registry) Domains() []string {
	domains := make([]string, len(r.adapters))
	for i, a := range r.adapters {
		domains[i] = a.Domain
	}
	return domains
}

// Price parsing for Turkish formats ("37.999,50 TL", "₺1.234").
var (
	priceStripPattern    = regexp.MustCompile(`[.TL₺\s]`)
	priceFallbackPattern = regexp.MustCompile(`\d{1,3}(?:[.\s]\d{3})*(?:,\d{2})?`)
)

// parsePrice converts Turkish-formatted price text to a float. Values of
// 10 and below are rejected as parse artifacts. Returns 0 when no price
// can be read.
func parsePrice(text string) float64 {
	if text == "" {
		return 0
	}

	cleaned := priceStripPattern.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSuffix(cleaned, ".")
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
		if v > 10 {
			return v
		}
		return 0
	}

	// Mixed text like "Fiyat: 37.999,50 TL (KDV dahil)". Pull the first
	// thousands-grouped number instead.
	m := priceFallbackPattern.FindString(text)
	if m == "" {
		return 0
	}
	normalized := strings.NewReplacer(".", "", " ", "").Replace(m)
	normalized = strings.ReplaceAll(normalized, ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || v <= 10 {
		return 0
	}
	return v
}

// findText returns the first selector's non-empty trimmed text.
func findText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if txt := strings.TrimSpace(doc.Find(sel).First().Text()); txt != "" {
			return txt
		}
	}
	return ""
}

// metaContent reads a meta tag's content attribute.
func metaContent(doc *goquery.Document, selector string) string {
	val, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(val)
}

// guessBrand resolves the brand from specs, title or URL, in that order.
func guessBrand(title string, specs map[string]string, url string) string {
	if brand := specs["Marka"]; brand != "" {
		return brand
	}
	if title != "" {
		titleLower := strings.ToLower(title)
		for _, b := range commonBrands {
			if strings.Contains(titleLower, strings.ToLower(b)) {
				// İncehesap's house builds carry other brands' parts in
				// the title.
				if strings.Contains(url, "incehesap.com") && strings.Contains(title, "Tavsiye Sistem") {
					return "INCEHESAP"
				}
				return b
			}
		}
	}
	switch {
	case strings.Contains(url, "gaming.gen.tr"):
		return "GAMING"
	case strings.Contains(url, "gamegaraj.com"):
		return "GAMEGARAGE"
	case strings.Contains(url, "itopya.com"):
		return "ITOPYA"
	}
	return ""
}

// jsonLDProduct is the slice of schema.org Product markup we consume.
// Brand and offers vary between object, string and array shapes across
// shops, so they stay raw until accessed.
type jsonLDProduct struct {
	Type               string          `json:"@type"`
	Name               string          `json:"name"`
	Brand              json.RawMessage `json:"brand"`
	Offers             json.RawMessage `json:"offers"`
	AdditionalProperty []struct {
		Name     string `json:"name"`
		Value    string `json:"value"`
		UnitText string `json:"unitText"`
	} `json:"additionalProperty"`
}

// jsonLDProducts extracts every schema.org Product object embedded in the
// page, tolerating both single objects and arrays per script tag.
func jsonLDProducts(doc *goquery.Document) []jsonLDProduct {
	var products []jsonLDProduct
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}

		var single jsonLDProduct
		if err := json.Unmarshal([]byte(raw), &single); err == nil && single.Type == "Product" {
			products = append(products, single)
			return
		}

		var many []jsonLDProduct
		if err := json.Unmarshal([]byte(raw), &many); err == nil {
			for _, p := range many {
				if p.Type == "Product" {
					products = append(products, p)
				}
			}
		}
	})
	return products
}

// brandName unwraps a JSON-LD brand that is either a string or an object.
func brandName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.Name)
	}
	return ""
}

// offerPrice unwraps a JSON-LD offers value that is either one offer or a
// list of offers, with price possibly a string or a number.
func offerPrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	type offer struct {
		Price    json.RawMessage `json:"price"`
		LowPrice json.RawMessage `json:"lowPrice"`
	}

	var single offer
	if err := json.Unmarshal(raw, &single); err == nil {
		if p := rawNumber(single.Price); p > 10 {
			return p
		}
		if p := rawNumber(single.LowPrice); p > 10 {
			return p
		}
	}

	var many []offer
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		if p := rawNumber(many[0].Price); p > 10 {
			return p
		}
		if p := rawNumber(many[0].LowPrice); p > 10 {
			return p
		}
	}
	return 0
}

// rawNumber parses a JSON value that is either a number or a numeric
// string, including Turkish-formatted price strings.
func rawNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parsePrice(s)
	}
	return 0
}
