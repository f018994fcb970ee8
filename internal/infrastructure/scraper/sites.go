package scraper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/techadvisor/backend/internal/domain"
)

// builtinAdapters returns the supported shop adapters. Order matters: it
// is the default site priority for laptop and phone searches.
func builtinAdapters() []*SiteAdapter {
	return []*SiteAdapter{
		hepsiburadaAdapter(),
		trendyolAdapter(),
		vatanAdapter(),
		incehesapAdapter(),
		amazonAdapter(),
		mediamarktAdapter(),
		n11Adapter(),
		itopyaAdapter(),
		gamingGenAdapter(),
		gamegarajAdapter(),
	}
}

// collectTableSpecs reads th/td (or td/td) pairs from every row the
// selector matches into the specs map, keeping the first value per key.
func collectTableSpecs(specs map[string]string, doc *goquery.Document, rowSelector, keySelector, valSelector string) {
	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		key := strings.TrimSpace(row.Find(keySelector).First().Text())
		val := strings.TrimSpace(row.Find(valSelector).First().Text())
		if key != "" && val != "" {
			if _, dup := specs[key]; !dup {
				specs[key] = val
			}
		}
	})
}

// =========================
// Hepsiburada
// =========================

func hepsiburadaAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain: "hepsiburada.com",
		WaitForAny: []string{
			`h1[data-test-id="title"]`, `h1[itemprop="name"]`, `[data-test-id="price-current-price"]`,
		},
		PreCapture: chromedp.Tasks{
			scrollSoft(3, 500*time.Millisecond),
			clickFirst(
				`#specifications button`,
				`a[data-test-id="product-tech-specs"]`,
				`a[href="#productTechSpecContainer"]`,
			),
			scrollSoft(2, 400*time.Millisecond),
		},
		Parse: parseHepsiburada,
	}
}

func parseHepsiburada(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc, `h1[data-test-id="title"]`, `h1[itemprop="name"]`)
	price := parsePrice(findText(doc, `span[data-test-id="price-current-price"]`, `[data-test-id="price-current-price"]`))
	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	brand := guessBrand(name, nil, url)
	if brand == "" {
		brand = metaContent(doc, `meta[itemprop="brand"]`)
	}

	specs := make(map[string]string)
	collectTableSpecs(specs, doc, `div#specifications tr, #productTechSpecContainer tr`, `th, .spec-key, th > a`, `td, .spec-value, td > a`)
	if len(specs) == 0 {
		// Summary table on pages without the full spec tab.
		doc.Find(`#techSpecs div`).Each(func(_ int, row *goquery.Selection) {
			key := strings.TrimSpace(row.Find(`.OXP5AzPvafgN_i3y6wGp`).First().Text())
			val := strings.TrimSpace(row.Find(`.AxM3TmSghcDRH1F871Vh`).First().Text())
			if key != "" && val != "" {
				specs[key] = val
			}
		})
	}

	return &domain.RawProduct{
		Name: name, Brand: brand, Price: price, Specs: specs,
		Source: "hepsiburada", URL: url,
	}, nil
}

// =========================
// Trendyol
// =========================

func trendyolAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain: "trendyol.com",
		WaitForAny: []string{
			`h1[data-testid="product-title"]`, `h1.pr-new-br`, `.price-container .discounted`,
		},
		Parse: parseTrendyol,
	}
}

func parseTrendyol(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc, `h1[data-testid="product-title"]`, `h1.pr-new-br`)
	if name == "" {
		name = metaContent(doc, `meta[property="og:title"]`)
	}

	priceText := findText(doc, `.price-container .discounted`, `span.prc-dsc`, `span.price__current`, `span.pr-bx-w`)
	if priceText == "" {
		priceText = metaContent(doc, `meta[itemprop="price"]`)
	}
	if priceText == "" {
		priceText = metaContent(doc, `meta[property="product:price:amount"]`)
	}
	price := parsePrice(priceText)
	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	brand := findText(doc, `h1[data-testid="product-title"] a`, `h1.pr-new-br a`, `h1.pr-new-br strong`)
	if brand == "" {
		brand = guessBrand(name, nil, url)
	}
	if brand == "" {
		brand = metaContent(doc, `meta[itemprop="brand"]`)
	}

	specs := make(map[string]string)
	doc.Find(`div.attributes .attribute-item, ul.detail-attr-container li.detail-attr-item`).Each(func(_ int, item *goquery.Selection) {
		spans := item.Find("span")
		if spans.Length() >= 2 {
			key := strings.TrimSpace(spans.Eq(0).Text())
			val := strings.TrimSpace(spans.Eq(1).Text())
			if key != "" && val != "" {
				specs[key] = val
			}
		}
	})
	if len(specs) == 0 {
		for _, product := range jsonLDProducts(doc) {
			for _, ap := range product.AdditionalProperty {
				val := ap.Value
				if val == "" {
					val = ap.UnitText
				}
				if ap.Name != "" && val != "" {
					specs[strings.TrimSpace(ap.Name)] = strings.TrimSpace(val)
				}
			}
		}
	}

	return &domain.RawProduct{
		Name: name, Brand: brand, Price: price, Specs: specs,
		Source: "trendyol", URL: url,
	}, nil
}

// =========================
// Vatan Bilgisayar
// =========================

func vatanAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain: "vatanbilgisayar.com",
		WaitForAny: []string{
			`h1.product-detail__title`, `h1.product-list__product-name`, `.product-list__price`,
		},
		Parse: parseVatan,
	}
}

func parseVatan(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc, `h1.product-detail__title`, `h1.product-list__product-name`, `h1#product-name`)
	if name == "" {
		name = metaContent(doc, `meta[property="og:title"]`)
	}
	// Titles carry SEO suffixes like "... fiyatı ve özellikleri".
	if name != "" {
		name = strings.TrimSpace(strings.Split(strings.Split(name, "fiyatı")[0], " özellikleri")[0])
	}

	priceText := findText(doc, `span.product-list__price`, `.product-detail__price`, `span#offering-price`)
	if priceText == "" {
		priceText = metaContent(doc, `meta[itemprop="price"]`)
	}
	if priceText == "" {
		priceText = metaContent(doc, `meta[property="product:price:amount"]`)
	}
	price := parsePrice(priceText)

	brand := guessBrand(name, nil, url)
	for _, product := range jsonLDProducts(doc) {
		if name == "" {
			name = strings.TrimSpace(product.Name)
		}
		if price == 0 {
			price = offerPrice(product.Offers)
		}
		if brand == "" {
			brand = brandName(product.Brand)
		}
	}

	if name == "" || price == 0 || name == "Ürün Yorumları" {
		return nil, domain.ErrParse
	}

	specs := make(map[string]string)
	doc.Find(`div.row.highlights div.highlights-box`).Each(func(_ int, box *goquery.Selection) {
		key := strings.TrimSpace(box.Find("span").First().Text())
		val := strings.TrimSpace(box.Find("h3").First().Text())
		if key != "" && val != "" {
			specs[key] = val
		}
	})
	doc.Find(`div.product-feature tr`).Each(func(_ int, row *goquery.Selection) {
		tds := row.Find("td")
		if tds.Length() == 2 {
			key := strings.TrimSpace(tds.Eq(0).Text())
			val := strings.TrimSpace(tds.Eq(1).Text())
			if key != "" && val != "" {
				specs[key] = val
			}
		}
	})

	return &domain.RawProduct{
		Name: name, Brand: brand, Price: price, Specs: specs,
		Source: "vatan", URL: url,
	}, nil
}

// =========================
// İncehesap
// =========================

func incehesapAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain: "incehesap.com",
		WaitForAny: []string{
			"h1", ".product-name", ".newPrice > ins", ".price", ".price-new", ".newPrice", `span[itemprop='price']`,
		},
		PreCapture: chromedp.Tasks{
			clickByText("Kabul Et"),
			clickByText("Tüm Özellikler"),
			scrollSoft(2, 300*time.Millisecond),
		},
		Parse: parseIncehesap,
	}
}

func parseIncehesap(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc, "h1", ".product-name", "h1.text-2xl", "h1.font-bold")
	price := parsePrice(findText(doc, ".newPrice > ins", ".newPrice", ".price-new", ".price", `span[itemprop='price']`, "ins"))
	if price == 0 {
		for _, product := range jsonLDProducts(doc) {
			if price = offerPrice(product.Offers); price > 0 {
				break
			}
		}
	}
	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	brand := guessBrand(name, nil, url)
	if brand == "" {
		brand = metaContent(doc, `meta[itemprop="brand"]`)
	}

	specs := make(map[string]string)
	doc.Find(`div.prose.prose-neutral table tr, table tr`).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() >= 2 {
			key := strings.TrimSpace(cells.Eq(0).Text())
			val := strings.TrimSpace(cells.Eq(1).Text())
			if key != "" && val != "" {
				specs[key] = val
			}
		}
	})
	dts := doc.Find("dl dt")
	dds := doc.Find("dl dd")
	if dts.Length() > 0 && dts.Length() == dds.Length() {
		dts.Each(func(i int, dt *goquery.Selection) {
			key := strings.TrimSpace(dt.Text())
			val := strings.TrimSpace(dds.Eq(i).Text())
			if key != "" && val != "" {
				specs[key] = val
			}
		})
	}
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		if key, val, ok := strings.Cut(strings.TrimSpace(li.Text()), ":"); ok {
			key, val = strings.TrimSpace(key), strings.TrimSpace(val)
			if key != "" && val != "" {
				specs[key] = val
			}
		}
	})

	return &domain.RawProduct{
		Name: name, Brand: brand, Price: price, Specs: specs,
		Source: "incehesap", URL: url,
	}, nil
}

// =========================
// Amazon.com.tr
// =========================

func amazonAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain:     "amazon.com.tr",
		WaitForAny: []string{"#productTitle", "#centerCol", "div#corePrice_feature_div"},
		Parse:      parseAmazon,
	}
}

func parseAmazon(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc, "#productTitle")
	price := parsePrice(findText(doc, "#corePrice_feature_div .a-price-whole", ".a-price .a-offscreen"))
	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	brand := guessBrand(name, nil, url)
	if brand == "" {
		brand = findText(doc, "#bylineInfo")
	}

	specs := make(map[string]string)
	collectTableSpecs(specs, doc, `#productDetails_techSpec_section_1 tr, #technicalSpecifications_section tr`, "th", "td")

	return &domain.RawProduct{
		Name: name, Brand: brand, Price: price, Specs: specs,
		Source: "amazon.com.tr", URL: url,
	}, nil
}

// =========================
// MediaMarkt
// =========================

func mediamarktAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain: "mediamarkt.com.tr",
		WaitForAny: []string{
			`h1[data-test="product-title"]`, `span[data-test="branded-price-whole-value"]`,
		},
		PreCapture: chromedp.Tasks{
			clickFirst(
				`button#onetrust-accept-btn-handler`,
				`button[data-test="cookie-accept-all"]`,
				`button[id*="cookie"]`,
				`button[class*="cookie"]`,
			),
			scrollSoft(2, 400*time.Millisecond),
			clickFirst(
				`button[aria-controls*="features"]`,
				`button#features`,
				`button[data-test="show-all-product-features"]`,
			),
			clickByText("Teknik özellikler"),
			scrollSoft(2, 400*time.Millisecond),
		},
		Parse: parseMediamarkt,
	}
}

func parseMediamarkt(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc, `h1[data-test="product-title"]`, "h1")
	price := parsePrice(findText(doc, `span[data-test="branded-price-whole-value"]`))
	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	brand := findText(doc, `a[data-test="manufacturer-link"]`)
	if brand == "" {
		brand, _ = doc.Find(`a[data-test="manufacturer-link"] img, img.manufacturer-logo`).First().Attr("alt")
	}
	if brand == "" {
		brand = guessBrand(name, nil, url)
	}

	specs := make(map[string]string)
	doc.Find(`div[data-test='mms-pdp-details-mainfeatures'] button`).Each(func(_ int, button *goquery.Selection) {
		spans := button.Find("span")
		if spans.Length() >= 2 {
			key := strings.TrimSpace(spans.Eq(0).Text())
			val := strings.TrimSpace(spans.Eq(1).Text())
			if key != "" && val != "" {
				specs[key] = val
			}
		}
	})
	collectTableSpecs(specs, doc, `div[id='features-content'] table tr`, "td, th", "td:nth-child(2), th:nth-child(2)")

	return &domain.RawProduct{
		Name: name, Brand: brand, Price: price, Specs: specs,
		Source: "mediamarkt", URL: url,
	}, nil
}

// =========================
// N11
// =========================

// n11KeyRunPattern splits an unstructured spec line into a letters-only
// key followed by its value.
var n11KeyRunPattern = regexp.MustCompile(`^([a-zA-ZğüşıöçĞÜŞİÖÇ\s()/]+)(.+)$`)

func n11Adapter() *SiteAdapter {
	return &SiteAdapter{
		Domain:     "n11.com",
		WaitForAny: []string{`h1.proName`, `div.newPrice ins`},
		PreCapture: chromedp.Tasks{
			clickFirst("#cookieAccept"),
			scrollSoft(2, 500*time.Millisecond),
			clickFirst("p.unf-prop-more"),
			scrollSoft(2, 400*time.Millisecond),
		},
		Parse: parseN11,
	}
}

func parseN11(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc, "h1.proName")
	price := parsePrice(findText(doc, "div.newPrice ins", "div.priceContainer ins", "div.priceDetail ins"))
	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	specs := make(map[string]string)
	doc.Find(`div.unf-prop-context ul.unf-prop-list li.unf-prop-list-item`).Each(func(_ int, item *goquery.Selection) {
		var texts []string
		item.Find("p, strong, span").Each(func(_ int, child *goquery.Selection) {
			if txt := strings.TrimSpace(child.Text()); txt != "" {
				texts = append(texts, txt)
			}
		})
		if len(texts) >= 2 {
			specs[texts[0]] = texts[1]
			return
		}
		if m := n11KeyRunPattern.FindStringSubmatch(strings.TrimSpace(item.Text())); m != nil {
			key, val := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if key != "" && val != "" {
				specs[key] = val
			}
		}
	})
	if len(specs) == 0 {
		doc.Find(`div#unf-prop table tr, div.product-properties table tr`).Each(func(_ int, row *goquery.Selection) {
			tds := row.Find("td")
			if tds.Length() == 2 {
				key := strings.TrimSpace(tds.Eq(0).Text())
				val := strings.TrimSpace(tds.Eq(1).Text())
				if key != "" && val != "" {
					specs[key] = val
				}
			}
		})
	}

	return &domain.RawProduct{
		Name: name, Brand: guessBrand(name, nil, url), Price: price, Specs: specs,
		Source: "n11", URL: url,
	}, nil
}

// =========================
// İtopya
// =========================

func itopyaAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain:     "itopya.com",
		WaitForAny: []string{".product-name-title", ".price", ".newPrice > ins", "h1"},
		PreCapture: chromedp.Tasks{
			clickFirst("#CybotCookiebotDialogBodyLevelButtonLevelOptinAllowAll"),
			scrollSoft(2, 500*time.Millisecond),
		},
		Parse: parseItopya,
	}
}

func parseItopya(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	fullName := findText(doc, ".product-name-title", "h1")

	// İtopya packs the build's components into the title after " / ".
	name := fullName
	specs := make(map[string]string)
	if parts := strings.Split(fullName, " / "); len(parts) > 1 {
		name = strings.TrimSpace(parts[0])
		for _, part := range parts[1:] {
			if key, val, ok := strings.Cut(part, ":"); ok {
				specs[strings.TrimSpace(key)] = strings.TrimSpace(val)
			} else {
				specs[fmt.Sprintf("Özellik %d", len(specs)+1)] = strings.TrimSpace(part)
			}
		}
	}

	price := parsePrice(findText(doc, ".price", ".newPrice > ins", ".product-new-price", ".newPrice ins", "span.fyatsyt"))
	brand := guessBrand(name, nil, url)

	for _, product := range jsonLDProducts(doc) {
		if name == "" {
			name = strings.TrimSpace(product.Name)
		}
		if price == 0 {
			price = offerPrice(product.Offers)
		}
		if brand == "" {
			brand = brandName(product.Brand)
		}
	}

	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	return &domain.RawProduct{
		Name: name, Brand: brand, Price: price, Specs: specs,
		Source: "itopya", URL: url,
	}, nil
}

// =========================
// Gaming.gen.tr
// =========================

func gamingGenAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain:     "gaming.gen.tr",
		WaitForAny: []string{"h1.product_title.entry-title", ".price", "body"},
		PreCapture: chromedp.Tasks{
			clickFirst(`button[id*='cookie']`, ".cookie-accept"),
			scrollSoft(4, 700*time.Millisecond),
			clickFirst(`a[href*='#tab-additional_information']`, "li.additional_information_tab a"),
			scrollSoft(2, 500*time.Millisecond),
		},
		Parse: parseGamingGen,
	}
}

func parseGamingGen(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc, "h1.product_title.entry-title", ".product_title", "h1")

	// Discounted price first, then the regular one.
	price := parsePrice(findText(doc, "p.price > ins .woocommerce-Price-amount"))
	if price == 0 {
		price = parsePrice(findText(doc, "p.price .woocommerce-Price-amount"))
	}
	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	specs := make(map[string]string)
	collectTableSpecs(specs, doc,
		`table.woocommerce-product-attributes tr, table.shop_attributes tr`,
		"th.woocommerce-product-attributes-item__label",
		"td.woocommerce-product-attributes-item__value",
	)

	return &domain.RawProduct{
		Name: name, Brand: guessBrand(name, specs, url), Price: price, Specs: specs,
		Source: "gaming.gen.tr", URL: url,
	}, nil
}

// =========================
// Gamegaraj
// =========================

// gamegarajHardwareTokens signal that a free-text fragment describes a
// component rather than navigation chrome.
var gamegarajHardwareTokens = []string{"amd", "intel", "rtx", "gtx", "gb", "tb", "ssd", "hdd"}

func gamegarajAdapter() *SiteAdapter {
	return &SiteAdapter{
		Domain:     "gamegaraj.com",
		WaitForAny: []string{"h1", "body", ".price", ".product-title", ".container", "main", "#app"},
		PreCapture: chromedp.Tasks{
			clickFirst(
				"#CybotCookiebotDialogBodyLevelButtonLevelOptinAllowAll",
				`button[id*='cookie']`,
				`button[class*='cookie']`,
				`button[data-test='accept-cookies']`,
				".cookie-accept",
				".accept-all",
			),
			clickByText("Kabul", "Accept"),
			scrollSoft(3, 500*time.Millisecond),
		},
		Parse: parseGamegaraj,
	}
}

func parseGamegaraj(doc *goquery.Document, url string) (*domain.RawProduct, error) {
	name := findText(doc,
		"h2.mt-1.text-2xl.font-semibold.text-gray-900",
		`h2[class*='mt-1'][class*='text-2xl'][class*='font-semibold']`,
		"h2.mt-1", "h2", "h1",
	)
	price := parsePrice(findText(doc,
		"p.text-3xl.font-extrabold.text-gray-900",
		`p[class*='text-3xl'][class*='font-extrabold'][class*='text-gray-900']`,
		"p.text-3xl.font-extrabold", "p.text-3xl", `p[id='openInstallment']`, `p[class*='text-3xl']`,
	))
	if name == "" || price == 0 {
		return nil, domain.ErrParse
	}

	specs := gamegarajSpecs(doc)

	return &domain.RawProduct{
		Name: name, Brand: guessBrand(name, specs, url), Price: price, Specs: specs,
		Source: "gamegaraj", URL: url,
	}, nil
}

func gamegarajSpecs(doc *goquery.Document) map[string]string {
	specs := make(map[string]string)

	listSelectors := []string{
		"ul.my-4.space-y-1",
		`ul[class*='my-4'][class*='space-y-1']`,
		"ul.my-4",
		".space-y-1",
		"ul",
	}
	for _, selector := range listSelectors {
		doc.Find(selector).First().Find("li").Each(func(_ int, li *goquery.Selection) {
			txt := strings.TrimSpace(li.Text())
			if key, val, ok := strings.Cut(txt, ":"); ok {
				key, val = strings.TrimSpace(key), strings.TrimSpace(val)
				if key != "" && val != "" {
					specs[key] = val
				}
			} else if txt != "" {
				specs[fmt.Sprintf("Özellik %d", len(specs)+1)] = txt
			}
		})
		if len(specs) > 0 {
			return specs
		}
	}

	// Icon-grid layout fallback.
	doc.Find(`div[class*='flex'][class*='items-center']`).Each(func(_ int, container *goquery.Selection) {
		container.Find("span, p, div").Each(func(_ int, el *goquery.Selection) {
			txt := strings.TrimSpace(el.Text())
			if len(txt) <= 5 {
				return
			}
			lower := strings.ToLower(txt)
			for _, token := range gamegarajHardwareTokens {
				if strings.Contains(lower, token) {
					specs[fmt.Sprintf("Özellik %d", len(specs)+1)] = txt
					return
				}
			}
		})
	})
	return specs
}
