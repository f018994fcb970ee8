package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techadvisor/backend/internal/domain"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"thousands with decimals", "37.999,50 TL", 37999.50},
		{"lira sign", "₺1.234", 1234},
		{"plain integer", "42999", 42999},
		{"embedded in text", "Fiyat: 12.499 TL (KDV dahil)", 12499},
		{"too small to be a price", "5", 0},
		{"empty", "", 0},
		{"no digits", "Sepette indirimli", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePrice(tt.text))
		})
	}
}

func TestGuessBrand(t *testing.T) {
	tests := []struct {
		name  string
		title string
		specs map[string]string
		url   string
		want  string
	}{
		{"specs marka wins", "MSI Katana", map[string]string{"Marka": "Lenovo"}, "", "Lenovo"},
		{"title match", "MSI Cyborg 15 RTX 4060", nil, "", "MSI"},
		{"case insensitive", "asus tuf gaming", nil, "", "Asus"},
		{"itopya url fallback", "Hazır Sistem Kanks", nil, "https://www.itopya.com/urun", "ITOPYA"},
		{"gaming url fallback", "Vortex Sistem", nil, "https://www.gaming.gen.tr/urun/1", "GAMING"},
		{"gamegaraj url fallback", "Gravix 5A Sistem", nil, "https://www.gamegaraj.com/gravix", "GAMEGARAGE"},
		{"unknown", "Bilinmeyen Ürün", nil, "https://example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guessBrand(tt.title, tt.specs, tt.url))
		})
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	domains := registry.Domains()
	require.Len(t, domains, 10)
	assert.Equal(t, "hepsiburada.com", domains[0])

	adapter, err := registry.Lookup("https://www.vatanbilgisayar.com/asus-rog.html")
	require.NoError(t, err)
	assert.Equal(t, "vatanbilgisayar.com", adapter.Domain)

	_, err = registry.Lookup("https://www.example.com/product/1")
	assert.ErrorIs(t, err, domain.ErrUnsupportedSite)
}

func TestParseHepsiburada(t *testing.T) {
	html := `<html><body>
		<h1 data-test-id="title">MSI Cyborg 15 A13VF-892XTR RTX 4060 Gaming Laptop</h1>
		<span data-test-id="price-current-price">42.999 TL</span>
		<div id="specifications"><table>
			<tr><th>Ekran Kartı</th><td>RTX 4060</td></tr>
			<tr><th>RAM</th><td>16 GB</td></tr>
		</table></div>
	</body></html>`

	raw, err := parseHepsiburada(docFromHTML(t, html), "https://www.hepsiburada.com/msi-cyborg-p-HBCV1")
	require.NoError(t, err)
	assert.Equal(t, "MSI Cyborg 15 A13VF-892XTR RTX 4060 Gaming Laptop", raw.Name)
	assert.Equal(t, "MSI", raw.Brand)
	assert.Equal(t, float64(42999), raw.Price)
	assert.Equal(t, "RTX 4060", raw.Specs["Ekran Kartı"])
	assert.Equal(t, "16 GB", raw.Specs["RAM"])
	assert.Equal(t, "hepsiburada", raw.Source)
}

func TestParseHepsiburada_MissingPrice(t *testing.T) {
	html := `<html><body><h1 data-test-id="title">MSI Cyborg 15</h1></body></html>`

	_, err := parseHepsiburada(docFromHTML(t, html), "https://www.hepsiburada.com/x-p-1")
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParseVatan_JSONLDFallback(t *testing.T) {
	html := `<html><body>
		<h1 class="product-detail__title">ASUS ROG Zephyrus G14 fiyatı ve özellikleri</h1>
		<script type="application/ld+json">
			{"@type":"Product","name":"ASUS ROG Zephyrus G14","brand":{"name":"Asus"},"offers":{"price":"37999"}}
		</script>
	</body></html>`

	raw, err := parseVatan(docFromHTML(t, html), "https://www.vatanbilgisayar.com/zephyrus.html")
	require.NoError(t, err)
	assert.Equal(t, "ASUS ROG Zephyrus G14", raw.Name) // SEO suffix stripped
	assert.Equal(t, float64(37999), raw.Price)
	assert.Equal(t, "Asus", raw.Brand)
}

func TestParseItopya_TitleCarriesSpecs(t *testing.T) {
	html := `<html><body>
		<h1 class="product-name-title">Kanks Hazır Sistem / İşlemci: Intel Core i5-14600K / Ekran Kartı: RTX 5060 8GB</h1>
		<span class="price">65.999 TL</span>
	</body></html>`

	raw, err := parseItopya(docFromHTML(t, html), "https://www.itopya.com/kanks_h30618")
	require.NoError(t, err)
	assert.Equal(t, "Kanks Hazır Sistem", raw.Name)
	assert.Equal(t, float64(65999), raw.Price)
	assert.Equal(t, "Intel Core i5-14600K", raw.Specs["İşlemci"])
	assert.Equal(t, "RTX 5060 8GB", raw.Specs["Ekran Kartı"])
	assert.Equal(t, "ITOPYA", raw.Brand)
}

func TestParseGamingGen(t *testing.T) {
	html := `<html><body>
		<h1 class="product_title entry-title">Vortex 5060Ti Intel i5-14400F Oyuncu Bilgisayarı</h1>
		<p class="price"><ins><span class="woocommerce-Price-amount">77.749 TL</span></ins></p>
		<table class="woocommerce-product-attributes shop_attributes">
			<tr>
				<th class="woocommerce-product-attributes-item__label">İşlemci</th>
				<td class="woocommerce-product-attributes-item__value">Intel i5-14400F</td>
			</tr>
		</table>
	</body></html>`

	raw, err := parseGamingGen(docFromHTML(t, html), "https://www.gaming.gen.tr/urun/718896/vortex/")
	require.NoError(t, err)
	assert.Equal(t, "Vortex 5060Ti Intel i5-14400F Oyuncu Bilgisayarı", raw.Name)
	assert.Equal(t, float64(77749), raw.Price)
	assert.Equal(t, "Intel i5-14400F", raw.Specs["İşlemci"])
	assert.Equal(t, "Intel", raw.Brand)
}

func TestParseTrendyol_JSONLDSpecs(t *testing.T) {
	html := `<html><body>
		<h1 data-testid="product-title"><a>Apple</a> iPhone 15 128GB</h1>
		<span class="prc-dsc">42.499 TL</span>
		<script type="application/ld+json">
			{"@type":"Product","additionalProperty":[{"name":"Ekran Boyutu","value":"6.1 inç"}]}
		</script>
	</body></html>`

	raw, err := parseTrendyol(docFromHTML(t, html), "https://www.trendyol.com/apple/iphone-15-p-1")
	require.NoError(t, err)
	assert.Equal(t, float64(42499), raw.Price)
	assert.Equal(t, "Apple", raw.Brand)
	assert.Equal(t, "6.1 inç", raw.Specs["Ekran Boyutu"])
}
