package usecase

import (
	"strings"
	"testing"

	"github.com/techadvisor/backend/internal/domain"
)

var testSites = []string{
	"hepsiburada.com", "trendyol.com", "n11.com", "vatanbilgisayar.com",
	"mediamarkt.com.tr", "amazon.com.tr", "incehesap.com",
	"itopya.com", "gamegaraj.com", "gaming.gen.tr",
}

func TestDetectSearchCategory(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"explicit laptop", "gaming laptop rtx 4060", SearchCategoryLaptop},
		{"explicit desktop", "hazır sistem i5", SearchCategoryDesktop},
		{"explicit phone", "akıllı telefon 256gb", SearchCategoryPhone},
		{"gpu defaults to laptop", "rtx 4070 32gb ram", SearchCategoryLaptop},
		{"gpu with kasa is desktop", "rtx 4070 kasa", SearchCategoryDesktop},
		{"cpu defaults to laptop", "intel i7 önerisi", SearchCategoryLaptop},
		{"phone indicators", "5000 mah 108mp android", SearchCategoryPhone},
		{"phone brand", "iphone 15 128gb", SearchCategoryPhone},
		{"no signal defaults to laptop", "hediye önerisi", SearchCategoryLaptop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSearchCategory(tt.query); got != tt.want {
				t.Errorf("DetectSearchCategory(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	b := NewStrategyBuilder(testSites, false)

	t.Run("most specific strategy first", func(t *testing.T) {
		strategies := b.Build("Asus RTX 4060 laptop 40000 TL")
		if len(strategies) == 0 {
			t.Fatal("Build() returned no strategies")
		}
		if strategies[0] != "asus laptop rtx 4060" {
			t.Errorf("strategies[0] = %q, want %q", strategies[0], "asus laptop rtx 4060")
		}
	})

	t.Run("noise words stripped from cleaned query", func(t *testing.T) {
		strategies := b.Build("40000 TL civarı RTX 4060 laptop")
		for _, s := range strategies {
			if strings.Contains(strings.ToLower(s), "civarı") {
				t.Errorf("strategy %q still contains noise word", s)
			}
		}
	})

	t.Run("desktop uses full-system phrasings", func(t *testing.T) {
		strategies := b.Build("masaüstü rtx 4070")
		var hasSystemPhrase bool
		for _, s := range strategies {
			if strings.Contains(s, "gaming pc") || strings.Contains(s, "hazır sistem") {
				hasSystemPhrase = true
			}
		}
		if !hasSystemPhrase {
			t.Errorf("desktop strategies missing system phrasing: %v", strategies)
		}
	})

	t.Run("deduplicated and capped", func(t *testing.T) {
		strategies := b.Build("asus msi hp masaüstü rtx 4090 i9-14900k gaming")
		if len(strategies) > maxStrategies {
			t.Errorf("len(strategies) = %d, want <= %d", len(strategies), maxStrategies)
		}
		seen := make(map[string]bool)
		for _, s := range strategies {
			if seen[s] {
				t.Errorf("duplicate strategy %q", s)
			}
			seen[s] = true
			if len(strings.TrimSpace(s)) <= 3 {
				t.Errorf("trivially short strategy %q", s)
			}
		}
	})

	t.Run("raw query as fallback", func(t *testing.T) {
		strategies := b.Build("abcd")
		if len(strategies) != 1 || strategies[0] != "abcd" {
			t.Errorf("Build(plain) = %v, want the raw query", strategies)
		}
	})
}

func TestPrioritySites(t *testing.T) {
	b := NewStrategyBuilder(testSites, false)

	t.Run("desktop reorders integrators first", func(t *testing.T) {
		sites := b.PrioritySites(SearchCategoryDesktop)
		if sites[0] != "vatanbilgisayar.com" {
			t.Errorf("sites[0] = %q, want vatanbilgisayar.com", sites[0])
		}
		// All supported sites still present.
		present := make(map[string]bool, len(sites))
		for _, s := range sites {
			present[s] = true
		}
		for _, s := range testSites {
			if !present[s] {
				t.Errorf("supported site %q missing from desktop priority list", s)
			}
		}
	})

	t.Run("non-desktop keeps configured order", func(t *testing.T) {
		sites := b.PrioritySites(SearchCategoryLaptop)
		if len(sites) != len(testSites) {
			t.Fatalf("len(sites) = %d, want %d", len(sites), len(testSites))
		}
		for i, s := range sites {
			if s != testSites[i] {
				t.Errorf("sites[%d] = %q, want %q", i, s, testSites[i])
			}
		}
	})
}

func TestValidateHit(t *testing.T) {
	b := NewStrategyBuilder(testSites, false)

	tests := []struct {
		name     string
		hit      domain.SearchHit
		category string
		want     bool
	}{
		{
			"product url accepted",
			domain.SearchHit{Title: "MSI Katana GF66", URL: "https://www.hepsiburada.com/msi-katana-p-HBCV000"},
			SearchCategoryLaptop,
			true,
		},
		{
			"category page url rejected",
			domain.SearchHit{Title: "Gaming Laptop", URL: "https://www.trendyol.com/sr?q=laptop"},
			SearchCategoryLaptop,
			false,
		},
		{
			"listing title rejected",
			domain.SearchHit{Title: "Laptop fiyatları ve modelleri", URL: "https://example.com/laptop.html"},
			SearchCategoryLaptop,
			false,
		},
		{
			"accessory rejected",
			domain.SearchHit{Title: "Laptop çanta 15.6", URL: "https://example.com/canta.html"},
			SearchCategoryLaptop,
			false,
		},
		{
			"desktop search rejects laptop hit",
			domain.SearchHit{Title: "Asus TUF Gaming laptop", URL: "https://example.com/urun/asus.html"},
			SearchCategoryDesktop,
			false,
		},
		{
			"desktop search rejects bare component",
			domain.SearchHit{Title: "Intel i5-13400F işlemci", URL: "https://example.com/islemci.html"},
			SearchCategoryDesktop,
			false,
		},
		{
			"laptop search rejects desktop hit",
			domain.SearchHit{Title: "Gaming hazır sistem RTX 4060", URL: "https://example.com/urun/sistem"},
			SearchCategoryLaptop,
			false,
		},
		{
			"no product signal rejected",
			domain.SearchHit{Title: "Teknoloji haberleri", URL: "https://example.com/haber"},
			SearchCategoryLaptop,
			false,
		},
		{
			"model number is a product signal",
			domain.SearchHit{Title: "Lenovo Legion 82K200K0TX 16GB", URL: "https://example.com/urun/legion"},
			SearchCategoryLaptop,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ValidateHit(tt.hit, tt.category); got != tt.want {
				t.Errorf("ValidateHit(%q, %s) = %v, want %v", tt.hit.Title, tt.category, got, tt.want)
			}
		})
	}
}
