package usecase

import (
	"reflect"
	"testing"

	"github.com/techadvisor/backend/internal/domain"
)

func TestParse(t *testing.T) {
	parser := NewQueryParser(false)

	t.Run("empty query yields zero value", func(t *testing.T) {
		pq := parser.Parse("")
		if pq.OriginalQuery != "" || pq.Category != "" || pq.Budget != 0 {
			t.Errorf("Parse(\"\") = %+v, want zero value", pq)
		}
	})

	t.Run("full gaming laptop query", func(t *testing.T) {
		pq := parser.Parse("40000 TL civarı RTX 4060 laptop")

		if pq.Category != domain.CategoryLaptop {
			t.Errorf("Category = %q, want %q", pq.Category, domain.CategoryLaptop)
		}
		if pq.GPUHint != "rtx 4060" {
			t.Errorf("GPUHint = %q, want %q", pq.GPUHint, "rtx 4060")
		}
		if pq.Budget != 40000 {
			t.Errorf("Budget = %d, want 40000", pq.Budget)
		}
	})

	t.Run("brand and cpu hint extraction", func(t *testing.T) {
		pq := parser.Parse("Asus i7 notebook 30 bin TL")

		if pq.Brand != "Asus" {
			t.Errorf("Brand = %q, want Asus", pq.Brand)
		}
		if pq.CPUHint != "i7" {
			t.Errorf("CPUHint = %q, want i7", pq.CPUHint)
		}
		if pq.Budget != 30000 {
			t.Errorf("Budget = %d, want 30000", pq.Budget)
		}
	})
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"phone keyword", "kamerası iyi telefon", domain.CategoryPhone},
		{"laptop keyword", "hafif notebook önerisi", domain.CategoryLaptop},
		{"desktop keyword", "gaming masaüstü", domain.CategoryDesktop},
		{"pc maps to desktop", "oyun için pc", domain.CategoryDesktop},
		{"no category", "kulaklık önerisi", ""},
		// Ambiguous text resolves by check order, phone first.
		{"phone wins over laptop", "telefon veya laptop", domain.CategoryPhone},
		{"laptop wins over desktop", "laptop yoksa masaüstü", domain.CategoryLaptop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectCategory(tt.query); got != tt.want {
				t.Errorf("detectCategory(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"explicit tl suffix", "40000 tl civarı laptop", 40000},
		{"bin shorthand", "30 bin tl laptop", 30000},
		{"k shorthand", "25k laptop", 25000},
		{"bare large number", "bütçem 15000 olan laptop", 15000},
		{"gpu model is not a budget", "rtx 4060 laptop", 0},
		{"cpu model is not a budget", "i5-13400f masaüstü", 0},
		{"ryzen model is not a budget", "ryzen 5 5600x sistem", 0},
		{"budget survives next to gpu model", "40000 tl rtx 4060 laptop", 40000},
		{"below minimum rejected", "500 tl kulaklık", 0},
		{"above maximum rejected", "999999 tl sistem", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBudget(tt.query); got != tt.want {
				t.Errorf("extractBudget(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"camera and battery", "kamerası ve bataryası iyi telefon", []string{"kamera", "batarya"}},
		{"storage via ssd", "1tb ssd laptop", []string{"depolama"}},
		{"none", "ucuz laptop", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFeatures(tt.query); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractFeatures(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestProductFeatures(t *testing.T) {
	c := &domain.Candidate{
		Name: "Asus ROG Zephyrus G14",
		Specs: map[string]string{
			"Ekran":    "14 inç QHD+ 165Hz",
			"Depolama": "1TB SSD",
		},
	}

	found := ProductFeatures(c, []string{"ekran", "depolama", "kamera"})
	want := []string{"ekran", "depolama"}
	if !reflect.DeepEqual(found, want) {
		t.Errorf("ProductFeatures() = %v, want %v", found, want)
	}
}
