package usecase

import (
	"testing"

	"github.com/techadvisor/backend/internal/domain"
)

func TestIsRelevant(t *testing.T) {
	f := NewRelevanceFilter(false)

	tests := []struct {
		name     string
		product  string
		category string
		want     bool
	}{
		{"refurbished rejected", "Yenilenmiş iPhone 13 128 GB", domain.CategoryPhone, false},
		{"second hand rejected", "Lenovo Legion 5 2. el", domain.CategoryLaptop, false},
		{"accessory rejected", "Laptop soğutucu stand RGB", domain.CategoryLaptop, false},
		{"desktop in laptop search rejected", "X Masaüstü Gaming PC", domain.CategoryLaptop, false},
		{"gaming keyword admits laptop", "MSI Katana Gaming 15.6", domain.CategoryLaptop, true},
		{"tech tokens rescue unlabeled laptop", "Acer Aspire 3 15.6 FHD", domain.CategoryLaptop, true},
		{"no laptop signal rejected", "Acer Aspire bilgisayari", domain.CategoryLaptop, false},
		{"laptop in desktop search rejected", "HP Victus Gaming Laptop", domain.CategoryDesktop, false},
		{"desktop accepted", "Itopya APEX Hazır Sistem RTX 4070", domain.CategoryDesktop, true},
		{"tablet in phone search rejected", "Apple iPad Pro 11 inç Tablet", domain.CategoryPhone, false},
		{"galaxy tab passes on phone token", "Samsung Galaxy Tab S9", domain.CategoryPhone, true},
		{"phone accepted", "Samsung Galaxy S23 128 GB", domain.CategoryPhone, true},
		{"short name rejected", "Asus", domain.CategoryPhone, false},
		{"empty name rejected", "", domain.CategoryLaptop, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IsRelevant(tt.product, tt.category); got != tt.want {
				t.Errorf("IsRelevant(%q, %q) = %v, want %v", tt.product, tt.category, got, tt.want)
			}
		})
	}
}

func TestPriceWithinBudget(t *testing.T) {
	f := NewRelevanceFilter(false)

	tests := []struct {
		name   string
		price  int
		budget int
		want   bool
	}{
		// 20% tolerance at or below 20000
		{"small budget lower edge accepted", 12000, 15000, true},
		{"small budget below band rejected", 11999, 15000, false},
		{"small budget upper edge accepted", 18000, 15000, true},
		{"small budget above band rejected", 18001, 15000, false},
		// 15% tolerance above 20000
		{"large budget lower edge accepted", 34000, 40000, true},
		{"large budget below band rejected", 33999, 40000, false},
		{"large budget upper edge accepted", 46000, 40000, true},
		{"large budget above band rejected", 46001, 40000, false},
		// absent information always passes
		{"unknown budget passes", 150000, 0, true},
		{"unknown price passes", 0, 15000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.PriceWithinBudget(tt.price, tt.budget); got != tt.want {
				t.Errorf("PriceWithinBudget(%d, %d) = %v, want %v", tt.price, tt.budget, got, tt.want)
			}
		})
	}
}

func TestMinPrice(t *testing.T) {
	if got := MinPrice(domain.CategoryLaptop); got != 8000 {
		t.Errorf("MinPrice(laptop) = %d, want 8000", got)
	}
	if got := MinPrice(domain.CategoryPhone); got != 2000 {
		t.Errorf("MinPrice(phone) = %d, want 2000", got)
	}
	if got := MinPrice(domain.CategoryDesktop); got != 3000 {
		t.Errorf("MinPrice(desktop) = %d, want 3000", got)
	}
	if got := MinPrice(""); got != 3000 {
		t.Errorf("MinPrice(unknown) = %d, want 3000", got)
	}
}

func TestAccept(t *testing.T) {
	f := NewRelevanceFilter(false)

	t.Run("full gate passes a sound candidate", func(t *testing.T) {
		c := &domain.Candidate{Name: "HP Omen 16 Gaming Laptop RTX 4060", Price: 39000}
		if !f.Accept(c, domain.CategoryLaptop, 40000) {
			t.Error("Accept() = false, want true")
		}
	})

	t.Run("implausibly cheap laptop rejected", func(t *testing.T) {
		c := &domain.Candidate{Name: "Gaming Laptop 15.6 inç", Price: 4500}
		if f.Accept(c, domain.CategoryLaptop, 0) {
			t.Error("Accept() = true, want false for price below laptop floor")
		}
	})

	t.Run("missing price rejected by floor", func(t *testing.T) {
		c := &domain.Candidate{Name: "Gaming Laptop 15.6 inç"}
		if f.Accept(c, domain.CategoryLaptop, 0) {
			t.Error("Accept() = true, want false for unknown price")
		}
	})

	t.Run("price out of budget band rejected", func(t *testing.T) {
		c := &domain.Candidate{Name: "MSI Katana Gaming Laptop", Price: 60000}
		if f.Accept(c, domain.CategoryLaptop, 40000) {
			t.Error("Accept() = true, want false for out-of-band price")
		}
	})
}
