package catalog

import (
	"testing"

	"github.com/techadvisor/backend/internal/domain"
)

func TestStoreAll(t *testing.T) {
	store := NewStore()

	all := store.All()
	if len(all) == 0 {
		t.Fatal("All() returned no entries")
	}

	seen := make(map[string]bool)
	for _, item := range all {
		if item.ID == "" {
			t.Errorf("entry %q has empty ID", item.Name)
		}
		if seen[item.ID] {
			t.Errorf("duplicate ID %q", item.ID)
		}
		seen[item.ID] = true
		if item.Source != domain.SourceLocalDatabase {
			t.Errorf("entry %q: Source = %q, want %q", item.Name, item.Source, domain.SourceLocalDatabase)
		}
		if item.Price <= 0 {
			t.Errorf("entry %q has non-positive price %d", item.Name, item.Price)
		}
		if item.URL == "" {
			t.Errorf("entry %q has empty URL", item.Name)
		}
	}
}

func TestStoreByCategory(t *testing.T) {
	store := NewStore()

	tests := []struct {
		category string
		wantSome bool
	}{
		{domain.CategoryPhone, true},
		{domain.CategoryLaptop, true},
		{domain.CategoryDesktop, true},
		{"Tablet", false},
	}

	total := 0
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			items := store.ByCategory(tt.category)
			if tt.wantSome && len(items) == 0 {
				t.Fatalf("ByCategory(%q) returned no entries", tt.category)
			}
			if !tt.wantSome && len(items) != 0 {
				t.Fatalf("ByCategory(%q) returned %d entries, want 0", tt.category, len(items))
			}
			for _, item := range items {
				if item.Category != tt.category {
					t.Errorf("entry %q: Category = %q, want %q", item.Name, item.Category, tt.category)
				}
			}
			total += len(items)
		})
	}

	if all := store.All(); total != len(all) {
		t.Errorf("categories sum to %d entries, All() has %d", total, len(all))
	}
}

func TestStoreCoversBudgetBrackets(t *testing.T) {
	store := NewStore()

	// Every category should have offline answers both below and above
	// the mid-range boundary, so budget-filtered queries never come back
	// empty when scraping is down.
	for _, category := range []string{domain.CategoryPhone, domain.CategoryLaptop, domain.CategoryDesktop} {
		var under, over int
		for _, item := range store.ByCategory(category) {
			if item.Price < 30000 {
				under++
			} else {
				over++
			}
		}
		if under == 0 || over == 0 {
			t.Errorf("category %q: %d entries under 30000, %d over, want both > 0", category, under, over)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	store := NewStore()

	first := store.All()
	first[0].Name = "mutated"

	if again := store.All(); again[0].Name == "mutated" {
		t.Error("All() exposes internal storage")
	}
}
