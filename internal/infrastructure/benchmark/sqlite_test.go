package benchmark

import (
	"context"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestFinalScoreByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertFinalScore(ctx, "Asus ROG Zephyrus G14 (GA402NJ)", 87); err != nil {
		t.Fatalf("UpsertFinalScore: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		score, ok, err := store.FinalScoreByName(ctx, "Asus ROG Zephyrus G14 (GA402NJ)")
		if err != nil {
			t.Fatalf("FinalScoreByName: %v", err)
		}
		if !ok || score != 87 {
			t.Errorf("got (%v, %v), want (87, true)", score, ok)
		}
	})

	t.Run("missing is not an error", func(t *testing.T) {
		score, ok, err := store.FinalScoreByName(ctx, "Unknown Product")
		if err != nil {
			t.Fatalf("FinalScoreByName: %v", err)
		}
		if ok || score != 0 {
			t.Errorf("got (%v, %v), want (0, false)", score, ok)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, ok, err := store.FinalScoreByName(ctx, "   ")
		if err != nil {
			t.Fatalf("FinalScoreByName: %v", err)
		}
		if ok {
			t.Error("blank name should not match")
		}
	})

	t.Run("upsert replaces", func(t *testing.T) {
		if err := store.UpsertFinalScore(ctx, "Asus ROG Zephyrus G14 (GA402NJ)", 91); err != nil {
			t.Fatalf("UpsertFinalScore: %v", err)
		}
		score, ok, _ := store.FinalScoreByName(ctx, "Asus ROG Zephyrus G14 (GA402NJ)")
		if !ok || score != 91 {
			t.Errorf("got (%v, %v), want (91, true)", score, ok)
		}
	})
}

func TestComponentScores(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertCPUScore(ctx, "Intel Core i5-12400F", 19500); err != nil {
		t.Fatalf("UpsertCPUScore: %v", err)
	}
	if err := store.UpsertGPUScore(ctx, "GeForce RTX 4060", 19200); err != nil {
		t.Fatalf("UpsertGPUScore: %v", err)
	}
	if err := store.AddGPUAlias(ctx, "NVIDIA GeForce RTX 4060 Laptop GPU", "GeForce RTX 4060"); err != nil {
		t.Fatalf("AddGPUAlias: %v", err)
	}

	t.Run("cpu direct", func(t *testing.T) {
		score, ok, err := store.CPUScore(ctx, "Intel Core i5-12400F")
		if err != nil {
			t.Fatalf("CPUScore: %v", err)
		}
		if !ok || score != 19500 {
			t.Errorf("got (%v, %v), want (19500, true)", score, ok)
		}
	})

	t.Run("gpu via alias", func(t *testing.T) {
		score, ok, err := store.GPUScore(ctx, "NVIDIA GeForce RTX 4060 Laptop GPU")
		if err != nil {
			t.Fatalf("GPUScore: %v", err)
		}
		if !ok || score != 19200 {
			t.Errorf("got (%v, %v), want (19200, true)", score, ok)
		}
	})

	t.Run("gpu unknown", func(t *testing.T) {
		_, ok, err := store.GPUScore(ctx, "Voodoo 3")
		if err != nil {
			t.Fatalf("GPUScore: %v", err)
		}
		if ok {
			t.Error("unknown model should not match")
		}
	})
}
