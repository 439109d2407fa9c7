package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/drevmart/drevmart-backend/pkg/errors"
)

func newTestStore(t *testing.T) *FixtureStore {
	t.Helper()
	store, err := NewFixtureStore(0)
	if err != nil {
		t.Fatalf("NewFixtureStore: %v", err)
	}
	return store
}

func TestFixtureStoreGetProduct(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	product, err := store.GetProduct(ctx, 3)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if product.Title != "Ламинированное ДСП Эггер" {
		t.Fatalf("title = %q", product.Title)
	}

	_, err = store.GetProduct(ctx, 999)
	if err == nil {
		t.Fatal("expected not found error")
	}
	coded := errors.As(err)
	if coded == nil || coded.Code() != errors.CodeNotFound {
		t.Fatalf("error = %v, want coded not-found", err)
	}
}

func TestFixtureStoreHighlights(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("new arrivals", func(t *testing.T) {
		arrivals, err := store.NewArrivals(ctx, 0)
		if err != nil {
			t.Fatalf("NewArrivals: %v", err)
		}
		if len(arrivals) != DefaultHighlightLimit {
			t.Fatalf("len = %d, want %d", len(arrivals), DefaultHighlightLimit)
		}
		for _, product := range arrivals {
			if !product.IsNew {
				t.Fatalf("product %d is not new", product.ID)
			}
		}
	})

	t.Run("discounted ordered by discount", func(t *testing.T) {
		discounted, err := store.Discounted(ctx, 10)
		if err != nil {
			t.Fatalf("Discounted: %v", err)
		}
		if len(discounted) != 6 {
			t.Fatalf("len = %d, want 6", len(discounted))
		}
		for i := 1; i < len(discounted); i++ {
			if discounted[i-1].Discount < discounted[i].Discount {
				t.Fatalf("discounts out of order at %d", i)
			}
		}
	})

	t.Run("random picks respect the limit", func(t *testing.T) {
		random, err := store.RandomProducts(ctx, 3)
		if err != nil {
			t.Fatalf("RandomProducts: %v", err)
		}
		if len(random) != 3 {
			t.Fatalf("len = %d, want 3", len(random))
		}
		seen := map[int]bool{}
		for _, product := range random {
			if seen[product.ID] {
				t.Fatalf("product %d returned twice", product.ID)
			}
			seen[product.ID] = true
		}
	})
}

func TestFixtureStoreHonorsCancellation(t *testing.T) {
	store, err := NewFixtureStore(time.Second)
	if err != nil {
		t.Fatalf("NewFixtureStore: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = store.ListProducts(ctx, ListParams{})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("cancellation took %v, latency not interrupted", elapsed)
	}
}
