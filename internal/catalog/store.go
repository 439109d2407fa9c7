package catalog

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/drevmart/drevmart-backend/pkg/errors"
)

// Store is the catalog read surface. Backed by fixtures in mock mode and by
// the database otherwise.
type Store interface {
	ListProducts(ctx context.Context, params ListParams) (ProductList, error)
	GetProduct(ctx context.Context, id int) (Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListBrands(ctx context.Context) ([]Brand, error)
	NewArrivals(ctx context.Context, limit int) ([]Product, error)
	Discounted(ctx context.Context, limit int) ([]Product, error)
	RandomProducts(ctx context.Context, limit int) ([]Product, error)
}

// DefaultHighlightLimit caps homepage strips (new arrivals, discounts,
// random picks).
const DefaultHighlightLimit = 4

// FixtureStore serves the built-in dataset with a small artificial latency so
// the storefront's loading states stay honest.
type FixtureStore struct {
	products   []Product
	categories []Category
	brands     []Brand
	latency    time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFixtureStore validates and loads the fixture dataset.
func NewFixtureStore(latency time.Duration) (*FixtureStore, error) {
	products := FixtureProducts()
	categories := FixtureCategories()
	brands := FixtureBrands()
	if err := ValidateFixtures(products, categories, brands); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "fixture dataset is inconsistent")
	}
	return &FixtureStore{
		products:   products,
		categories: categories,
		brands:     brands,
		latency:    latency,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// wait simulates upstream latency but honors cancellation.
func (s *FixtureStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *FixtureStore) ListProducts(ctx context.Context, params ListParams) (ProductList, error) {
	if err := s.wait(ctx); err != nil {
		return ProductList{}, err
	}
	return ListPage(s.products, params), nil
}

func (s *FixtureStore) GetProduct(ctx context.Context, id int) (Product, error) {
	if err := s.wait(ctx); err != nil {
		return Product{}, err
	}
	for _, product := range s.products {
		if product.ID == id {
			return product, nil
		}
	}
	return Product{}, errors.New(errors.CodeNotFound, "Товар не найден")
}

func (s *FixtureStore) ListCategories(ctx context.Context) ([]Category, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *FixtureStore) ListBrands(ctx context.Context) ([]Brand, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]Brand, len(s.brands))
	copy(out, s.brands)
	return out, nil
}

func (s *FixtureStore) NewArrivals(ctx context.Context, limit int) ([]Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	picked := FilterProducts(s.products, ListParams{IsNew: true})
	return truncate(picked, normalizeLimit(limit)), nil
}

func (s *FixtureStore) Discounted(ctx context.Context, limit int) ([]Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	picked := FilterProducts(s.products, ListParams{Discounted: true, Sort: SortDiscount})
	return truncate(picked, normalizeLimit(limit)), nil
}

func (s *FixtureStore) RandomProducts(ctx context.Context, limit int) ([]Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	shuffled := make([]Product, len(s.products))
	copy(shuffled, s.products)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	return truncate(shuffled, normalizeLimit(limit)), nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultHighlightLimit
	}
	return limit
}

func truncate(products []Product, limit int) []Product {
	if len(products) > limit {
		return products[:limit]
	}
	return products
}
