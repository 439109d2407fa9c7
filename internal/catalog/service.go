package catalog

import (
	"context"

	"github.com/drevmart/drevmart-backend/pkg/logger"
)

// MaxPageSize keeps a single listing request from dragging the whole catalog.
const MaxPageSize = 100

// Service fronts the catalog store for the HTTP layer.
type Service struct {
	store Store
	logg  *logger.Logger
}

func NewService(store Store, logg *logger.Logger) *Service {
	return &Service{store: store, logg: logg}
}

// ListProducts serves a filtered page. Unknown sort values fall back to the
// dataset order rather than erroring.
func (s *Service) ListProducts(ctx context.Context, params ListParams) (ProductList, error) {
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}
	switch params.Sort {
	case "", SortPriceAsc, SortPriceDesc, SortNewest, SortDiscount:
	default:
		s.logg.Warn(s.logg.WithField(ctx, "sort", params.Sort), "unknown sort value, ignoring")
		params.Sort = ""
	}

	list, err := s.store.ListProducts(ctx, params)
	if err != nil {
		return ProductList{}, err
	}
	s.logg.Debug(s.logg.WithFields(ctx, map[string]any{
		"returned": len(list.Data),
		"total":    list.Meta.Total,
	}), "products listed")
	return list, nil
}

func (s *Service) GetProduct(ctx context.Context, id int) (Product, error) {
	return s.store.GetProduct(s.logg.WithProductID(ctx, id), id)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *Service) ListBrands(ctx context.Context) ([]Brand, error) {
	return s.store.ListBrands(ctx)
}

func (s *Service) NewArrivals(ctx context.Context, limit int) ([]Product, error) {
	return s.store.NewArrivals(ctx, limit)
}

func (s *Service) Discounted(ctx context.Context, limit int) ([]Product, error) {
	return s.store.Discounted(ctx, limit)
}

func (s *Service) RandomProducts(ctx context.Context, limit int) ([]Product, error) {
	return s.store.RandomProducts(ctx, limit)
}
