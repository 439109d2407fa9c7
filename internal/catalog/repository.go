package catalog

import (
	"context"
	stderrors "errors"

	"github.com/drevmart/drevmart-backend/pkg/db"
	"github.com/drevmart/drevmart-backend/pkg/db/models"
	"github.com/drevmart/drevmart-backend/pkg/errors"
	"github.com/drevmart/drevmart-backend/pkg/pagination"
	"gorm.io/gorm"
)

// effectivePriceExpr orders by what the customer pays.
const effectivePriceExpr = "CASE WHEN discount_price > 0 THEN discount_price ELSE price END"

// Repository is the database-backed Store used once the fixture dataset is
// retired.
type Repository struct {
	client *db.Client
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) ListProducts(ctx context.Context, params ListParams) (ProductList, error) {
	page := pagination.NormalizePage(params.Page)
	pageSize := pagination.NormalizePageSize(params.PageSize)

	query := r.applyFilters(r.client.DB().WithContext(ctx).Model(&models.Product{}), params)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ProductList{}, errors.Wrap(errors.CodeInternal, err, "counting products")
	}

	switch params.Sort {
	case SortPriceAsc:
		query = query.Order(effectivePriceExpr + " ASC")
	case SortPriceDesc:
		query = query.Order(effectivePriceExpr + " DESC")
	case SortNewest:
		query = query.Order("id DESC")
	case SortDiscount:
		query = query.Order("discount DESC")
	default:
		query = query.Order("id ASC")
	}

	var rows []models.Product
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return ProductList{}, errors.Wrap(errors.CodeInternal, err, "listing products")
	}

	return ProductList{
		Data: productsFromModels(rows),
		Meta: pagination.NewMeta(page, pageSize, int(total)),
	}, nil
}

func (r *Repository) applyFilters(query *gorm.DB, params ListParams) *gorm.DB {
	if params.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", params.Category)
	}
	if params.Brand != "" {
		query = query.Where("LOWER(brand) = LOWER(?)", params.Brand)
	}
	if params.IsNew {
		query = query.Where("is_new = ?", true)
	}
	if params.Discounted {
		query = query.Where("discount > 0")
	}
	if params.Search != "" {
		term := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(article) LIKE LOWER(?)",
			term, term, term,
		)
	}
	return query
}

func (r *Repository) GetProduct(ctx context.Context, id int) (Product, error) {
	var row models.Product
	err := r.client.DB().WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return Product{}, errors.New(errors.CodeNotFound, "Товар не найден")
		}
		return Product{}, errors.Wrap(errors.CodeInternal, err, "fetching product")
	}
	return productFromModel(row), nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]Category, error) {
	var rows []models.Category
	if err := r.client.DB().WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing categories")
	}
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category{
			ID:           row.ID,
			Name:         row.Name,
			Slug:         row.Slug,
			Description:  row.Description,
			Image:        row.Image,
			ProductCount: row.ProductCount,
		})
	}
	return out, nil
}

func (r *Repository) ListBrands(ctx context.Context) ([]Brand, error) {
	var rows []models.Brand
	if err := r.client.DB().WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing brands")
	}
	out := make([]Brand, 0, len(rows))
	for _, row := range rows {
		out = append(out, Brand{
			ID:          row.ID,
			Name:        row.Name,
			Slug:        row.Slug,
			Description: row.Description,
			Logo:        row.Logo,
			Country:     row.Country,
		})
	}
	return out, nil
}

func (r *Repository) NewArrivals(ctx context.Context, limit int) ([]Product, error) {
	var rows []models.Product
	err := r.client.DB().WithContext(ctx).
		Where("is_new = ?", true).
		Order("id ASC").
		Limit(normalizeLimit(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing new arrivals")
	}
	return productsFromModels(rows), nil
}

func (r *Repository) Discounted(ctx context.Context, limit int) ([]Product, error) {
	var rows []models.Product
	err := r.client.DB().WithContext(ctx).
		Where("discount > 0").
		Order("discount DESC").
		Limit(normalizeLimit(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing discounted products")
	}
	return productsFromModels(rows), nil
}

func (r *Repository) RandomProducts(ctx context.Context, limit int) ([]Product, error) {
	var rows []models.Product
	err := r.client.DB().WithContext(ctx).
		Order("RANDOM()").
		Limit(normalizeLimit(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing random products")
	}
	return productsFromModels(rows), nil
}

func productFromModel(row models.Product) Product {
	images := make([]Image, 0, len(row.Images))
	for _, url := range row.Images {
		images = append(images, Image{URL: url, Alt: row.Title})
	}
	// A NULL stock column means the remainder is unknown, not zero.
	var stock *int
	if row.Stock != nil {
		v := *row.Stock
		stock = &v
	}
	return Product{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		Price:         row.Price,
		Discount:      row.Discount,
		DiscountPrice: row.DiscountPrice,
		Article:       row.Article,
		Composition:   row.Composition,
		Width:         row.Width,
		Density:       row.Density,
		Country:       row.Country,
		Category:      row.Category,
		Brand:         row.Brand,
		IsNew:         row.IsNew,
		Images:        images,
		Stock:         stock,
	}
}

func productsFromModels(rows []models.Product) []Product {
	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, productFromModel(row))
	}
	return out
}
