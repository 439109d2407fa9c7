package catalog

import (
	"context"

	"github.com/lib/pq"

	"github.com/drevmart/drevmart-backend/pkg/db"
	"github.com/drevmart/drevmart-backend/pkg/db/models"
	"github.com/drevmart/drevmart-backend/pkg/errors"
)

// Seed loads the fixture dataset into the database. A non-empty catalog is
// left untouched, and duplicate key errors from concurrent seeders are
// treated as already-seeded.
func (r *Repository) Seed(ctx context.Context) error {
	products := FixtureProducts()
	categories := FixtureCategories()
	brands := FixtureBrands()
	if err := ValidateFixtures(products, categories, brands); err != nil {
		return errors.Wrap(errors.CodeInternal, err, "validating fixtures")
	}

	conn := r.client.DB().WithContext(ctx)

	var existing int64
	if err := conn.Model(&models.Product{}).Count(&existing).Error; err != nil {
		return errors.Wrap(errors.CodeInternal, err, "counting products")
	}
	if existing > 0 {
		return nil
	}

	for _, category := range categories {
		row := models.Category{
			ID:           category.ID,
			Name:         category.Name,
			Slug:         category.Slug,
			Description:  category.Description,
			Image:        category.Image,
			ProductCount: category.ProductCount,
		}
		if err := conn.Create(&row).Error; err != nil && !db.IsUniqueViolation(err, "") {
			return errors.Wrap(errors.CodeInternal, err, "seeding categories")
		}
	}

	for _, brand := range brands {
		row := models.Brand{
			ID:          brand.ID,
			Name:        brand.Name,
			Slug:        brand.Slug,
			Description: brand.Description,
			Logo:        brand.Logo,
			Country:     brand.Country,
		}
		if err := conn.Create(&row).Error; err != nil && !db.IsUniqueViolation(err, "") {
			return errors.Wrap(errors.CodeInternal, err, "seeding brands")
		}
	}

	for _, product := range products {
		row := modelFromProduct(product)
		if err := conn.Create(&row).Error; err != nil && !db.IsUniqueViolation(err, "") {
			return errors.Wrap(errors.CodeInternal, err, "seeding products")
		}
	}

	return nil
}

func modelFromProduct(product Product) models.Product {
	images := make(pq.StringArray, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, image.URL)
	}
	var stock *int
	if product.Stock != nil {
		v := *product.Stock
		stock = &v
	}
	return models.Product{
		ID:            product.ID,
		Title:         product.Title,
		Description:   product.Description,
		Price:         product.Price,
		Discount:      product.Discount,
		DiscountPrice: product.DiscountPrice,
		Article:       product.Article,
		Composition:   product.Composition,
		Width:         product.Width,
		Density:       product.Density,
		Country:       product.Country,
		Category:      product.Category,
		Brand:         product.Brand,
		IsNew:         product.IsNew,
		Images:        images,
		Stock:         stock,
	}
}
