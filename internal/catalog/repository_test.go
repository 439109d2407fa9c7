package catalog

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drevmart/drevmart-backend/pkg/config"
	"github.com/drevmart/drevmart-backend/pkg/db"
	"github.com/drevmart/drevmart-backend/pkg/db/models"
	"github.com/drevmart/drevmart-backend/pkg/errors"
)

func setupCatalogTestDB(t *testing.T) *db.Client {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: "sqlite",
		DSN:    "file:catalogrepo?mode=memory&cache=shared",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	conn := client.DB()
	require.NoError(t, conn.Exec(`
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  price REAL NOT NULL,
  discount INTEGER NOT NULL DEFAULT 0,
  discount_price REAL,
  article TEXT,
  composition TEXT,
  width TEXT,
  density TEXT,
  country TEXT,
  category TEXT NOT NULL,
  brand TEXT NOT NULL,
  is_new INTEGER NOT NULL DEFAULT 0,
  images TEXT,
  stock INTEGER,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	require.NoError(t, conn.Exec(`
CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  description TEXT,
  image TEXT,
  product_count INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	require.NoError(t, conn.Exec(`
CREATE TABLE IF NOT EXISTS brands (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  description TEXT,
  logo TEXT,
  country TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)

	require.NoError(t, conn.Exec("DELETE FROM products").Error)
	require.NoError(t, conn.Exec("DELETE FROM categories").Error)
	require.NoError(t, conn.Exec("DELETE FROM brands").Error)

	return client
}

func seedCatalog(t *testing.T, client *db.Client) {
	t.Helper()

	stock := 12
	rows := []models.Product{
		{
			ID: 1, Title: "Шпон дуба", Description: "Натуральный шпон",
			Price: 950, Discount: 24, DiscountPrice: 722, Article: "ШД-001",
			Category: "Шпон", Brand: "WoodHouse", IsNew: true,
			Images: pq.StringArray{"/img/oak.jpg"}, Stock: &stock,
		},
		{
			ID: 2, Title: "Фанера березовая", Description: "Фанера ФК",
			Price: 320, Article: "ФБ-104",
			Category: "Фанера", Brand: "СВЕЗА",
		},
		{
			ID: 3, Title: "ЛДСП Egger", Description: "Плита ламинированная",
			Price: 1100, Discount: 10, Article: "ЛД-777",
			Category: "ЛДСП", Brand: "Egger", IsNew: true,
		},
	}
	for _, row := range rows {
		require.NoError(t, client.DB().Create(&row).Error)
	}

	require.NoError(t, client.DB().Create(&models.Category{ID: 1, Name: "Шпон", Slug: "shpon"}).Error)
	require.NoError(t, client.DB().Create(&models.Brand{ID: 1, Name: "Egger", Slug: "egger", Country: "Австрия"}).Error)
}

func TestRepositoryListProducts(t *testing.T) {
	client := setupCatalogTestDB(t)
	seedCatalog(t, client)
	repo := NewRepository(client)
	ctx := context.Background()

	list, err := repo.ListProducts(ctx, ListParams{Category: "шпон"})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, 1, list.Data[0].ID)
	assert.Equal(t, 1, list.Meta.Total)
	assert.Equal(t, []Image{{URL: "/img/oak.jpg", Alt: "Шпон дуба"}}, list.Data[0].Images)
	require.NotNil(t, list.Data[0].Stock)
	assert.Equal(t, 12, *list.Data[0].Stock)

	list, err = repo.ListProducts(ctx, ListParams{Discounted: true, Sort: SortDiscount})
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, 1, list.Data[0].ID)
	assert.Equal(t, 3, list.Data[1].ID)

	list, err = repo.ListProducts(ctx, ListParams{Sort: SortPriceAsc})
	require.NoError(t, err)
	require.Len(t, list.Data, 3)
	// Effective prices: 320, 722, 1100.
	assert.Equal(t, 2, list.Data[0].ID)
	assert.Equal(t, 1, list.Data[1].ID)

	list, err = repo.ListProducts(ctx, ListParams{Search: "фанера"})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, 2, list.Data[0].ID)
}

func TestRepositoryPagination(t *testing.T) {
	client := setupCatalogTestDB(t)
	seedCatalog(t, client)
	repo := NewRepository(client)

	list, err := repo.ListProducts(context.Background(), ListParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, 3, list.Data[0].ID)
	assert.Equal(t, 2, list.Meta.PageCount)
	assert.Equal(t, 3, list.Meta.Total)
}

func TestRepositoryGetProduct(t *testing.T) {
	client := setupCatalogTestDB(t)
	seedCatalog(t, client)
	repo := NewRepository(client)

	product, err := repo.GetProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Фанера березовая", product.Title)
	// NULL stock stays unknown rather than collapsing to zero.
	assert.Nil(t, product.Stock)

	_, err = repo.GetProduct(context.Background(), 999)
	require.Error(t, err)
	coded := errors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, errors.CodeNotFound, coded.Code())
}

func TestRepositoryHighlights(t *testing.T) {
	client := setupCatalogTestDB(t)
	seedCatalog(t, client)
	repo := NewRepository(client)
	ctx := context.Background()

	arrivals, err := repo.NewArrivals(ctx, 10)
	require.NoError(t, err)
	require.Len(t, arrivals, 2)
	assert.True(t, arrivals[0].IsNew)

	discounted, err := repo.Discounted(ctx, 1)
	require.NoError(t, err)
	require.Len(t, discounted, 1)
	assert.Equal(t, 24, discounted[0].Discount)

	random, err := repo.RandomProducts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, random, 2)
}

func TestRepositorySeed(t *testing.T) {
	client := setupCatalogTestDB(t)
	repo := NewRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	list, err := repo.ListProducts(ctx, ListParams{PageSize: 100})
	require.NoError(t, err)
	assert.Len(t, list.Data, len(FixtureProducts()))

	// A populated catalog is left untouched by a second run.
	require.NoError(t, repo.Seed(ctx))
	list, err = repo.ListProducts(ctx, ListParams{PageSize: 100})
	require.NoError(t, err)
	assert.Len(t, list.Data, len(FixtureProducts()))
}

func TestRepositoryLookups(t *testing.T) {
	client := setupCatalogTestDB(t)
	seedCatalog(t, client)
	repo := NewRepository(client)

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "shpon", categories[0].Slug)

	brands, err := repo.ListBrands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Австрия", brands[0].Country)
}
