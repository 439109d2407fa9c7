package catalog

import (
	"github.com/drevmart/drevmart-backend/pkg/pagination"
)

// Product is a sheet-material catalog entry as served to the storefront.
type Product struct {
	ID              int               `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Price           float64           `json:"price"`
	Discount        int               `json:"discount"`
	DiscountPrice   float64           `json:"discount_price"`
	Article         string            `json:"article"`
	Composition     string            `json:"composition"`
	Width           string            `json:"width"`
	Density         string            `json:"density"`
	Country         string            `json:"country"`
	Category        string            `json:"category"`
	Brand           string            `json:"brand"`
	IsNew           bool              `json:"is_new"`
	Images          []Image           `json:"images"`
	// Stock is nil when the remainder is unknown, zero or negative when
	// the material is out of stock.
	Stock           *int              `json:"stock"`
	Characteristics map[string]string `json:"characteristics,omitempty"`
}

// Image is a product photo with its alt text.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// EffectivePrice is the price the customer actually pays: the discounted
// price when one is set, the base price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// Category groups products by material kind.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"product_count"`
}

// Brand is a material manufacturer.
type Brand struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Country     string `json:"country"`
}

// ProductList is a filtered page of products with its pagination meta.
type ProductList struct {
	Data []Product       `json:"data"`
	Meta pagination.Meta `json:"meta"`
}
