package search

import (
	"strings"

	"github.com/drevmart/drevmart-backend/internal/catalog"
)

// DisplayLimit caps how many suggestions the dropdown renders.
const DisplayLimit = 8

// PopularTags are shown when there is no query and no history yet.
var PopularTags = []string{"Дуб", "Сосна", "Береза", "Осина", "Фанера"}

// Item is one searchable catalog entry.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Discount int     `json:"discount"`
	Img      string  `json:"img,omitempty"`
}

// FromProducts projects catalog products into search items.
func FromProducts(products []catalog.Product) []Item {
	items := make([]Item, 0, len(products))
	for _, product := range products {
		img := ""
		if len(product.Images) > 0 {
			img = product.Images[0].URL
		}
		items = append(items, Item{
			ID:       product.ID,
			Name:     product.Title,
			Price:    product.Price,
			Discount: product.Discount,
			Img:      img,
		})
	}
	return items
}

// Suggest returns the items whose name contains the query, case-insensitively.
// An empty query yields no suggestions.
func Suggest(items []Item, query string) []Item {
	if query == "" {
		return []Item{}
	}
	term := strings.ToLower(query)
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Truncate applies the dropdown display cap.
func Truncate(items []Item) []Item {
	if len(items) > DisplayLimit {
		return items[:DisplayLimit]
	}
	return items
}
