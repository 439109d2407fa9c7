package catalog

import (
	"sort"
	"strings"

	"github.com/drevmart/drevmart-backend/pkg/pagination"
)

// Sort orders supported by the product listing.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
	SortDiscount  = "discount"
)

// ListParams narrows and orders the product listing. Category and Brand match
// by name, case-insensitively.
type ListParams struct {
	Category   string
	Brand      string
	IsNew      bool
	Discounted bool
	Search     string
	Sort       string
	Page       int
	PageSize   int
}

// FilterProducts applies the listing filters and sort without paginating.
// Filters narrow in a fixed order: category, brand, novelty, discount, text
// search, then sort. The input slice is never mutated.
func FilterProducts(products []Product, params ListParams) []Product {
	filtered := make([]Product, 0, len(products))
	filtered = append(filtered, products...)

	if params.Category != "" {
		filtered = keep(filtered, func(p Product) bool {
			return strings.EqualFold(p.Category, params.Category)
		})
	}

	if params.Brand != "" {
		filtered = keep(filtered, func(p Product) bool {
			return strings.EqualFold(p.Brand, params.Brand)
		})
	}

	if params.IsNew {
		filtered = keep(filtered, func(p Product) bool { return p.IsNew })
	}

	if params.Discounted {
		filtered = keep(filtered, func(p Product) bool { return p.Discount > 0 })
	}

	if params.Search != "" {
		term := strings.ToLower(params.Search)
		filtered = keep(filtered, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.Description), term) ||
				strings.Contains(strings.ToLower(p.Article), term)
		})
	}

	switch params.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectivePrice() < filtered[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectivePrice() > filtered[j].EffectivePrice()
		})
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID > filtered[j].ID
		})
	case SortDiscount:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Discount > filtered[j].Discount
		})
	}

	return filtered
}

// ListPage filters, sorts and slices one page, returning it with its meta.
func ListPage(products []Product, params ListParams) ProductList {
	filtered := FilterProducts(products, params)

	page := pagination.NormalizePage(params.Page)
	pageSize := pagination.NormalizePageSize(params.PageSize)

	return ProductList{
		Data: pagination.Paginate(filtered, page, pageSize),
		Meta: pagination.NewMeta(page, pageSize, len(filtered)),
	}
}

func keep(products []Product, pred func(Product) bool) []Product {
	kept := products[:0]
	for _, product := range products {
		if pred(product) {
			kept = append(kept, product)
		}
	}
	return kept
}
