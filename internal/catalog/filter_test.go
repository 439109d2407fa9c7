package catalog

import (
	"reflect"
	"testing"
)

func productIDs(products []Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterProducts(t *testing.T) {
	products := FixtureProducts()

	t.Run("category match is case insensitive", func(t *testing.T) {
		got := FilterProducts(products, ListParams{Category: "шпон"})
		if want := []int{1, 5}; !reflect.DeepEqual(productIDs(got), want) {
			t.Fatalf("ids = %v, want %v", productIDs(got), want)
		}
	})

	t.Run("brand match is case insensitive", func(t *testing.T) {
		got := FilterProducts(products, ListParams{Brand: "EGGER"})
		if want := []int{3, 8}; !reflect.DeepEqual(productIDs(got), want) {
			t.Fatalf("ids = %v, want %v", productIDs(got), want)
		}
	})

	t.Run("search covers title description and article", func(t *testing.T) {
		byTitle := FilterProducts(products, ListParams{Search: "дуб"})
		if want := []int{2}; !reflect.DeepEqual(productIDs(byTitle), want) {
			t.Fatalf("title search ids = %v, want %v", productIDs(byTitle), want)
		}

		byArticle := FilterProducts(products, ListParams{Search: "mdf-fre"})
		if want := []int{8}; !reflect.DeepEqual(productIDs(byArticle), want) {
			t.Fatalf("article search ids = %v, want %v", productIDs(byArticle), want)
		}

		byDescription := FilterProducts(products, ListParams{Search: "премиум"})
		if want := []int{3}; !reflect.DeepEqual(productIDs(byDescription), want) {
			t.Fatalf("description search ids = %v, want %v", productIDs(byDescription), want)
		}
	})

	t.Run("discount sort is highest first", func(t *testing.T) {
		got := FilterProducts(products, ListParams{Discounted: true, Sort: SortDiscount})
		if want := []int{5, 1, 7, 3, 8, 4}; !reflect.DeepEqual(productIDs(got), want) {
			t.Fatalf("ids = %v, want %v", productIDs(got), want)
		}
	})

	t.Run("price sort uses the effective price", func(t *testing.T) {
		got := FilterProducts(products, ListParams{Sort: SortPriceAsc})
		// Product 2 sells at 320, product 1 at 722 despite its 850 base price.
		ids := productIDs(got)
		if ids[0] != 2 {
			t.Fatalf("cheapest = %d, want 2", ids[0])
		}
		for i := 1; i < len(got); i++ {
			if got[i-1].EffectivePrice() > got[i].EffectivePrice() {
				t.Fatalf("effective prices out of order at %d: %v > %v", i, got[i-1].EffectivePrice(), got[i].EffectivePrice())
			}
		}
	})

	t.Run("newest sorts by id descending", func(t *testing.T) {
		got := FilterProducts(products, ListParams{Sort: SortNewest})
		if ids := productIDs(got); ids[0] != 8 || ids[len(ids)-1] != 1 {
			t.Fatalf("ids = %v", ids)
		}
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		params := ListParams{IsNew: true, Sort: SortPriceDesc}
		once := FilterProducts(products, params)
		twice := FilterProducts(once, params)
		if !reflect.DeepEqual(productIDs(once), productIDs(twice)) {
			t.Fatalf("second pass changed order: %v vs %v", productIDs(once), productIDs(twice))
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := productIDs(products)
		_ = FilterProducts(products, ListParams{Sort: SortPriceDesc})
		if after := productIDs(products); !reflect.DeepEqual(before, after) {
			t.Fatalf("source order changed: %v vs %v", before, after)
		}
	})
}

func TestListPage(t *testing.T) {
	products := FixtureProducts()

	t.Run("meta reflects the filtered total", func(t *testing.T) {
		list := ListPage(products, ListParams{Page: 1, PageSize: 3})
		if len(list.Data) != 3 {
			t.Fatalf("page length = %d, want 3", len(list.Data))
		}
		if list.Meta.Total != 8 || list.Meta.PageCount != 3 {
			t.Fatalf("meta = %+v", list.Meta)
		}
	})

	t.Run("page beyond the end is empty not nil", func(t *testing.T) {
		list := ListPage(products, ListParams{Page: 4, PageSize: 3})
		if list.Data == nil || len(list.Data) != 0 {
			t.Fatalf("data = %v", list.Data)
		}
	})

	t.Run("defaults applied for zero page and size", func(t *testing.T) {
		list := ListPage(products, ListParams{})
		if list.Meta.Page != 1 || list.Meta.PageSize != 12 {
			t.Fatalf("meta = %+v", list.Meta)
		}
		if len(list.Data) != 8 {
			t.Fatalf("page length = %d, want all 8", len(list.Data))
		}
	})
}

func TestValidateFixtures(t *testing.T) {
	products := FixtureProducts()
	categories := FixtureCategories()
	brands := FixtureBrands()

	if err := ValidateFixtures(products, categories, brands); err != nil {
		t.Fatalf("builtin dataset invalid: %v", err)
	}

	t.Run("discount price above base price is rejected", func(t *testing.T) {
		broken := append([]Product{}, products...)
		broken[0].Discount = 10
		broken[0].DiscountPrice = broken[0].Price + 1
		if err := ValidateFixtures(broken, categories, brands); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		broken := append([]Product{}, products...)
		broken[1].ID = broken[0].ID
		if err := ValidateFixtures(broken, categories, brands); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
