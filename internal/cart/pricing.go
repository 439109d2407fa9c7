package cart

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Tier grants a fixed per-meter price once the quantity reaches its
// threshold.
type Tier struct {
	MinQuantity float64         `json:"minQuantity"`
	Price       decimal.Decimal `json:"price"`
	Label       string          `json:"label,omitempty"`
}

// DefaultTiers returns the volume discounts the storefront ships with. The
// store currently runs without any, every product sells at its base price.
func DefaultTiers() []Tier {
	return nil
}

// TierPrice picks the applicable tier: thresholds are checked from the
// largest down and the first one at or below the quantity wins.
func TierPrice(tiers []Tier, qty float64) (decimal.Decimal, bool) {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinQuantity > sorted[j].MinQuantity
	})

	for _, tier := range sorted {
		if qty >= tier.MinQuantity {
			return tier.Price, true
		}
	}
	return decimal.Zero, false
}

// BasePrice is the per-meter price before quantity tiers: the explicit
// discounted price when set, otherwise the base price reduced by the discount
// percentage.
func BasePrice(price float64, discount int, discountPrice float64) decimal.Decimal {
	if discountPrice > 0 {
		return decimal.NewFromFloat(discountPrice)
	}
	base := decimal.NewFromFloat(price)
	if discount > 0 {
		factor := decimal.NewFromInt(100 - int64(discount)).Div(decimal.NewFromInt(100))
		return base.Mul(factor)
	}
	return base
}

// UnitPrice resolves what one meter costs at the given quantity.
func UnitPrice(base decimal.Decimal, tiers []Tier, qty float64) decimal.Decimal {
	if tiered, ok := TierPrice(tiers, qty); ok {
		return tiered
	}
	return base
}

// LineTotal is the position cost, rounded to kopecks.
func LineTotal(unit decimal.Decimal, qty float64) decimal.Decimal {
	return unit.Mul(decimal.NewFromFloat(qty)).Round(2)
}
