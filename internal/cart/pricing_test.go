package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testTiers() []Tier {
	return []Tier{
		{MinQuantity: 5, Price: decimal.NewFromInt(640)},
		{MinQuantity: 10, Price: decimal.NewFromInt(420)},
	}
}

func TestTierPrice(t *testing.T) {
	tiers := testTiers()

	tests := []struct {
		name   string
		qty    float64
		want   string
		tiered bool
	}{
		{name: "below all thresholds", qty: 3, tiered: false},
		{name: "first threshold", qty: 5, want: "640", tiered: true},
		{name: "between thresholds", qty: 7, want: "640", tiered: true},
		{name: "second threshold", qty: 10, want: "420", tiered: true},
		{name: "far above", qty: 500, want: "420", tiered: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := TierPrice(tiers, tt.qty)
			if ok != tt.tiered {
				t.Fatalf("tiered = %v, want %v", ok, tt.tiered)
			}
			if ok && price.String() != tt.want {
				t.Fatalf("price = %s, want %s", price, tt.want)
			}
		})
	}

	t.Run("tier order in the slice does not matter", func(t *testing.T) {
		reversed := []Tier{tiers[1], tiers[0]}
		price, ok := TierPrice(reversed, 7)
		if !ok || price.String() != "640" {
			t.Fatalf("price = %s ok=%v, want 640", price, ok)
		}
	})
}

func TestBasePrice(t *testing.T) {
	t.Run("explicit discount price wins", func(t *testing.T) {
		if got := BasePrice(850, 15, 722); got.String() != "722" {
			t.Fatalf("got %s", got)
		}
	})

	t.Run("derived from percentage", func(t *testing.T) {
		if got := BasePrice(1000, 20, 0); got.String() != "800" {
			t.Fatalf("got %s", got)
		}
	})

	t.Run("no discount", func(t *testing.T) {
		if got := BasePrice(320, 0, 0); got.String() != "320" {
			t.Fatalf("got %s", got)
		}
	})
}

func TestUnitPriceAndLineTotal(t *testing.T) {
	tiers := testTiers()
	base := BasePrice(850, 15, 722)

	t.Run("tier applies at qty 7", func(t *testing.T) {
		unit := UnitPrice(base, tiers, 7)
		if unit.String() != "640" {
			t.Fatalf("unit = %s, want 640", unit)
		}
		if total := LineTotal(unit, 7); total.String() != "4480" {
			t.Fatalf("total = %s, want 4480", total)
		}
	})

	t.Run("base price below thresholds", func(t *testing.T) {
		unit := UnitPrice(base, tiers, 2)
		if unit.String() != "722" {
			t.Fatalf("unit = %s, want 722", unit)
		}
	})

	t.Run("fractional quantities round to kopecks", func(t *testing.T) {
		total := LineTotal(decimal.NewFromInt(722), 3.3)
		if total.String() != "2382.6" {
			t.Fatalf("total = %s, want 2382.6", total)
		}
	})
}
