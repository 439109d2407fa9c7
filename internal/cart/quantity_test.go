package cart

import "testing"

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     float64
		exceeded bool
	}{
		{name: "rounds to one decimal", raw: "3.27", want: 3.3},
		{name: "rounds half up", raw: "2.25", want: 2.3},
		{name: "empty input becomes minimum", raw: "", want: MinQuantity},
		{name: "garbage becomes minimum", raw: "abc", want: MinQuantity},
		{name: "below minimum", raw: "0.2", want: MinQuantity},
		{name: "negative", raw: "-4", want: MinQuantity},
		{name: "at maximum", raw: "1000", want: MaxQuantity},
		{name: "above maximum is capped", raw: "1200", want: MaxQuantity, exceeded: true},
		{name: "whitespace tolerated", raw: " 7.0 ", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, exceeded := ClampQuantity(tt.raw)
			if got != tt.want {
				t.Fatalf("ClampQuantity(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if exceeded != tt.exceeded {
				t.Fatalf("exceeded = %v, want %v", exceeded, tt.exceeded)
			}
		})
	}
}

func TestSteps(t *testing.T) {
	t.Run("increment", func(t *testing.T) {
		got, exceeded := Increment(1.0)
		if got != 1.1 || exceeded {
			t.Fatalf("Increment(1.0) = %v %v", got, exceeded)
		}

		got, exceeded = Increment(MaxQuantity)
		if got != MaxQuantity || !exceeded {
			t.Fatalf("Increment at max = %v %v", got, exceeded)
		}
	})

	t.Run("decrement stops at minimum", func(t *testing.T) {
		if got := Decrement(0.6); got != MinQuantity {
			t.Fatalf("Decrement(0.6) = %v", got)
		}
		if got := Decrement(MinQuantity); got != MinQuantity {
			t.Fatalf("Decrement at min = %v", got)
		}
	})

	t.Run("repeated increments stay on the step grid", func(t *testing.T) {
		qty := MinQuantity
		for i := 0; i < 7; i++ {
			qty, _ = Increment(qty)
		}
		if qty != 1.2 {
			t.Fatalf("qty = %v, want 1.2", qty)
		}
	})
}
