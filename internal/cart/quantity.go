package cart

import (
	"math"
	"strconv"
	"strings"
)

// Quantity is measured in meters and moves in 0.1 steps between 0.5 and 1000.
const (
	MinQuantity  = 0.5
	MaxQuantity  = 1000
	QuantityStep = 0.1
)

// MsgMaxQuantity is surfaced when the customer hits the upper bound.
const MsgMaxQuantity = "Максимальное количество: 1000 метров"

// roundToStep snaps a quantity to one decimal place.
func roundToStep(value float64) float64 {
	return math.Round(value*10) / 10
}

// ClampQuantity normalizes raw customer input. Empty, unparseable or
// too-small input becomes the minimum; input above the maximum is capped and
// reported via the second return.
func ClampQuantity(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || value < MinQuantity {
		return MinQuantity, false
	}
	if value > MaxQuantity {
		return MaxQuantity, true
	}
	return roundToStep(value), false
}

// Clamp bounds an already-numeric quantity the same way.
func Clamp(value float64) (float64, bool) {
	if math.IsNaN(value) || value < MinQuantity {
		return MinQuantity, false
	}
	if value > MaxQuantity {
		return MaxQuantity, true
	}
	return roundToStep(value), false
}

// Increment steps the quantity up. At the maximum it stays put and reports
// the bound was hit.
func Increment(value float64) (float64, bool) {
	if value >= MaxQuantity {
		return MaxQuantity, true
	}
	return roundToStep(math.Min(MaxQuantity, value+QuantityStep)), false
}

// Decrement steps the quantity down, never below the minimum.
func Decrement(value float64) float64 {
	if value <= MinQuantity {
		return MinQuantity
	}
	return roundToStep(math.Max(MinQuantity, value-QuantityStep))
}
