package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatTotal renders a derived total with a fixed number of decimals,
// rounding half away from zero.
func FormatTotal(total float64, precision int32) string {
	if precision < 0 {
		precision = 0
	}
	return decimal.NewFromFloat(clamp(total)).StringFixed(precision)
}

// FormatNumber renders an amount or multiplier in its shortest exact form,
// e.g. 12.5 or 0.1.
func FormatNumber(v float64) string {
	return decimal.NewFromFloat(clamp(v)).String()
}

// clamp maps NaN to 0 and ±Inf to ±MaxFloat64; decimal panics on both.
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}
