// Package rate converts annual rates to monthly effective rates and
// derives the deterministic price and inflation paths used everywhere in
// the engine.
package rate

import "math"

// Monthly returns the monthly effective rate m with (1+m)^12 = 1+annual.
// Callers must keep annual > -1; at or below -100% the result is NaN.
func Monthly(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}

// PriceAt returns the BTC price after month months of compound growth.
func PriceAt(initialPrice, cagr float64, month int) float64 {
	return initialPrice * math.Pow(1+cagr, float64(month)/12)
}

// InflationIndexAt returns the cumulative inflation factor since month 0
// (1.0 at month 0).
func InflationIndexAt(cpiRate float64, month int) float64 {
	return math.Pow(1+cpiRate, float64(month)/12)
}
