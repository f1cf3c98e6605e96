package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places for presentation.
// Engine computations stay unrounded; only response payloads pass through
// here. decimal half-up rounding avoids the float artifacts of
// math.Round(v*100)/100 on amounts like 0.005.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
