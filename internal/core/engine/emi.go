package engine

import (
	"errors"
	"math"
)

// ErrInvalidTerms is returned when amortization input is degenerate
var ErrInvalidTerms = errors.New("invalid loan terms")

// ComputeEMI computes the equated monthly installment for a fixed-rate,
// fully amortizing loan using the reducing-balance formula:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the tenure in months. The result is not
// rounded; rounding happens at the presentation boundary only.
//
// A zero rate is rejected rather than degraded to principal/tenure: the
// formula divides by zero there and the product does not offer interest-free
// loans.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	if principal <= 0 {
		return 0, ErrInvalidTerms
	}
	if annualRatePercent <= 0 || annualRatePercent > 100 {
		return 0, ErrInvalidTerms
	}
	if tenureMonths <= 0 {
		return 0, ErrInvalidTerms
	}

	r := annualRatePercent / 100 / 12
	factor := math.Pow(1+r, float64(tenureMonths))
	return principal * r * factor / (factor - 1), nil
}
