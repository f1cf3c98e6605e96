package engine

// Variant selects how the score tiers treat the requested interest rate.
//
// The two approval flows diverged historically: the eligibility inquiry
// corrects a too-low rate upward and approves, while the loan application
// approves only when the requested rate already meets the tier floor. Both
// behaviors are kept as explicit variants so each caller picks its own.
type Variant string

const (
	// VariantLenient approves mid-tier requests and raises the rate to the
	// tier floor when the requested rate is below it.
	VariantLenient Variant = "lenient"
	// VariantStrict approves mid-tier requests only when the requested rate
	// already meets the tier floor; the rate is never altered.
	VariantStrict Variant = "strict"
)

// Rejection reasons
const (
	ReasonEMITooHigh  = "EMI too high compared to income"
	ReasonScoreTooLow = "credit score too low"
	ReasonRateTooLow  = "requested interest rate below the floor for this credit score"
)

const (
	maxEMIIncomeRatio = 0.5
	midTierRateFloor  = 12.0
	lowTierRateFloor  = 16.0
)

// Decision is the outcome of the eligibility policy
type Decision struct {
	Approved      bool
	CorrectedRate float64
	Reason        string
}

// Decide combines affordability and credit score into an approval decision.
//
// The affordability gate runs first and short-circuits the tiers: an EMI
// above half the monthly income is rejected regardless of score, with the
// rate left unchanged. Otherwise the score tiers apply: above 50 approve as
// requested, (30,50] floor at 12%, (10,30] floor at 16%, at or below 10
// reject.
func Decide(v Variant, score int, requestedRate, emi, monthlyIncome float64) Decision {
	if emi > maxEMIIncomeRatio*monthlyIncome {
		return Decision{Approved: false, CorrectedRate: requestedRate, Reason: ReasonEMITooHigh}
	}

	switch {
	case score > 50:
		return Decision{Approved: true, CorrectedRate: requestedRate}
	case score > 30:
		return decideTier(v, requestedRate, midTierRateFloor)
	case score > 10:
		return decideTier(v, requestedRate, lowTierRateFloor)
	default:
		return Decision{Approved: false, CorrectedRate: requestedRate, Reason: ReasonScoreTooLow}
	}
}

func decideTier(v Variant, requestedRate, floor float64) Decision {
	if requestedRate >= floor {
		return Decision{Approved: true, CorrectedRate: requestedRate}
	}
	if v == VariantStrict {
		return Decision{Approved: false, CorrectedRate: requestedRate, Reason: ReasonRateTooLow}
	}
	return Decision{Approved: true, CorrectedRate: floor}
}
