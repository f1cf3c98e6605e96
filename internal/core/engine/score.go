package engine

import "time"

// Borrower is the slice of the customer profile the scorer needs
type Borrower struct {
	MonthlyIncome float64
	ApprovedLimit float64
	CurrentDebt   float64
}

// LoanRecord is one historical loan of a borrower.
// PaidOnTime defaults to true upstream because the data feed has no
// punctuality tracking yet; the penalty below activates once it does.
type LoanRecord struct {
	Amount     float64
	StartDate  time.Time
	PaidOnTime bool
}

// ComputeScore derives a 0-100 credit score from a borrower's loan history
// as of a reference time. It is a pure function of its inputs: identical
// history and profile always yield the identical score, so scores can be
// recomputed from stored records at any time.
//
// Penalties are subtracted from a baseline of 100 in fixed order:
//  1. 10 points per loan not paid on time
//  2. flat 10 when the borrower has more than 5 loans
//  3. flat 15 when more than 2 loans started in asOf's calendar year
//  4. flat 10 when total historical volume exceeds 3x the approved limit
//
// A current debt above the approved limit overrides everything and forces
// the score to exactly 0.
func ComputeScore(b Borrower, history []LoanRecord, asOf time.Time) int {
	score := 100

	late := 0
	startedThisYear := 0
	totalVolume := 0.0
	for _, loan := range history {
		if !loan.PaidOnTime {
			late++
		}
		if loan.StartDate.Year() == asOf.Year() {
			startedThisYear++
		}
		totalVolume += loan.Amount
	}

	score -= 10 * late

	if len(history) > 5 {
		score -= 10
	}
	if startedThisYear > 2 {
		score -= 15
	}
	if totalVolume > 3*b.ApprovedLimit {
		score -= 10
	}

	// Hard cutoff, not a penalty
	if b.CurrentDebt > b.ApprovedLimit {
		score = 0
	}

	if score < 0 {
		score = 0
	}
	return score
}
