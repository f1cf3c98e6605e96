package domain

import "time"

// LoanStatus represents the lifecycle status of a loan record
type LoanStatus string

const (
	StatusPending  LoanStatus = "PENDING"
	StatusApproved LoanStatus = "APPROVED"
)

// Customer represents a borrower in the domain layer.
// CurrentDebt is not tracked by the upstream data feed yet and defaults to 0.
type Customer struct {
	ID            uint
	FirstName     string
	LastName      string
	PhoneNumber   string
	MonthlyIncome float64
	ApprovedLimit float64
	Age           int
	CurrentDebt   float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Loan represents a loan in the domain layer
type Loan struct {
	ID                 uint
	RefNo              string
	CustomerID         uint
	LoanAmount         float64
	Tenure             int
	InterestRate       float64
	MonthlyInstallment float64
	Status             LoanStatus
	StartDate          time.Time
	EndDate            *time.Time
	EmiPaidOnTime      bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LoanApplication holds the terms a customer asks for
type LoanApplication struct {
	CustomerID   uint
	LoanAmount   float64
	InterestRate float64
	Tenure       int
}

// EligibilityVerdict is the engine output for a single evaluation
type EligibilityVerdict struct {
	Approved           bool
	InterestRate       float64
	CorrectedRate      float64
	MonthlyInstallment float64
	CreditScore        int
	Reason             string
}
