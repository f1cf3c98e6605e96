package models

import (
	"time"

	"gorm.io/gorm"

	"creditdesk/internal/core/engine"
)

// Customer represents the customers table
type Customer struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	FirstName     string         `gorm:"size:100;not null" json:"first_name"`
	LastName      string         `gorm:"size:100;not null" json:"last_name"`
	PhoneNumber   string         `gorm:"size:15;uniqueIndex;not null" json:"phone_number"`
	MonthlyIncome float64        `gorm:"type:decimal(15,2);not null" json:"monthly_income"`
	ApprovedLimit float64        `gorm:"type:decimal(15,2);not null" json:"approved_limit"`
	Age           int            `gorm:"not null" json:"age"`
	CurrentDebt   float64        `gorm:"type:decimal(15,2);default:0" json:"current_debt"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

// Borrower maps the customer onto the scorer's input
func (c *Customer) Borrower() engine.Borrower {
	return engine.Borrower{
		MonthlyIncome: c.MonthlyIncome,
		ApprovedLimit: c.ApprovedLimit,
		CurrentDebt:   c.CurrentDebt,
	}
}

// CustomerResponse DTO
type CustomerResponse struct {
	ID            uint    `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	PhoneNumber   string  `json:"phone_number"`
	MonthlyIncome float64 `json:"monthly_income"`
	ApprovedLimit float64 `json:"approved_limit"`
	Age           int     `json:"age"`
}

func (c *Customer) ToResponse() *CustomerResponse {
	return &CustomerResponse{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		PhoneNumber:   c.PhoneNumber,
		MonthlyIncome: c.MonthlyIncome,
		ApprovedLimit: c.ApprovedLimit,
		Age:           c.Age,
	}
}

// Loan represents the loans table.
// Status only ever holds APPROVED for rows created by the application flow:
// rejected applications are never persisted. EmiPaidOnTime defaults to true
// because the upstream feed carries no punctuality data.
type Loan struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	RefNo              string         `gorm:"size:36;uniqueIndex;not null" json:"ref_no"`
	CustomerID         uint           `gorm:"index;not null" json:"customer_id"`
	Customer           Customer       `gorm:"foreignKey:CustomerID" json:"-"`
	LoanAmount         float64        `gorm:"type:decimal(15,2);not null" json:"loan_amount"`
	Tenure             int            `gorm:"not null" json:"tenure"`
	InterestRate       float64        `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	MonthlyInstallment float64        `gorm:"type:decimal(15,2);not null" json:"monthly_installment"`
	Status             string         `gorm:"size:20;default:'PENDING'" json:"status"`
	StartDate          time.Time      `gorm:"not null" json:"start_date"`
	EndDate            *time.Time     `json:"end_date"`
	EmiPaidOnTime      bool           `gorm:"default:true" json:"emi_paid_on_time"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string {
	return "loans"
}

// Record maps the loan onto the scorer's history input
func (l *Loan) Record() engine.LoanRecord {
	return engine.LoanRecord{
		Amount:     l.LoanAmount,
		StartDate:  l.StartDate,
		PaidOnTime: l.EmiPaidOnTime,
	}
}

// LoanResponse DTO
type LoanResponse struct {
	ID                 uint              `json:"id"`
	RefNo              string            `json:"ref_no"`
	Customer           *CustomerResponse `json:"customer,omitempty"`
	CustomerID         uint              `json:"customer_id"`
	LoanAmount         float64           `json:"loan_amount"`
	Tenure             int               `json:"tenure"`
	InterestRate       float64           `json:"interest_rate"`
	MonthlyInstallment float64           `json:"monthly_installment"`
	Status             string            `json:"status"`
	StartDate          time.Time         `json:"start_date"`
	EndDate            *time.Time        `json:"end_date"`
}

func (l *Loan) ToResponse() *LoanResponse {
	resp := &LoanResponse{
		ID:                 l.ID,
		RefNo:              l.RefNo,
		CustomerID:         l.CustomerID,
		LoanAmount:         l.LoanAmount,
		Tenure:             l.Tenure,
		InterestRate:       l.InterestRate,
		MonthlyInstallment: l.MonthlyInstallment,
		Status:             l.Status,
		StartDate:          l.StartDate,
		EndDate:            l.EndDate,
	}
	if l.Customer.ID != 0 {
		resp.Customer = l.Customer.ToResponse()
	}
	return resp
}

// CreditScoreSnapshot represents the credit_score_snapshots table.
// Rows are append-only; each nightly rescore run adds one per customer.
type CreditScoreSnapshot struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	Score      int       `gorm:"not null" json:"score"`
	ComputedAt time.Time `gorm:"not null;index" json:"computed_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CreditScoreSnapshot) TableName() string {
	return "credit_score_snapshots"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Loan{},
		&CreditScoreSnapshot{},
	)
}
