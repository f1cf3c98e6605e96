package services

import (
	"context"
	"math"

	"creditdesk/internal/adapters/persistence/models"
	"creditdesk/internal/adapters/persistence/repositories"
	"creditdesk/internal/core/domain"
)

const lakh = 100000

// CustomerService handles customer registration and listing
type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// RegisterCustomerInput represents register customer input
type RegisterCustomerInput struct {
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	PhoneNumber   string  `json:"phone_number" validate:"required"`
	MonthlyIncome float64 `json:"monthly_income" validate:"required,gt=0"`
	Age           int     `json:"age" validate:"required,gt=0"`
}

// ApprovedLimitFor derives the credit limit from monthly income:
// 36x income, rounded to the nearest lakh.
func ApprovedLimitFor(monthlyIncome float64) float64 {
	return math.Round(36*monthlyIncome/lakh) * lakh
}

// Register creates a new customer with a policy-derived approved limit
func (s *CustomerService) Register(ctx context.Context, input *RegisterCustomerInput) (*models.Customer, error) {
	if input.MonthlyIncome <= 0 {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.customerRepo.ExistsByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCustomerAlreadyExists
	}

	customer := &models.Customer{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		PhoneNumber:   input.PhoneNumber,
		MonthlyIncome: input.MonthlyIncome,
		ApprovedLimit: ApprovedLimitFor(input.MonthlyIncome),
		Age:           input.Age,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List lists customers with pagination
func (s *CustomerService) List(ctx context.Context, offset, limit int) ([]*models.Customer, int64, error) {
	return s.customerRepo.List(ctx, offset, limit)
}
