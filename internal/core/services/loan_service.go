package services

import (
	"context"
	"errors"

	"creditdesk/internal/adapters/persistence/models"
	"creditdesk/internal/adapters/persistence/repositories"
	"creditdesk/internal/core/domain"

	"gorm.io/gorm"
)

// LoanService handles read access to persisted loans
type LoanService struct {
	loanRepo     repositories.LoanRepository
	customerRepo repositories.CustomerRepository
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repositories.LoanRepository, customerRepo repositories.CustomerRepository) *LoanService {
	return &LoanService{loanRepo: loanRepo, customerRepo: customerRepo}
}

// GetByID gets a loan by ID with its customer
func (s *LoanService) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	return loan, nil
}

// GetByCustomerID gets all loans of a customer
func (s *LoanService) GetByCustomerID(ctx context.Context, customerID uint) ([]*models.Loan, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return s.loanRepo.GetByCustomerID(ctx, customerID)
}
