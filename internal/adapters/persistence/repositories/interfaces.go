package repositories

import (
	"context"

	"creditdesk/internal/adapters/persistence/models"
)

// CustomerRepository defines customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByPhoneNumber(ctx context.Context, phone string) (*models.Customer, error)
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
	Update(ctx context.Context, customer *models.Customer) error
	List(ctx context.Context, offset, limit int) ([]*models.Customer, int64, error)
	ListIDs(ctx context.Context) ([]uint, error)
}

// LoanRepository defines loan data access
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, id uint) (*models.Loan, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]*models.Loan, error)
	Upsert(ctx context.Context, loan *models.Loan) error
}

// ScoreSnapshotRepository defines credit score snapshot data access
type ScoreSnapshotRepository interface {
	Create(ctx context.Context, snapshot *models.CreditScoreSnapshot) error
	LatestByCustomerID(ctx context.Context, customerID uint) (*models.CreditScoreSnapshot, error)
}
