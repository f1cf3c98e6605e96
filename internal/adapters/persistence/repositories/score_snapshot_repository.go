package repositories

import (
	"context"

	"creditdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// scoreSnapshotRepository implements ScoreSnapshotRepository interface
type scoreSnapshotRepository struct {
	db *gorm.DB
}

// NewScoreSnapshotRepository creates a new score snapshot repository
func NewScoreSnapshotRepository(db *gorm.DB) ScoreSnapshotRepository {
	return &scoreSnapshotRepository{db: db}
}

// Create appends a snapshot row
func (r *scoreSnapshotRepository) Create(ctx context.Context, snapshot *models.CreditScoreSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

// LatestByCustomerID returns the most recent snapshot for a customer
func (r *scoreSnapshotRepository) LatestByCustomerID(ctx context.Context, customerID uint) (*models.CreditScoreSnapshot, error) {
	var snapshot models.CreditScoreSnapshot
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("computed_at DESC").
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
