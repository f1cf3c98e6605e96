package services

import (
	"context"
	"testing"
	"time"

	"creditdesk/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescoreAll(t *testing.T) {
	customerRepo := newFakeCustomerRepo(
		&models.Customer{ID: 1, MonthlyIncome: 50000, ApprovedLimit: 1800000},
		&models.Customer{ID: 2, MonthlyIncome: 40000, ApprovedLimit: 1400000, CurrentDebt: 2000000},
	)
	loanRepo := newFakeLoanRepo(&models.Loan{
		ID:            1,
		CustomerID:    1,
		LoanAmount:    100000,
		StartDate:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EmiPaidOnTime: false,
	})
	snapshotRepo := &fakeSnapshotRepo{}
	scoreCache := newFakeScoreCache()

	svc := NewRescoreService(customerRepo, loanRepo, snapshotRepo, scoreCache)
	require.NoError(t, svc.RescoreAll(context.Background()))

	require.Len(t, snapshotRepo.snapshots, 2)

	first, err := snapshotRepo.LatestByCustomerID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 90, first.Score) // one late loan

	second, err := snapshotRepo.LatestByCustomerID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Score) // over-limit debt

	// All snapshots of a run share one reference time
	assert.Equal(t, snapshotRepo.snapshots[0].ComputedAt, snapshotRepo.snapshots[1].ComputedAt)

	// The cache is refreshed alongside the snapshot
	cached, ok := scoreCache.GetScore(context.Background(), 1)
	assert.True(t, ok)
	assert.Equal(t, 90, cached)
}
