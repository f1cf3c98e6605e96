package services

import (
	"context"
	"log"
	"time"

	"creditdesk/internal/adapters/cache"
	"creditdesk/internal/adapters/persistence/models"
	"creditdesk/internal/adapters/persistence/repositories"
	"creditdesk/internal/core/engine"

	"github.com/robfig/cron/v3"
)

// rescoreSchedule runs the nightly rescore at 02:30
const rescoreSchedule = "30 2 * * *"

// RescoreService recomputes every customer's credit score on a nightly
// schedule and appends the result to credit_score_snapshots. Scoring is a
// pure function of stored records, so snapshots are fully re-derivable; the
// table exists to give auditors a dated trail without replaying history.
type RescoreService struct {
	customerRepo repositories.CustomerRepository
	loanRepo     repositories.LoanRepository
	snapshotRepo repositories.ScoreSnapshotRepository
	scoreCache   cache.ScoreCache
	scheduler    *cron.Cron
	now          func() time.Time
}

// NewRescoreService creates a new rescore service.
// scoreCache may be nil when Redis is disabled.
func NewRescoreService(
	customerRepo repositories.CustomerRepository,
	loanRepo repositories.LoanRepository,
	snapshotRepo repositories.ScoreSnapshotRepository,
	scoreCache cache.ScoreCache,
) *RescoreService {
	return &RescoreService{
		customerRepo: customerRepo,
		loanRepo:     loanRepo,
		snapshotRepo: snapshotRepo,
		scoreCache:   scoreCache,
		scheduler:    cron.New(),
		now:          time.Now,
	}
}

// Start schedules the nightly rescore run
func (s *RescoreService) Start() {
	s.scheduler.AddFunc(rescoreSchedule, func() {
		if err := s.RescoreAll(context.Background()); err != nil {
			log.Printf("❌ Nightly rescore failed: %v", err)
		}
	})
	s.scheduler.Start()
	log.Println("✅ Rescore scheduler started (nightly at 02:30)")
}

// Stop stops the scheduler and waits for a running job to finish
func (s *RescoreService) Stop() {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
	log.Println("🛑 Rescore scheduler stopped")
}

// RescoreAll recomputes and snapshots the score of every customer.
// Per-customer failures are logged and skipped so one bad row cannot stall
// the whole run.
func (s *RescoreService) RescoreAll(ctx context.Context) error {
	ids, err := s.customerRepo.ListIDs(ctx)
	if err != nil {
		return err
	}

	asOf := s.now()
	done := 0
	for _, id := range ids {
		if err := s.rescoreCustomer(ctx, id, asOf); err != nil {
			log.Printf("⚠️ Rescore skipped customer %d: %v", id, err)
			continue
		}
		done++
	}

	log.Printf("✅ Rescored %d/%d customers", done, len(ids))
	return nil
}

func (s *RescoreService) rescoreCustomer(ctx context.Context, customerID uint, asOf time.Time) error {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}

	loans, err := s.loanRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}

	history := make([]engine.LoanRecord, 0, len(loans))
	for _, loan := range loans {
		history = append(history, loan.Record())
	}

	score := engine.ComputeScore(customer.Borrower(), history, asOf)

	snapshot := &models.CreditScoreSnapshot{
		CustomerID: customerID,
		Score:      score,
		ComputedAt: asOf,
	}
	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		return err
	}

	if s.scoreCache != nil {
		if err := s.scoreCache.SetScore(ctx, customerID, score); err != nil {
			log.Printf("⚠️ Failed to refresh cached score for customer %d: %v", customerID, err)
		}
	}

	return nil
}
