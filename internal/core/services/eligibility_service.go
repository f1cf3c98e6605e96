package services

import (
	"context"
	"errors"
	"log"
	"time"

	"creditdesk/internal/adapters/cache"
	"creditdesk/internal/adapters/persistence/models"
	"creditdesk/internal/adapters/persistence/repositories"
	"creditdesk/internal/core/domain"
	"creditdesk/internal/core/engine"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EligibilityService orchestrates the credit scoring and eligibility engine
// for the two use cases: a non-mutating eligibility inquiry and a mutating
// loan application. All numeric and policy reasoning lives in the engine
// package; this service only fetches inputs and persists the outcome.
type EligibilityService struct {
	customerRepo repositories.CustomerRepository
	loanRepo     repositories.LoanRepository
	scoreCache   cache.ScoreCache
	now          func() time.Time
}

// NewEligibilityService creates a new eligibility service.
// scoreCache may be nil when Redis is disabled.
func NewEligibilityService(
	customerRepo repositories.CustomerRepository,
	loanRepo repositories.LoanRepository,
	scoreCache cache.ScoreCache,
) *EligibilityService {
	return &EligibilityService{
		customerRepo: customerRepo,
		loanRepo:     loanRepo,
		scoreCache:   scoreCache,
		now:          time.Now,
	}
}

// CheckEligibility evaluates a proposed loan without persisting anything.
// It applies the lenient policy variant: a requested rate below the tier
// floor is corrected upward and the loan still approved.
func (s *EligibilityService) CheckEligibility(ctx context.Context, app *domain.LoanApplication) (*domain.EligibilityVerdict, error) {
	return s.evaluate(ctx, app, engine.VariantLenient, true)
}

// ApplyLoan evaluates a loan application under the strict policy variant and,
// on approval, persists the loan with status APPROVED. Rejected applications
// are never persisted. The returned loan is nil when the verdict is negative.
func (s *EligibilityService) ApplyLoan(ctx context.Context, app *domain.LoanApplication) (*models.Loan, *domain.EligibilityVerdict, error) {
	verdict, err := s.evaluate(ctx, app, engine.VariantStrict, false)
	if err != nil {
		return nil, nil, err
	}
	if !verdict.Approved {
		return nil, verdict, nil
	}

	loan := &models.Loan{
		RefNo:              uuid.New().String(),
		CustomerID:         app.CustomerID,
		LoanAmount:         app.LoanAmount,
		Tenure:             app.Tenure,
		InterestRate:       verdict.CorrectedRate,
		MonthlyInstallment: verdict.MonthlyInstallment,
		Status:             string(domain.StatusApproved),
		StartDate:          s.now(),
		EmiPaidOnTime:      true,
	}
	endDate := loan.StartDate.AddDate(0, app.Tenure, 0)
	loan.EndDate = &endDate

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, nil, err
	}

	// The history changed; a stale cached score must not outlive it.
	if s.scoreCache != nil {
		if err := s.scoreCache.Invalidate(ctx, app.CustomerID); err != nil {
			log.Printf("⚠️ Failed to invalidate score cache for customer %d: %v", app.CustomerID, err)
		}
	}

	return loan, verdict, nil
}

// evaluate runs the engine for one application. useCache permits serving the
// score from the cache; the mutating path always recomputes.
func (s *EligibilityService) evaluate(ctx context.Context, app *domain.LoanApplication, variant engine.Variant, useCache bool) (*domain.EligibilityVerdict, error) {
	customer, err := s.customerRepo.GetByID(ctx, app.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}

	emi, err := engine.ComputeEMI(app.LoanAmount, app.InterestRate, app.Tenure)
	if err != nil {
		return nil, err
	}

	score, err := s.creditScore(ctx, customer, useCache)
	if err != nil {
		return nil, err
	}

	decision := engine.Decide(variant, score, app.InterestRate, emi, customer.MonthlyIncome)

	return &domain.EligibilityVerdict{
		Approved:           decision.Approved,
		InterestRate:       app.InterestRate,
		CorrectedRate:      decision.CorrectedRate,
		MonthlyInstallment: emi,
		CreditScore:        score,
		Reason:             decision.Reason,
	}, nil
}

// creditScore computes the customer's score from loan history, serving and
// filling the cache when permitted. Cache failures degrade to recomputation.
func (s *EligibilityService) creditScore(ctx context.Context, customer *models.Customer, useCache bool) (int, error) {
	if useCache && s.scoreCache != nil {
		if score, ok := s.scoreCache.GetScore(ctx, customer.ID); ok {
			return score, nil
		}
	}

	loans, err := s.loanRepo.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		return 0, err
	}

	history := make([]engine.LoanRecord, 0, len(loans))
	for _, loan := range loans {
		history = append(history, loan.Record())
	}

	score := engine.ComputeScore(customer.Borrower(), history, s.now())

	if useCache && s.scoreCache != nil {
		if err := s.scoreCache.SetScore(ctx, customer.ID, score); err != nil {
			log.Printf("⚠️ Failed to cache score for customer %d: %v", customer.ID, err)
		}
	}

	return score, nil
}
