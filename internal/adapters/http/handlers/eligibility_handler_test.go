package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"creditdesk/internal/adapters/persistence/models"
	"creditdesk/internal/core/services"
)

type stubCustomerRepo struct {
	customers map[uint]*models.Customer
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id uint) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

func (r *stubCustomerRepo) GetByPhoneNumber(_ context.Context, _ string) (*models.Customer, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCustomerRepo) ExistsByPhoneNumber(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, _ *models.Customer) error { return nil }

func (r *stubCustomerRepo) List(_ context.Context, _, _ int) ([]*models.Customer, int64, error) {
	return nil, 0, nil
}

func (r *stubCustomerRepo) ListIDs(_ context.Context) ([]uint, error) { return nil, nil }

type stubLoanRepo struct {
	loans  []*models.Loan
	nextID uint
}

func (r *stubLoanRepo) Create(_ context.Context, loan *models.Loan) error {
	r.nextID++
	loan.ID = r.nextID
	r.loans = append(r.loans, loan)
	return nil
}

func (r *stubLoanRepo) GetByID(_ context.Context, _ uint) (*models.Loan, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLoanRepo) GetByCustomerID(_ context.Context, customerID uint) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, loan := range r.loans {
		if loan.CustomerID == customerID {
			out = append(out, loan)
		}
	}
	return out, nil
}

func (r *stubLoanRepo) Upsert(_ context.Context, loan *models.Loan) error {
	return r.Create(context.Background(), loan)
}

func newTestApp(loans []*models.Loan) *fiber.App {
	customerRepo := &stubCustomerRepo{customers: map[uint]*models.Customer{
		1: {
			ID:            1,
			FirstName:     "Asha",
			LastName:      "Rao",
			PhoneNumber:   "9000000001",
			MonthlyIncome: 50000,
			ApprovedLimit: 1800000,
			Age:           32,
		},
	}}
	loanRepo := &stubLoanRepo{loans: loans, nextID: 100}

	handler := NewEligibilityHandler(services.NewEligibilityService(customerRepo, loanRepo, nil))

	app := fiber.New()
	app.Post("/api/v1/check-eligibility", handler.CheckEligibility)
	app.Post("/api/v1/apply-loan", handler.ApplyLoan)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func loanTerms(customerID uint, amount, rate float64, tenure int) map[string]any {
	return map[string]any{
		"customer_id":   customerID,
		"loan_amount":   amount,
		"interest_rate": rate,
		"tenure":        tenure,
	}
}

// lateHistory yields a history noisy enough to push the score into the
// correction tier: six loans, five of them late.
func lateHistory() []*models.Loan {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	loans := make([]*models.Loan, 0, 6)
	for i := 0; i < 6; i++ {
		loans = append(loans, &models.Loan{
			ID:            uint(i + 1),
			CustomerID:    1,
			LoanAmount:    10000,
			Tenure:        12,
			InterestRate:  10,
			Status:        "APPROVED",
			StartDate:     start.AddDate(0, i, 0),
			EmiPaidOnTime: i == 0,
		})
	}
	return loans
}

func TestCheckEligibility_Approved(t *testing.T) {
	app := newTestApp(nil)

	resp := postJSON(t, app, "/api/v1/check-eligibility", loanTerms(1, 500000, 10, 24))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body EligibilityResponse
	decodeBody(t, resp, &body)

	assert.Equal(t, uint(1), body.CustomerID)
	assert.True(t, body.Approval)
	assert.Equal(t, 10.0, body.InterestRate)
	assert.Equal(t, 10.0, body.CorrectedInterestRate)
	assert.Equal(t, 24, body.Tenure)
	assert.InDelta(t, 23072.46, body.MonthlyInstallment, 0.01)
	assert.Empty(t, body.Reason)
}

func TestCheckEligibility_CorrectsLowRate(t *testing.T) {
	app := newTestApp(lateHistory())

	resp := postJSON(t, app, "/api/v1/check-eligibility", loanTerms(1, 100000, 5, 12))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body EligibilityResponse
	decodeBody(t, resp, &body)

	assert.True(t, body.Approval)
	assert.Equal(t, 5.0, body.InterestRate)
	assert.Equal(t, 12.0, body.CorrectedInterestRate)
}

func TestCheckEligibility_MissingField(t *testing.T) {
	app := newTestApp(nil)

	resp := postJSON(t, app, "/api/v1/check-eligibility", map[string]any{
		"customer_id": 1,
		"loan_amount": 500000,
		"tenure":      24,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckEligibility_UnknownCustomer(t *testing.T) {
	app := newTestApp(nil)

	resp := postJSON(t, app, "/api/v1/check-eligibility", loanTerms(42, 500000, 10, 24))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckEligibility_InvalidTerms(t *testing.T) {
	app := newTestApp(nil)

	resp := postJSON(t, app, "/api/v1/check-eligibility", loanTerms(1, 500000, 10, 0))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApplyLoan_Approved(t *testing.T) {
	app := newTestApp(nil)

	resp := postJSON(t, app, "/api/v1/apply-loan", loanTerms(1, 500000, 10, 24))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ApplicationResponse
	decodeBody(t, resp, &body)

	require.NotNil(t, body.LoanID)
	assert.Equal(t, uint(101), *body.LoanID)
	assert.Equal(t, uint(1), body.CustomerID)
	assert.True(t, body.LoanApproved)
	assert.Equal(t, "Loan approved", body.Message)
	assert.InDelta(t, 23072.46, body.MonthlyInstallment, 0.01)
}

func TestApplyLoan_RejectsLowRate(t *testing.T) {
	app := newTestApp(lateHistory())

	resp := postJSON(t, app, "/api/v1/apply-loan", loanTerms(1, 100000, 5, 12))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ApplicationResponse
	decodeBody(t, resp, &body)

	assert.Nil(t, body.LoanID)
	assert.False(t, body.LoanApproved)
	assert.Equal(t, "Loan not approved", body.Message)
}

func TestApplyLoan_EMITooHigh(t *testing.T) {
	app := newTestApp(nil)

	resp := postJSON(t, app, "/api/v1/apply-loan", loanTerms(1, 5000000, 10, 12))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ApplicationResponse
	decodeBody(t, resp, &body)

	assert.Nil(t, body.LoanID)
	assert.False(t, body.LoanApproved)
	assert.Equal(t, "EMI too high compared to income", body.Message)
}
