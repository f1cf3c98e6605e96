package handlers

import (
	"errors"

	"creditdesk/internal/core/domain"
	"creditdesk/internal/core/engine"
	"creditdesk/internal/core/services"
	"creditdesk/internal/pkg/money"
	"creditdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EligibilityHandler handles the eligibility inquiry and loan application
// endpoints. Field names in the request and response shapes are the external
// contract; monetary amounts are rounded to 2 decimals here and nowhere
// upstream.
type EligibilityHandler struct {
	eligibilityService *services.EligibilityService
}

// NewEligibilityHandler creates a new eligibility handler
func NewEligibilityHandler(eligibilityService *services.EligibilityService) *EligibilityHandler {
	return &EligibilityHandler{eligibilityService: eligibilityService}
}

// LoanTermsRequest represents the shared input of both endpoints
type LoanTermsRequest struct {
	CustomerID   *uint    `json:"customer_id"`
	LoanAmount   *float64 `json:"loan_amount"`
	InterestRate *float64 `json:"interest_rate"`
	Tenure       *int     `json:"tenure"`
}

// application builds the engine input after field validation
func (r *LoanTermsRequest) application() (*domain.LoanApplication, bool) {
	if r.CustomerID == nil || r.LoanAmount == nil || r.InterestRate == nil || r.Tenure == nil {
		return nil, false
	}
	return &domain.LoanApplication{
		CustomerID:   *r.CustomerID,
		LoanAmount:   *r.LoanAmount,
		InterestRate: *r.InterestRate,
		Tenure:       *r.Tenure,
	}, true
}

// EligibilityResponse represents the inquiry output contract
type EligibilityResponse struct {
	CustomerID            uint    `json:"customer_id"`
	Approval              bool    `json:"approval"`
	InterestRate          float64 `json:"interest_rate"`
	CorrectedInterestRate float64 `json:"corrected_interest_rate"`
	Tenure                int     `json:"tenure"`
	MonthlyInstallment    float64 `json:"monthly_installment"`
	Reason                string  `json:"reason,omitempty"`
}

// ApplicationResponse represents the application output contract
type ApplicationResponse struct {
	LoanID             *uint   `json:"loan_id"`
	CustomerID         uint    `json:"customer_id"`
	LoanApproved       bool    `json:"loan_approved"`
	Message            string  `json:"message"`
	MonthlyInstallment float64 `json:"monthly_installment"`
}

// CheckEligibility evaluates a proposed loan without persisting anything
// @Summary Check loan eligibility
// @Description Compute the credit score and EMI for a proposed loan and return the verdict. A requested rate below the tier floor is corrected upward.
// @Tags Eligibility
// @Accept json
// @Produce json
// @Param body body LoanTermsRequest true "Proposed loan terms"
// @Success 200 {object} EligibilityResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /check-eligibility [post]
func (h *EligibilityHandler) CheckEligibility(c *fiber.Ctx) error {
	var req LoanTermsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request data")
	}

	app, ok := req.application()
	if !ok {
		return response.BadRequest(c, "Invalid request data")
	}

	verdict, err := h.eligibilityService.CheckEligibility(c.Context(), app)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(EligibilityResponse{
		CustomerID:            app.CustomerID,
		Approval:              verdict.Approved,
		InterestRate:          verdict.InterestRate,
		CorrectedInterestRate: verdict.CorrectedRate,
		Tenure:                app.Tenure,
		MonthlyInstallment:    money.Round2(verdict.MonthlyInstallment),
		Reason:                verdict.Reason,
	})
}

// ApplyLoan processes a loan application
// @Summary Apply for a loan
// @Description Evaluate a loan application and persist it with status APPROVED when the verdict is positive. Rejected applications are not persisted.
// @Tags Eligibility
// @Accept json
// @Produce json
// @Param body body LoanTermsRequest true "Requested loan terms"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /apply-loan [post]
func (h *EligibilityHandler) ApplyLoan(c *fiber.Ctx) error {
	var req LoanTermsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request data")
	}

	app, ok := req.application()
	if !ok {
		return response.BadRequest(c, "Invalid request data")
	}

	loan, verdict, err := h.eligibilityService.ApplyLoan(c.Context(), app)
	if err != nil {
		return h.mapError(c, err)
	}

	resp := ApplicationResponse{
		CustomerID:         app.CustomerID,
		LoanApproved:       verdict.Approved,
		Message:            applicationMessage(verdict),
		MonthlyInstallment: money.Round2(verdict.MonthlyInstallment),
	}
	if loan != nil {
		resp.LoanID = &loan.ID
	}

	return c.JSON(resp)
}

// applicationMessage mirrors the historical response wording
func applicationMessage(verdict *domain.EligibilityVerdict) string {
	switch {
	case verdict.Approved && verdict.CreditScore > 50:
		return "Loan approved"
	case verdict.Approved:
		return "Loan approved with adjusted interest rate"
	case verdict.Reason == engine.ReasonEMITooHigh:
		return engine.ReasonEMITooHigh
	default:
		return "Loan not approved"
	}
}

// mapError maps service errors onto HTTP status codes
func (h *EligibilityHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return response.NotFound(c, "Customer not found")
	case errors.Is(err, engine.ErrInvalidTerms):
		return response.BadRequest(c, "Invalid loan terms")
	default:
		return response.InternalServerError(c, "Failed to evaluate loan")
	}
}
