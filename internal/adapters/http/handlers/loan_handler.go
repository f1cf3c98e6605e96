package handlers

import (
	"errors"
	"strconv"

	"creditdesk/internal/core/domain"
	"creditdesk/internal/core/services"
	"creditdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan read endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// ViewLoan gets a loan by ID
// @Summary View loan
// @Description Retrieve details of a specific loan by ID
// @Tags Loans
// @Accept json
// @Produce json
// @Param loan_id path int true "Loan ID"
// @Success 200 {object} models.LoanResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /view-loan/{loan_id} [get]
func (h *LoanHandler) ViewLoan(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("loan_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			return response.NotFound(c, "Loan not found")
		}
		return response.InternalServerError(c, "Failed to get loan")
	}

	return c.JSON(loan.ToResponse())
}

// ViewLoans gets all loans of a customer
// @Summary View customer loans
// @Description Retrieve all loans associated with a specific customer ID
// @Tags Loans
// @Accept json
// @Produce json
// @Param customer_id path int true "Customer ID"
// @Success 200 {array} models.LoanResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /view-loans/{customer_id} [get]
func (h *LoanHandler) ViewLoans(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("customer_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid customer ID")
	}

	loans, err := h.loanService.GetByCustomerID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.InternalServerError(c, "Failed to get loans")
	}

	items := make([]interface{}, 0, len(loans))
	for _, loan := range loans {
		items = append(items, loan.ToResponse())
	}

	return c.JSON(items)
}
