package handlers

import (
	"errors"

	"creditdesk/internal/core/domain"
	"creditdesk/internal/core/services"
	"creditdesk/internal/pkg/pagination"
	"creditdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterCustomerRequest represents register customer request
type RegisterCustomerRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	PhoneNumber   string   `json:"phone_number"`
	MonthlyIncome *float64 `json:"monthly_income"`
	Age           *int     `json:"age"`
}

// Register registers a new customer
// @Summary Register customer
// @Description Register a new customer. The approved credit limit is derived as 36x monthly income, rounded to the nearest lakh.
// @Tags Customers
// @Accept json
// @Produce json
// @Param body body RegisterCustomerRequest true "Customer data"
// @Success 201 {object} models.CustomerResponse
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var req RegisterCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.PhoneNumber == "" {
		return response.BadRequest(c, "first_name, last_name and phone_number are required")
	}
	if req.MonthlyIncome == nil || *req.MonthlyIncome <= 0 {
		return response.BadRequest(c, "monthly_income must be a positive number")
	}
	if req.Age == nil || *req.Age <= 0 {
		return response.BadRequest(c, "age must be a positive integer")
	}

	input := &services.RegisterCustomerInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PhoneNumber:   req.PhoneNumber,
		MonthlyIncome: *req.MonthlyIncome,
		Age:           *req.Age,
	}

	customer, err := h.customerService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerAlreadyExists):
			return response.Conflict(c, "Customer with this phone number already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid customer data")
		default:
			return response.InternalServerError(c, "Failed to register customer")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(customer.ToResponse())
}

// List lists customers
// @Summary List customers
// @Description List registered customers with pagination
// @Tags Customers
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	params := pagination.FromQuery(c)

	customers, total, err := h.customerService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list customers")
	}

	items := make([]interface{}, 0, len(customers))
	for _, customer := range customers {
		items = append(items, customer.ToResponse())
	}

	return response.Success(c, "Customers retrieved successfully", fiber.Map{
		"customers": items,
		"meta":      params.MetaFor(total),
	})
}
