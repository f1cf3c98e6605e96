package routes

import (
	"time"

	"creditdesk/internal/adapters/cache"
	"creditdesk/internal/adapters/http/handlers"
	"creditdesk/internal/adapters/http/middleware"
	"creditdesk/internal/adapters/persistence/repositories"
	"creditdesk/internal/config"
	"creditdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application.
// scoreCache may be nil when Redis is disabled.
func Setup(app *fiber.App, db *gorm.DB, scoreCache cache.ScoreCache, cfg *config.Config) {
	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo)
	loanService := services.NewLoanService(loanRepo, customerRepo)
	eligibilityService := services.NewEligibilityService(customerRepo, loanRepo, scoreCache)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	customerHandler := handlers.NewCustomerHandler(customerService)
	loanHandler := handlers.NewLoanHandler(loanService)
	eligibilityHandler := handlers.NewEligibilityHandler(eligibilityService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Customers
	apiV1.Post("/register", customerHandler.Register)
	apiV1.Get("/customers", customerHandler.List)

	// Eligibility engine. Verdicts depend on live history: never HTTP-cached.
	apiV1.Post("/check-eligibility", middleware.NoCacheHeaders(), eligibilityHandler.CheckEligibility)
	apiV1.Post("/apply-loan", middleware.ApplicationRateLimiter(), middleware.NoCacheHeaders(), eligibilityHandler.ApplyLoan)

	// Loan views
	apiV1.Get("/view-loan/:loan_id", middleware.PrivateCacheHeaders(30*time.Second), loanHandler.ViewLoan)
	apiV1.Get("/view-loans/:customer_id", middleware.PrivateCacheHeaders(30*time.Second), loanHandler.ViewLoans)
}
