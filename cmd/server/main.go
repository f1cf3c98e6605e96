package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"creditdesk/internal/adapters/cache"
	"creditdesk/internal/adapters/http/middleware"
	"creditdesk/internal/adapters/http/routes"
	"creditdesk/internal/adapters/persistence/models"
	"creditdesk/internal/adapters/persistence/repositories"
	"creditdesk/internal/config"
	"creditdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "creditdesk/docs" // Swagger docs
)

// @title CreditDesk API
// @version 1.0
// @description Loan eligibility and credit scoring API

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Optional Redis score cache
	redisClient, err := config.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to redis: %v", err)
	}
	var scoreCache cache.ScoreCache
	if redisClient != nil {
		scoreCache = cache.NewRedisScoreCache(redisClient, cfg.Redis.ScoreTTL)
		defer redisClient.Close()
	}

	// Nightly credit score snapshots
	rescoreService := services.NewRescoreService(
		repositories.NewCustomerRepository(db),
		repositories.NewLoanRepository(db),
		repositories.NewScoreSnapshotRepository(db),
		scoreCache,
	)
	rescoreService.Start()
	defer rescoreService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CreditDesk API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, scoreCache, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
