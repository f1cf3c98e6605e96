package main

import (
	"context"
	"flag"
	"log"

	"creditdesk/internal/adapters/persistence/models"
	"creditdesk/internal/adapters/persistence/repositories"
	"creditdesk/internal/config"
	"creditdesk/internal/importer"
)

func main() {
	customerFile := flag.String("customers", "", "path to customer_data.csv")
	loanFile := flag.String("loans", "", "path to loan_data.csv")
	flag.Parse()

	if *customerFile == "" && *loanFile == "" {
		log.Fatal("❌ Nothing to import: pass -customers and/or -loans")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}

	imp := importer.New(
		repositories.NewCustomerRepository(db),
		repositories.NewLoanRepository(db),
	)
	ctx := context.Background()

	// Customers first: loans reference them
	if *customerFile != "" {
		if _, err := imp.ImportCustomers(ctx, *customerFile); err != nil {
			log.Fatalf("❌ Customer import failed: %v", err)
		}
	}
	if *loanFile != "" {
		if _, err := imp.ImportLoans(ctx, *loanFile); err != nil {
			log.Fatalf("❌ Loan import failed: %v", err)
		}
	}
}
