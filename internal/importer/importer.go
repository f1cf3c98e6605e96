package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"creditdesk/internal/adapters/persistence/models"
	"creditdesk/internal/adapters/persistence/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultAge is assigned when the customer feed has no Age column
const defaultAge = 30

// Importer ingests the assignment data feeds (customer_data.csv and
// loan_data.csv) with upsert semantics: customers are keyed on phone number,
// loans on their feed-assigned ID, so replaying a feed is idempotent.
type Importer struct {
	customerRepo repositories.CustomerRepository
	loanRepo     repositories.LoanRepository
}

// New creates a new importer
func New(customerRepo repositories.CustomerRepository, loanRepo repositories.LoanRepository) *Importer {
	return &Importer{customerRepo: customerRepo, loanRepo: loanRepo}
}

// CustomerRow is one parsed row of the customer feed
type CustomerRow struct {
	CustomerID    uint
	FirstName     string
	LastName      string
	PhoneNumber   string
	MonthlySalary float64
	ApprovedLimit float64
	Age           int
}

// LoanRow is one parsed row of the loan feed
type LoanRow struct {
	LoanID             uint
	CustomerID         uint
	LoanAmount         float64
	Tenure             int
	InterestRate       float64
	MonthlyInstallment float64
	StartDate          time.Time
	EndDate            *time.Time
}

// ImportCustomers ingests the customer feed. Returns the number of rows
// imported; malformed rows abort the run so a broken feed is caught early.
func (i *Importer) ImportCustomers(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := ParseCustomers(f)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, row := range rows {
		if err := i.upsertCustomer(ctx, row); err != nil {
			return imported, fmt.Errorf("customer row (phone %s): %w", row.PhoneNumber, err)
		}
		imported++
	}

	log.Printf("✅ Imported %d customers from %s", imported, path)
	return imported, nil
}

// ImportLoans ingests the loan feed. Rows referencing unknown customers are
// skipped with a log line, matching the historical import behavior.
func (i *Importer) ImportLoans(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := ParseLoans(f)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, row := range rows {
		if _, err := i.customerRepo.GetByID(ctx, row.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("⚠️ Customer %d not found, skipping loan %d", row.CustomerID, row.LoanID)
				continue
			}
			return imported, err
		}

		loan := &models.Loan{
			ID:                 row.LoanID,
			RefNo:              uuid.New().String(),
			CustomerID:         row.CustomerID,
			LoanAmount:         row.LoanAmount,
			Tenure:             row.Tenure,
			InterestRate:       row.InterestRate,
			MonthlyInstallment: row.MonthlyInstallment,
			Status:             "APPROVED",
			StartDate:          row.StartDate,
			EndDate:            row.EndDate,
			EmiPaidOnTime:      true,
		}
		if err := i.loanRepo.Upsert(ctx, loan); err != nil {
			return imported, fmt.Errorf("loan row %d: %w", row.LoanID, err)
		}
		imported++
	}

	log.Printf("✅ Imported %d loans from %s", imported, path)
	return imported, nil
}

// upsertCustomer updates the customer with the row's phone number or
// creates one when absent
func (i *Importer) upsertCustomer(ctx context.Context, row CustomerRow) error {
	customer, err := i.customerRepo.GetByPhoneNumber(ctx, row.PhoneNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if customer == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return i.customerRepo.Create(ctx, &models.Customer{
			ID:            row.CustomerID,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			PhoneNumber:   row.PhoneNumber,
			MonthlyIncome: row.MonthlySalary,
			ApprovedLimit: row.ApprovedLimit,
			Age:           row.Age,
		})
	}

	customer.FirstName = row.FirstName
	customer.LastName = row.LastName
	customer.MonthlyIncome = row.MonthlySalary
	customer.ApprovedLimit = row.ApprovedLimit
	customer.Age = row.Age
	return i.customerRepo.Update(ctx, customer)
}

// ParseCustomers parses the customer feed CSV. The header row drives column
// lookup so column order in the feed does not matter. The Age column is
// optional and defaults to 30.
func ParseCustomers(r io.Reader) ([]CustomerRow, error) {
	records, header, err := readAll(r)
	if err != nil {
		return nil, err
	}

	required := []string{"Customer ID", "First Name", "Last Name", "Phone Number", "Monthly Salary", "Approved Limit"}
	if err := requireColumns(header, required); err != nil {
		return nil, err
	}

	rows := make([]CustomerRow, 0, len(records))
	for n, record := range records {
		row := CustomerRow{
			FirstName:   field(record, header, "First Name"),
			LastName:    field(record, header, "Last Name"),
			PhoneNumber: field(record, header, "Phone Number"),
			Age:         defaultAge,
		}
		if row.PhoneNumber == "" {
			return nil, fmt.Errorf("row %d: empty phone number", n+2)
		}

		id, err := parseUint(field(record, header, "Customer ID"))
		if err != nil {
			return nil, fmt.Errorf("row %d: customer id: %w", n+2, err)
		}
		row.CustomerID = id

		if row.MonthlySalary, err = parseFloat(field(record, header, "Monthly Salary")); err != nil {
			return nil, fmt.Errorf("row %d: monthly salary: %w", n+2, err)
		}
		if row.ApprovedLimit, err = parseFloat(field(record, header, "Approved Limit")); err != nil {
			return nil, fmt.Errorf("row %d: approved limit: %w", n+2, err)
		}
		if raw := field(record, header, "Age"); raw != "" {
			age, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: age: %w", n+2, err)
			}
			row.Age = age
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// ParseLoans parses the loan feed CSV
func ParseLoans(r io.Reader) ([]LoanRow, error) {
	records, header, err := readAll(r)
	if err != nil {
		return nil, err
	}

	required := []string{"Customer ID", "Loan ID", "Loan Amount", "Tenure", "Interest Rate", "Monthly payment", "Date of Approval"}
	if err := requireColumns(header, required); err != nil {
		return nil, err
	}

	rows := make([]LoanRow, 0, len(records))
	for n, record := range records {
		var row LoanRow
		var err error

		if row.LoanID, err = parseUint(field(record, header, "Loan ID")); err != nil {
			return nil, fmt.Errorf("row %d: loan id: %w", n+2, err)
		}
		if row.CustomerID, err = parseUint(field(record, header, "Customer ID")); err != nil {
			return nil, fmt.Errorf("row %d: customer id: %w", n+2, err)
		}
		if row.LoanAmount, err = parseFloat(field(record, header, "Loan Amount")); err != nil {
			return nil, fmt.Errorf("row %d: loan amount: %w", n+2, err)
		}
		if row.Tenure, err = strconv.Atoi(field(record, header, "Tenure")); err != nil {
			return nil, fmt.Errorf("row %d: tenure: %w", n+2, err)
		}
		if row.InterestRate, err = parseFloat(field(record, header, "Interest Rate")); err != nil {
			return nil, fmt.Errorf("row %d: interest rate: %w", n+2, err)
		}
		if row.MonthlyInstallment, err = parseFloat(field(record, header, "Monthly payment")); err != nil {
			return nil, fmt.Errorf("row %d: monthly payment: %w", n+2, err)
		}
		if row.StartDate, err = parseDate(field(record, header, "Date of Approval")); err != nil {
			return nil, fmt.Errorf("row %d: date of approval: %w", n+2, err)
		}
		if raw := field(record, header, "End Date"); raw != "" {
			endDate, err := parseDate(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: end date: %w", n+2, err)
			}
			row.EndDate = &endDate
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// readAll reads a CSV and splits header from data rows
func readAll(r io.Reader) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("empty file")
	}

	header := make(map[string]int, len(records[0]))
	for idx, name := range records[0] {
		header[name] = idx
	}
	return records[1:], header, nil
}

func requireColumns(header map[string]int, names []string) error {
	for _, name := range names {
		if _, ok := header[name]; !ok {
			return fmt.Errorf("missing column %q", name)
		}
	}
	return nil
}

func field(record []string, header map[string]int, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint(v), err
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// parseDate accepts the date formats seen in the feeds
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", "1/2/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
