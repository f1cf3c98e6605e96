package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomers(t *testing.T) {
	feed := strings.Join([]string{
		"Customer ID,First Name,Last Name,Phone Number,Monthly Salary,Approved Limit,Age",
		"1,Asha,Rao,9000000001,50000,1800000,32",
		"2,Ravi,Kumar,9000000002,30000,1100000,",
	}, "\n")

	rows, err := ParseCustomers(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, uint(1), rows[0].CustomerID)
	assert.Equal(t, "Asha", rows[0].FirstName)
	assert.Equal(t, "9000000001", rows[0].PhoneNumber)
	assert.Equal(t, 50000.0, rows[0].MonthlySalary)
	assert.Equal(t, 1800000.0, rows[0].ApprovedLimit)
	assert.Equal(t, 32, rows[0].Age)

	// Missing age falls back to the default
	assert.Equal(t, 30, rows[1].Age)
}

func TestParseCustomers_MissingAgeColumn(t *testing.T) {
	feed := strings.Join([]string{
		"Customer ID,First Name,Last Name,Phone Number,Monthly Salary,Approved Limit",
		"1,Asha,Rao,9000000001,50000,1800000",
	}, "\n")

	rows, err := ParseCustomers(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 30, rows[0].Age)
}

func TestParseCustomers_MissingColumn(t *testing.T) {
	feed := "Customer ID,First Name\n1,Asha"
	_, err := ParseCustomers(strings.NewReader(feed))
	assert.ErrorContains(t, err, "missing column")
}

func TestParseCustomers_MalformedSalary(t *testing.T) {
	feed := strings.Join([]string{
		"Customer ID,First Name,Last Name,Phone Number,Monthly Salary,Approved Limit",
		"1,Asha,Rao,9000000001,not-a-number,1800000",
	}, "\n")

	_, err := ParseCustomers(strings.NewReader(feed))
	assert.ErrorContains(t, err, "monthly salary")
}

func TestParseLoans(t *testing.T) {
	feed := strings.Join([]string{
		"Customer ID,Loan ID,Loan Amount,Tenure,Interest Rate,Monthly payment,Date of Approval,End Date",
		"1,100,500000,24,10.5,23129.47,2023-04-01,2025-04-01",
		"2,101,100000,12,8,8698.84,2024-02-15,",
	}, "\n")

	rows, err := ParseLoans(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, uint(100), rows[0].LoanID)
	assert.Equal(t, uint(1), rows[0].CustomerID)
	assert.Equal(t, 500000.0, rows[0].LoanAmount)
	assert.Equal(t, 24, rows[0].Tenure)
	assert.Equal(t, 10.5, rows[0].InterestRate)
	assert.Equal(t, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), rows[0].StartDate)
	require.NotNil(t, rows[0].EndDate)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *rows[0].EndDate)

	// Open-ended loan keeps a nil end date
	assert.Nil(t, rows[1].EndDate)
}

func TestParseLoans_BadDate(t *testing.T) {
	feed := strings.Join([]string{
		"Customer ID,Loan ID,Loan Amount,Tenure,Interest Rate,Monthly payment,Date of Approval",
		"1,100,500000,24,10.5,23129.47,someday",
	}, "\n")

	_, err := ParseLoans(strings.NewReader(feed))
	assert.ErrorContains(t, err, "date of approval")
}
