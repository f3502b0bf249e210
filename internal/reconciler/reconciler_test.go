package reconciler

import (
	"testing"
	"time"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC)

func summaryOf(beginning, ending string) models.CheckingSummary {
	return models.CheckingSummary{
		BeginningBalance: decimal.RequireFromString(beginning),
		EndingBalance:    decimal.RequireFromString(ending),
	}
}

func TestReconcileBalanced(t *testing.T) {
	r := New(0.01, logging.NewMockLogger())
	transactions := []models.Transaction{
		{Date: "11/12", Amount: decimal.RequireFromString("3000.00")},
		{Date: "11/20", Amount: decimal.RequireFromString("-500.00")},
	}

	result := r.Reconcile(summaryOf("1000.00", "3500.00"), transactions, testNow)

	assert.Equal(t, models.StatusReconciled, result.Status)
	assert.True(t, result.Details.BalancesMatch)
	assert.True(t, result.Details.AllTransactionsProcessed)
	assert.True(t, result.Details.RoundingDifferences.IsZero())
	assert.Equal(t, []string{}, result.Details.MissingTransactions)
	assert.Equal(t, "2024-11-12 to 2024-11-20", result.Details.DateRangeCovered)
}

func TestReconcileUnbalanced(t *testing.T) {
	r := New(0.01, logging.NewMockLogger())
	transactions := []models.Transaction{
		{Date: "11/12", Amount: decimal.RequireFromString("100.00")},
	}

	result := r.Reconcile(summaryOf("1000.00", "1200.00"), transactions, testNow)

	assert.Equal(t, models.StatusUnreconciled, result.Status)
	assert.False(t, result.Details.BalancesMatch)
	assert.True(t, decimal.RequireFromString("100.00").Equal(result.Details.RoundingDifferences))
}

func TestReconcileToleranceBoundary(t *testing.T) {
	tests := []struct {
		name       string
		difference string
		status     string
	}{
		{name: "well inside tolerance", difference: "0.005", status: models.StatusReconciled},
		{name: "exactly at tolerance is out", difference: "0.01", status: models.StatusUnreconciled},
		{name: "outside tolerance", difference: "0.02", status: models.StatusUnreconciled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(0.01, logging.NewMockLogger())
			ending := decimal.RequireFromString("1000.00").Add(decimal.RequireFromString(tt.difference))
			result := r.Reconcile(
				summaryOf("1000.00", ending.String()),
				[]models.Transaction{{Date: "11/12", Amount: decimal.Zero}},
				testNow,
			)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func TestReconcileSpansMonths(t *testing.T) {
	r := New(0.01, logging.NewMockLogger())
	transactions := []models.Transaction{
		{Date: "12/01", Amount: decimal.Zero},
		{Date: "11/09", Amount: decimal.Zero},
		{Date: "12/10", Amount: decimal.Zero},
	}

	result := r.Reconcile(summaryOf("100.00", "100.00"), transactions, testNow)

	assert.Equal(t, "2024-11-09 to 2024-12-10", result.Details.DateRangeCovered)
}

func TestReconcileInvalidDateFailsValidation(t *testing.T) {
	mock := logging.NewMockLogger()
	r := New(0.01, mock)
	transactions := []models.Transaction{
		{Date: "garbage", Amount: decimal.RequireFromString("50.00")},
	}

	result := r.Reconcile(summaryOf("100.00", "150.00"), transactions, testNow)

	assert.Equal(t, models.StatusValidationFailed, result.Status)
	assert.True(t, mock.HasEntry("WARN", "Error validating balances"))
}

func TestReconcileEmptyLedger(t *testing.T) {
	r := New(0.01, logging.NewMockLogger())

	result := r.Reconcile(summaryOf("100.00", "100.00"), nil, testNow)

	assert.Equal(t, models.StatusReconciled, result.Status)
	assert.Empty(t, result.Details.DateRangeCovered)
}

func TestReconcileUsesClockYear(t *testing.T) {
	r := New(0.01, logging.NewMockLogger())
	transactions := []models.Transaction{{Date: "06/15", Amount: decimal.Zero}}

	result := r.Reconcile(
		summaryOf("0", "0"),
		transactions,
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, "2030-06-15 to 2030-06-15", result.Details.DateRangeCovered)
}
