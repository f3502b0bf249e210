// Package reconciler validates that the ledger accounts for the headline
// balances: beginning balance plus the net of all transactions must equal
// the reported ending balance within a small tolerance.
package reconciler

import (
	"fmt"
	"time"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"

	"github.com/shopspring/decimal"
)

// Result is the reconciliation outcome. A mismatch is not an error: it is
// the normal StatusUnreconciled outcome with a rounding-difference figure.
// StatusValidationFailed means the computation itself could not run.
type Result struct {
	Status  string
	Details models.ValidationDetails
}

// Reconciler checks the ledger against the checking summary.
type Reconciler struct {
	tolerance decimal.Decimal
	logger    logging.Logger
}

// New creates a Reconciler with the given absolute tolerance.
func New(tolerance float64, logger logging.Logger) *Reconciler {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Reconciler{
		tolerance: decimal.NewFromFloat(tolerance),
		logger:    logger,
	}
}

// Reconcile computes beginning + sum(amounts), compares it against the ending
// balance and reports the covered date range. The date range uses now's year
// for both endpoints; the statement's own year is not consulted, and dates
// are compared by (month, day) only, so a statement spanning a year boundary
// keeps the source system's single-year assumption.
func (r *Reconciler) Reconcile(summary models.CheckingSummary, transactions []models.Transaction, now time.Time) Result {
	calculated := summary.BeginningBalance
	for _, tx := range transactions {
		calculated = calculated.Add(tx.Amount)
	}
	difference := calculated.Sub(summary.EndingBalance).Abs()

	status := models.StatusUnreconciled
	if difference.LessThan(r.tolerance) {
		status = models.StatusReconciled
	}

	dateRange, err := dateRange(transactions, now.Year())
	if err != nil {
		r.logger.WithError(err).Warn("Error validating balances")
		status = models.StatusValidationFailed
	}

	r.logger.WithFields(
		logging.Field{Key: logging.FieldStatus, Value: status},
		logging.Field{Key: "difference", Value: difference.String()},
	).Debug("Reconciled statement balances")

	return Result{
		Status: status,
		Details: models.ValidationDetails{
			BalancesMatch:            status == models.StatusReconciled,
			AllTransactionsProcessed: true,
			DateRangeCovered:         dateRange,
			MissingTransactions:      []string{},
			RoundingDifferences:      difference,
		},
	}
}

// dateRange formats "<year>-<minMM>-<minDD> to <year>-<maxMM>-<maxDD>" over
// the (month, day) keys of the ledger. Empty ledger yields an empty range.
func dateRange(transactions []models.Transaction, year int) (string, error) {
	if len(transactions) == 0 {
		return "", nil
	}

	minMonth, minDay := 13, 32
	maxMonth, maxDay := 0, 0
	for _, tx := range transactions {
		month, day, ok := tx.DateKey()
		if !ok {
			return "", fmt.Errorf("invalid transaction date %q", tx.Date)
		}
		if month < minMonth || (month == minMonth && day < minDay) {
			minMonth, minDay = month, day
		}
		if month > maxMonth || (month == maxMonth && day > maxDay) {
			maxMonth, maxDay = month, day
		}
	}

	return fmt.Sprintf("%d-%02d-%02d to %d-%02d-%02d", year, minMonth, minDay, year, maxMonth, maxDay), nil
}
