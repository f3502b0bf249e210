// Package analytics computes ledger aggregates: deposit/withdrawal totals
// with recurring splits, and derived spending analysis.
package analytics

import (
	"strings"

	"github.com/almasriprojects/BankAPI/internal/models"
	"github.com/almasriprojects/BankAPI/internal/textutils"

	"github.com/shopspring/decimal"
)

// recurring keywords: a deposit is recurring when its description mentions a
// payroll or recurring marker; a withdrawal only when it says recurring.
var (
	recurringDepositKeywords    = []string{"recurring", "payrol"}
	recurringWithdrawalKeywords = []string{"recurring"}
)

// CalculateTotals sums the ledger into recurring and one-off totals per side.
// Withdrawal amounts are negative, so NetChange is the plain sum of both
// sides and the per-side invariant total = recurring + one-off holds.
func CalculateTotals(transactions []models.Transaction) models.TotalTransactions {
	var totals models.TotalTransactions

	for _, tx := range transactions {
		desc := strings.ToLower(tx.Description)
		switch {
		case tx.Amount.IsPositive():
			totals.TotalDeposits = totals.TotalDeposits.Add(tx.Amount)
			if containsAny(desc, recurringDepositKeywords) {
				totals.RecurringDeposits = totals.RecurringDeposits.Add(tx.Amount)
			}
		case tx.Amount.IsNegative():
			totals.TotalWithdrawals = totals.TotalWithdrawals.Add(tx.Amount)
			if containsAny(desc, recurringWithdrawalKeywords) {
				totals.RecurringWithdrawals = totals.RecurringWithdrawals.Add(tx.Amount)
			}
		}
	}

	totals.OneOffDeposits = totals.TotalDeposits.Sub(totals.RecurringDeposits)
	totals.IrregularWithdrawals = totals.TotalWithdrawals.Sub(totals.RecurringWithdrawals)
	totals.NetChange = totals.TotalDeposits.Add(totals.TotalWithdrawals)

	return totals
}

// AnalyzeSpending derives the spending analysis. windowDays is the assumed
// statement period length for average daily spending. An empty ledger is a
// valid edge case: all figures are zero and the largest transaction is nil.
func AnalyzeSpending(transactions []models.Transaction, windowDays int) models.SpendingAnalysis {
	analysis := models.SpendingAnalysis{}
	if len(transactions) == 0 {
		return analysis
	}

	// Subscription spend is reported as the signed (non-positive) sum.
	for _, tx := range transactions {
		if tx.Category == models.CategorySubscription && tx.Amount.IsNegative() {
			analysis.TotalSpentOnSubscriptions = analysis.TotalSpentOnSubscriptions.Add(tx.Amount)
		}
	}

	analysis.LargestTransaction = largestTransaction(transactions)

	totalWithdrawn := decimal.Zero
	for _, tx := range transactions {
		if tx.Amount.IsNegative() {
			totalWithdrawn = totalWithdrawn.Add(tx.Amount.Abs())
		}
	}
	if !totalWithdrawn.IsZero() && windowDays > 0 {
		analysis.AverageDailySpending = totalWithdrawn.Div(decimal.NewFromInt(int64(windowDays)))
	}

	return analysis
}

// largestTransaction selects the entry with the maximum absolute amount.
// Ties keep the first occurrence in list order. The description is reduced
// to its leading word, matching the established output contract.
func largestTransaction(transactions []models.Transaction) *models.LargestTransaction {
	largest := transactions[0]
	for _, tx := range transactions[1:] {
		if tx.Amount.Abs().GreaterThan(largest.Amount.Abs()) {
			largest = tx
		}
	}
	return &models.LargestTransaction{
		Description: textutils.FirstWords(largest.Description, 1),
		Amount:      largest.Amount,
		Date:        largest.Date,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
