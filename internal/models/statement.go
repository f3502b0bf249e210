// Package models defines the structured statement record produced by the
// extraction pipeline and its component value objects.
package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The statement JSON contract carries amounts as numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionFlag marks a transaction that tripped the high-value rule.
type TransactionFlag struct {
	IsHighValue bool   `json:"is_high_value"`
	Reason      string `json:"reason"`
}

// Transaction is one ledger line from the statement's transaction detail table.
// Amounts are signed: positive for deposits, negative for withdrawals.
type Transaction struct {
	ID                 int             `json:"id"`
	Date               string          `json:"Date"`
	Description        string          `json:"Description"`
	TransactionType    string          `json:"Transaction_Type"`
	Category           string          `json:"Category"`
	Amount             decimal.Decimal `json:"Amount"`
	Balance            decimal.Decimal `json:"Balance"`
	CategoryConfidence float64         `json:"Category_Confidence"`
	Location           string          `json:"Location"`
	Notes              string          `json:"Notes"`
	Flagged            TransactionFlag `json:"Flagged"`
}

// IsDeposit returns true if the transaction amount is positive.
func (t Transaction) IsDeposit() bool {
	return t.Amount.IsPositive()
}

// IsWithdrawal returns true if the transaction amount is negative.
func (t Transaction) IsWithdrawal() bool {
	return t.Amount.IsNegative()
}

// DateKey parses the MM/DD date field into its month and day components.
// ok is false when the field does not hold a valid month/day pair.
func (t Transaction) DateKey() (month, day int, ok bool) {
	parts := strings.Split(t.Date, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	day, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, false
	}
	return month, day, true
}

// CheckingSummary holds the four headline balance figures of the statement.
// A figure that could not be located in the text stays at zero.
type CheckingSummary struct {
	BeginningBalance      decimal.Decimal `json:"Beginning_Balance"`
	DepositsAndAdditions  decimal.Decimal `json:"Deposits_and_Additions"`
	ElectronicWithdrawals decimal.Decimal `json:"Electronic_Withdrawals"`
	EndingBalance         decimal.Decimal `json:"Ending_Balance"`
}

// TotalTransactions aggregates the ledger into recurring and one-off totals.
// Withdrawals are negative, so NetChange = TotalDeposits + TotalWithdrawals.
type TotalTransactions struct {
	TotalDeposits        decimal.Decimal `json:"Total_Deposits"`
	RecurringDeposits    decimal.Decimal `json:"Recurring_Deposits"`
	OneOffDeposits       decimal.Decimal `json:"One_Off_Deposits"`
	TotalWithdrawals     decimal.Decimal `json:"Total_Withdrawals"`
	RecurringWithdrawals decimal.Decimal `json:"Recurring_Withdrawals"`
	IrregularWithdrawals decimal.Decimal `json:"Irregular_Withdrawals"`
	NetChange            decimal.Decimal `json:"Net_Change"`
}

// LargestTransaction identifies the ledger entry with the largest absolute amount.
type LargestTransaction struct {
	Description string          `json:"Description"`
	Amount      decimal.Decimal `json:"Amount"`
	Date        string          `json:"Date"`
}

// SpendingAnalysis carries derived spending analytics.
// LargestTransaction is nil for an empty ledger.
type SpendingAnalysis struct {
	TotalSpentOnSubscriptions decimal.Decimal     `json:"total_spent_on_subscriptions"`
	LargestTransaction        *LargestTransaction `json:"largest_transaction"`
	AverageDailySpending      decimal.Decimal     `json:"average_daily_spending"`
}

// ValidationDetails is the reconciliation outcome for the whole statement.
type ValidationDetails struct {
	BalancesMatch            bool            `json:"balances_match"`
	AllTransactionsProcessed bool            `json:"all_transactions_processed"`
	DateRangeCovered         string          `json:"date_range_covered"`
	MissingTransactions      []string        `json:"missing_transactions"`
	RoundingDifferences      decimal.Decimal `json:"rounding_differences"`
}

// SessionMetadata identifies the processing session that produced a statement.
type SessionMetadata struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// StatementMetadata describes the document's identity and processing context.
// AccountNumber, Year and Month may be empty when extraction could not
// resolve them; that is a warning, not a failure.
type StatementMetadata struct {
	BankName           string            `json:"bank_name"`
	AccountNumber      string            `json:"account_number"`
	AccountHolder      string            `json:"account_holder"`
	Year               string            `json:"year"`
	Month              string            `json:"month"`
	Currency           string            `json:"currency"`
	ParsedBy           string            `json:"parsed_by"`
	ParsedOn           string            `json:"parsed_on"`
	ProcessingDuration string            `json:"processing_duration"`
	Timezone           string            `json:"timezone"`
	ValidationStatus   string            `json:"validation_status"`
	ValidationDetails  ValidationDetails `json:"validation_details"`
	SessionMetadata    SessionMetadata   `json:"session_metadata"`
}

// FileMetadata identifies the source document.
type FileMetadata struct {
	FileName string `json:"file_name"`
	FileSize string `json:"file_size"`
	FileHash string `json:"file_hash"`
}

// ErrorTracking collects recovered, non-fatal diagnostics: lines that did not
// fit the transaction grammar and sections that were not processed.
type ErrorTracking struct {
	UnprocessedSections []string `json:"unprocessed_sections"`
	ParsingErrors       []string `json:"parsing_errors"`
}

// StatementData is the aggregate root: the single structured record for one
// processed statement. It is immutable once returned by the pipeline.
type StatementData struct {
	Metadata          StatementMetadata `json:"metadata"`
	FileMetadata      FileMetadata      `json:"file_metadata"`
	TotalTransactions TotalTransactions `json:"Total_Transactions"`
	CheckingSummary   CheckingSummary   `json:"Checking_Summary"`
	TransactionDetail []Transaction     `json:"Transaction_Detail"`
	SpendingAnalysis  SpendingAnalysis  `json:"spending_analysis"`
	ErrorTracking     ErrorTracking     `json:"error_tracking"`
}
