package chaseparser

import (
	"testing"

	"github.com/almasriprojects/BankAPI/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return New([]string{"$5,993.00"}, logging.NewMockLogger())
}

func TestParseExtractsTransactionDetail(t *testing.T) {
	lines := []string{
		"JPMorgan Chase Bank, N.A.",
		"Account Number: 000001234567",
		"TRANSACTION DETAIL",
		"DATE DESCRIPTION AMOUNT BALANCE",
		"Beginning Balance",
		"11/12 Jpm Payroll ID:123 3,004.81 7,487.03",
		"11/14 Zelle Payment From John 90.00 7,577.03",
		"11/15 Spotify Premium Recurring -10.99 7,566.04",
		"Ending Balance $7,566.04",
	}

	p := newTestParser()
	transactions, skipped := p.Parse(lines)

	require.Len(t, transactions, 3)
	assert.Empty(t, skipped)

	first := transactions[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "11/12", first.Date)
	assert.Equal(t, "Jpm Payroll ID:123", first.Description)
	assert.True(t, decimal.RequireFromString("3004.81").Equal(first.Amount))
	assert.True(t, decimal.RequireFromString("7487.03").Equal(first.Balance))

	assert.True(t, transactions[2].Amount.IsNegative())
}

func TestParseIgnoresLinesBeforeSectionMarker(t *testing.T) {
	lines := []string{
		"11/12 Looks Like A Transaction 100.00 200.00",
		"TRANSACTION DETAIL",
		"11/13 Real Transaction 50.00 250.00",
	}

	p := newTestParser()
	transactions, skipped := p.Parse(lines)

	require.Len(t, transactions, 1)
	assert.Equal(t, "Real Transaction", transactions[0].Description)
	assert.Empty(t, skipped)
}

func TestParseRecordsDiagnosticForMalformedCandidate(t *testing.T) {
	lines := []string{
		"TRANSACTION DETAIL",
		"11/12 Broken Amount abc 7,487.03",
		"11/13 Good Line 25.00 7,512.03",
	}

	p := newTestParser()
	transactions, skipped := p.Parse(lines)

	require.Len(t, transactions, 1)
	require.Len(t, skipped, 1)
	assert.Contains(t, skipped[0], "amount")
	assert.Contains(t, skipped[0], "11/12 Broken Amount abc 7,487.03")
}

func TestParseSilentlyDropsNonCandidates(t *testing.T) {
	lines := []string{
		"TRANSACTION DETAIL",
		"Page 2 of 4",
		"short line",
		"SERVICE CHARGE SUMMARY FOR THE PERIOD ENDING",
		"11/13 Good Line 25.00 7,512.03",
	}

	p := newTestParser()
	transactions, skipped := p.Parse(lines)

	require.Len(t, transactions, 1)
	assert.Empty(t, skipped, "non-candidate lines must not produce diagnostics")
}

func TestParseSkipsNoiseAndStructuralLines(t *testing.T) {
	lines := []string{
		"TRANSACTION DETAIL",
		"DATE DESCRIPTION AMOUNT BALANCE",
		"Beginning Balance",
		"11/12 Artifact Row $5,993.00 7,487.03",
		"Ending Balance $7,487.03",
		"11/13 Kept Row 10.00 7,497.03",
	}

	p := newTestParser()
	transactions, skipped := p.Parse(lines)

	require.Len(t, transactions, 1)
	assert.Equal(t, "Kept Row", transactions[0].Description)
	assert.Empty(t, skipped)
}

func TestParseAppliesOCRRepairs(t *testing.T) {
	lines := []string{
		"TRANSACTION DETAIL",
		"11/12 Jom Payroll 1D:123 Pmt__Web 3,004.81 7,487.03",
	}

	p := newTestParser()
	transactions, _ := p.Parse(lines)

	require.Len(t, transactions, 1)
	assert.Equal(t, "Jpm Payroll ID:123 Pmt Web", transactions[0].Description)
}

func TestParseSortsByMonthDayKeepingParseOrderForSameDay(t *testing.T) {
	lines := []string{
		"TRANSACTION DETAIL",
		"12/01 Later Month 10.00 100.00",
		"11/15 Mid Month 10.00 110.00",
		"11/15 Same Day Second 10.00 120.00",
		"11/02 Early Month 10.00 130.00",
	}

	p := newTestParser()
	transactions, _ := p.Parse(lines)

	require.Len(t, transactions, 4)
	assert.Equal(t, "Early Month", transactions[0].Description)
	assert.Equal(t, "Mid Month", transactions[1].Description)
	assert.Equal(t, "Same Day Second", transactions[2].Description)
	assert.Equal(t, "Later Month", transactions[3].Description)

	// IDs stay in parse order, not sorted order.
	assert.Equal(t, 2, transactions[1].ID)
	assert.Equal(t, 3, transactions[2].ID)
	assert.Equal(t, 4, transactions[0].ID)
	assert.Equal(t, 1, transactions[3].ID)
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		token string
		valid bool
	}{
		{"11/12", true},
		{"1/5", true},
		{"0131", true},
		{"1214", true},
		{"13/01", false},
		{"12/32", false},
		{"0043", false},
		{"123", false},
		{"12345", false},
		{"ab/cd", false},
		{"11/12/24", false},
		{"word", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidDate(tt.token))
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := newTestParser()
	transactions, skipped := p.Parse(nil)

	assert.Empty(t, transactions)
	assert.Empty(t, skipped)
}
