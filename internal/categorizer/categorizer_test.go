package categorizer

import (
	"testing"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      string
		wantType    string
		wantCat     string
		wantConf    float64
	}{
		{
			name:        "payroll deposit",
			description: "Jpm Jobr Payrol ID:123",
			amount:      "3004.81",
			wantType:    models.TransactionTypeDeposit,
			wantCat:     models.CategorySalary,
			wantConf:    0.99,
		},
		{
			name:        "zelle transfer",
			description: "Zelle Payment From John",
			amount:      "90.00",
			wantType:    models.TransactionTypeDeposit,
			wantCat:     models.CategoryTransfer,
			wantConf:    0.98,
		},
		{
			name:        "recurring subscription",
			description: "Spotify Premium Recurring",
			amount:      "-10.99",
			wantType:    models.TransactionTypeWithdrawal,
			wantCat:     models.CategorySubscription,
			wantConf:    0.95,
		},
		{
			name:        "payment by keyword",
			description: "Web Payment To Landlord",
			amount:      "-1200.00",
			wantType:    models.TransactionTypeWithdrawal,
			wantCat:     models.CategoryPayment,
			wantConf:    0.95,
		},
		{
			name:        "pmt abbreviation scores default confidence",
			description: "Discover Pmt E-Pay",
			amount:      "-300.00",
			wantType:    models.TransactionTypeWithdrawal,
			wantCat:     models.CategoryPayment,
			wantConf:    0.85,
		},
		{
			name:        "turo car rental",
			description: "Turo Inc Payout",
			amount:      "250.00",
			wantType:    models.TransactionTypeDeposit,
			wantCat:     models.CategoryCarRental,
			wantConf:    0.94,
		},
		{
			name:        "credit card issuer",
			description: "Applecard Gsbank Achtrans",
			amount:      "-120.00",
			wantType:    models.TransactionTypeWithdrawal,
			wantCat:     models.CategoryCreditCard,
			wantConf:    0.85,
		},
		{
			name:        "unmatched falls back to Other",
			description: "Grocery Store 42",
			amount:      "-54.20",
			wantType:    models.TransactionTypeWithdrawal,
			wantCat:     models.CategoryOther,
			wantConf:    0.85,
		},
		{
			name:        "zero amount is a withdrawal",
			description: "Adjustment",
			amount:      "0",
			wantType:    models.TransactionTypeWithdrawal,
			wantCat:     models.CategoryOther,
			wantConf:    0.85,
		},
	}

	c := New(logging.NewMockLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txType, category, confidence := c.Categorize(tt.description, decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.wantType, txType)
			assert.Equal(t, tt.wantCat, category)
			assert.InDelta(t, tt.wantConf, confidence, 1e-9)
		})
	}
}

func TestCategorizeRuleOrderFirstMatchWins(t *testing.T) {
	c := New(logging.NewMockLogger())

	// Matches both the transfer and payment tables; transfer comes first.
	_, category, _ := c.Categorize("Zelle Payment To Jane", decimal.RequireFromString("-45.00"))
	assert.Equal(t, models.CategoryTransfer, category)
}

func TestConfidenceIsPure(t *testing.T) {
	first := Confidence("Zelle Payment From John", models.CategoryTransfer)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Confidence("Zelle Payment From John", models.CategoryTransfer))
	}
}

func TestConfidenceRequiresMatchingCategory(t *testing.T) {
	// The description carries a transfer keyword but none of the scored
	// Payment keywords, so scoring it as Payment falls to the default.
	assert.InDelta(t, 0.85, Confidence("Zelle To John", models.CategoryPayment), 1e-9)

	// The same description scored as Transfer hits the 0.98 rule.
	assert.InDelta(t, 0.98, Confidence("Zelle To John", models.CategoryTransfer), 1e-9)

	// A description containing the scored Payment keyword gets 0.95.
	assert.InDelta(t, 0.95, Confidence("Zelle Payment", models.CategoryPayment), 1e-9)
}

func TestNewWithRulesCustomTable(t *testing.T) {
	rules := []Rule{
		{Category: "Groceries", Keywords: []string{"market", "grocery"}},
	}
	c := NewWithRules(rules, logging.NewMockLogger())

	_, category, confidence := c.Categorize("Corner Market 9", decimal.RequireFromString("-12.00"))
	assert.Equal(t, "Groceries", category)
	assert.InDelta(t, 0.85, confidence, 1e-9)

	_, category, _ = c.Categorize("Zelle Payment", decimal.RequireFromString("10.00"))
	assert.Equal(t, models.CategoryOther, category, "built-in rules are replaced, not merged")
}

func TestNewWithRulesEmptyFallsBackToDefaults(t *testing.T) {
	c := NewWithRules(nil, logging.NewMockLogger())

	_, category, _ := c.Categorize("Zelle Payment", decimal.RequireFromString("10.00"))
	assert.Equal(t, models.CategoryTransfer, category)
}
