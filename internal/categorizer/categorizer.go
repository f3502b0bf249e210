// Package categorizer assigns a transaction type, category and confidence
// score from a transaction's description and signed amount. Categorization is
// a pure function: rules are an ordered table and the first matching rule
// wins, so the tie-break is explicit and testable.
package categorizer

import (
	"strings"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"

	"github.com/shopspring/decimal"
)

// Rule maps a category to the keywords that select it. Keywords are matched
// case-insensitively as substrings of the description.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// defaultRules is the built-in ordered rule table for the Chase layout
// family. Order matters: the first category with any matching keyword wins.
var defaultRules = []Rule{
	{Category: models.CategorySalary, Keywords: []string{"jobr payrol", "salary", "paycheck"}},
	{Category: models.CategoryTransfer, Keywords: []string{"transfer", "zelle"}},
	{Category: models.CategorySubscription, Keywords: []string{"premium", "recurring"}},
	{Category: models.CategoryPayment, Keywords: []string{"payment", "pmt"}},
	{Category: models.CategoryCarRental, Keywords: []string{"turo"}},
	{Category: models.CategoryCreditCard, Keywords: []string{"applecard", "discover", "american express"}},
}

// confidenceRules is the fixed lookup behind the confidence score. The score
// is a coarse deterministic heuristic, not a statistical probability.
var confidenceRules = []struct {
	category string
	keywords []string
	score    float64
}{
	{models.CategorySalary, []string{"payrol", "salary"}, 0.99},
	{models.CategoryTransfer, []string{"zelle", "transfer"}, 0.98},
	{models.CategorySubscription, []string{"recurring"}, 0.95},
	{models.CategoryPayment, []string{"payment"}, 0.95},
	{models.CategoryCarRental, []string{"turo"}, 0.94},
}

// defaultConfidence is returned when no confidence rule matches.
const defaultConfidence = 0.85

// Categorizer holds the active rule table.
type Categorizer struct {
	rules  []Rule
	logger logging.Logger
}

// New creates a Categorizer with the built-in rule table.
func New(logger logging.Logger) *Categorizer {
	return NewWithRules(defaultRules, logger)
}

// NewWithRules creates a Categorizer with a custom ordered rule table.
func NewWithRules(rules []Rule, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(rules) == 0 {
		rules = defaultRules
	}
	return &Categorizer{rules: rules, logger: logger}
}

// Categorize maps (description, amount) to (type, category, confidence).
// The type follows the amount sign: positive is a deposit, anything else a
// withdrawal. Deterministic given its inputs.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal) (txType, category string, confidence float64) {
	if amount.IsPositive() {
		txType = models.TransactionTypeDeposit
	} else {
		txType = models.TransactionTypeWithdrawal
	}

	category = models.CategoryOther
	lower := strings.ToLower(description)
	for _, rule := range c.rules {
		if matchesAny(lower, rule.Keywords) {
			category = rule.Category
			break
		}
	}

	return txType, category, Confidence(description, category)
}

// Confidence scores how strongly a keyword rule matched the description for
// the given category. Pure function: same inputs always yield the same score.
func Confidence(description, category string) float64 {
	lower := strings.ToLower(description)
	for _, rule := range confidenceRules {
		if rule.category == category && matchesAny(lower, rule.keywords) {
			return rule.score
		}
	}
	return defaultConfidence
}

func matchesAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
