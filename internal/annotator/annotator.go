// Package annotator enriches parsed transactions with location hints,
// human-readable notes and a high-value flag. Annotation is a pure transform:
// it returns an enriched copy and never mutates its input, so the pipeline
// has no hidden field-by-field mutation order.
package annotator

import (
	"fmt"
	"strings"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"
	"github.com/almasriprojects/BankAPI/internal/textutils"

	"github.com/shopspring/decimal"
)

// Annotator applies the enrichment rules with its configured thresholds.
// NoteThreshold and HighValueThreshold are deliberately different
// severities: crossing the first only adds a note, crossing the second sets
// the flag.
type Annotator struct {
	noteThreshold      decimal.Decimal
	highValueThreshold decimal.Decimal
	logger             logging.Logger
}

// New creates an Annotator with the given amount thresholds.
func New(noteThreshold, highValueThreshold float64, logger logging.Logger) *Annotator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Annotator{
		noteThreshold:      decimal.NewFromFloat(noteThreshold),
		highValueThreshold: decimal.NewFromFloat(highValueThreshold),
		logger:             logger,
	}
}

// noteRule pairs a predicate with the note it produces. Rules are evaluated
// in fixed order; the first match wins.
type noteRule struct {
	match func(desc string, amount decimal.Decimal) bool
	note  func(tx models.Transaction) string
}

func (a *Annotator) noteRules() []noteRule {
	return []noteRule{
		{
			match: func(desc string, _ decimal.Decimal) bool { return strings.Contains(desc, "zelle") },
			note:  func(models.Transaction) string { return "Matched with Zelle transfer description." },
		},
		{
			match: func(desc string, _ decimal.Decimal) bool {
				return strings.Contains(desc, "transfer") && strings.Contains(desc, "from")
			},
			note: func(models.Transaction) string { return "Internal transfer to checking account." },
		},
		{
			match: func(desc string, _ decimal.Decimal) bool { return strings.Contains(desc, "recurring") },
			note: func(tx models.Transaction) string {
				return fmt.Sprintf("Recurring %s payment.", strings.ToLower(tx.Category))
			},
		},
		{
			match: func(desc string, _ decimal.Decimal) bool { return strings.Contains(desc, "payrol") },
			note:  func(models.Transaction) string { return "Direct deposit from employer." },
		},
		{
			match: func(_ string, amount decimal.Decimal) bool {
				return amount.Abs().GreaterThan(a.noteThreshold)
			},
			note: func(tx models.Transaction) string {
				return fmt.Sprintf("%s flagged for high amount.", tx.Category)
			},
		},
		{
			match: func(desc string, _ decimal.Decimal) bool { return strings.Contains(desc, "turo") },
			note:  func(models.Transaction) string { return "Car rental income from Turo." },
		},
		{
			match: func(desc string, _ decimal.Decimal) bool { return strings.Contains(desc, "premium") },
			note: func(tx models.Transaction) string {
				lower := strings.ToLower(tx.Description)
				return fmt.Sprintf("Subscription payment for %s.", textutils.FirstWords(lower, 2))
			},
		},
	}
}

// Annotate returns an enriched copy of tx with location, notes and the
// high-value flag filled in.
func (a *Annotator) Annotate(tx models.Transaction) models.Transaction {
	tx.Location = location(tx.Description)
	tx.Notes = a.notes(tx)
	tx.Flagged = a.flag(tx)
	return tx
}

// AnnotateAll enriches every transaction, returning a new slice.
func (a *Annotator) AnnotateAll(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		out[i] = a.Annotate(tx)
	}
	return out
}

// location is a deliberately narrow heuristic; extend it with further
// jurisdictions via the same substring pattern.
func location(description string) string {
	if strings.Contains(description, "OH") {
		return "Ohio, USA"
	}
	return ""
}

func (a *Annotator) notes(tx models.Transaction) string {
	desc := strings.ToLower(tx.Description)
	for _, rule := range a.noteRules() {
		if rule.match(desc, tx.Amount) {
			return rule.note(tx)
		}
	}
	return ""
}

func (a *Annotator) flag(tx models.Transaction) models.TransactionFlag {
	if tx.Amount.Abs().GreaterThan(a.highValueThreshold) {
		return models.TransactionFlag{
			IsHighValue: true,
			Reason:      fmt.Sprintf("Transaction exceeds $%s", a.highValueThreshold.String()),
		}
	}
	return models.TransactionFlag{}
}
