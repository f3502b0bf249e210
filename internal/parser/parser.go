// Package parser defines the contract a statement line grammar must satisfy.
package parser

import (
	"github.com/almasriprojects/BankAPI/internal/models"
)

// LedgerParser turns the tokenized line sequence of one statement into typed
// transaction records. Implementations are specific to one statement layout
// family; the pipeline stages are grammar-agnostic so variants can be swapped
// without changing the pipeline.
//
// Parse returns the successfully parsed transactions sorted chronologically
// by (month, day), plus a diagnostic per line that was inside the transaction
// table but did not fit the grammar. Diagnostics are recovered data, not
// errors: a bad line never aborts the batch.
type LedgerParser interface {
	Parse(lines []string) (transactions []models.Transaction, skipped []string)
}
