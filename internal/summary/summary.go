// Package summary extracts the headline balance figures from the statement.
package summary

import (
	"strings"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"
	"github.com/almasriprojects/BankAPI/internal/textutils"

	"github.com/shopspring/decimal"
)

// labels are the four fixed balance labels of the checking summary section.
var labels = []string{
	"Beginning Balance",
	"Deposits and Additions",
	"Electronic Withdrawals",
	"Ending Balance",
}

// Extract scans the line sequence for the four headline balance figures.
// For each label the first line containing it contributes the figure; a line
// that fails numeric parsing after label stripping contributes nothing and
// the field stays at its zero default.
func Extract(lines []string, logger logging.Logger) models.CheckingSummary {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var s models.CheckingSummary
	found := make(map[string]bool, len(labels))

	for _, line := range lines {
		for _, label := range labels {
			if found[label] || !strings.Contains(line, label) {
				continue
			}
			amount, err := extractAmount(line)
			if err != nil {
				logger.WithError(err).WithField(logging.FieldLine, line).
					Warn("Could not extract amount from summary line")
				continue
			}
			found[label] = true
			switch label {
			case "Beginning Balance":
				s.BeginningBalance = amount
			case "Deposits and Additions":
				s.DepositsAndAdditions = amount
			case "Electronic Withdrawals":
				s.ElectronicWithdrawals = amount
			case "Ending Balance":
				s.EndingBalance = amount
			}
		}
	}

	return s
}

// extractAmount strips the label phrases and currency formatting from a line
// and parses the remainder as a decimal number.
func extractAmount(line string) (decimal.Decimal, error) {
	rest := textutils.StripLabels(line, labels)
	return textutils.ParseAmount(rest)
}
