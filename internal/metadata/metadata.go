// Package metadata extracts the statement's identity fields (bank name,
// account number, statement period) from the OCR line sequence.
package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/almasriprojects/BankAPI/internal/logging"
)

// Info holds the extracted document identity. Fields that could not be
// resolved stay empty; that is non-fatal.
type Info struct {
	BankName      string
	AccountNumber string
	Year          string
	Month         string
}

// accountPatterns are tried in order; the first match wins for a line.
var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Account Number:\s*(\d+)`), // labeled with colon
	regexp.MustCompile(`Account Number\s*(\d+)`),  // labeled without colon
	regexp.MustCompile(`(\d{12})`),                // bare 12-digit sequence
	regexp.MustCompile(`(\d{9,})`),                // bare 9+ digit sequence
}

// monthNames maps calendar position to the month name as printed in the
// statement period line.
var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Extractor scans statement lines for identity fields.
type Extractor struct {
	bankName string
	logger   logging.Logger
}

// New creates an Extractor that stamps the configured bank name.
func New(bankName string, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{bankName: bankName, logger: logger}
}

// Extract scans the line sequence for the account number and statement
// period. Unresolved fields are left empty and a warning is logged.
func (e *Extractor) Extract(lines []string) Info {
	info := Info{BankName: e.bankName}

	for _, line := range lines {
		if strings.Contains(line, "Account Number") {
			if num := matchAccountNumber(line); num != "" && info.AccountNumber == "" {
				info.AccountNumber = num
			}
		}

		if year, month, ok := matchPeriod(line); ok {
			info.Year = year
			info.Month = month
		}
	}

	if info.AccountNumber == "" || info.Year == "" || info.Month == "" {
		e.logger.WithFields(
			logging.Field{Key: "account_number", Value: info.AccountNumber},
			logging.Field{Key: "year", Value: info.Year},
			logging.Field{Key: "month", Value: info.Month},
		).Warn("Incomplete statement metadata")
	}

	return info
}

// matchAccountNumber tries the ordered account patterns against one line and
// returns the first capture, or empty when nothing matches.
func matchAccountNumber(line string) string {
	for _, pattern := range accountPatterns {
		if m := pattern.FindStringSubmatch(line); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// matchPeriod recognizes a statement period line: it must contain "through"
// and a month name. The text after "through" is the period end date; its
// month name maps to a 2-digit month, and the year is the leading 4 digits
// of the substring after the last ", ".
func matchPeriod(line string) (year, month string, ok bool) {
	if !strings.Contains(line, "through") {
		return "", "", false
	}
	if !containsMonthName(line) {
		return "", "", false
	}

	parts := strings.SplitN(line, "through", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	endDate := strings.TrimSpace(parts[1])

	for i, name := range monthNames {
		if !strings.Contains(endDate, name) {
			continue
		}
		month = zeroPad(i + 1)

		segments := strings.Split(endDate, ", ")
		tail := strings.TrimSpace(segments[len(segments)-1])
		if len(tail) >= 4 && isDigits(tail[:4]) {
			year = tail[:4]
		}
		return year, month, true
	}

	return "", "", false
}

func containsMonthName(line string) bool {
	for _, name := range monthNames {
		if strings.Contains(line, name) {
			return true
		}
	}
	return false
}

func zeroPad(n int) string {
	return fmt.Sprintf("%02d", n)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
