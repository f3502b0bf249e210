// Package chaseparser implements the transaction line grammar for the Chase
// checking statement layout family. The input is noisy OCR text, so the
// parser tolerates merged columns, misread characters and stray lines:
// anything that does not fit the grammar is skipped with a diagnostic.
package chaseparser

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"
	"github.com/almasriprojects/BankAPI/internal/parsererror"
	"github.com/almasriprojects/BankAPI/internal/textutils"
)

const (
	sectionMarker       = "TRANSACTION DETAIL"
	beginningBalance    = "Beginning Balance"
	endingBalancePrefix = "Ending Balance"
)

// columnHeaders identify the table's column header line.
var columnHeaders = []string{"DATE", "DESCRIPTION", "AMOUNT", "BALANCE"}

// ocrRepairs are literal corrections for known OCR misreads, applied to the
// assembled description in order, before categorization sees it.
var ocrRepairs = []struct {
	old string
	new string
}{
	{"1D:", "ID:"},
	{"Jom", "Jpm"},
	{"Pmt__", "Pmt "},
}

// Parser parses the transaction detail section of a Chase statement.
type Parser struct {
	noiseLiterals []string
	logger        logging.Logger
}

// New creates a Parser. noiseLiterals are known artifact strings; a candidate
// line containing any of them is discarded.
func New(noiseLiterals []string, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{noiseLiterals: noiseLiterals, logger: logger}
}

// Parse walks the line sequence as a two-state machine (before the table,
// inside the table) and parses each candidate line into a transaction.
// Transactions get sequential ids starting at 1 in parse order; the returned
// slice is stable-sorted by (month, day), so same-day entries keep parse
// order. skipped holds one diagnostic per line that looked like a candidate
// but failed to parse.
func (p *Parser) Parse(lines []string) ([]models.Transaction, []string) {
	var transactions []models.Transaction
	var skipped []string

	inTable := false
	nextID := 1

	for _, line := range lines {
		if strings.Contains(line, sectionMarker) {
			inTable = true
			continue
		}
		if !inTable {
			continue
		}
		if isColumnHeader(line) {
			continue
		}
		if line == beginningBalance || p.isNoise(line) {
			continue
		}
		if strings.HasPrefix(line, endingBalancePrefix) {
			continue
		}

		tx, err := p.parseLine(line)
		if err != nil {
			// Lines that merely don't look like transactions (section
			// footers, page numbers) are dropped silently; a line that
			// starts like a transaction but fails to parse is recorded.
			var parseErr *parsererror.ParseError
			if errors.As(err, &parseErr) {
				p.logger.WithError(err).WithField(logging.FieldLine, line).
					Warn("Failed to parse transaction line")
				skipped = append(skipped, err.Error())
			}
			continue
		}

		tx.ID = nextID
		nextID++
		transactions = append(transactions, tx)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		mi, di, _ := transactions[i].DateKey()
		mj, dj, _ := transactions[j].DateKey()
		if mi != mj {
			return mi < mj
		}
		return di < dj
	})

	p.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: "skipped", Value: len(skipped)},
	).Info("Extracted transactions from statement text")

	return transactions, skipped
}

// errNotCandidate marks lines that do not look like transaction rows at all.
var errNotCandidate = errors.New("not a transaction candidate")

// parseLine parses one candidate line. The grammar is positional: the first
// whitespace token is the MM/DD date, the last is the running balance, the
// second-to-last is the signed amount, and everything in between is the
// description.
func (p *Parser) parseLine(line string) (models.Transaction, error) {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return models.Transaction{}, errNotCandidate
	}
	if !isValidDate(parts[0]) {
		return models.Transaction{}, errNotCandidate
	}

	balance, err := textutils.ParseAmount(parts[len(parts)-1])
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{Line: line, Field: "balance", Err: err}
	}
	amount, err := textutils.ParseAmount(parts[len(parts)-2])
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{Line: line, Field: "amount", Err: err}
	}

	description := strings.Join(parts[1:len(parts)-2], " ")
	description = repairDescription(description)

	return models.Transaction{
		Date:        parts[0],
		Description: description,
		Amount:      amount,
		Balance:     balance,
	}, nil
}

// repairDescription applies the ordered OCR corrections.
func repairDescription(description string) string {
	for _, r := range ocrRepairs {
		description = strings.ReplaceAll(description, r.old, r.new)
	}
	return description
}

// isValidDate accepts "MM/DD" or a contiguous 4-digit "MMDD" with a month in
// [1,12] and a day in [1,31].
func isValidDate(token string) bool {
	var monthStr, dayStr string
	if strings.Contains(token, "/") {
		parts := strings.Split(token, "/")
		if len(parts) != 2 {
			return false
		}
		monthStr, dayStr = parts[0], parts[1]
	} else {
		if len(token) != 4 {
			return false
		}
		monthStr, dayStr = token[:2], token[2:]
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// isColumnHeader identifies the table's header row.
func isColumnHeader(line string) bool {
	for _, h := range columnHeaders {
		if !strings.Contains(line, h) {
			return false
		}
	}
	return true
}

func (p *Parser) isNoise(line string) bool {
	for _, literal := range p.noiseLiterals {
		if strings.Contains(line, literal) {
			return true
		}
	}
	return false
}
