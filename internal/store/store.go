// Package store persists parsed statements to the local filesystem as JSON
// and CSV, laid out by bank, account and statement period.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"
)

// Store writes statement artifacts under a base directory.
type Store struct {
	baseDir string
	logger  logging.Logger
}

// New creates a Store rooted at baseDir.
func New(baseDir string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{baseDir: baseDir, logger: logger}
}

// StatementDir returns (and creates) the directory for one statement:
// <base>/<bank>/<account>/<year>/<month>.
func (s *Store) StatementDir(meta models.StatementMetadata) (string, error) {
	dir := filepath.Join(s.baseDir, meta.BankName, meta.AccountNumber, meta.Year, meta.Month)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create statement directory: %w", err)
	}
	return dir, nil
}

// SaveJSON writes the full statement document as indented JSON and returns
// the file path.
func (s *Store) SaveJSON(data *models.StatementData) (string, error) {
	dir, err := s.StatementDir(data.Metadata)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("statement_%s_%s.json",
		data.CheckingSummary.BeginningBalance.String(),
		data.CheckingSummary.EndingBalance.String())
	path := filepath.Join(dir, name)

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal statement: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write statement file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(data.TransactionDetail)},
	).Info("Saved statement JSON")

	return path, nil
}

// csvRow flattens a transaction for spreadsheet export.
type csvRow struct {
	ID          int    `csv:"ID"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Balance     string `csv:"Balance"`
	Confidence  string `csv:"Confidence"`
	Location    string `csv:"Location"`
	Notes       string `csv:"Notes"`
	Flagged     bool   `csv:"Flagged"`
}

// ExportCSV writes the transaction ledger to csvFile.
func (s *Store) ExportCSV(transactions []models.Transaction, csvFile string) error {
	rows := make([]csvRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, csvRow{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Type:        tx.TransactionType,
			Category:    tx.Category,
			Amount:      tx.Amount.StringFixed(2),
			Balance:     tx.Balance.StringFixed(2),
			Confidence:  fmt.Sprintf("%.2f", tx.CategoryConfidence),
			Location:    tx.Location,
			Notes:       tx.Notes,
			Flagged:     tx.Flagged.IsHighValue,
		})
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write CSV data: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Exported transactions to CSV")

	return nil
}
