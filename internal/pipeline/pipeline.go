// Package pipeline sequences the extraction stages over one document and
// assembles the final statement record. The pipeline is synchronous and
// stateless across invocations: one call processes one document end-to-end,
// so independent documents can be processed concurrently with no
// coordination.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/almasriprojects/BankAPI/internal/analytics"
	"github.com/almasriprojects/BankAPI/internal/annotator"
	"github.com/almasriprojects/BankAPI/internal/categorizer"
	"github.com/almasriprojects/BankAPI/internal/chaseparser"
	"github.com/almasriprojects/BankAPI/internal/config"
	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/metadata"
	"github.com/almasriprojects/BankAPI/internal/models"
	"github.com/almasriprojects/BankAPI/internal/parser"
	"github.com/almasriprojects/BankAPI/internal/parsererror"
	"github.com/almasriprojects/BankAPI/internal/reconciler"
	"github.com/almasriprojects/BankAPI/internal/summary"
	"github.com/almasriprojects/BankAPI/internal/textutils"

	"github.com/google/uuid"
)

// Refiner optionally re-categorizes transactions the keyword table could not
// place. Refinement failures are warnings, never document failures.
type Refiner interface {
	Refine(ctx context.Context, description string) (category string, found bool, err error)
}

// Pipeline owns the stage instances and assembles StatementData.
type Pipeline struct {
	cfg          *config.Config
	logger       logging.Logger
	metadata     *metadata.Extractor
	ledger       parser.LedgerParser
	categorizer  *categorizer.Categorizer
	annotator    *annotator.Annotator
	reconciler   *reconciler.Reconciler
	refiner      Refiner
	now          func() time.Time
	newSessionID func() string
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithClock injects the time source. Tests use this to make results
// reproducible; processing duration is the only field that may differ
// between identical runs with an identical clock.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithSessionID injects the session id generator.
func WithSessionID(gen func() string) Option {
	return func(p *Pipeline) { p.newSessionID = gen }
}

// WithRefiner attaches an optional category refiner.
func WithRefiner(r Refiner) Option {
	return func(p *Pipeline) { p.refiner = r }
}

// WithLedgerParser swaps the statement line grammar.
func WithLedgerParser(lp parser.LedgerParser) Option {
	return func(p *Pipeline) { p.ledger = lp }
}

// WithCategorizer swaps the categorization rule table.
func WithCategorizer(c *categorizer.Categorizer) Option {
	return func(p *Pipeline) { p.categorizer = c }
}

// New builds a Pipeline from configuration.
func New(cfg *config.Config, logger logging.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}

	p := &Pipeline{
		cfg:          cfg,
		logger:       logger,
		metadata:     metadata.New(cfg.Statement.BankName, logger),
		ledger:       chaseparser.New(cfg.Statement.NoiseLiterals, logger),
		categorizer:  categorizer.New(logger),
		annotator:    annotator.New(cfg.Statement.NoteAmountThreshold, cfg.Statement.HighValueThreshold, logger),
		reconciler:   reconciler.New(cfg.Statement.ReconcileTolerance, logger),
		now:          time.Now,
		newSessionID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs stages 2-8 over one document's OCR text and assembles the
// immutable statement record. fileContent is used only for the content hash
// and size; start anchors the processing duration. A stage-level failure
// aborts the whole document: no partial result is ever returned.
func (p *Pipeline) Process(ctx context.Context, text string, fileContent []byte, fileName string, start time.Time) (*models.StatementData, error) {
	lines := textutils.Lines(text)
	if len(lines) == 0 {
		return nil, &parsererror.ExtractionError{
			Stage:  "statement text",
			Reason: "OCR transcript is empty",
		}
	}

	meta := p.metadata.Extract(lines)
	checkingSummary := summary.Extract(lines, p.logger)
	transactions, skipped := p.ledger.Parse(lines)

	for i := range transactions {
		tx := &transactions[i]
		tx.TransactionType, tx.Category, tx.CategoryConfidence =
			p.categorizer.Categorize(tx.Description, tx.Amount)
	}
	p.refineCategories(ctx, transactions)

	transactions = p.annotator.AnnotateAll(transactions)

	totals := analytics.CalculateTotals(transactions)
	spending := analytics.AnalyzeSpending(transactions, p.cfg.Statement.AverageWindowDays)
	reconciliation := p.reconciler.Reconcile(checkingSummary, transactions, p.now())

	end := p.now()
	statementMeta := models.StatementMetadata{
		BankName:           meta.BankName,
		AccountNumber:      meta.AccountNumber,
		AccountHolder:      p.cfg.Statement.AccountHolder,
		Year:               meta.Year,
		Month:              meta.Month,
		Currency:           p.cfg.Statement.Currency,
		ParsedBy:           models.ParsedBy,
		ParsedOn:           end.UTC().Format("2006-01-02T15:04:05Z"),
		ProcessingDuration: fmt.Sprintf("%.1f seconds", end.Sub(start).Seconds()),
		Timezone:           "UTC",
		ValidationStatus:   reconciliation.Status,
		ValidationDetails:  reconciliation.Details,
		SessionMetadata: models.SessionMetadata{
			UserID:    models.DefaultUserID,
			SessionID: p.newSessionID(),
		},
	}

	if skipped == nil {
		skipped = []string{}
	}

	data := &models.StatementData{
		Metadata: statementMeta,
		FileMetadata: models.FileMetadata{
			FileName: fileName,
			FileSize: fmt.Sprintf("%.0fKB", float64(len(fileContent))/1024),
			FileHash: contentHash(fileContent),
		},
		TotalTransactions: totals,
		CheckingSummary:   checkingSummary,
		TransactionDetail: transactions,
		SpendingAnalysis:  spending,
		ErrorTracking: models.ErrorTracking{
			UnprocessedSections: []string{},
			ParsingErrors:       skipped,
		},
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldStatus, Value: reconciliation.Status},
		logging.Field{Key: logging.FieldDuration, Value: statementMeta.ProcessingDuration},
	).Info("Processed statement")

	return data, nil
}

// refineCategories runs the optional refiner over transactions that stayed
// at the Other category.
func (p *Pipeline) refineCategories(ctx context.Context, transactions []models.Transaction) {
	if p.refiner == nil {
		return
	}
	for i := range transactions {
		tx := &transactions[i]
		if tx.Category != models.CategoryOther {
			continue
		}
		category, found, err := p.refiner.Refine(ctx, tx.Description)
		if err != nil {
			p.logger.WithError(err).Warn("Category refinement failed")
			continue
		}
		if found {
			tx.Category = category
			tx.CategoryConfidence = categorizer.Confidence(tx.Description, category)
		}
	}
}

func contentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
