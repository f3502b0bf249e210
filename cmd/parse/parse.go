// Package parse handles one-shot statement parsing from the command line.
package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/almasriprojects/BankAPI/cmd/common"
	"github.com/almasriprojects/BankAPI/cmd/root"
	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/parsererror"
)

var csvFile string

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse <statement.pdf|transcript.txt>",
	Short: "Parse one bank statement into a structured JSON record",
	Long: `Parse a bank statement PDF (or a pre-extracted OCR transcript in a
.txt file) into the structured, categorized and reconciled JSON record,
saved under the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: parseFunc,
}

func init() {
	Cmd.Flags().StringVar(&csvFile, "csv", "", "also export the transaction ledger to this CSV file")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := cmd.Context()
	inputFile := args[0]
	log := root.Log

	content, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".pdf":
		ext := common.BuildExtractor(root.Cfg, log)
		text, err = ext.ExtractText(ctx, inputFile)
		if err != nil {
			return fmt.Errorf("failed to extract text from PDF: %w", err)
		}
	case ".txt":
		text = string(content)
	default:
		return &parsererror.InvalidFormatError{
			FileName: inputFile,
			Msg:      "expected a .pdf statement or .txt transcript",
		}
	}

	p, cleanup, err := common.BuildPipeline(ctx, root.Cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	data, err := p.Process(ctx, text, content, filepath.Base(inputFile), start)
	if err != nil {
		return err
	}

	st := common.BuildStore(root.Cfg, log)
	savedPath, err := st.SaveJSON(data)
	if err != nil {
		return err
	}
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: savedPath},
		logging.Field{Key: logging.FieldStatus, Value: data.Metadata.ValidationStatus},
	).Info("Statement parsed")

	if csvFile != "" {
		if err := st.ExportCSV(data.TransactionDetail, csvFile); err != nil {
			return err
		}
	}

	return nil
}
