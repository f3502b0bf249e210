// Package extractor turns a source PDF into the newline-delimited OCR
// transcript the pipeline consumes. Rasterization and character recognition
// are external collaborators hidden behind interfaces so the pipeline can be
// tested without poppler or tesseract installed.
package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/almasriprojects/BankAPI/internal/logging"
)

// Rasterizer renders a PDF into an ordered sequence of page images inside
// outputDir. The caller owns outputDir's lifecycle.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath, outputDir string) ([]string, error)
}

// OCREngine transcribes one page image into best-effort plain text.
type OCREngine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// Extractor produces the statement transcript. For born-digital PDFs the
// embedded text layer is used directly; scanned documents go through the
// rasterize-then-recognize path.
type Extractor struct {
	rasterizer Rasterizer
	engine     OCREngine
	logger     logging.Logger
}

// New creates an Extractor.
func New(rasterizer Rasterizer, engine OCREngine, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{
		rasterizer: rasterizer,
		engine:     engine,
		logger:     logger,
	}
}

// ExtractText returns the document transcript, per-page output concatenated
// with a newline separator.
func (e *Extractor) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	if text, err := extractTextLayer(pdfPath); err == nil && usableText(text) {
		e.logger.WithField(logging.FieldFile, pdfPath).Debug("Using embedded PDF text layer")
		return text, nil
	}

	pageDir, err := os.MkdirTemp("", "bankapi-pages-*")
	if err != nil {
		return "", fmt.Errorf("failed to create page image directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(pageDir); err != nil {
			e.logger.WithError(err).Warn("Failed to remove page image directory")
		}
	}()

	images, err := e.rasterizer.Rasterize(ctx, pdfPath, pageDir)
	if err != nil {
		return "", fmt.Errorf("failed to convert PDF to images: %w", err)
	}
	e.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldCount, Value: len(images)},
	).Info("Converted PDF to page images")

	var transcript strings.Builder
	for i, image := range images {
		text, err := e.engine.Recognize(ctx, image)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i+1, err)
		}
		transcript.WriteString(text)
		transcript.WriteString("\n")
	}

	return transcript.String(), nil
}

// usableText filters out the near-empty output that image-only PDFs yield
// from text-layer extraction.
func usableText(text string) bool {
	return len(strings.TrimSpace(text)) > 50
}
