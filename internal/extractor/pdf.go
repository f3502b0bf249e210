package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractTextLayer reads the embedded text layer of a PDF. Scanned statements
// have no text layer and fall through to the OCR path.
func extractTextLayer(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text layer: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, reader); err != nil {
		return "", fmt.Errorf("failed to read PDF text layer: %w", err)
	}

	return sb.String(), nil
}
