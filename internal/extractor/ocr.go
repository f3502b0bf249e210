package extractor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// PdftoppmRasterizer shells out to poppler's pdftoppm to render PDF pages as
// PNG images.
type PdftoppmRasterizer struct {
	// BinaryPath is the pdftoppm executable, usually just "pdftoppm".
	BinaryPath string
	// DPI controls render resolution. 300 works well for bank statements.
	DPI int
}

// Rasterize renders every page of the PDF into outputDir and returns the
// image paths in page order.
func (r *PdftoppmRasterizer) Rasterize(ctx context.Context, pdfPath, outputDir string) ([]string, error) {
	outputPrefix := filepath.Join(outputDir, "page")
	cmd := exec.CommandContext(ctx, r.BinaryPath,
		"-r", strconv.Itoa(r.DPI),
		"-png",
		pdfPath,
		outputPrefix,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	images, err := filepath.Glob(outputPrefix + "*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to list page images: %w", err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no page images for %s", pdfPath)
	}
	sort.Strings(images)

	return images, nil
}

// TesseractEngine shells out to tesseract for character recognition.
type TesseractEngine struct {
	// BinaryPath is the tesseract executable, usually just "tesseract".
	BinaryPath string
}

// Recognize runs tesseract over a single page image and returns its text.
func (t *TesseractEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	outputBase := strings.TrimSuffix(imagePath, filepath.Ext(imagePath))

	cmd := exec.CommandContext(ctx, t.BinaryPath, imagePath, outputBase)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("tesseract failed on %s: %w (output: %s)", imagePath, err, string(output))
	}

	textPath := outputBase + ".txt"
	data, err := os.ReadFile(textPath)
	if err != nil {
		return "", fmt.Errorf("failed to read tesseract output: %w", err)
	}
	defer os.Remove(textPath)

	return string(data), nil
}
