package extractor

import "context"

// MockRasterizer returns a fixed set of page images for testing.
type MockRasterizer struct {
	Images []string
	Err    error
	Calls  []string
	Dirs   []string
}

func (m *MockRasterizer) Rasterize(_ context.Context, pdfPath, outputDir string) ([]string, error) {
	m.Calls = append(m.Calls, pdfPath)
	m.Dirs = append(m.Dirs, outputDir)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Images, nil
}

// MockOCREngine maps image paths to canned page text for testing.
type MockOCREngine struct {
	Pages map[string]string
	Err   error
}

func (m *MockOCREngine) Recognize(_ context.Context, imagePath string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Pages[imagePath], nil
}
