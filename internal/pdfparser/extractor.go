package pdfparser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor extracts per-page text from raw PDF bytes. The interface
// exists so tests can feed statement text without building PDF fixtures.
type TextExtractor interface {
	ExtractPages(data []byte) ([]string, error)
}

// PDFTextExtractor is the production TextExtractor. It walks each page and
// reconstructs lines row by row.
type PDFTextExtractor struct{}

// NewPDFTextExtractor creates the production extractor.
func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{}
}

// ExtractPages returns the text of each page, in page order. Pages that
// yield no text are returned as empty strings so page numbering holds.
func (e *PDFTextExtractor) ExtractPages(data []byte) (pages []string, err error) {
	// The PDF library can panic on malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(page))
	}
	return pages, nil
}

func pageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var lines []string
	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			parts = append(parts, word.S)
		}
		line := strings.TrimSpace(strings.Join(parts, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// MockTextExtractor returns canned pages, for tests.
type MockTextExtractor struct {
	Pages []string
	Err   error
}

// ExtractPages returns the canned pages or error.
func (e *MockTextExtractor) ExtractPages(data []byte) ([]string, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Pages, nil
}
