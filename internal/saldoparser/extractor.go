package saldoparser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageExtractor defines the interface for reading the text of each page of an
// uploaded PDF document. The interface allows dependency injection and makes
// the parser testable without real PDF fixtures.
type PageExtractor interface {
	// ExtractPages returns the text of every page, in page order. A page
	// whose extraction yields nothing is returned as an empty string.
	ExtractPages(data []byte) ([]string, error)
}

// RealPageExtractor implements PageExtractor using the ledongthuc/pdf
// library. Uploads are decoded in memory and never touch the filesystem.
type RealPageExtractor struct{}

// NewRealPageExtractor creates a new RealPageExtractor instance.
func NewRealPageExtractor() *RealPageExtractor {
	return &RealPageExtractor{}
}

// ExtractPages decodes the PDF and extracts the text of every page row by
// row. The pdf library panics on some malformed documents, so panics are
// converted into errors.
func (e *RealPageExtractor) ExtractPages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf reader crashed: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	numPages := reader.NumPage()
	pages = make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			// Unreadable page: it contributes nothing, the rest of the
			// document is still scanned.
			pages = append(pages, "")
			continue
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
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages, nil
}

// MockPageExtractor implements PageExtractor for testing purposes.
// It returns predefined pages or an error instead of decoding a document.
type MockPageExtractor struct {
	MockPages []string
	MockErr   error
}

// NewMockPageExtractor creates a new MockPageExtractor with the given mock data.
func NewMockPageExtractor(pages []string, err error) *MockPageExtractor {
	return &MockPageExtractor{
		MockPages: pages,
		MockErr:   err,
	}
}

// ExtractPages returns the predefined pages or error.
func (e *MockPageExtractor) ExtractPages(data []byte) ([]string, error) {
	if e.MockErr != nil {
		return nil, e.MockErr
	}
	return e.MockPages, nil
}
