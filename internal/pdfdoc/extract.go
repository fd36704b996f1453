package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
)

// Document is the page-ordered plain text of one notice document.
type Document struct {
	Text  string
	Pages int
}

// Extractor turns raw document bytes into page-ordered text.
type Extractor interface {
	Extract(data []byte) (*Document, error)
}

// PDFExtractor extracts text from PDF bytes. Each page's text is preceded by
// a "Page <n>:" header so downstream heuristics can report positions.
type PDFExtractor struct{}

// Extract validates the PDF and concatenates per-page plain text.
func (PDFExtractor) Extract(data []byte) (*Document, error) {
	pageCount, err := pdfapi.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		fmt.Fprintf(&b, "Page %d:\n%s\n\n", i, text)
	}

	return &Document{Text: b.String(), Pages: pageCount}, nil
}
