// Package pdf provides PDF text extraction.
//
// We use the ledongthuc/pdf library for text extraction.
// It's a pure Go implementation — no CGO or external dependencies required.
// pdfcpu is used only for a structural sanity check of the upload.
package pdf

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ExtractionResult holds the output from a PDF text extraction.
type ExtractionResult struct {
	Text      string // Extracted text with "--- Page N ---" separators
	PageCount int    // Number of pages in the document
	Extracted int    // Number of pages that contributed text
	WordCount int
}

// Extract reads a PDF held in memory and returns the text of the selected
// pages. pages is a selection such as "all", "3", "1-4" or "1,3,5-7".
//
// Go Pattern: We accept []byte instead of a filename because the data
// comes from an HTTP upload. The pdf library requires io.ReaderAt for
// random access, which bytes.Reader provides.
func Extract(data []byte, pages string) (*ExtractionResult, error) {
	if err := Validate(data); err != nil {
		// Not fatal: many slightly broken PDFs still yield text.
		log.Printf("⚠️  PDF validation failed, extracting anyway: %v", err)
	}

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := pdfReader.NumPage()
	selected, err := ParsePages(pages, pageCount)
	if err != nil {
		return nil, err
	}

	var allText strings.Builder
	extracted := 0
	for _, idx := range selected {
		// Out-of-range pages are skipped rather than rejected.
		if idx < 0 || idx >= pageCount {
			continue
		}

		page := pdfReader.Page(idx + 1)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log but don't fail — some pages may have images only
			log.Printf("⚠️  Text extraction failed on page %d: %v", idx+1, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fmt.Fprintf(&allText, "\n--- Page %d ---\n%s\n", idx+1, text)
		extracted++
	}

	extractedText := strings.TrimSpace(allText.String())

	return &ExtractionResult{
		Text:      extractedText,
		PageCount: pageCount,
		Extracted: extracted,
		WordCount: len(strings.Fields(extractedText)),
	}, nil
}

// Validate runs pdfcpu's relaxed validation over the document structure.
func Validate(data []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.Validate(bytes.NewReader(data), conf)
}

// ValidatePDF checks if the data looks like a valid PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
