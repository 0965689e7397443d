package ocr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoTextLayer is returned when a PDF contains no extractable text. Scanned
// contracts usually hit this; recognition is the fallback.
var ErrNoTextLayer = errors.New("ocr: pdf has no text layer")

// ExtractText reads the embedded text layer of a PDF and joins the pages with
// blank lines. Pages that fail to decode are skipped. Returns ErrNoTextLayer
// when no page yields any text.
func ExtractText(path string) (string, error) {
	pages, err := PageTexts(path)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n\n"), nil
}

// PageTexts reads the embedded text layer of a PDF page by page. Blank pages
// are omitted from the result.
func PageTexts(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ocr: opening pdf: %w", err)
	}
	defer f.Close()

	totalPages := reader.NumPage()
	pages := make([]string, 0, totalPages)

	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return nil, ErrNoTextLayer
	}
	return pages, nil
}
