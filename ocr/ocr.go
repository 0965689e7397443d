//go:build ocr

// Package ocr extracts text from scanned contract pages.
//
// Recognition wraps the Tesseract engine via gosseract and requires Tesseract
// (with the Spanish language pack) to be installed. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-spa
//
// Rebuild with the "ocr" build tag to enable recognition; without it the
// package compiles against a stub that returns ErrOCRNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is the Tesseract language used for recognition. The
// contracts this package targets are written in Spanish.
const DefaultLanguage = "spa"

// Client wraps Tesseract for page recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a recognition client configured for Spanish text.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(DefaultLanguage); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting language %q: %w", DefaultLanguage, err)
	}
	return &Client{client: client}, nil
}

// Close releases recognition resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage overrides the recognition language(s). Multiple languages can
// be specified as a "+" separated string (e.g., "spa+eng").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizePages runs recognition over a sequence of page images and joins
// the results with blank lines, in page order.
func (c *Client) RecognizePages(pages [][]byte) (string, error) {
	texts := make([]string, 0, len(pages))
	for i, page := range pages {
		text, err := c.RecognizeImage(page)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		if text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n\n"), nil
}
