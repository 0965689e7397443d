//go:build !ocr

// Package ocr extracts text from scanned contract pages.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Recognition functions return ErrOCRNotEnabled; text-layer extraction from
// PDFs works in both builds.
//
// To enable recognition, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract with the Spanish language pack. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-spa
package ocr

import "errors"

// ErrOCRNotEnabled is returned when recognition is requested but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultLanguage is the Tesseract language used for recognition. The
// contracts this package targets are written in Spanish.
const DefaultLanguage = "spa"

// Client is a stub recognition client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizePages returns an error indicating OCR support is not enabled.
func (c *Client) RecognizePages(pages [][]byte) (string, error) {
	return "", ErrOCRNotEnabled
}
