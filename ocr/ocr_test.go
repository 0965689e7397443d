//go:build ocr

package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// blankPagePNG renders a white page with a black block, enough to exercise
// the recognition path without asserting on its output.
func blankPagePNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract with %q not available: %v", DefaultLanguage, err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognizeImage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract with %q not available: %v", DefaultLanguage, err)
	}
	defer client.Close()

	if _, err := client.RecognizeImage(blankPagePNG(100, 50)); err != nil {
		t.Errorf("RecognizeImage failed: %v", err)
	}
}

func TestRecognizePages(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract with %q not available: %v", DefaultLanguage, err)
	}
	defer client.Close()

	pages := [][]byte{blankPagePNG(100, 50), blankPagePNG(100, 50)}
	if _, err := client.RecognizePages(pages); err != nil {
		t.Errorf("RecognizePages failed: %v", err)
	}
}
