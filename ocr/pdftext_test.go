package ocr

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTextMissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "opening pdf") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExtractTextNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contrato.pdf")
	if err := os.WriteFile(path, []byte("CONTRATO DE ARRENDAMIENTO"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}
