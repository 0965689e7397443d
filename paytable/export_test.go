package paytable

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Omarhersan/leaseparse/model"
)

func sampleTable() *model.PaymentTable {
	return &model.PaymentTable{Rows: []model.PaymentRow{
		{Sequence: 1, DueDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), Amount: 1000000},
		{Sequence: 2, DueDate: time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), Amount: 1250000},
	}}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleTable()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"numero": 1`, `"fecha": "15 enero 2024"`, `"monto": 10000.00`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "numero,fecha,monto" {
		t.Errorf("header = %q, want numero,fecha,monto", lines[0])
	}
	if lines[1] != "1,15 enero 2024,10000.00" {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagos.xlsx")
	if err := WriteXLSX(path, sampleTable()); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "numero" || rows[1][1] != "15 enero 2024" {
		t.Errorf("unexpected workbook content: %v", rows)
	}
}
