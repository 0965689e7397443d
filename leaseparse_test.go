package leaseparse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Omarhersan/leaseparse/section"
)

const endToEndDoc = `CONTRATO DE ARRENDAMIENTO

LOS PAGOS SE REALIZARAN DE ACUERDO A LA TABLA SIGUIENTE:
15 de enero de 2024 | $10,000.00
TERMINO DEL PLAZO BASICO

CLAUSULA PRIMERA. OBJETO
El arrendador entrega al arrendatario el equipo descrito en el anexo tecnico
y el arrendatario lo recibe a su entera satisfaccion para uso industrial.`

func TestRun_EndToEnd(t *testing.T) {
	result, err := FromString(endToEndDoc).MergeThreshold(50).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Table == nil || result.Table.Len() != 1 {
		t.Fatalf("expected a table with exactly one row, got %+v", result.Table)
	}

	record := result.Table.Records()[0]
	if record.Numero != 1 {
		t.Errorf("numero = %d, want 1", record.Numero)
	}
	if record.Fecha != "15 enero 2024" {
		t.Errorf("fecha = %q, want %q", record.Fecha, "15 enero 2024")
	}
	if record.Monto.String() != "10000.00" {
		t.Errorf("monto = %v, want 10000.00", record.Monto)
	}

	if strings.Contains(result.Residual, "DE ACUERDO A LA TABLA") {
		t.Error("table block phrase still present in residual text")
	}

	if len(result.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(result.Sections))
	}
	sec := result.Sections[0]
	if !strings.Contains(sec.Header.CanonicalTitle, "PRIMERA") {
		t.Errorf("section title = %q, want it to contain PRIMERA", sec.Header.CanonicalTitle)
	}
	if !strings.Contains(sec.Body, "entera satisfaccion") {
		t.Errorf("section body missing content: %q", sec.Body)
	}
}

func TestRun_MissingTableIsTolerated(t *testing.T) {
	doc := "CLAUSULA PRIMERA. OBJETO\nEl equipo se entrega en comodato simple."

	result, err := FromString(doc).MergeThreshold(10).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Table != nil {
		t.Error("expected nil table for a document without a schedule block")
	}
	if result.Residual != result.CleanText {
		t.Error("residual should equal clean text when no block was removed")
	}
	if len(result.Sections) != 1 {
		t.Errorf("expected 1 section, got %d", len(result.Sections))
	}
}

func TestRun_KeepTableText(t *testing.T) {
	result, err := FromString(endToEndDoc).MergeThreshold(50).KeepTableText().Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Table == nil || result.Table.Len() != 1 {
		t.Fatalf("expected a table with exactly one row, got %+v", result.Table)
	}
	if !strings.Contains(result.Residual, "DE ACUERDO A LA TABLA") {
		t.Error("table block should remain in residual text")
	}
}

func TestRun_NoHeadingsIsFatal(t *testing.T) {
	doc := "texto corrido sin ninguna estructura reconocible\nmas texto corrido"

	_, err := FromString(doc).Run()
	if !errors.Is(err, section.ErrNoSections) {
		t.Fatalf("Run() error = %v, want section.ErrNoSections", err)
	}
}

func TestOpen_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.txt")
	if err := os.WriteFile(path, []byte(endToEndDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Open(path).MergeThreshold(50).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Sections) != 1 {
		t.Errorf("expected 1 section, got %d", len(result.Sections))
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt")).Clean()
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestPipeline_ChainingDoesNotMutate(t *testing.T) {
	base := FromString(endToEndDoc)
	tuned := base.MergeThreshold(9999)

	if base.options.mergeThreshold == tuned.options.mergeThreshold {
		t.Error("chaining mutated the original pipeline")
	}
}

func TestMust(t *testing.T) {
	if got := Must("ok", nil); got != "ok" {
		t.Errorf("Must() = %v, want ok", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must("", errors.New("boom"))
}
