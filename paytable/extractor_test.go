package paytable

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const sampleDoc = `CONTRATO DE ARRENDAMIENTO

EL PAGO SE HARA DE ACUERDO A LA TABLA SIGUIENTE:
1 | 15 de enero de 2024 | $10,000.00
2 | 15 de febrero de 2024 | $10,000.00
| 15 de marzo de 2024 | $12,500.00
nota sin fecha $99.00
15 de abril de 2024 sin monto
FIN DEL PLAZO BASICO

CLAUSULA PRIMERA. OBJETO
cuerpo de la clausula`

func TestExtract_LocatesAndRemovesBlock(t *testing.T) {
	table, residual, err := NewExtractor().Extract(sampleDoc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Len())
	}

	if strings.Contains(residual, "DE ACUERDO A LA TABLA") {
		t.Error("residual text still contains the table block opening phrase")
	}
	if strings.Contains(residual, "PLAZO BASICO") {
		t.Error("residual text still contains the table block closing phrase")
	}
	if !strings.Contains(residual, "CLAUSULA PRIMERA. OBJETO") {
		t.Error("residual text lost content outside the block")
	}
}

func TestExtract_RowsRequireDateAndAmount(t *testing.T) {
	table, _, err := NewExtractor().Extract(sampleDoc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	for _, row := range table.Rows {
		if strings.Contains(row.SourceLine, "nota sin fecha") {
			t.Error("amount-only line was accepted as a row")
		}
		if strings.Contains(row.SourceLine, "sin monto") {
			t.Error("date-only line was accepted as a row")
		}
	}
}

func TestExtract_SortedAndRenumbered(t *testing.T) {
	// Rows arrive jumbled; reconstruction must order them by date and
	// renumber sequentially regardless of parsed numbers.
	doc := `DE ACUERDO A LA TABLA
7 15 de marzo de 2024 $3,000.00
15 de enero de 2024 $1,000.00
2 15 de febrero de 2024 $2,000.00
PLAZO BASICO`

	table, _, err := NewExtractor().Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Len())
	}

	for i, row := range table.Rows {
		if row.Sequence != i+1 {
			t.Errorf("row %d sequence = %d, want %d", i, row.Sequence, i+1)
		}
		if i > 0 && table.Rows[i-1].DueDate.After(row.DueDate) {
			t.Errorf("rows not sorted by date at index %d", i)
		}
	}

	if table.Rows[0].DueDate.Month() != time.January {
		t.Errorf("first row month = %v, want January", table.Rows[0].DueDate.Month())
	}
}

func TestExtract_PreserveExplicitNumbering(t *testing.T) {
	// Rows whose line opens with the date carry no row number: the leading
	// digits are the day, never an explicit sequence.
	doc := `DE ACUERDO A LA TABLA
7 15 de marzo de 2024 $3,000.00
15 de enero de 2024 $1,000.00
28 de abril de 2024 $4,000.00
PLAZO BASICO`

	e := NewExtractorWithConfig(Config{Numbering: NumberingPreserveExplicit})
	table, _, err := e.Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Len())
	}
	if table.Rows[0].Sequence != 1 {
		t.Errorf("implicit row sequence = %d, want 1", table.Rows[0].Sequence)
	}
	if table.Rows[1].Sequence != 7 {
		t.Errorf("explicit row sequence = %d, want 7", table.Rows[1].Sequence)
	}
	if table.Rows[2].Sequence != 3 {
		t.Errorf("day-led row sequence = %d, want positional 3", table.Rows[2].Sequence)
	}
}

func TestExtract_StableSortForDateTies(t *testing.T) {
	doc := `DE ACUERDO A LA TABLA
15 de enero de 2024 $1,000.00 primera
15 de enero de 2024 $2,000.00 segunda
PLAZO BASICO`

	table, _, err := NewExtractor().Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if !strings.Contains(table.Rows[0].SourceLine, "primera") {
		t.Error("stable sort did not preserve original order for tied dates")
	}
}

func TestExtract_TableNotFound(t *testing.T) {
	doc := "un contrato sin tabla de pagos"

	table, residual, err := NewExtractor().Extract(doc)
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("Extract() error = %v, want ErrTableNotFound", err)
	}
	if table != nil {
		t.Error("table should be nil when the block is absent")
	}
	if residual != doc {
		t.Error("residual should be the untouched input when the block is absent")
	}
}

func TestExtract_NoiseTokensAndGlyphsStripped(t *testing.T) {
	doc := `DE ACUERDO A LA TABLA
Ss [15 de enero de 2024] | $1,000.00 —
PLAZO BASICO`

	table, _, err := NewExtractor().Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", table.Len())
	}
	if strings.ContainsAny(table.Rows[0].SourceLine, "[]|—") {
		t.Errorf("noise glyphs survived cleaning: %q", table.Rows[0].SourceLine)
	}
	if strings.HasPrefix(table.Rows[0].SourceLine, "Ss ") {
		t.Errorf("leading noise token survived: %q", table.Rows[0].SourceLine)
	}
}

func TestParseAmount_MixedSeparatorConventions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$91,870.00", "91870.00"},
		{"$91.870,00", "91870.00"},
		{"$ 25000.00", "25000.00"},
		{"$1,234,567.89", "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseAmount(tt.in)
			if !ok {
				t.Fatalf("parseAmount(%q) failed", tt.in)
			}
			if got.String() != tt.want {
				t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAmountPattern(t *testing.T) {
	tests := []struct {
		in    string
		match bool
	}{
		{"$10,000.00", true},
		{"$25000.00", true},
		{"$91.870,00", true},
		{"$100", false},
		{"$10.0", false},
		{"1000.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := amountPattern.MatchString(tt.in); got != tt.match {
				t.Errorf("amountPattern.MatchString(%q) = %v, want %v", tt.in, got, tt.match)
			}
		})
	}
}

func TestNumberingPolicy_String(t *testing.T) {
	if NumberingSequential.String() != "sequential" ||
		NumberingPreserveExplicit.String() != "preserve_explicit" ||
		NumberingPolicy(9).String() != "unknown" {
		t.Error("unexpected NumberingPolicy string values")
	}
}
