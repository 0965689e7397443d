package paytable

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Omarhersan/leaseparse/model"
)

// WriteJSON exports the table as an indented JSON array of
// {numero, fecha, monto} records.
func WriteJSON(w io.Writer, table *model.PaymentTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(table.Records()); err != nil {
		return fmt.Errorf("paytable: encoding JSON: %w", err)
	}
	return nil
}

// WriteJSONFile exports the table as JSON to a file, overwriting it.
func WriteJSONFile(path string, table *model.PaymentTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("paytable: creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, table)
}

// WriteCSV exports the table as CSV with the header row numero,fecha,monto.
func WriteCSV(w io.Writer, table *model.PaymentTable) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"numero", "fecha", "monto"}); err != nil {
		return fmt.Errorf("paytable: writing CSV header: %w", err)
	}
	for _, r := range table.Records() {
		record := []string{strconv.Itoa(r.Numero), r.Fecha, r.Monto.String()}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("paytable: writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("paytable: flushing CSV: %w", err)
	}
	return nil
}

// WriteCSVFile exports the table as CSV to a file, overwriting it.
func WriteCSVFile(path string, table *model.PaymentTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("paytable: creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, table)
}

// WriteXLSX exports the table as a single-sheet workbook with a header row,
// overwriting any existing file at path.
func WriteXLSX(path string, table *model.PaymentTable) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"numero", "fecha", "monto"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("paytable: resolving cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("paytable: writing header: %w", err)
		}
	}

	for i, r := range table.Records() {
		row := i + 2
		values := []any{r.Numero, r.Fecha, r.Monto.String()}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("paytable: resolving cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("paytable: writing row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("paytable: saving %s: %w", path, err)
	}
	return nil
}
