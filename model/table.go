package model

import (
	"fmt"
	"time"
)

// Spanish month names indexed by time.Month.
var monthNames = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// MonthName returns the lowercase Spanish name for a month.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return "unknown"
	}
	return monthNames[m]
}

// MonthNumber returns the month for a lowercase Spanish month name.
func MonthNumber(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if monthNames[m] == name {
			return m, true
		}
	}
	return 0, false
}

// FormatDate renders a date in the external "D month-name YYYY" form,
// e.g. "15 enero 2024".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), MonthName(t.Month()), t.Year())
}

// PaymentRow is one reconstructed row of the payment schedule. Rows are
// created by the table extractor and finalized during reconstruction; they
// are immutable thereafter.
type PaymentRow struct {
	// Sequence is the 1-based position of the row in due-date order.
	// Assigned during reconstruction, contiguous starting at 1.
	Sequence int

	// DueDate is the parsed calendar date the payment is due.
	DueDate time.Time

	// Amount is the payment amount, never negative.
	Amount Amount

	// SourceLine is the cleaned line of text the row was matched from.
	SourceLine string
}

// PaymentTable is the reconstructed payment schedule, sorted ascending by
// due date (stable for ties).
type PaymentTable struct {
	Rows []PaymentRow
}

// Len returns the number of payments in the table.
func (t *PaymentTable) Len() int { return len(t.Rows) }

// Total returns the sum of all payment amounts.
func (t *PaymentTable) Total() Amount {
	var sum Amount
	for _, r := range t.Rows {
		sum += r.Amount
	}
	return sum
}

// First returns the earliest payment, or false for an empty table.
func (t *PaymentTable) First() (PaymentRow, bool) {
	if len(t.Rows) == 0 {
		return PaymentRow{}, false
	}
	return t.Rows[0], true
}

// Last returns the latest payment, or false for an empty table.
func (t *PaymentTable) Last() (PaymentRow, bool) {
	if len(t.Rows) == 0 {
		return PaymentRow{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}

// Largest returns the single largest payment, or false for an empty table.
// Earlier rows win ties.
func (t *PaymentTable) Largest() (PaymentRow, bool) {
	if len(t.Rows) == 0 {
		return PaymentRow{}, false
	}
	best := t.Rows[0]
	for _, r := range t.Rows[1:] {
		if r.Amount > best.Amount {
			best = r
		}
	}
	return best, true
}

// PaymentRecord is the external, serializable form of a payment row, as
// consumed by the Q&A collaborator and by the CSV/JSON/XLSX exports.
type PaymentRecord struct {
	Numero int    `json:"numero"`
	Fecha  string `json:"fecha"`
	Monto  Amount `json:"monto"`
}

// Records returns the table in external record form, with dates rendered as
// "D month-name YYYY".
func (t *PaymentTable) Records() []PaymentRecord {
	records := make([]PaymentRecord, len(t.Rows))
	for i, r := range t.Rows {
		records[i] = PaymentRecord{
			Numero: r.Sequence,
			Fecha:  FormatDate(r.DueDate),
			Monto:  r.Amount,
		}
	}
	return records
}
