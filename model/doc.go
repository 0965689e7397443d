// Package model provides the intermediate representation for recovered
// document structure.
//
// This package defines the user-facing data structures produced by the
// extraction pipeline. All parsing and segmentation operations ultimately
// produce these types, making them the primary API for consuming recovered
// content.
//
// # Payment Schedule
//
// The [PaymentTable] type represents the reconstructed payment schedule of a
// lease contract. Each [PaymentRow] carries a resolved sequence number, a due
// date, and a fixed-point [Amount]:
//
//	for _, row := range table.Rows {
//	    fmt.Println(row.Sequence, row.DueDate, row.Amount)
//	}
//
// Tables are always sorted ascending by due date; sequence numbers are
// resolved by the extractor's numbering policy, contiguous from 1 by
// default. The external record form ([PaymentRecord]) renders
// dates as "D month-name YYYY" in Spanish and amounts with two fraction
// digits.
//
// # Sections
//
// A [Section] pairs a [Heading] with its body text. Headings carry the
// Roman-numeral label assigned by the segmenter, never one parsed from OCR
// output, since OCR numeral recognition is unreliable.
package model
