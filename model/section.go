package model

// Heading identifies a line recognized as the start of a structural section.
// Headings are produced only by the heading classifier and labeled by the
// segmenter; they are never constructed ad hoc from OCR numerals.
type Heading struct {
	// OrdinalLabel is the Roman-numeral label assigned by the segmenter's
	// incrementing counter, e.g. "I", "II".
	OrdinalLabel string

	// CanonicalTitle is the cleaned, uppercased title text.
	CanonicalTitle string

	// RawLine is the original line the heading was recognized from.
	RawLine string
}

// String renders the heading as it appears in section artifacts,
// e.g. "I. DECLARACIONES".
func (h Heading) String() string {
	if h.OrdinalLabel == "" {
		return h.CanonicalTitle
	}
	return h.OrdinalLabel + ". " + h.CanonicalTitle
}

// Section is a titled region of the document: a heading followed by the body
// text accumulated up to the next heading. Sections are read-only once
// emitted by the segmenter.
type Section struct {
	Header Heading
	Body   string
}
