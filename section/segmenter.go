// Package section walks normalized, table-stripped contract text and splits
// it into titled sections.
//
// The segmenter is a single forward pass: each line is offered to the heading
// classifier; a match closes the active section and opens a new one labeled
// with a fresh Roman numeral. OCR numerals are never trusted for ordering.
// A post-processing merge pass folds undersized sections into their neighbor
// so over-eager heading detection cannot fragment the document.
package section

import (
	"errors"
	"strings"

	"github.com/Omarhersan/leaseparse/heading"
	"github.com/Omarhersan/leaseparse/model"
)

// ErrNoSections is returned when a full pass over the document recognizes no
// headings at all. This is fatal: the input is not structured the way a lease
// contract is expected to be, and retrying will not help.
var ErrNoSections = errors.New("section: no headings recognized in document")

// Config holds segmentation thresholds.
type Config struct {
	// MergeThreshold is the minimum body length, in bytes, a section must
	// reach before the merge pass stops folding the following sections
	// into it.
	MergeThreshold int
}

// DefaultConfig returns the thresholds used for scanned lease contracts.
func DefaultConfig() Config {
	return Config{
		MergeThreshold: 300,
	}
}

// Segmenter splits documents into sections using a heading classifier.
type Segmenter struct {
	classifier *heading.Classifier
	cfg        Config
}

// NewSegmenter creates a segmenter with the default configuration.
func NewSegmenter() *Segmenter {
	return NewSegmenterWithConfig(DefaultConfig())
}

// NewSegmenterWithConfig creates a segmenter with custom thresholds.
func NewSegmenterWithConfig(cfg Config) *Segmenter {
	return &Segmenter{
		classifier: heading.NewClassifier(),
		cfg:        cfg,
	}
}

// walkState is the accumulator carried across the line-by-line pass.
type walkState struct {
	header model.Heading
	active bool
	body   []string
	next   int // next ordinal label index, 1-based
}

// Segment splits text into sections. Content before the first recognized
// heading is discarded; callers needing a preamble must capture it upstream.
// Returns ErrNoSections when the pass recognizes no headings.
func (s *Segmenter) Segment(text string) ([]model.Section, error) {
	var sections []model.Section
	state := walkState{next: 1}

	emit := func() {
		sections = append(sections, model.Section{
			Header: state.header,
			Body:   strings.TrimSpace(strings.Join(state.body, "\n")),
		})
		state.body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		match, ok := s.classifier.Classify(line)
		if !ok {
			if state.active {
				state.body = append(state.body, strings.TrimSpace(line))
			}
			continue
		}

		if state.active {
			emit()
		}
		state.header = match.Heading(romanNumeral(state.next))
		state.next++
		state.active = true
	}

	if state.active {
		emit()
	}

	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	return mergeSmall(sections, s.cfg.MergeThreshold), nil
}

// romanValues pairs for numeral construction, largest first.
var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// romanNumeral renders n as an uppercase Roman numeral.
func romanNumeral(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			sb.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return sb.String()
}
