// Package leaseparse recovers logical document structure from noisy OCR
// output of scanned Spanish lease contracts.
//
// The pipeline normalizes OCR artifacts, extracts the embedded payment
// schedule, and segments the remaining text into titled sections, using only
// heuristic pattern matching. It tolerates corrupted input and favors
// precision over recall: ambiguous heading candidates are rejected and small
// fragments are merged downstream rather than surfaced as spurious sections.
//
// Basic usage:
//
//	result, err := leaseparse.Open("contract_ocr.txt").Run()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(len(result.Sections), result.Table.Len())
//
// With options:
//
//	result, err := leaseparse.FromString(raw).
//	    MergeThreshold(500).
//	    Numbering(paytable.NumberingPreserveExplicit).
//	    Run()
//
// For advanced use cases, the lower-level normalize, paytable, heading and
// section packages are also available.
package leaseparse

import (
	"errors"
	"fmt"
	"os"

	"github.com/Omarhersan/leaseparse/model"
	"github.com/Omarhersan/leaseparse/normalize"
	"github.com/Omarhersan/leaseparse/paytable"
	"github.com/Omarhersan/leaseparse/section"
)

// Result holds the output of a full pipeline run.
type Result struct {
	// CleanText is the document after noise normalization.
	CleanText string

	// Table is the reconstructed payment schedule, or nil when the
	// document contains no locatable table block.
	Table *model.PaymentTable

	// Residual is the normalized text with the table block removed; equal
	// to CleanText when no block was found.
	Residual string

	// Sections are the segmented, merge-passed document sections.
	Sections []model.Section
}

// Pipeline provides a fluent interface for structure recovery. Each
// configuration method returns a new Pipeline instance, making it safe for
// concurrent use and allowing method chaining.
type Pipeline struct {
	filename string
	text     string
	fromText bool

	options PipelineOptions
}

// Open prepares a pipeline that reads the OCR text from filename when a
// terminal operation runs.
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromString prepares a pipeline over in-memory OCR text.
func FromString(text string) *Pipeline {
	return &Pipeline{
		text:     text,
		fromText: true,
		options:  defaultOptions(),
	}
}

// clone creates a copy of the Pipeline with a deep copy of options, so each
// chain method returns an independent instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename: p.filename,
		text:     p.text,
		fromText: p.fromText,
		options:  p.options.clone(),
	}
}

// MergeThreshold sets the minimum section body size, in bytes, below which
// adjacent sections are merged.
func (p *Pipeline) MergeThreshold(n int) *Pipeline {
	np := p.clone()
	np.options.mergeThreshold = n
	return np
}

// Numbering sets the payment-row renumbering policy.
func (p *Pipeline) Numbering(policy paytable.NumberingPolicy) *Pipeline {
	np := p.clone()
	np.options.numbering = policy
	return np
}

// KeepTableText leaves the payment-schedule narrative in the segmented text
// instead of removing it. The table is still extracted; only the residual
// handed to the segmenter changes.
func (p *Pipeline) KeepTableText() *Pipeline {
	np := p.clone()
	np.options.keepTableText = true
	return np
}

// load returns the raw document text.
func (p *Pipeline) load() (string, error) {
	if p.fromText {
		return p.text, nil
	}
	if p.filename == "" {
		return "", fmt.Errorf("leaseparse: no input specified")
	}
	data, err := os.ReadFile(p.filename)
	if err != nil {
		return "", fmt.Errorf("leaseparse: reading %s: %w", p.filename, err)
	}
	return string(data), nil
}

// Clean runs only the noise normalizer and returns the cleaned text.
func (p *Pipeline) Clean() (string, error) {
	raw, err := p.load()
	if err != nil {
		return "", err
	}
	return normalize.Clean(raw), nil
}

// Table normalizes the document and extracts the payment schedule. It
// returns the table together with the residual text. A missing table block
// surfaces as paytable.ErrTableNotFound.
func (p *Pipeline) Table() (*model.PaymentTable, string, error) {
	clean, err := p.Clean()
	if err != nil {
		return nil, "", err
	}
	extractor := paytable.NewExtractorWithConfig(paytable.Config{
		Numbering: p.options.numbering,
	})
	return extractor.Extract(clean)
}

// Sections runs the full pipeline and returns only the sections.
func (p *Pipeline) Sections() ([]model.Section, error) {
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	return result.Sections, nil
}

// Run executes normalization, table extraction and segmentation. A document
// without a locatable table block is segmented whole; a document in which no
// headings are recognized fails with section.ErrNoSections.
func (p *Pipeline) Run() (*Result, error) {
	clean, err := p.Clean()
	if err != nil {
		return nil, err
	}

	extractor := paytable.NewExtractorWithConfig(paytable.Config{
		Numbering: p.options.numbering,
	})
	table, residual, err := extractor.Extract(clean)
	if err != nil {
		if !errors.Is(err, paytable.ErrTableNotFound) {
			return nil, err
		}
		// Nothing to remove; segment the full text.
		table = nil
		residual = clean
	}
	if p.options.keepTableText {
		residual = clean
	}

	segmenter := section.NewSegmenterWithConfig(section.Config{
		MergeThreshold: p.options.mergeThreshold,
	})
	sections, err := segmenter.Segment(residual)
	if err != nil {
		return nil, err
	}

	return &Result{
		CleanText: clean,
		Table:     table,
		Residual:  residual,
		Sections:  sections,
	}, nil
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
