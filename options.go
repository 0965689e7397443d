package leaseparse

import (
	"github.com/Omarhersan/leaseparse/paytable"
	"github.com/Omarhersan/leaseparse/section"
)

// PipelineOptions holds configuration for a pipeline run.
type PipelineOptions struct {
	// mergeThreshold is the minimum section body size in bytes before the
	// segmenter's merge pass stops folding sections together.
	mergeThreshold int

	// numbering selects the payment-row renumbering policy.
	numbering paytable.NumberingPolicy

	// keepTableText leaves the payment-schedule narrative in the text
	// handed to the segmenter instead of cutting it out.
	keepTableText bool
}

// defaultOptions returns the default pipeline options.
func defaultOptions() PipelineOptions {
	return PipelineOptions{
		mergeThreshold: section.DefaultConfig().MergeThreshold,
		numbering:      paytable.NumberingSequential,
	}
}

// clone creates a copy of PipelineOptions.
func (o PipelineOptions) clone() PipelineOptions {
	return PipelineOptions{
		mergeThreshold: o.mergeThreshold,
		numbering:      o.numbering,
		keepTableText:  o.keepTableText,
	}
}
