package models

import (
	"fmt"
	"strings"
)

// ResultStatus describes what happened to a segment.
type ResultStatus string

const (
	StatusExtracted ResultStatus = "extracted" // ffmpeg wrote the output file
	StatusSkipped   ResultStatus = "skipped"   // sentinel label, no tool call
	StatusPlanned   ResultStatus = "planned"   // dry run, command only printed
)

// ExtractionResult records the outcome for one emitted segment.
//
// Use NewExtractedResult, NewPlannedResult or NewSkippedResult to create
// validated instances.
type ExtractionResult struct {
	Segment    Segment      `json:"segment"`
	OutputPath string       `json:"output_path,omitempty"`
	Status     ResultStatus `json:"status"`
}

// NewExtractedResult creates a result for a segment written to outputPath.
func NewExtractedResult(seg Segment, outputPath string) (*ExtractionResult, error) {
	r := &ExtractionResult{Segment: seg, OutputPath: outputPath, Status: StatusExtracted}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extraction result: %w", err)
	}
	return r, nil
}

// NewPlannedResult creates a dry-run result for a segment that would be
// written to outputPath.
func NewPlannedResult(seg Segment, outputPath string) (*ExtractionResult, error) {
	r := &ExtractionResult{Segment: seg, OutputPath: outputPath, Status: StatusPlanned}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extraction result: %w", err)
	}
	return r, nil
}

// NewSkippedResult creates a result for a sentinel segment.
//
// By construction this result is always valid.
func NewSkippedResult(seg Segment) *ExtractionResult {
	return &ExtractionResult{Segment: seg, Status: StatusSkipped}
}

// Validate checks if the ExtractionResult has consistent state.
//
// Returns an error if:
//   - Status is unknown
//   - an extracted or planned result has no output path
//   - a skipped result has an output path
func (r *ExtractionResult) Validate() error {
	switch r.Status {
	case StatusExtracted, StatusPlanned:
		if strings.TrimSpace(r.OutputPath) == "" {
			return fmt.Errorf("output_path cannot be empty for %s result", r.Status)
		}
	case StatusSkipped:
		if strings.TrimSpace(r.OutputPath) != "" {
			return fmt.Errorf("skipped result should not have output_path")
		}
	default:
		return fmt.Errorf("unknown status %q", r.Status)
	}
	return nil
}
