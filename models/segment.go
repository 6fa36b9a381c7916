// Package models provides core data structures for the splitter.
package models

import (
	"fmt"
	"strings"
)

// SentinelLabel marks a cue whose segment is planned but never extracted.
const SentinelLabel = "---"

// ParsedLine is a single non-empty line of a cue list after timestamp
// conversion and label sanitizing.
//
// Line is the 1-based position in the source file and is only used for
// diagnostics.
type ParsedLine struct {
	Timestamp int    `json:"timestamp"`
	Label     string `json:"label"`
	Line      int    `json:"line,omitempty"`
}

// Segment is a labelled time range of the source media, in whole seconds.
//
// Segments are derived from two adjacent boundaries: the label and start come
// from the earlier cue, the end from the next cue or, for the last segment,
// from the probed media duration.
type Segment struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Duration returns End - Start in seconds.
//
// No clamping is applied; an out-of-order cue list yields a negative duration
// which is handed to the cutter unchanged.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Skipped reports whether the segment carries the sentinel label.
func (s Segment) Skipped() bool {
	return s.Label == SentinelLabel
}

// Empty reports whether the segment has no label and therefore nothing to do.
func (s Segment) Empty() bool {
	return s.Label == ""
}

// String renders the segment as "label:[start,end)".
func (s Segment) String() string {
	return fmt.Sprintf("%s:[%d,%d)", s.Label, s.Start, s.End)
}

// Validate checks the structural fields of a Segment before it is cut.
// The end boundary is not compared with the media duration.
//
// Returns an error if:
//   - Label is empty or whitespace-only
//   - Start is negative
func (s Segment) Validate() error {
	if strings.TrimSpace(s.Label) == "" {
		return fmt.Errorf("label cannot be empty")
	}
	if s.Start < 0 {
		return fmt.Errorf("start must not be negative")
	}
	return nil
}
