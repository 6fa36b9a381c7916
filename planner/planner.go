// Package planner turns an ordered list of cues into labelled segments.
package planner

import "splitter/models"

// Planner accumulates cues in file order and emits a segment each time a cue
// closes the one before it.
//
// The first cue only seeds the cursor. After the last cue, Close ends the
// open segment at the media duration:
//
//	p := planner.New()
//	for _, line := range lines {
//	    if seg, ok := p.Push(line); ok {
//	        extract(seg)
//	    }
//	}
//	if seg, ok := p.Close(totalSeconds); ok {
//	    extract(seg)
//	}
type Planner struct {
	prevTimestamp int
	prevLabel     string
}

// New creates a Planner with the cursor at 0 and no open label.
func New() *Planner {
	return &Planner{}
}

// Push consumes the next cue. It returns the segment closed by line, and
// false when there was no open label to close.
func (p *Planner) Push(line models.ParsedLine) (models.Segment, bool) {
	seg, ok := p.emit(line.Timestamp)
	p.prevTimestamp = line.Timestamp
	p.prevLabel = line.Label
	return seg, ok
}

// Close ends the open segment at total, the media duration in seconds.
// The end is not checked against any earlier boundary.
func (p *Planner) Close(total int) (models.Segment, bool) {
	seg, ok := p.emit(total)
	p.prevTimestamp = total
	p.prevLabel = ""
	return seg, ok
}

// Cursor returns the start and label of the currently open segment.
func (p *Planner) Cursor() (int, string) {
	return p.prevTimestamp, p.prevLabel
}

func (p *Planner) emit(end int) (models.Segment, bool) {
	if p.prevLabel == "" {
		return models.Segment{}, false
	}
	return models.Segment{
		Label: p.prevLabel,
		Start: p.prevTimestamp,
		End:   end,
	}, true
}

// Plan folds lines into segments, closing the last one at total.
//
// Order is preserved and nothing is merged. Cues with an empty label still
// move the cursor but produce no segment of their own.
func Plan(lines []models.ParsedLine, total int) []models.Segment {
	segments := make([]models.Segment, 0, len(lines))

	p := New()
	for _, line := range lines {
		if seg, ok := p.Push(line); ok {
			segments = append(segments, seg)
		}
	}
	if seg, ok := p.Close(total); ok {
		segments = append(segments, seg)
	}

	return segments
}
