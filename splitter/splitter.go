// Package splitter runs the single pass that reads a cue list, plans
// segments and extracts them from the source media.
package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"splitter/config"
	"splitter/cuelist"
	"splitter/models"
	"splitter/planner"
)

// Prober reports the total duration of a media file in whole seconds.
type Prober interface {
	Duration(ctx context.Context, sourcePath string) (int, error)
}

// Extractor handles one planned segment. A nil result means nothing was done.
type Extractor interface {
	Extract(ctx context.Context, seg models.Segment) (*models.ExtractionResult, error)
}

// Pipeline wires the cue list scanner, the planner, the prober and the
// extractor together.
type Pipeline struct {
	cfg       config.Config
	prober    Prober
	extractor Extractor
	logger    *slog.Logger
}

// New creates a Pipeline for cfg. A nil logger discards logs.
func New(cfg config.Config, prober Prober, extractor Extractor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{cfg: cfg, prober: prober, extractor: extractor, logger: logger}
}

// Run processes the cue list strictly in order. Each segment is extracted as
// soon as the line that closes it has been read, so a malformed line stops
// the run after the earlier segments were already written. The last open
// segment is closed by the probed duration of the input.
//
// The results gathered so far are returned together with the first error.
func (p *Pipeline) Run(ctx context.Context) ([]*models.ExtractionResult, error) {
	f, err := os.Open(p.cfg.CueList)
	if err != nil {
		return nil, fmt.Errorf("failed to open cue list: %w", err)
	}
	defer f.Close()

	var results []*models.ExtractionResult
	extract := func(seg models.Segment) error {
		r, err := p.extractor.Extract(ctx, seg)
		if err != nil {
			return err
		}
		if r != nil {
			results = append(results, r)
		}
		return nil
	}

	plan := planner.New()
	sc := cuelist.NewScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		line := sc.Line()
		seg, ok := plan.Push(line)

		openStart, openLabel := plan.Cursor()
		p.logger.Debug("cue", "line", line.Line, "open_start", openStart, "open_label", openLabel)

		if ok {
			if err := extract(seg); err != nil {
				return results, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return results, err
	}

	total, err := p.prober.Duration(ctx, p.cfg.Input)
	if err != nil {
		return results, err
	}
	p.logger.Debug("media duration", "path", p.cfg.Input, "seconds", total)

	if seg, ok := plan.Close(total); ok {
		if err := extract(seg); err != nil {
			return results, err
		}
	}

	return results, nil
}
