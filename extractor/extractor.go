// Package extractor turns planned segments into files by running one ffmpeg
// cut per segment.
package extractor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"splitter/command"
	"splitter/command/cut"
	"splitter/internal/timeutil"
	"splitter/models"
)

// CutterFactory builds the command that copies seg out of sourcePath into
// outputPath.
type CutterFactory func(seg models.Segment, sourcePath, outputPath string) command.Command

// Options configures an Extractor.
type Options struct {
	Input     string // source media file
	OutputDir string // existing directory receiving the segment files
	FFmpeg    string // ffmpeg executable, empty for the default
	DryRun    bool   // print commands instead of running them

	Stdout io.Writer    // notices and ffmpeg stdout, defaults to os.Stdout
	Stderr io.Writer    // ffmpeg stderr, defaults to os.Stderr
	Logger *slog.Logger // diagnostics, nil discards
}

// Extractor handles one segment at a time. It is not safe for concurrent use.
type Extractor struct {
	opts      Options
	newCutter CutterFactory
}

// New creates an Extractor that runs ffmpeg through cut.CutBuilder.
func New(opts Options) *Extractor {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	e := &Extractor{opts: opts}
	e.newCutter = func(seg models.Segment, sourcePath, outputPath string) command.Command {
		return cut.NewCutBuilder(seg, sourcePath, outputPath).
			SetBinary(e.opts.FFmpeg).
			SetOutput(e.opts.Stdout, e.opts.Stderr)
	}
	return e
}

// SetCutterFactory replaces the command used for each cut.
func (e *Extractor) SetCutterFactory(f CutterFactory) *Extractor {
	e.newCutter = f
	return e
}

// Extract handles one segment:
//   - an empty label is ignored and yields a nil result
//   - the sentinel label prints a skipped notice and runs nothing
//   - any other label prints an extracting notice and runs the cutter, or
//     prints its command line in dry-run mode
//
// A segment that fails Validate is rejected before anything is printed.
// A cutter failure is returned as is and no result is produced.
func (e *Extractor) Extract(ctx context.Context, seg models.Segment) (*models.ExtractionResult, error) {
	if seg.Empty() {
		return nil, nil
	}

	timing := fmt.Sprintf("start %s (%ds), duration %s (%ds)",
		timeutil.FormatSeconds(seg.Start), seg.Start,
		timeutil.FormatSeconds(seg.Duration()), seg.Duration())

	if seg.Skipped() {
		fmt.Fprintf(e.opts.Stdout, "⏭️  Skipped %s: %s\n", seg.Label, timing)
		return models.NewSkippedResult(seg), nil
	}

	if err := seg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot extract %q: %w", seg.Label, err)
	}

	outputPath := cut.OutputPath(e.opts.OutputDir, seg.Label, e.opts.Input)
	fmt.Fprintf(e.opts.Stdout, "✂️  Extracting %s: %s -> %s\n", seg.Label, timing, outputPath)

	cmd := e.newCutter(seg, e.opts.Input, outputPath)

	if e.opts.DryRun {
		line, err := cmd.DryRun()
		if err != nil {
			return nil, fmt.Errorf("failed to build command for %q: %w", seg.Label, err)
		}
		fmt.Fprintf(e.opts.Stdout, "   %s\n", line)
		return models.NewPlannedResult(seg, outputPath)
	}

	e.opts.Logger.Debug("running cut",
		"task", cmd.GetTaskType(),
		"label", seg.Label,
		"start", seg.Start,
		"duration", seg.Duration(),
		"input", cmd.GetInputPath(),
		"output", cmd.GetOutputPath(),
		"args", cmd.BuildArgs(),
	)

	if err := cmd.Run(ctx); err != nil {
		return nil, err
	}

	return models.NewExtractedResult(seg, outputPath)
}
