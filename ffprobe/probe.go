// Package ffprobe provides utilities for reading the duration and stream
// layout of media files with the ffprobe command-line tool.
package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"splitter/command"
)

// Stream represents a media stream (audio, video, subtitle, etc.)
type Stream struct {
	Index         int    `json:"index"`
	CodecName     string `json:"codec_name"`
	CodecType     string `json:"codec_type"`
	CodecLongName string `json:"codec_long_name"`
	Duration      string `json:"duration,omitempty"`
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// ProbeResult holds the metadata extracted from a media file.
type ProbeResult struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// GetDuration returns the duration of the media file in seconds.
//
// Returns an error if the duration cannot be parsed.
func (pr *ProbeResult) GetDuration() (float64, error) {
	if pr.Format.Duration == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}

	duration, err := strconv.ParseFloat(pr.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration '%s': %w", pr.Format.Duration, err)
	}

	return duration, nil
}

// WholeSeconds returns the duration with its fractional part dropped.
// 499.98 becomes 499, never 500.
func (pr *ProbeResult) WholeSeconds() (int, error) {
	duration, err := pr.GetDuration()
	if err != nil {
		return 0, err
	}
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("invalid duration: %s", pr.Format.Duration)
	}
	return int(math.Trunc(duration)), nil
}

// GetVideoStreams returns all video streams from the media file.
func (pr *ProbeResult) GetVideoStreams() []Stream {
	return pr.streamsOfType("video")
}

// GetAudioStreams returns all audio streams from the media file.
func (pr *ProbeResult) GetAudioStreams() []Stream {
	return pr.streamsOfType("audio")
}

func (pr *ProbeResult) streamsOfType(codecType string) []Stream {
	var streams []Stream
	for _, stream := range pr.Streams {
		if stream.CodecType == codecType {
			streams = append(streams, stream)
		}
	}
	return streams
}

// ParseOutput decodes the JSON document printed by
// `ffprobe -show_format -show_streams -of json`.
func ParseOutput(data []byte) (*ProbeResult, error) {
	var result ProbeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe JSON output: %w", err)
	}
	return &result, nil
}

// probeFunc matches ffmpeg.Probe.
type probeFunc func(fileName string, kwargs ...ffmpeg.KwArgs) (string, error)

// Prober looks up media durations with ffprobe.
type Prober struct {
	probe  probeFunc
	logger *slog.Logger
}

// NewProber creates a Prober backed by ffmpeg-go. A nil logger discards logs.
func NewProber(logger *slog.Logger) *Prober {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Prober{probe: ffmpeg.Probe, logger: logger}
}

// Probe analyzes a media file and returns its metadata.
//
// Example:
//
//	result, err := ffprobe.NewProber(nil).Probe(ctx, "/path/to/album.flac")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	duration, _ := result.GetDuration()
func (p *Prober) Probe(ctx context.Context, sourcePath string) (*ProbeResult, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("probing media", "task", command.TaskTypeProbe, "path", sourcePath)

	// ffmpeg-go runs ffprobe from PATH and takes no context. An interrupt
	// still reaches ffprobe through the process group, so ctx is checked
	// again once it returns.
	output, err := p.probe(sourcePath)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, &command.ToolError{
			Tool:    "ffprobe",
			Command: command.FormatCommandLine("ffprobe", []string{"-show_format", "-show_streams", "-of", "json", sourcePath}),
			Err:     err,
		}
	}

	result, err := ParseOutput([]byte(output))
	if err != nil {
		return nil, err
	}

	p.logger.Debug("probe complete",
		"format", result.Format.FormatName,
		"duration", result.Format.Duration,
		"audio_streams", len(result.GetAudioStreams()),
		"video_streams", len(result.GetVideoStreams()),
	)
	return result, nil
}

// Duration returns the total duration of sourcePath in whole seconds,
// truncated.
func (p *Prober) Duration(ctx context.Context, sourcePath string) (int, error) {
	result, err := p.Probe(ctx, sourcePath)
	if err != nil {
		return 0, err
	}

	seconds, err := result.WholeSeconds()
	if err != nil {
		return 0, fmt.Errorf("failed to get media duration: %w", err)
	}
	return seconds, nil
}
