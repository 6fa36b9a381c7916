// Package cut builds and runs the ffmpeg invocation that copies one segment of
// the source media into its own file.
package cut

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"splitter/command"
	"splitter/models"
)

// DefaultBinary is the ffmpeg executable looked up on PATH.
const DefaultBinary = "ffmpeg"

// CutBuilder implements command.Command for a single stream-copy cut.
type CutBuilder struct {
	segment    models.Segment
	sourcePath string
	outputPath string
	binary     string
	stdout     io.Writer
	stderr     io.Writer
}

// NewCutBuilder creates a CutBuilder copying seg out of sourcePath into
// outputPath. ffmpeg output is passed through to the process's stdout and
// stderr.
func NewCutBuilder(seg models.Segment, sourcePath, outputPath string) *CutBuilder {
	return &CutBuilder{
		segment:    seg,
		sourcePath: sourcePath,
		outputPath: outputPath,
		binary:     DefaultBinary,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// SetBinary sets the ffmpeg executable. Empty keeps the current one.
func (c *CutBuilder) SetBinary(binary string) *CutBuilder {
	if binary != "" {
		c.binary = binary
	}
	return c
}

// SetOutput redirects the tool's stdout and stderr.
func (c *CutBuilder) SetOutput(stdout, stderr io.Writer) *CutBuilder {
	c.stdout = stdout
	c.stderr = stderr
	return c
}

// BuildArgs constructs the ffmpeg arguments.
//
// -ss and -t are input options so ffmpeg seeks before reading; audio and video
// are stream-copied. -nostdin keeps ffmpeg from consuming the terminal and -y
// overwrites an existing file without asking.
func (c *CutBuilder) BuildArgs() []string {
	stream := ffmpeg.Input(c.sourcePath, ffmpeg.KwArgs{
		"ss": c.segment.Start,
		"t":  c.segment.Duration(),
	}).Output(c.outputPath, ffmpeg.KwArgs{
		"c:a": "copy",
		"c:v": "copy",
	})

	return append([]string{"-nostdin", "-y"}, stream.GetArgs()...)
}

// Run executes ffmpeg and blocks until it exits.
func (c *CutBuilder) Run(ctx context.Context) error {
	args := c.BuildArgs()
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdin = nil
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		return &command.ToolError{
			Tool:    "ffmpeg",
			Command: command.FormatCommandLine(c.binary, args),
			Err:     fmt.Errorf("cut %q: %w", c.segment.Label, err),
		}
	}
	return nil
}

// DryRun returns the command line without executing it.
func (c *CutBuilder) DryRun() (string, error) {
	if c.sourcePath == "" {
		return "", fmt.Errorf("cannot build command: source path is empty")
	}
	if c.outputPath == "" {
		return "", fmt.Errorf("cannot build command: output path is empty")
	}
	return command.FormatCommandLine(c.binary, c.BuildArgs()), nil
}

// GetTaskType returns the task type (cut).
func (c *CutBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeCut
}

// GetInputPath returns the source media path.
func (c *CutBuilder) GetInputPath() string {
	return c.sourcePath
}

// GetOutputPath returns the segment file path.
func (c *CutBuilder) GetOutputPath() string {
	return c.outputPath
}

// OutputPath returns <outputDir>/<label>.<ext>, where ext is the part of the
// source file name after its last dot. A source without a dot gives a bare
// label.
//
// Example:
//
//	OutputPath("out", "Intro", "/music/album.flac") // "out/Intro.flac"
func OutputPath(outputDir, label, sourcePath string) string {
	name := label
	base := filepath.Base(sourcePath)
	if i := strings.LastIndex(base, "."); i >= 0 {
		name = label + "." + base[i+1:]
	}
	return filepath.Join(outputDir, name)
}
