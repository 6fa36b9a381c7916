// Package command provides the Command interface shared by the external tool
// invocations of the splitter, and the error type they fail with.
package command

import (
	"context"
	"strconv"
	"strings"
)

// TaskType identifies the external tool a command drives.
type TaskType string

const (
	TaskTypeCut   TaskType = "cut"   // ffmpeg stream-copy of one segment
	TaskTypeProbe TaskType = "probe" // ffprobe duration lookup
)

// Command is an external tool invocation that can be built, previewed and run.
//
// Example usage:
//
//	seg := models.Segment{Label: "Intro", Start: 0, End: 195}
//	cmd := cut.NewCutBuilder(seg, "album.flac", "out/Intro.flac")
//
//	// Preview the command
//	line, _ := cmd.DryRun()
//
//	// Execute the command
//	err := cmd.Run(ctx)
type Command interface {
	// BuildArgs returns the tool arguments, without the binary name.
	BuildArgs() []string

	// Run executes the tool and blocks until it exits. A non-zero exit is
	// reported as a *ToolError.
	Run(ctx context.Context) error

	// DryRun returns the full command line without executing it.
	DryRun() (string, error)

	// GetTaskType returns the kind of task, used for logging.
	GetTaskType() TaskType

	// GetInputPath returns the media file the command reads.
	GetInputPath() string

	// GetOutputPath returns the file the command writes, if any.
	GetOutputPath() string
}

// FormatCommandLine renders binary and args as a single shell-like line.
// Arguments containing whitespace or quotes are quoted.
func FormatCommandLine(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(binary))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\n\"'\\") {
		return strconv.Quote(arg)
	}
	return arg
}
