package command

import (
	"errors"
	"fmt"
	"os/exec"
)

// ToolError reports a failed ffmpeg or ffprobe invocation. It is never
// retried; the run stops and the tool's exit status becomes the process exit
// status.
type ToolError struct {
	Tool    string // "ffmpeg" or "ffprobe"
	Command string // full command line, for diagnostics
	Err     error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ExitCode returns the tool's exit status, or 1 when the tool did not exit
// normally (not found, killed by a signal).
func (e *ToolError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
