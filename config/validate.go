package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid. All problems are reported
// at once in a *UsageError.
func (c Config) Validate() error {
	var problems []string

	// Required fields
	problems = append(problems, checkFile("input file (-i)", c.Input)...)
	problems = append(problems, checkFile("config file (-c)", c.CueList)...)

	if c.OutputDir == "" {
		problems = append(problems, "output directory (-o) is required")
	} else if info, err := os.Stat(c.OutputDir); err != nil {
		problems = append(problems, fmt.Sprintf("output directory does not exist: %s", c.OutputDir))
	} else if !info.IsDir() {
		problems = append(problems, fmt.Sprintf("output path is not a directory: %s", c.OutputDir))
	}

	if strings.TrimSpace(c.FFmpeg) == "" {
		problems = append(problems, "ffmpeg executable cannot be empty")
	}

	if !IsValidLogLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("invalid log level '%s', must be one of: %s",
			c.LogLevel, strings.Join(LogLevelValues(), ", ")))
	}

	if !IsValidLogFormat(c.LogFormat) {
		problems = append(problems, fmt.Sprintf("invalid log format '%s', must be one of: %s",
			c.LogFormat, strings.Join(LogFormatValues(), ", ")))
	}

	if len(problems) > 0 {
		return &UsageError{Problems: problems}
	}
	return nil
}

func checkFile(name, path string) []string {
	if path == "" {
		return []string{name + " is required"}
	}
	info, err := os.Stat(path)
	if err != nil {
		return []string{fmt.Sprintf("%s does not exist: %s", name, path)}
	}
	if info.IsDir() {
		return []string{fmt.Sprintf("%s is a directory: %s", name, path)}
	}
	return nil
}
