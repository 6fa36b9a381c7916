package config

import (
	"fmt"
	"io"
	"slices"
)

// Config holds everything a split run needs. It is built once, by Load, and
// passed by value afterwards.
type Config struct {
	// Required paths, only settable from the command line
	Input     string `yaml:"-" toml:"-"` // source media file (-i)
	CueList   string `yaml:"-" toml:"-"` // timestamp list (-c)
	OutputDir string `yaml:"-" toml:"-"` // existing output directory (-o)

	// Tooling
	FFmpeg string `yaml:"ffmpeg" toml:"ffmpeg"` // ffmpeg executable

	// Logging
	LogLevel  string `yaml:"log_level" toml:"log_level"`   // debug, info, warn, error
	LogFormat string `yaml:"log_format" toml:"log_format"` // console, json

	// Behavioral flags
	DryRun bool `yaml:"dry_run" toml:"dry_run"` // print commands instead of running them
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		FFmpeg:    "ffmpeg",
		LogLevel:  "info",
		LogFormat: "console",
		DryRun:    false,
	}
}

// LogLevelValues returns valid log level values
func LogLevelValues() []string {
	return []string{"debug", "info", "warn", "error"}
}

// LogFormatValues returns valid log format values
func LogFormatValues() []string {
	return []string{"console", "json"}
}

// IsValidLogLevel checks if level is valid
func IsValidLogLevel(level string) bool {
	return slices.Contains(LogLevelValues(), level)
}

// IsValidLogFormat checks if format is valid
func IsValidLogFormat(format string) bool {
	return slices.Contains(LogFormatValues(), format)
}

// PrintConfig writes the effective configuration to w
func (c Config) PrintConfig(w io.Writer) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
	fmt.Fprintln(w, "                 Effective Configuration                  ")
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "Input:          %s\n", c.Input)
	fmt.Fprintf(w, "Cue list:       %s\n", c.CueList)
	fmt.Fprintf(w, "Output dir:     %s\n", c.OutputDir)
	fmt.Fprintf(w, "FFmpeg:         %s\n", c.FFmpeg)
	fmt.Fprintf(w, "Log level:      %s\n", c.LogLevel)
	fmt.Fprintf(w, "Log format:     %s\n", c.LogFormat)
	fmt.Fprintf(w, "Dry run:        %v\n", c.DryRun)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
}
