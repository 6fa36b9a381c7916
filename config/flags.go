package config

import (
	"errors"

	"github.com/spf13/pflag"
)

var errRepeated = errors.New("flag may only be given once")

// onceValue wraps a pflag.Value and rejects a second assignment.
type onceValue struct {
	pflag.Value
	set bool
}

func (v *onceValue) Set(s string) error {
	if v.set {
		return errRepeated
	}
	v.set = true
	return v.Value.Set(s)
}

// Flags holds the command-line values before they are merged into a Config.
type Flags struct {
	fs *pflag.FlagSet

	input     string
	cueList   string
	outputDir string

	settings  string
	ffmpeg    string
	logFormat string
	verbose   bool
	dryRun    bool
}

// RegisterFlags defines every splitter flag on fs. Each flag accepts a single
// occurrence; repeating one is a parse error.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	// Required fields
	fs.StringVarP(&f.input, "input", "i", "", "Source media file (required)")
	fs.StringVarP(&f.cueList, "config", "c", "", "Timestamp list: one '<MM:SS|HH:MM:SS> <label>' per line (required)")
	fs.StringVarP(&f.outputDir, "output", "o", "", "Existing output directory (required)")

	// Ambient settings
	fs.StringVar(&f.settings, "settings", "", "Settings file, YAML or TOML (default: search standard locations)")
	fs.StringVar(&f.ffmpeg, "ffmpeg", "", "ffmpeg executable (default: from settings or PATH)")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format: console, json (default: from settings)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVar(&f.dryRun, "dry-run", false, "Print the ffmpeg commands without running them")

	fs.VisitAll(func(fl *pflag.Flag) {
		fl.Value = &onceValue{Value: fl.Value}
	})

	return f
}

// SettingsPath returns the --settings value.
func (f *Flags) SettingsPath() string {
	return f.settings
}

// MergeFromFlags overrides config values with flags that were given
// explicitly.
func (c *Config) MergeFromFlags(f *Flags) {
	c.Input = f.input
	c.CueList = f.cueList
	c.OutputDir = f.outputDir

	if f.fs.Changed("ffmpeg") {
		c.FFmpeg = f.ffmpeg
	}
	if f.fs.Changed("log-format") {
		c.LogFormat = f.logFormat
	}
	if f.verbose {
		c.LogLevel = "debug"
	}
	if f.dryRun {
		c.DryRun = true
	}
}
