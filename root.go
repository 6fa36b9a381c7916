package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"splitter/command"
	"splitter/config"
	"splitter/cuelist"
	"splitter/extractor"
	"splitter/ffprobe"
	"splitter/logging"
	"splitter/report"
	"splitter/splitter"
)

// run parses args, executes the split and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var helpShown bool

	cmd := &cobra.Command{
		Use:           "splitter -i FILE -c FILE -o DIR",
		Short:         "Cut a media file into labelled segments from a timestamp list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &config.UsageError{Err: fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
	}
	flags := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return execute(cmd.Context(), flags, stdout, stderr)
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.UsageError{Err: err}
	})
	// cobra treats help as success and Execute returns nil, so the help func
	// only records the request. Usage goes to stderr below with exit status 1,
	// like any other usage error.
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		helpShown = true
	})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if helpShown {
		config.WriteUsage(stderr)
		return 1
	}
	return exitCode(ctx, err, stderr)
}

// execute loads the configuration and runs the pipeline.
func execute(ctx context.Context, flags *config.Flags, stdout, stderr io.Writer) error {
	// Step 1: Load configuration (CLI flags > settings file > defaults)
	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: stderr,
	})
	if err != nil {
		return err
	}

	// Step 2: Dry run announces itself and shows what it is working with
	if cfg.DryRun {
		fmt.Fprintln(stdout, "🔍 Dry run: ffmpeg commands are printed, not executed")
		cfg.PrintConfig(stdout)
		fmt.Fprintln(stdout)
	}
	logger.Debug("configuration loaded",
		"input", cfg.Input,
		"cue_list", cfg.CueList,
		"output_dir", cfg.OutputDir,
		"ffmpeg", cfg.FFmpeg,
		"dry_run", cfg.DryRun,
	)

	// Step 3: Split
	ext := extractor.New(extractor.Options{
		Input:     cfg.Input,
		OutputDir: cfg.OutputDir,
		FFmpeg:    cfg.FFmpeg,
		DryRun:    cfg.DryRun,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
	})
	pipeline := splitter.New(cfg, ffprobe.NewProber(logger), ext, logger)

	results, err := pipeline.Run(ctx)

	// Step 4: Summary of what was done, including a partial run
	fmt.Fprintln(stdout)
	if werr := report.Write(stdout, results); werr != nil {
		logger.Warn("failed to write summary", "error", werr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "✅ Split completed successfully!")
	return nil
}

// exitCode reports err on stderr and maps it to an exit status.
func exitCode(ctx context.Context, err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var (
		usageErr  *config.UsageError
		formatErr *cuelist.FormatError
		toolErr   *command.ToolError
	)

	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintf(stderr, "❌ %v\n\n", err)
		config.WriteUsage(stderr)
		return 1
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "⚠️  Split cancelled by user")
		return 130 // Standard exit code for SIGINT
	case errors.As(err, &formatErr):
		fmt.Fprintf(stderr, "❌ Cue list error: %v\n", err)
		return 1
	case errors.As(err, &toolErr):
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return toolErr.ExitCode()
	default:
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
}
