package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type paths struct {
	input, cues, outDir string
}

func setup(t *testing.T, mediaName, cues string) paths {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	p := paths{
		input:  filepath.Join(dir, mediaName),
		cues:   filepath.Join(dir, "cues.txt"),
		outDir: filepath.Join(dir, "out"),
	}
	if err := os.WriteFile(p.input, []byte("media"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}
	if err := os.WriteFile(p.cues, []byte(cues), 0644); err != nil {
		t.Fatalf("Failed to write cues: %v", err)
	}
	if err := os.Mkdir(p.outDir, 0755); err != nil {
		t.Fatalf("Failed to create output dir: %v", err)
	}
	return p
}

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func assertNoOutputFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no output files, found %d", len(entries))
	}
}

func TestRun_UsageErrors(t *testing.T) {
	p := setup(t, "album.flac", "00:00 A\n01:00 B\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Unknown flag", []string{"-i", p.input, "-c", p.cues, "-o", p.outDir, "-x"}, "unknown shorthand flag"},
		{"Unknown long flag", []string{"-i", p.input, "-c", p.cues, "-o", p.outDir, "--speed", "2"}, "unknown flag"},
		{"Duplicate flag", []string{"-i", p.input, "-i", p.input, "-c", p.cues, "-o", p.outDir}, "only be given once"},
		{"Missing output", []string{"-i", p.input, "-c", p.cues}, "output directory (-o) is required"},
		{"No flags", nil, "input file (-i) is required"},
		{"Positional argument", []string{"-i", p.input, "-c", p.cues, "-o", p.outDir, "extra"}, `unexpected argument "extra"`},
		{"Output is not a directory", []string{"-i", p.input, "-c", p.cues, "-o", p.input}, "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runArgs(tt.args...)
			if code != 1 {
				t.Errorf("Expected exit code 1, got %d", code)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("Expected stderr to contain %q:\n%s", tt.want, stderr)
			}
			if !strings.Contains(stderr, "USAGE:") {
				t.Errorf("Expected usage on stderr:\n%s", stderr)
			}
			assertNoOutputFiles(t, p.outDir)
		})
	}
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		t.Run(arg, func(t *testing.T) {
			code, stdout, stderr := runArgs(arg)
			if code != 1 {
				t.Errorf("Expected exit code 1 for %s, got %d", arg, code)
			}
			if !strings.Contains(stderr, "USAGE:") {
				t.Errorf("Expected usage on stderr:\n%s", stderr)
			}
			if stdout != "" {
				t.Errorf("Expected nothing on stdout, got %q", stdout)
			}
		})
	}
}

func TestRun_FormatError(t *testing.T) {
	p := setup(t, "album.flac", "00:00 A\n5 B\n")

	code, _, stderr := runArgs("-i", p.input, "-c", p.cues, "-o", p.outDir)
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "line 2: incorrect time format, expected MM:SS or HH:MM:SS") {
		t.Errorf("Unexpected stderr:\n%s", stderr)
	}
	if strings.Contains(stderr, "USAGE:") {
		t.Error("Format errors should not print usage")
	}
	assertNoOutputFiles(t, p.outDir)
}

func TestRun_CancelledContext(t *testing.T) {
	p := setup(t, "album.flac", "00:00 A\n01:00 B\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-i", p.input, "-c", p.cues, "-o", p.outDir}, &stdout, &stderr)
	if code != 130 {
		t.Errorf("Expected exit code 130, got %d\n%s", code, stderr.String())
	}
}

func requireTools(t *testing.T) string {
	t.Helper()
	ffmpegPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		t.Skip("ffmpeg not found on PATH")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not found on PATH")
	}
	return ffmpegPath
}

func generateTone(t *testing.T, ffmpegPath, path string, seconds string) {
	t.Helper()
	gen := exec.Command(ffmpegPath, "-nostdin", "-y", "-f", "lavfi", "-i", "sine=frequency=440:duration="+seconds, path)
	if out, err := gen.CombinedOutput(); err != nil {
		t.Fatalf("Failed to generate fixture: %v\n%s", err, out)
	}
}

func TestRun_EndToEnd(t *testing.T) {
	ffmpegPath := requireTools(t)
	p := setup(t, "set.wav", "00:00 Opening\n\n00:03 ---\n00:05 Song \"B\"\n")
	generateTone(t, ffmpegPath, p.input, "8")

	code, stdout, stderr := runArgs("-i", p.input, "-c", p.cues, "-o", p.outDir)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d\n%s", code, stderr)
	}

	for _, name := range []string{"Opening.wav", "Song _B_.wav"} {
		if _, err := os.Stat(filepath.Join(p.outDir, name)); err != nil {
			t.Errorf("Expected output file %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(p.outDir, "---.wav")); err == nil {
		t.Error("Sentinel segment must not produce a file")
	}
	if !strings.Contains(stdout, "Skipped ---") || !strings.Contains(stdout, "Split completed") {
		t.Errorf("Unexpected stdout:\n%s", stdout)
	}
}

func TestRun_DryRun(t *testing.T) {
	ffmpegPath := requireTools(t)
	p := setup(t, "set.wav", "00:00 A\n00:02 B\n")
	generateTone(t, ffmpegPath, p.input, "4")

	code, stdout, stderr := runArgs("-i", p.input, "-c", p.cues, "-o", p.outDir, "--dry-run")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "-nostdin -y") || !strings.Contains(stdout, "2 planned") {
		t.Errorf("Expected planned commands in stdout:\n%s", stdout)
	}
	assertNoOutputFiles(t, p.outDir)
}

func TestRun_ToolExitCodePropagates(t *testing.T) {
	ffmpegPath := requireTools(t)
	p := setup(t, "set.wav", "00:00 A\n00:02 B\n")
	generateTone(t, ffmpegPath, p.input, "4")

	fake := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\nexit 5\n"), 0755); err != nil {
		t.Fatalf("Failed to write fake ffmpeg: %v", err)
	}

	code, _, stderr := runArgs("-i", p.input, "-c", p.cues, "-o", p.outDir, "--ffmpeg", fake)
	if code != 5 {
		t.Errorf("Expected exit code 5 from the tool, got %d\n%s", code, stderr)
	}
	if !strings.Contains(stderr, "ffmpeg failed") {
		t.Errorf("Unexpected stderr:\n%s", stderr)
	}
}
