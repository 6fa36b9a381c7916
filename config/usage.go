package config

import (
	"fmt"
	"io"
)

// WriteUsage prints help text
func WriteUsage(w io.Writer) {
	fmt.Fprint(w, `splitter - Cut a media file into labelled segments from a timestamp list

USAGE:
  splitter -i FILE -c FILE -o DIR [OPTIONS]

REQUIRED FLAGS:
  -i, --input string
        Source media file
  -c, --config string
        Timestamp list: one "<MM:SS|HH:MM:SS> <label>" per line
  -o, --output string
        Existing output directory

OPTIONS:
      --settings string
        Settings file, YAML or TOML (default: search ./splitter.yaml,
        ./splitter.toml, ~/.splitter/config.yaml, ~/.splitter/config.toml)
      --ffmpeg string
        ffmpeg executable (default: ffmpeg on PATH)
      --log-format string
        Log format: console, json (default: console)
  -v, --verbose
        Enable debug logging
      --dry-run
        Print the ffmpeg commands without running them
  -h, --help
        Show this help

CONFIG FILE FORMAT:
  00:00 Intro
  03:15 First song
  06:11 ---
  07:21 Encore

  Each label runs until the next timestamp; the last one runs to the end of
  the media. Segments labelled "---" are skipped. Characters / \ : * ? " '
  in labels are replaced with "_". Output files are named
  <DIR>/<label>.<input extension>.

EXAMPLES:
  splitter -i concert.mkv -c setlist.txt -o tracks
  splitter -i album.flac -c cues.txt -o out --dry-run

`)
}
