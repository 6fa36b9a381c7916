package config

import "strings"

// UsageError reports bad, missing or duplicate command-line input. The caller
// prints usage and exits with status 1.
type UsageError struct {
	Problems []string // validation problems, one per entry
	Err      error    // underlying flag parsing error, if any
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "configuration validation failed:\n  - " + strings.Join(e.Problems, "\n  - ")
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
