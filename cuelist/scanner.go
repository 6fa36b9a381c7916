package cuelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"splitter/models"
)

// Scanner reads a cue list one entry at a time. Blank lines are skipped and
// the first malformed timestamp stops the scan with a *FormatError.
//
//	sc := cuelist.NewScanner(f)
//	for sc.Scan() {
//	    line := sc.Line()
//	    ...
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner struct {
	sc      *bufio.Scanner
	lineNum int
	current models.ParsedLine
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, 1024*1024)
	return &Scanner{sc: sc}
}

// Scan advances to the next non-empty line. It returns false at EOF or on the
// first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.sc.Scan() {
		s.lineNum++
		raw := strings.TrimSuffix(s.sc.Text(), "\r")

		token, label, ok := ParseLine(raw)
		if !ok {
			continue
		}

		seconds, err := ParseTimestamp(token)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = s.lineNum
			}
			s.err = err
			return false
		}

		s.current = models.ParsedLine{Timestamp: seconds, Label: label, Line: s.lineNum}
		return true
	}

	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("failed to read cue list: %w", err)
	}
	return false
}

// Line returns the entry produced by the last successful Scan.
func (s *Scanner) Line() models.ParsedLine {
	return s.current
}

// Err returns the first error met while scanning, if any.
func (s *Scanner) Err() error {
	return s.err
}
