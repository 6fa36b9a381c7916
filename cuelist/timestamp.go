package cuelist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MsgIncorrectFormat is the message of a FormatError caused by a wrong number
// of colon-delimited fields.
const MsgIncorrectFormat = "incorrect time format, expected MM:SS or HH:MM:SS"

// FormatError reports a timestamp that cannot be converted to seconds.
// It aborts the whole run.
type FormatError struct {
	Line   int    // 1-based line in the cue list, 0 when unknown
	Value  string // offending token
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Value)
}

// ParseTimestamp converts "MM:SS" or "HH:MM:SS" into a number of seconds.
//
// Every field is read as a base-10 integer, so leading zeros are fine
// ("08" is 8). Any field count other than two or three, or a field that is not
// a plain decimal number, yields a *FormatError.
//
// Example:
//
//	ParseTimestamp("03:15")    // 195
//	ParseTimestamp("1:00:05")  // 3605
func ParseTimestamp(s string) (int, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return 0, &FormatError{Value: s, Reason: MsgIncorrectFormat}
	}

	values := make([]int, len(fields))
	for i, field := range fields {
		n, err := parseField(field)
		if err != nil {
			return 0, &FormatError{Value: s, Reason: fmt.Sprintf("invalid number %q", field)}
		}
		values[i] = n
	}

	if len(values) == 2 {
		return values[0]*60 + values[1], nil
	}
	return values[0]*3600 + values[1]*60 + values[2], nil
}

// maxField bounds every field so h*3600 + m*60 + s cannot overflow.
const maxField = math.MaxInt / 3661

// parseField accepts only ASCII digits; strconv.Atoi alone would also take
// signs.
func parseField(field string) (int, error) {
	if field == "" {
		return 0, fmt.Errorf("empty field")
	}
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if n > maxField {
		return 0, fmt.Errorf("field out of range")
	}
	return n, nil
}
