package cuelist

import (
	"strings"
	"unicode"
)

// unsafeLabelChars are replaced by '_' in labels.
const unsafeLabelChars = `/\:*?"'`

// ParseLine splits one raw line into its time token and sanitized label.
//
// ok is false only for an empty line, which must not advance any state. The
// time token is not validated here; see ParseTimestamp. A line without a label
// yields an empty label.
func ParseLine(line string) (timeToken, label string, ok bool) {
	if line == "" {
		return "", "", false
	}

	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	idx := strings.IndexFunc(rest, unicode.IsSpace)
	if idx < 0 {
		return rest, "", true
	}

	timeToken = rest[:idx]
	label = strings.TrimLeftFunc(rest[idx:], unicode.IsSpace)
	return timeToken, SanitizeLabel(label), true
}

// SanitizeLabel replaces every character that is unsafe in file names
// (/ \ : * ? " ') with an underscore. Everything else, including spaces and
// non-ASCII text, is kept as is.
func SanitizeLabel(label string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeLabelChars, r) {
			return '_'
		}
		return r
	}, label)
}
