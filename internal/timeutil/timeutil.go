// Package timeutil provides time formatting for notices and reports.
package timeutil

import "fmt"

// FormatSeconds converts whole seconds to HH:MM:SS.
//
// Negative values keep their sign, so an out-of-order cue list shows up as
// a negative duration rather than a wrapped clock time.
//
// Example:
//
//	FormatSeconds(0)     // "00:00:00"
//	FormatSeconds(195)   // "00:03:15"
//	FormatSeconds(3661)  // "01:01:01"
//	FormatSeconds(-65)   // "-00:01:05"
func FormatSeconds(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, seconds/3600, (seconds%3600)/60, seconds%60)
}
