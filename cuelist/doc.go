// Package cuelist parses the line-oriented cue list that drives a split.
//
// Each non-empty line has the form
//
//	<timestamp> <label>
//
// where the timestamp is MM:SS or HH:MM:SS and the label is everything after
// the first run of whitespace. Blank lines are ignored; there is no comment
// syntax. Labels are sanitized so they can be used as file names.
package cuelist
