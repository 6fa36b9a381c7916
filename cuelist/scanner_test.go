package cuelist

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"splitter/models"
)

// scanAll collects every entry the Scanner yields.
func scanAll(r io.Reader) ([]models.ParsedLine, error) {
	var lines []models.ParsedLine
	sc := NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Line())
	}
	return lines, sc.Err()
}

func TestScanner(t *testing.T) {
	input := "00:00 A\n03:15 B\n06:11 ---\n07:21 C\n"

	lines, err := scanAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []models.ParsedLine{
		{Timestamp: 0, Label: "A", Line: 1},
		{Timestamp: 195, Label: "B", Line: 2},
		{Timestamp: 371, Label: "---", Line: 3},
		{Timestamp: 441, Label: "C", Line: 4},
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Scan() = %+v; want %+v", lines, expected)
	}
}

func TestScanner_BlankLinesIgnored(t *testing.T) {
	input := "\n00:00 A\n\n\n03:15 B\r\n\r\n07:21 C"

	lines, err := scanAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %+v", len(lines), lines)
	}
	if lines[1].Label != "B" {
		t.Errorf("CRLF should be stripped from labels, got %q", lines[1].Label)
	}
	if lines[2].Line != 7 {
		t.Errorf("Expected source line 7 for last entry, got %d", lines[2].Line)
	}
}

func TestScanner_Empty(t *testing.T) {
	lines, err := scanAll(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no lines, got %d", len(lines))
	}
}

func TestScanner_StopsAtFormatError(t *testing.T) {
	input := "00:00 A\n03:15 B\n42 C\n07:21 D\n"

	sc := NewScanner(strings.NewReader(input))
	var got []models.ParsedLine
	for sc.Scan() {
		got = append(got, sc.Line())
	}

	if len(got) != 2 {
		t.Errorf("Expected 2 lines before the error, got %d", len(got))
	}

	var fe *FormatError
	if !errors.As(sc.Err(), &fe) {
		t.Fatalf("Expected *FormatError, got %v", sc.Err())
	}
	if fe.Line != 3 {
		t.Errorf("Expected error on line 3, got %d", fe.Line)
	}
	if fe.Value != "42" {
		t.Errorf("Expected offending value '42', got %q", fe.Value)
	}

	if sc.Scan() {
		t.Error("Scan should keep returning false after an error")
	}
}

func TestScanner_WhitespaceOnlyLineIsAnError(t *testing.T) {
	sc := NewScanner(strings.NewReader("00:00 A\n   \n"))
	for sc.Scan() {
	}

	var fe *FormatError
	if !errors.As(sc.Err(), &fe) {
		t.Fatalf("Expected *FormatError for whitespace-only line, got %v", sc.Err())
	}
	if fe.Line != 2 {
		t.Errorf("Expected error on line 2, got %d", fe.Line)
	}
}
