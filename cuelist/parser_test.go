package cuelist

import "testing"

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantToken string
		wantLabel string
		wantOK    bool
	}{
		{"Simple", "00:00 Intro", "00:00", "Intro", true},
		{"Leading whitespace", "  \t03:15 Verse", "03:15", "Verse", true},
		{"Multiple separators", "03:15 \t  Verse", "03:15", "Verse", true},
		{"Label with spaces", "1:02:03 Part two of three", "1:02:03", "Part two of three", true},
		{"Trailing whitespace kept", "00:10 Outro  ", "00:10", "Outro  ", true},
		{"Sentinel", "06:11 ---", "06:11", "---", true},
		{"Label is sanitized", `07:21 AC/DC: "Live"?`, "07:21", `AC_DC_ _Live__`, true},
		{"No label", "07:21", "07:21", "", true},
		{"Malformed time is not rejected here", "abc Label", "abc", "Label", true},
		{"Whitespace only", "   ", "", "", true},
		{"Empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, label, ok := ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseLine(%q) ok = %v; want %v", tt.line, ok, tt.wantOK)
			}
			if token != tt.wantToken {
				t.Errorf("ParseLine(%q) token = %q; want %q", tt.line, token, tt.wantToken)
			}
			if label != tt.wantLabel {
				t.Errorf("ParseLine(%q) label = %q; want %q", tt.line, label, tt.wantLabel)
			}
		})
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{"Slash", "a/b", "a_b"},
		{"Backslash", `a\b`, "a_b"},
		{"Colon", "a:b", "a_b"},
		{"Asterisk", "a*b", "a_b"},
		{"Question mark", "a?b", "a_b"},
		{"Double quote", `a"b`, "a_b"},
		{"Single quote", "a'b", "a_b"},
		{"All unsafe", `/\:*?"'`, "_______"},
		{"Repeated", "a//b", "a__b"},
		{"Spaces kept", "Side A  Track 1", "Side A  Track 1"},
		{"Unicode kept", "Café – Überraschung 東京", "Café – Überraschung 東京"},
		{"Other punctuation kept", "a-b_c.d(e)[f]!", "a-b_c.d(e)[f]!"},
		{"Sentinel unchanged", "---", "---"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeLabel(tt.label); got != tt.expected {
				t.Errorf("SanitizeLabel(%q) = %q; want %q", tt.label, got, tt.expected)
			}
		})
	}
}
