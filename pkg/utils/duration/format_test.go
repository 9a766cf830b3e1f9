package duration

import "testing"

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{"zero", 0, ""},
		{"negative", -15, ""},
		{"seconds only", 42, "00:00:42"},
		{"minutes and seconds", 185, "00:03:05"},
		{"hours", 3725, "01:02:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSeconds(tt.input); got != tt.expected {
				t.Errorf("FormatSeconds(%d) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseToSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"bare seconds", "185", 185},
		{"minutes and seconds", "03:05", 185},
		{"hours minutes seconds", "01:02:05", 3725},
		{"fractional suffix truncated", "12:05:01.123", 43501},
		{"surrounding whitespace", " 42 ", 42},
		{"empty string", "", 0},
		{"not a clock value", "soon", 0},
		{"too many components", "1:2:3:4", 0},
		{"negative component", "-1:30", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseToSeconds(tt.input); got != tt.expected {
				t.Errorf("ParseToSeconds(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
