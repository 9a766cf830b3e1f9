package html

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "just some words",
			expected: "just some words",
		},
		{
			name:     "tags removed",
			input:    "<p>Hello <b>world</b></p>",
			expected: "Hello world",
		},
		{
			name:     "entities decoded",
			input:    "fish &amp; chips",
			expected: "fish & chips",
		},
		{
			name:     "script content dropped",
			input:    "<p>before</p><script>alert(1)</script><p>after</p>",
			expected: "before after",
		},
		{
			name:     "whitespace collapsed",
			input:    "<div>  spaced \n  out  </div>",
			expected: "spaced out",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.expected {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
