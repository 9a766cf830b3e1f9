package mediarss

import (
	"testing"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

func TestNewPlayer(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid url", "http://example.com/player?id=1", false},
		{"empty url", "", true},
		{"whitespace url", "   ", true},
		{"unparseable url", "http://exa mple.com/\x7f", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlayer(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPlayer() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.IsInvalidArgument(err) {
				t.Errorf("NewPlayer() error = %v, want InvalidArgumentError", err)
			}
		})
	}
}

func TestPlayer_Load(t *testing.T) {
	tests := []struct {
		name       string
		fragment   string
		expected   Player
		wantLoaded bool
	}{
		{
			name:       "url with dimensions",
			fragment:   `<media:player url="http://example.com/p" height="200" width="400"></media:player>`,
			expected:   Player{URL: "http://example.com/p", Height: 200, Width: 400},
			wantLoaded: true,
		},
		{
			name:       "url only",
			fragment:   `<media:player url="http://example.com/p"></media:player>`,
			expected:   Player{URL: "http://example.com/p"},
			wantLoaded: true,
		},
		{
			name:       "unparseable dimensions treated as absent",
			fragment:   `<media:player url="http://example.com/p" height="tall" width="4.5"></media:player>`,
			expected:   Player{URL: "http://example.com/p"},
			wantLoaded: true,
		},
		{
			name:       "no attributes loads nothing",
			fragment:   `<media:player></media:player>`,
			expected:   Player{},
			wantLoaded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := startParser(t, tt.fragment)
			pl := &Player{}
			loaded, err := pl.Load(p)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded != tt.wantLoaded {
				t.Errorf("Load() = %v, want %v", loaded, tt.wantLoaded)
			}
			if *pl != tt.expected {
				t.Errorf("Load() result = %+v, want %+v", *pl, tt.expected)
			}
		})
	}
}

func TestPlayer_WriteTo_OmitsUnsetDimensions(t *testing.T) {
	pl, err := NewPlayer("http://example.com/p")
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}

	expected := `<media:player url="http://example.com/p"></media:player>`
	if got := pl.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestPlayer_WriteTo_AttributeOrder(t *testing.T) {
	pl := Player{URL: "http://example.com/p", Height: 100, Width: 200}

	expected := `<media:player url="http://example.com/p" height="100" width="200"></media:player>`
	if got := pl.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestPlayer_RoundTrip(t *testing.T) {
	original := &Player{URL: "http://example.com/p", Height: 100, Width: 200}

	p := startParser(t, original.String())
	parsed := &Player{}
	if _, err := parsed.Load(p); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !original.Equals(parsed) {
		t.Errorf("round trip changed value: got %+v, want %+v", parsed, original)
	}
}

func TestPlayer_WriteTo_URLAlwaysWritten(t *testing.T) {
	pl := &Player{}

	expected := `<media:player url=""></media:player>`
	if got := pl.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}
