package mediarss

import (
	"testing"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

func TestNewThumbnail(t *testing.T) {
	th, err := NewThumbnail("http://example.com/t.jpg")
	if err != nil {
		t.Fatalf("NewThumbnail() error = %v", err)
	}
	if th.Height != 0 || th.Width != 0 {
		t.Errorf("new thumbnail dimensions = %dx%d, want unset", th.Width, th.Height)
	}

	if _, err := NewThumbnail(""); !errors.IsInvalidArgument(err) {
		t.Errorf("NewThumbnail(empty) error = %v, want InvalidArgumentError", err)
	}
}

func TestThumbnail_Load(t *testing.T) {
	tests := []struct {
		name       string
		fragment   string
		expected   Thumbnail
		wantLoaded bool
	}{
		{
			name:       "all attributes",
			fragment:   `<media:thumbnail url="http://example.com/t.jpg" height="50" width="75" time="12:05:01.123"></media:thumbnail>`,
			expected:   Thumbnail{URL: "http://example.com/t.jpg", Height: 50, Width: 75, Time: "12:05:01.123"},
			wantLoaded: true,
		},
		{
			name:       "url only",
			fragment:   `<media:thumbnail url="http://example.com/t.jpg"></media:thumbnail>`,
			expected:   Thumbnail{URL: "http://example.com/t.jpg"},
			wantLoaded: true,
		},
		{
			name:       "unparseable height treated as absent",
			fragment:   `<media:thumbnail url="http://example.com/t.jpg" height="big"></media:thumbnail>`,
			expected:   Thumbnail{URL: "http://example.com/t.jpg"},
			wantLoaded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := startParser(t, tt.fragment)
			th := &Thumbnail{}
			loaded, err := th.Load(p)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded != tt.wantLoaded {
				t.Errorf("Load() = %v, want %v", loaded, tt.wantLoaded)
			}
			if *th != tt.expected {
				t.Errorf("Load() result = %+v, want %+v", *th, tt.expected)
			}
		})
	}
}

func TestThumbnail_WriteTo(t *testing.T) {
	th := Thumbnail{URL: "http://example.com/t.jpg", Height: 50, Width: 75}

	expected := `<media:thumbnail url="http://example.com/t.jpg" height="50" width="75"></media:thumbnail>`
	if got := th.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestThumbnail_RoundTrip(t *testing.T) {
	original := &Thumbnail{URL: "http://example.com/t.jpg", Height: 50, Width: 75, Time: "12:05:01.123"}

	p := startParser(t, original.String())
	parsed := &Thumbnail{}
	if _, err := parsed.Load(p); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !original.Equals(parsed) {
		t.Errorf("round trip changed value: got %+v, want %+v", parsed, original)
	}
}

func TestThumbnail_TimeSeconds(t *testing.T) {
	th := Thumbnail{URL: "http://example.com/t.jpg", Time: "12:05:01.123"}
	if got := th.TimeSeconds(); got != 43501 {
		t.Errorf("TimeSeconds() = %d, want 43501", got)
	}

	unset := Thumbnail{URL: "http://example.com/t.jpg"}
	if got := unset.TimeSeconds(); got != 0 {
		t.Errorf("TimeSeconds() with no offset = %d, want 0", got)
	}
}
