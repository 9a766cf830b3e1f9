package mediarss

import "testing"

func TestContent_Load(t *testing.T) {
	tests := []struct {
		name       string
		fragment   string
		expected   Content
		wantLoaded bool
	}{
		{
			name: "full attribute set",
			fragment: `<media:content url="http://example.com/movie.mov" fileSize="12216320" type="video/quicktime"` +
				` medium="video" isDefault="true" expression="full" bitrate="128" framerate="25"` +
				` samplingrate="44.1" channels="2" duration="185" height="200" width="300" lang="en"></media:content>`,
			expected: Content{
				URL:          "http://example.com/movie.mov",
				FileSize:     12216320,
				Type:         "video/quicktime",
				Medium:       MediumVideo,
				IsDefault:    true,
				Expression:   ExpressionFull,
				Bitrate:      128,
				Framerate:    25,
				SamplingRate: 44.1,
				Channels:     2,
				Duration:     185,
				Height:       200,
				Width:        300,
				Lang:         "en",
			},
			wantLoaded: true,
		},
		{
			name:       "url only",
			fragment:   `<media:content url="http://example.com/a.mp3"></media:content>`,
			expected:   Content{URL: "http://example.com/a.mp3"},
			wantLoaded: true,
		},
		{
			name:       "unknown enum tokens left unset",
			fragment:   `<media:content url="http://example.com/a" medium="hologram" expression="partial"></media:content>`,
			expected:   Content{URL: "http://example.com/a"},
			wantLoaded: true,
		},
		{
			name:       "unparseable numerics treated as absent",
			fragment:   `<media:content url="http://example.com/a" fileSize="big" bitrate="fast"></media:content>`,
			expected:   Content{URL: "http://example.com/a"},
			wantLoaded: true,
		},
		{
			name:       "no attributes loads nothing",
			fragment:   `<media:content></media:content>`,
			expected:   Content{},
			wantLoaded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := startParser(t, tt.fragment)
			c := NewContent()
			loaded, err := c.Load(p)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded != tt.wantLoaded {
				t.Errorf("Load() = %v, want %v", loaded, tt.wantLoaded)
			}
			if *c != tt.expected {
				t.Errorf("Load() result = %+v, want %+v", *c, tt.expected)
			}
		})
	}
}

func TestContent_WriteTo_AttributeOrder(t *testing.T) {
	c := Content{
		URL:        "http://example.com/movie.mov",
		FileSize:   12216320,
		Type:       "video/quicktime",
		Medium:     MediumVideo,
		IsDefault:  true,
		Expression: ExpressionFull,
		Duration:   185,
	}

	expected := `<media:content url="http://example.com/movie.mov" fileSize="12216320"` +
		` type="video/quicktime" medium="video" isDefault="true" expression="full" duration="185"></media:content>`
	if got := c.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestContent_WriteTo_OmitsSentinels(t *testing.T) {
	c := Content{URL: "http://example.com/a.mp3"}

	expected := `<media:content url="http://example.com/a.mp3"></media:content>`
	if got := c.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestContent_RoundTrip(t *testing.T) {
	original := &Content{
		URL:          "http://example.com/movie.mov",
		FileSize:     12216320,
		Type:         "video/quicktime",
		Medium:       MediumVideo,
		IsDefault:    true,
		Expression:   ExpressionFull,
		Bitrate:      128,
		Framerate:    25,
		SamplingRate: 44.1,
		Channels:     2,
		Duration:     185,
		Height:       200,
		Width:        300,
		Lang:         "en",
	}

	p := startParser(t, original.String())
	parsed := NewContent()
	if _, err := parsed.Load(p); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !original.Equals(parsed) {
		t.Errorf("round trip changed value: got %+v, want %+v", parsed, original)
	}
}

func TestContent_DurationString(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		expected string
	}{
		{"zero is unset", 0, ""},
		{"seconds only", 59, "00:00:59"},
		{"minutes and seconds", 185, "00:03:05"},
		{"hours", 3725, "01:02:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Content{Duration: tt.duration}
			if got := c.DurationString(); got != tt.expected {
				t.Errorf("DurationString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContent_Compare(t *testing.T) {
	a := &Content{URL: "http://example.com/a", Bitrate: 128}
	b := &Content{URL: "http://example.com/a", Bitrate: 128}
	c := &Content{URL: "http://example.com/a", Bitrate: 256}

	if a.Compare(b) != 0 {
		t.Error("equal contents must compare to 0")
	}
	if a.Compare(c) == 0 {
		t.Error("different bitrates must not compare equal")
	}
}
