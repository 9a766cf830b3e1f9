// ABOUTME: Thumbnail value type pointing at a representative image
// ABOUTME: Maps the media:thumbnail element with url, height, width and time attributes

package mediarss

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
	"github.com/BumpyClock/go-mediarss/pkg/utils/duration"
	"github.com/BumpyClock/go-mediarss/pkg/utils/parse"
)

// Thumbnail points at an image representative of a media object.
type Thumbnail struct {
	// URL is the address of the image. Required.
	URL string `json:"url,omitempty"`

	// Height of the image in pixels. Zero means unset.
	Height int `json:"height,omitempty"`

	// Width of the image in pixels. Zero means unset.
	Width int `json:"width,omitempty"`

	// Time is the normal-play-time offset the image was captured at.
	// Optional.
	Time string `json:"time,omitempty"`
}

// NewThumbnail creates a thumbnail for the given image URL. The URL is
// trimmed, must not be empty and must parse as a URL.
func NewThumbnail(rawURL string) (*Thumbnail, error) {
	t := &Thumbnail{}
	if err := t.SetURL(rawURL); err != nil {
		return nil, err
	}
	return t, nil
}

// SetURL assigns the image URL, rejecting empty or unparseable values
// at the point of assignment.
func (t *Thumbnail) SetURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return &errors.InvalidArgumentError{Arg: "url", Message: "thumbnail url must not be empty"}
	}
	if _, err := url.Parse(rawURL); err != nil {
		return &errors.InvalidArgumentError{Arg: "url", Message: "thumbnail url must be a valid URL"}
	}
	t.URL = rawURL
	return nil
}

// Load reads the thumbnail from a parser positioned on its start tag,
// leaving the parser on the matching end tag. It returns true iff at
// least one field was populated. Unparseable dimensions are treated as
// absent.
func (t *Thumbnail) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if u := attrValue(p, "url"); u != "" {
		t.URL = u
		loaded = true
	}
	if h := parse.IntOrZero(attrValue(p, "height")); h > 0 {
		t.Height = h
		loaded = true
	}
	if w := parse.IntOrZero(attrValue(p, "width")); w > 0 {
		t.Width = w
		loaded = true
	}
	if at := attrValue(p, "time"); at != "" {
		t.Time = at
		loaded = true
	}

	if _, err := elementText(p); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// WriteTo emits the media:thumbnail element with the fixed attribute
// order url, height, width, time; unset attributes are omitted.
func (t *Thumbnail) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "url", t.URL)
	attrs = appendIntAttr(attrs, "height", t.Height)
	attrs = appendIntAttr(attrs, "width", t.Width)
	attrs = appendAttr(attrs, "time", t.Time)
	return writeElement(e, "thumbnail", attrs, "")
}

// TimeSeconds returns the capture offset as whole seconds, or 0 when
// the time is unset or not a clock value.
func (t *Thumbnail) TimeSeconds() int {
	return duration.ParseToSeconds(t.Time)
}

// Compare orders two thumbnails field by field, combining the component
// results with bitwise OR. A nil thumbnail compares as less.
func (t *Thumbnail) Compare(other *Thumbnail) int {
	if t == other {
		return 0
	}
	if t == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(t.URL, other.URL)
	result |= compareInts(t.Height, other.Height)
	result |= compareInts(t.Width, other.Width)
	result |= compareStrings(t.Time, other.Time)
	return result
}

// CompareTo orders the thumbnail against an arbitrary value, failing
// with a TypeMismatchError when the value is not a *Thumbnail.
func (t *Thumbnail) CompareTo(v any) (int, error) {
	other, ok := v.(*Thumbnail)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Thumbnail", Actual: fmt.Sprintf("%T", v)}
	}
	return t.Compare(other), nil
}

// Equals reports whether v is a *Thumbnail with identical fields.
func (t *Thumbnail) Equals(v any) bool {
	other, ok := v.(*Thumbnail)
	return ok && t.Compare(other) == 0
}

// String returns the XML form of the thumbnail.
func (t *Thumbnail) String() string {
	return stringify(t)
}
