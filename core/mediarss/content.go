// ABOUTME: Content value type describing one encoding of a media object
// ABOUTME: Maps the media:content element and its full attribute set

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strconv"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
	"github.com/BumpyClock/go-mediarss/pkg/utils/duration"
	"github.com/BumpyClock/go-mediarss/pkg/utils/parse"
)

// Content describes one encoding of a media object: the direct file
// reference plus its technical characteristics.
type Content struct {
	// URL is the direct address of the media object. Optional when a
	// player is supplied instead.
	URL string `json:"url,omitempty"`

	// FileSize is the size of the object in bytes. Zero means unset.
	FileSize int64 `json:"fileSize,omitempty"`

	// Type is the standard MIME type of the object. Optional.
	Type string `json:"type,omitempty"`

	// Medium is the type of object when the MIME type is absent or
	// ambiguous.
	Medium Medium `json:"medium,omitempty"`

	// IsDefault marks this content as the default object of its group.
	IsDefault bool `json:"isDefault,omitempty"`

	// Expression determines whether the object is a full version, a
	// continuous stream, or a sample.
	Expression Expression `json:"expression,omitempty"`

	// Bitrate is the kilobits per second of the object. Zero means unset.
	Bitrate int `json:"bitrate,omitempty"`

	// Framerate is the frames per second of the object. Zero means unset.
	Framerate int `json:"framerate,omitempty"`

	// SamplingRate is the samples per second in kHz. Zero means unset.
	SamplingRate float64 `json:"samplingrate,omitempty"`

	// Channels is the number of audio channels. Zero means unset.
	Channels int `json:"channels,omitempty"`

	// Duration is the play time of the object in seconds. Zero means
	// unset.
	Duration int `json:"duration,omitempty"`

	// Height of the object in pixels. Zero means unset.
	Height int `json:"height,omitempty"`

	// Width of the object in pixels. Zero means unset.
	Width int `json:"width,omitempty"`

	// Lang is the primary language of the object. Optional.
	Lang string `json:"lang,omitempty"`
}

// NewContent creates an empty content record.
func NewContent() *Content {
	return &Content{}
}

// Load reads the content from a parser positioned on its start tag,
// leaving the parser on the matching end tag. It returns true iff at
// least one field was populated. Unparseable numeric attributes and
// unknown enum tokens are treated as absent.
func (c *Content) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if u := attrValue(p, "url"); u != "" {
		c.URL = u
		loaded = true
	}
	if size := parse.Int64OrZero(attrValue(p, "fileSize")); size > 0 {
		c.FileSize = size
		loaded = true
	}
	if typ := attrValue(p, "type"); typ != "" {
		c.Type = typ
		loaded = true
	}
	if medium := attrValue(p, "medium"); medium != "" {
		if m := MediumFromToken(medium); m != MediumNone {
			c.Medium = m
			loaded = true
		} else {
			logger.Debug("Ignoring unknown medium token", map[string]interface{}{
				"medium": medium,
			})
		}
	}
	if def := attrValue(p, "isDefault"); def != "" {
		if v, err := strconv.ParseBool(def); err == nil {
			c.IsDefault = v
			loaded = true
		}
	}
	if expr := attrValue(p, "expression"); expr != "" {
		if x := ExpressionFromToken(expr); x != ExpressionNone {
			c.Expression = x
			loaded = true
		} else {
			logger.Debug("Ignoring unknown expression token", map[string]interface{}{
				"expression": expr,
			})
		}
	}
	if bitrate := parse.IntOrZero(attrValue(p, "bitrate")); bitrate > 0 {
		c.Bitrate = bitrate
		loaded = true
	}
	if framerate := parse.IntOrZero(attrValue(p, "framerate")); framerate > 0 {
		c.Framerate = framerate
		loaded = true
	}
	if rate := parse.FloatOrZero(attrValue(p, "samplingrate")); rate > 0 {
		c.SamplingRate = rate
		loaded = true
	}
	if channels := parse.IntOrZero(attrValue(p, "channels")); channels > 0 {
		c.Channels = channels
		loaded = true
	}
	if duration := parse.IntOrZero(attrValue(p, "duration")); duration > 0 {
		c.Duration = duration
		loaded = true
	}
	if h := parse.IntOrZero(attrValue(p, "height")); h > 0 {
		c.Height = h
		loaded = true
	}
	if w := parse.IntOrZero(attrValue(p, "width")); w > 0 {
		c.Width = w
		loaded = true
	}
	if lang := attrValue(p, "lang"); lang != "" {
		c.Lang = lang
		loaded = true
	}

	// Optional sub-elements inside media:content are outside this
	// record's contract; consume through the end tag.
	if _, err := elementText(p); err != nil {
		return loaded, err
	}
	return loaded, nil
}

// WriteTo emits the media:content element with its attributes in fixed
// order; unset attributes are omitted. isDefault is written only when
// true.
func (c *Content) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "url", c.URL)
	attrs = appendInt64Attr(attrs, "fileSize", c.FileSize)
	attrs = appendAttr(attrs, "type", c.Type)
	attrs = appendAttr(attrs, "medium", c.Medium.Token())
	if c.IsDefault {
		attrs = appendAttr(attrs, "isDefault", "true")
	}
	attrs = appendAttr(attrs, "expression", c.Expression.Token())
	attrs = appendIntAttr(attrs, "bitrate", c.Bitrate)
	attrs = appendIntAttr(attrs, "framerate", c.Framerate)
	attrs = appendFloatAttr(attrs, "samplingrate", c.SamplingRate)
	attrs = appendIntAttr(attrs, "channels", c.Channels)
	attrs = appendIntAttr(attrs, "duration", c.Duration)
	attrs = appendIntAttr(attrs, "height", c.Height)
	attrs = appendIntAttr(attrs, "width", c.Width)
	attrs = appendAttr(attrs, "lang", c.Lang)
	return writeElement(e, "content", attrs, "")
}

// DurationString renders the duration as HH:MM:SS, or "" when unset.
func (c *Content) DurationString() string {
	return duration.FormatSeconds(c.Duration)
}

// Compare orders two content records field by field, combining the
// component results with bitwise OR. A nil record compares as less.
func (c *Content) Compare(other *Content) int {
	if c == other {
		return 0
	}
	if c == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(c.URL, other.URL)
	result |= compareInt64s(c.FileSize, other.FileSize)
	result |= compareStrings(c.Type, other.Type)
	result |= compareInts(int(c.Medium), int(other.Medium))
	result |= compareBools(c.IsDefault, other.IsDefault)
	result |= compareInts(int(c.Expression), int(other.Expression))
	result |= compareInts(c.Bitrate, other.Bitrate)
	result |= compareInts(c.Framerate, other.Framerate)
	result |= compareFloats(c.SamplingRate, other.SamplingRate)
	result |= compareInts(c.Channels, other.Channels)
	result |= compareInts(c.Duration, other.Duration)
	result |= compareInts(c.Height, other.Height)
	result |= compareInts(c.Width, other.Width)
	result |= compareStrings(c.Lang, other.Lang)
	return result
}

// CompareTo orders the content against an arbitrary value, failing with
// a TypeMismatchError when the value is not a *Content.
func (c *Content) CompareTo(v any) (int, error) {
	other, ok := v.(*Content)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Content", Actual: fmt.Sprintf("%T", v)}
	}
	return c.Compare(other), nil
}

// Equals reports whether v is a *Content with identical fields.
func (c *Content) Equals(v any) bool {
	other, ok := v.(*Content)
	return ok && c.Compare(other) == 0
}

// String returns the XML form of the content.
func (c *Content) String() string {
	return stringify(c)
}
