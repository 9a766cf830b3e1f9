// ABOUTME: Text value type for titles, descriptions and timed transcript pieces
// ABOUTME: Maps media:title, media:description and media:text elements

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
	"github.com/BumpyClock/go-mediarss/pkg/utils/duration"
	htmlutil "github.com/BumpyClock/go-mediarss/pkg/utils/html"
)

// Text is the shared construct behind media:title, media:description
// and the media:text transcript series.
type Text struct {
	// Content is the text itself, plain or entity-encoded markup
	// depending on Type.
	Content string `json:"content,omitempty"`

	// Type is "plain" or "html". Optional; plain is implied.
	Type string `json:"type,omitempty"`

	// Lang is the primary language of the text. Optional. Used only by
	// the media:text series on the wire.
	Lang string `json:"lang,omitempty"`

	// Start is the normal-play-time offset where this text becomes
	// relevant, e.g. "00:00:03.000". Optional; media:text only.
	Start string `json:"start,omitempty"`

	// End is the normal-play-time offset where this text stops being
	// relevant. Optional; media:text only.
	End string `json:"end,omitempty"`
}

// NewText creates a text construct with the given content.
func NewText(content string) *Text {
	return &Text{Content: strings.TrimSpace(content)}
}

// Load reads the text construct from a parser positioned on its start
// tag (title, description or text), leaving the parser on the matching
// end tag. It returns true iff at least one field was populated.
func (t *Text) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if typ := attrValue(p, "type"); typ != "" {
		t.Type = typ
		loaded = true
	}
	if lang := attrValue(p, "lang"); lang != "" {
		t.Lang = lang
		loaded = true
	}
	if start := attrValue(p, "start"); start != "" {
		t.Start = start
		loaded = true
	}
	if end := attrValue(p, "end"); end != "" {
		t.End = end
		loaded = true
	}

	text, err := elementText(p)
	if err != nil {
		return loaded, err
	}
	if text != "" {
		t.Content = text
		loaded = true
	}
	return loaded, nil
}

// WriteTo emits the construct as a media:text element. Title and
// description slots are written by the common-entities writer under
// their own element names.
func (t *Text) WriteTo(e *xml.Encoder) error {
	return t.writeElement(e, "text")
}

// writeElement emits the construct under the given element name with
// the fixed attribute order type, lang, start, end.
func (t *Text) writeElement(e *xml.Encoder, local string) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "type", t.Type)
	attrs = appendAttr(attrs, "lang", t.Lang)
	attrs = appendAttr(attrs, "start", t.Start)
	attrs = appendAttr(attrs, "end", t.End)
	return writeElement(e, local, attrs, t.Content)
}

// PlainText returns the content with markup stripped when the construct
// is typed as HTML, and the content unchanged otherwise.
func (t *Text) PlainText() string {
	if strings.EqualFold(t.Type, "html") {
		return htmlutil.StripHTML(t.Content)
	}
	return t.Content
}

// StartSeconds returns the start offset as whole seconds, or 0 when
// the offset is unset or not a clock value.
func (t *Text) StartSeconds() int {
	return duration.ParseToSeconds(t.Start)
}

// EndSeconds returns the end offset as whole seconds, or 0 when the
// offset is unset or not a clock value.
func (t *Text) EndSeconds() int {
	return duration.ParseToSeconds(t.End)
}

// Compare orders two text constructs field by field, combining the
// component results with bitwise OR. A nil construct compares as less.
func (t *Text) Compare(other *Text) int {
	if t == other {
		return 0
	}
	if t == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(t.Content, other.Content)
	result |= compareStrings(t.Type, other.Type)
	result |= compareStrings(t.Lang, other.Lang)
	result |= compareStrings(t.Start, other.Start)
	result |= compareStrings(t.End, other.End)
	return result
}

// CompareTo orders the construct against an arbitrary value, failing
// with a TypeMismatchError when the value is not a *Text.
func (t *Text) CompareTo(v any) (int, error) {
	other, ok := v.(*Text)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Text", Actual: fmt.Sprintf("%T", v)}
	}
	return t.Compare(other), nil
}

// Equals reports whether v is a *Text with identical fields.
func (t *Text) Equals(v any) bool {
	other, ok := v.(*Text)
	return ok && t.Compare(other) == 0
}

// String returns the XML form of the construct as a media:text element.
func (t *Text) String() string {
	return stringify(t)
}
