// ABOUTME: Copyright value type carrying the rights statement for a media object
// ABOUTME: Maps the media:copyright element with an optional url attribute

package mediarss

import (
	"encoding/xml"
	"fmt"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// Copyright holds the copyright statement for a media object.
type Copyright struct {
	// Text is the copyright statement itself. Optional.
	Text string `json:"text,omitempty"`

	// URL points to a page with the terms of use. Optional.
	URL string `json:"url,omitempty"`
}

// NewCopyright creates a copyright with the given statement text.
func NewCopyright(text string) *Copyright {
	return &Copyright{Text: text}
}

// Load reads the copyright from a parser positioned on its start tag,
// leaving the parser on the matching end tag. It returns true iff at
// least one field was populated.
func (c *Copyright) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if u := attrValue(p, "url"); u != "" {
		c.URL = u
		loaded = true
	}

	text, err := elementText(p)
	if err != nil {
		return loaded, err
	}
	if text != "" {
		c.Text = text
		loaded = true
	}
	return loaded, nil
}

// WriteTo emits the media:copyright element, omitting the url attribute
// when absent.
func (c *Copyright) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "url", c.URL)
	return writeElement(e, "copyright", attrs, c.Text)
}

// Compare orders two copyrights field by field, combining the component
// results with bitwise OR. A nil copyright compares as less.
func (c *Copyright) Compare(other *Copyright) int {
	if c == other {
		return 0
	}
	if c == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(c.Text, other.Text)
	result |= compareStrings(c.URL, other.URL)
	return result
}

// CompareTo orders the copyright against an arbitrary value, failing
// with a TypeMismatchError when the value is not a *Copyright.
func (c *Copyright) CompareTo(v any) (int, error) {
	other, ok := v.(*Copyright)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Copyright", Actual: fmt.Sprintf("%T", v)}
	}
	return c.Compare(other), nil
}

// Equals reports whether v is a *Copyright with identical fields.
func (c *Copyright) Equals(v any) bool {
	other, ok := v.(*Copyright)
	return ok && c.Compare(other) == 0
}

// String returns the XML form of the copyright.
func (c *Copyright) String() string {
	return stringify(c)
}
