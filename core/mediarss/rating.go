// ABOUTME: Rating value type declaring the permissible audience of a media object
// ABOUTME: Maps the media:rating element with its scheme attribute

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

const (
	// DefaultRatingScheme is the scheme implied when a rating carries
	// no scheme attribute.
	DefaultRatingScheme = "urn:simple"

	// RatingAdult is the urn:simple rating for adult-only content.
	RatingAdult = "adult"

	// RatingNonadult is the urn:simple rating for general audiences.
	RatingNonadult = "nonadult"
)

// Rating declares the permissible audience of a media object.
type Rating struct {
	// Content is the rating value, e.g. "adult" or "nonadult" under
	// the urn:simple scheme. Required.
	Content string `json:"content,omitempty"`

	// Scheme is the URI identifying the rating scheme. Optional.
	Scheme string `json:"scheme,omitempty"`
}

// NewRating creates a rating with the given value. The value is trimmed
// and must not be empty.
func NewRating(content string) (*Rating, error) {
	r := &Rating{}
	if err := r.SetContent(content); err != nil {
		return nil, err
	}
	return r, nil
}

// SetContent assigns the rating value, rejecting empty values at the
// point of assignment.
func (r *Rating) SetContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return &errors.InvalidArgumentError{Arg: "content", Message: "rating content must not be empty"}
	}
	r.Content = content
	return nil
}

// Load reads the rating from a parser positioned on its start tag,
// leaving the parser on the matching end tag. It returns true iff at
// least one field was populated.
func (r *Rating) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if scheme := attrValue(p, "scheme"); scheme != "" {
		r.Scheme = scheme
		loaded = true
	}

	text, err := elementText(p)
	if err != nil {
		return loaded, err
	}
	if text != "" {
		r.Content = text
		loaded = true
	}
	return loaded, nil
}

// WriteTo emits the media:rating element. The scheme attribute precedes
// the text content and is omitted when absent.
func (r *Rating) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "scheme", r.Scheme)
	return writeElement(e, "rating", attrs, r.Content)
}

// Compare orders two ratings field by field, combining the component
// results with bitwise OR. A nil rating compares as less.
func (r *Rating) Compare(other *Rating) int {
	if r == other {
		return 0
	}
	if r == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(r.Content, other.Content)
	result |= compareStrings(r.Scheme, other.Scheme)
	return result
}

// CompareTo orders the rating against an arbitrary value, failing with
// a TypeMismatchError when the value is not a *Rating.
func (r *Rating) CompareTo(v any) (int, error) {
	other, ok := v.(*Rating)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Rating", Actual: fmt.Sprintf("%T", v)}
	}
	return r.Compare(other), nil
}

// Equals reports whether v is a *Rating with identical fields.
func (r *Rating) Equals(v any) bool {
	other, ok := v.(*Rating)
	return ok && r.Compare(other) == 0
}

// String returns the XML form of the rating.
func (r *Rating) String() string {
	return stringify(r)
}
