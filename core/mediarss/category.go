// ABOUTME: Category value type assigning media objects to a taxonomy
// ABOUTME: Maps the media:category element with scheme and label attributes

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// DefaultCategoryScheme is the scheme implied when a category carries
// no scheme attribute. It is never stored on the value; an absent
// scheme stays absent so serialization can omit it.
const DefaultCategoryScheme = "http://search.yahoo.com/mrss/category_schema"

// Category assigns a media object to a taxonomy.
type Category struct {
	// Content is the taxonomy term. Required.
	Content string `json:"content,omitempty"`

	// Scheme is the URI identifying the taxonomy. Optional.
	Scheme string `json:"scheme,omitempty"`

	// Label is the human-readable label for the term. Optional.
	Label string `json:"label,omitempty"`
}

// NewCategory creates a category for the given taxonomy term. The term
// is trimmed and must not be empty.
func NewCategory(content string) (*Category, error) {
	c := &Category{}
	if err := c.SetContent(content); err != nil {
		return nil, err
	}
	return c, nil
}

// SetContent assigns the taxonomy term, rejecting empty values at the
// point of assignment rather than at serialization time.
func (c *Category) SetContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return &errors.InvalidArgumentError{Arg: "content", Message: "category content must not be empty"}
	}
	c.Content = content
	return nil
}

// Load reads the category from a parser positioned on its start tag,
// leaving the parser on the matching end tag. It returns true iff at
// least one field was populated.
func (c *Category) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if scheme := attrValue(p, "scheme"); scheme != "" {
		c.Scheme = scheme
		loaded = true
	}
	if label := attrValue(p, "label"); label != "" {
		c.Label = label
		loaded = true
	}

	text, err := elementText(p)
	if err != nil {
		return loaded, err
	}
	if text != "" {
		c.Content = text
		loaded = true
	}
	return loaded, nil
}

// WriteTo emits the media:category element. The scheme and label
// attributes precede the text content and are omitted when absent.
func (c *Category) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "scheme", c.Scheme)
	attrs = appendAttr(attrs, "label", c.Label)
	return writeElement(e, "category", attrs, c.Content)
}

// Compare orders two categories field by field, combining the component
// results with bitwise OR. A nil category compares as less.
func (c *Category) Compare(other *Category) int {
	if c == other {
		return 0
	}
	if c == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(c.Content, other.Content)
	result |= compareStrings(c.Scheme, other.Scheme)
	result |= compareStrings(c.Label, other.Label)
	return result
}

// CompareTo orders the category against an arbitrary value, failing
// with a TypeMismatchError when the value is not a *Category.
func (c *Category) CompareTo(v any) (int, error) {
	other, ok := v.(*Category)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Category", Actual: fmt.Sprintf("%T", v)}
	}
	return c.Compare(other), nil
}

// Equals reports whether v is a *Category with identical fields.
// Unlike CompareTo it never fails; foreign types are simply unequal.
func (c *Category) Equals(v any) bool {
	other, ok := v.(*Category)
	return ok && c.Compare(other) == 0
}

// String returns the XML form of the category.
func (c *Category) String() string {
	return stringify(c)
}
