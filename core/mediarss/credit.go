// ABOUTME: Credit value type naming a contributor to a media object
// ABOUTME: Maps the media:credit element with role and scheme attributes

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// DefaultCreditScheme is the scheme implied when a credit carries no
// scheme attribute: the European Broadcasting Union role codes.
const DefaultCreditScheme = "urn:ebu"

// Credit names an entity that contributed to a media object.
type Credit struct {
	// Entity is the name of the contributing person or organization.
	// Required.
	Entity string `json:"entity,omitempty"`

	// Role describes the entity's contribution, lowercase by
	// convention (e.g. "producer", "composer"). Optional.
	Role string `json:"role,omitempty"`

	// Scheme is the URI identifying the role taxonomy. Optional.
	Scheme string `json:"scheme,omitempty"`
}

// NewCredit creates a credit for the given entity name. The name is
// trimmed and must not be empty.
func NewCredit(entity string) (*Credit, error) {
	c := &Credit{}
	if err := c.SetEntity(entity); err != nil {
		return nil, err
	}
	return c, nil
}

// SetEntity assigns the contributor name, rejecting empty values at the
// point of assignment.
func (c *Credit) SetEntity(entity string) error {
	entity = strings.TrimSpace(entity)
	if entity == "" {
		return &errors.InvalidArgumentError{Arg: "entity", Message: "credit entity must not be empty"}
	}
	c.Entity = entity
	return nil
}

// Load reads the credit from a parser positioned on its start tag,
// leaving the parser on the matching end tag. It returns true iff at
// least one field was populated.
func (c *Credit) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if role := attrValue(p, "role"); role != "" {
		c.Role = role
		loaded = true
	}
	if scheme := attrValue(p, "scheme"); scheme != "" {
		c.Scheme = scheme
		loaded = true
	}

	text, err := elementText(p)
	if err != nil {
		return loaded, err
	}
	if text != "" {
		c.Entity = text
		loaded = true
	}
	return loaded, nil
}

// WriteTo emits the media:credit element. The role and scheme
// attributes precede the entity text and are omitted when absent.
func (c *Credit) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "role", c.Role)
	attrs = appendAttr(attrs, "scheme", c.Scheme)
	return writeElement(e, "credit", attrs, c.Entity)
}

// Compare orders two credits field by field, combining the component
// results with bitwise OR. A nil credit compares as less.
func (c *Credit) Compare(other *Credit) int {
	if c == other {
		return 0
	}
	if c == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(c.Entity, other.Entity)
	result |= compareStrings(c.Role, other.Role)
	result |= compareStrings(c.Scheme, other.Scheme)
	return result
}

// CompareTo orders the credit against an arbitrary value, failing with
// a TypeMismatchError when the value is not a *Credit.
func (c *Credit) CompareTo(v any) (int, error) {
	other, ok := v.(*Credit)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Credit", Actual: fmt.Sprintf("%T", v)}
	}
	return c.Compare(other), nil
}

// Equals reports whether v is a *Credit with identical fields.
func (c *Credit) Equals(v any) bool {
	other, ok := v.(*Credit)
	return ok && c.Compare(other) == 0
}

// String returns the XML form of the credit.
func (c *Credit) String() string {
	return stringify(c)
}
