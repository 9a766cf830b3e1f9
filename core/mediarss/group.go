// ABOUTME: Group container holding alternate content encodings of one media object
// ABOUTME: Maps the media:group element; contents plus the shared common entities

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// Group collects alternate encodings (media:content elements) of the
// same media object, along with the shared common entities that apply
// to every encoding in the group.
type Group struct {
	CommonEntities

	// Contents are the alternate encodings in document order.
	Contents []*Content `json:"contents,omitempty"`
}

// NewGroup creates an empty group with all collections allocated.
func NewGroup() *Group {
	return &Group{
		CommonEntities: newCommonEntities(),
		Contents:       make([]*Content, 0),
	}
}

// Load reads the group from a parser positioned on its start tag,
// leaving the parser on the matching end tag. Nested content elements
// are read in document order; every other known child goes to the
// shared entity set, and stray character data between children is
// skipped. It returns true iff either step contributed.
func (g *Group) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	for {
		tok, err := p.Next()
		if err != nil {
			return loaded, err
		}
		switch tok {
		case xpp.EndTag, xpp.EndDocument:
			return loaded, nil
		case xpp.StartTag:
			if strings.ToLower(p.Name) == "content" {
				content := NewContent()
				ok, err := content.Load(p)
				if err != nil {
					return loaded, err
				}
				if ok {
					g.Contents = append(g.Contents, content)
					loaded = true
				}
				continue
			}
			ok, err := fillCommonEntity(&g.CommonEntities, p)
			if err != nil {
				return loaded, err
			}
			loaded = loaded || ok
		case xpp.Text:
			if text := strings.TrimSpace(p.Text); text != "" {
				logger.Debug("Skipping stray text inside media group", map[string]interface{}{
					"text": text,
				})
			}
		}
	}
}

// WriteTo emits the media:group element: all content children in stored
// order, then the shared entities in their fixed type order.
func (g *Group) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	start := xml.StartElement{Name: prefixed("group")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, content := range g.Contents {
		if err := content.WriteTo(e); err != nil {
			return err
		}
	}
	if err := writeCommonEntities(&g.CommonEntities, e); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Compare orders two groups by combining an ordered sequence comparison
// of their contents with the shared-entity comparison, using bitwise OR.
// A nil group compares as less.
func (g *Group) Compare(other *Group) int {
	if g == other {
		return 0
	}
	if g == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareSequence(g.Contents, other.Contents, (*Content).Compare)
	result |= compareCommonEntities(&g.CommonEntities, &other.CommonEntities)
	return result
}

// CompareTo orders the group against an arbitrary value, failing with a
// TypeMismatchError when the value is not a *Group.
func (g *Group) CompareTo(v any) (int, error) {
	other, ok := v.(*Group)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Group", Actual: fmt.Sprintf("%T", v)}
	}
	return g.Compare(other), nil
}

// Equals reports whether v is a *Group with identical contents and
// shared entities.
func (g *Group) Equals(v any) bool {
	other, ok := v.(*Group)
	return ok && g.Compare(other) == 0
}

// String returns the XML form of the group.
func (g *Group) String() string {
	return stringify(g)
}
