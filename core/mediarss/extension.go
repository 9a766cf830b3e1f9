// ABOUTME: Extension holder aggregating all media elements of one feed or item
// ABOUTME: The per-item/per-feed container the outer parsing pipeline feeds one element at a time

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// Extension aggregates every Media RSS element attached to a single
// channel or item: standalone content encodings, groups, and the shared
// common entities. The outer feed parser hands it one positioned
// element at a time via LoadElement.
type Extension struct {
	CommonEntities

	// Contents are standalone media:content elements attached directly
	// to the channel or item, in document order.
	Contents []*Content `json:"contents,omitempty"`

	// Groups are the media:group containers, in document order.
	Groups []*Group `json:"groups,omitempty"`
}

// NewExtension creates an empty extension holder with all collections
// allocated.
func NewExtension() *Extension {
	return &Extension{
		CommonEntities: newCommonEntities(),
		Contents:       make([]*Content, 0),
		Groups:         make([]*Group, 0),
	}
}

// LoadElement reads one media element the parser is positioned on —
// content, group, or any of the common entities — leaving the parser on
// the element's end tag. It returns true iff the element contributed.
func (x *Extension) LoadElement(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	switch strings.ToLower(p.Name) {
	case "content":
		content := NewContent()
		ok, err := content.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			x.Contents = append(x.Contents, content)
		}
		return ok, nil
	case "group":
		group := NewGroup()
		ok, err := group.Load(p)
		if err != nil {
			return false, err
		}
		if ok {
			x.Groups = append(x.Groups, group)
		}
		return ok, nil
	default:
		return fillCommonEntity(&x.CommonEntities, p)
	}
}

// WriteTo emits every populated element: standalone contents first,
// then groups, then the shared entities in their fixed type order.
// Unlike the value types it has no root element of its own; the output
// is a sequence of media elements at the caller's current depth.
func (x *Extension) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	for _, content := range x.Contents {
		if err := content.WriteTo(e); err != nil {
			return err
		}
	}
	for _, group := range x.Groups {
		if err := group.WriteTo(e); err != nil {
			return err
		}
	}
	return writeCommonEntities(&x.CommonEntities, e)
}

// Compare orders two extensions by combining ordered sequence
// comparisons of contents and groups with the shared-entity comparison,
// using bitwise OR. A nil extension compares as less.
func (x *Extension) Compare(other *Extension) int {
	if x == other {
		return 0
	}
	if x == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareSequence(x.Contents, other.Contents, (*Content).Compare)
	result |= compareSequence(x.Groups, other.Groups, (*Group).Compare)
	result |= compareCommonEntities(&x.CommonEntities, &other.CommonEntities)
	return result
}

// CompareTo orders the extension against an arbitrary value, failing
// with a TypeMismatchError when the value is not an *Extension.
func (x *Extension) CompareTo(v any) (int, error) {
	other, ok := v.(*Extension)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Extension", Actual: fmt.Sprintf("%T", v)}
	}
	return x.Compare(other), nil
}

// Equals reports whether v is an *Extension with identical fields.
func (x *Extension) Equals(v any) bool {
	other, ok := v.(*Extension)
	return ok && x.Compare(other) == 0
}

// String returns the XML form of the extension's element sequence.
func (x *Extension) String() string {
	return stringify(x)
}
