// ABOUTME: Restriction value type limiting where a media object may be aired
// ABOUTME: Maps the media:restriction element with relationship and type attributes

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

const (
	// RestrictionEntityAll is the reserved entity token meaning the
	// restriction applies everywhere. Usable once per restriction by
	// convention; the library documents but does not enforce this.
	RestrictionEntityAll = "all"

	// RestrictionEntityNone is the reserved entity token meaning the
	// restriction applies nowhere. Same single-use convention.
	RestrictionEntityNone = "none"
)

// Restriction limits the syndication of a media object to, or away
// from, a set of named entities.
type Restriction struct {
	// Relationship indicates whether the entities are allowed or denied.
	Relationship RestrictionRelationship `json:"relationship,omitempty"`

	// Type indicates what kind of entities are listed.
	Type RestrictionType `json:"type,omitempty"`

	// Entities is the ordered list of restricted entity tokens, e.g.
	// country codes or URIs.
	Entities []string `json:"entities,omitempty"`
}

// NewRestriction creates an empty restriction with an allocated entity
// list.
func NewRestriction() *Restriction {
	return &Restriction{Entities: make([]string, 0)}
}

// Load reads the restriction from a parser positioned on its start tag,
// leaving the parser on the matching end tag. The text content is
// whitespace-delimited entity tokens; a single token with no whitespace
// becomes a one-element list. It returns true iff at least one field
// was populated.
func (r *Restriction) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if rel := attrValue(p, "relationship"); rel != "" {
		if v := RelationshipFromToken(rel); v != RelationshipNone {
			r.Relationship = v
			loaded = true
		} else {
			logger.Debug("Ignoring unknown restriction relationship token", map[string]interface{}{
				"relationship": rel,
			})
		}
	}
	if typ := attrValue(p, "type"); typ != "" {
		if v := RestrictionTypeFromToken(typ); v != RestrictionTypeNone {
			r.Type = v
			loaded = true
		} else {
			logger.Debug("Ignoring unknown restriction type token", map[string]interface{}{
				"type": typ,
			})
		}
	}

	text, err := elementText(p)
	if err != nil {
		return loaded, err
	}
	if entities := splitEntities(text); len(entities) > 0 {
		r.Entities = append(r.Entities, entities...)
		loaded = true
	}
	return loaded, nil
}

// WriteTo emits the media:restriction element. The relationship
// attribute precedes type; entities are space-joined as text content.
func (r *Restriction) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "relationship", r.Relationship.Token())
	attrs = appendAttr(attrs, "type", r.Type.Token())
	return writeElement(e, "restriction", attrs, strings.Join(r.Entities, " "))
}

// Compare orders two restrictions field by field, combining the
// component results with bitwise OR. A nil restriction compares as less.
func (r *Restriction) Compare(other *Restriction) int {
	if r == other {
		return 0
	}
	if r == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareInts(int(r.Relationship), int(other.Relationship))
	result |= compareInts(int(r.Type), int(other.Type))
	result |= compareStringSlices(r.Entities, other.Entities)
	return result
}

// CompareTo orders the restriction against an arbitrary value, failing
// with a TypeMismatchError when the value is not a *Restriction.
func (r *Restriction) CompareTo(v any) (int, error) {
	other, ok := v.(*Restriction)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Restriction", Actual: fmt.Sprintf("%T", v)}
	}
	return r.Compare(other), nil
}

// Equals reports whether v is a *Restriction with identical fields.
func (r *Restriction) Equals(v any) bool {
	other, ok := v.(*Restriction)
	return ok && r.Compare(other) == 0
}

// String returns the XML form of the restriction.
func (r *Restriction) String() string {
	return stringify(r)
}
