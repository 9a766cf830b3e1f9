// ABOUTME: Hash value type carrying a checksum for a media object
// ABOUTME: Maps the media:hash element with its algo attribute

package mediarss

import (
	"encoding/xml"
	"fmt"
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// Hash holds a checksum of a media object's binary content.
type Hash struct {
	// Value is the hex-encoded checksum. Required.
	Value string `json:"value,omitempty"`

	// Algorithm identifies how the checksum was computed. Optional;
	// MD5 is implied on the wire when absent.
	Algorithm HashAlgorithm `json:"algorithm,omitempty"`
}

// NewHash creates a hash with the given checksum value. The value is
// trimmed and must not be empty.
func NewHash(value string) (*Hash, error) {
	h := &Hash{}
	if err := h.SetValue(value); err != nil {
		return nil, err
	}
	return h, nil
}

// SetValue assigns the checksum, rejecting empty values at the point of
// assignment.
func (h *Hash) SetValue(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return &errors.InvalidArgumentError{Arg: "value", Message: "hash value must not be empty"}
	}
	h.Value = value
	return nil
}

// Load reads the hash from a parser positioned on its start tag,
// leaving the parser on the matching end tag. It returns true iff at
// least one field was populated. An unrecognized algo token leaves the
// algorithm unset.
func (h *Hash) Load(p *xpp.XMLPullParser) (bool, error) {
	if err := requireStart(p); err != nil {
		return false, err
	}

	loaded := false
	if algo := attrValue(p, "algo"); algo != "" {
		if a := HashAlgorithmFromToken(algo); a != HashAlgorithmNone {
			h.Algorithm = a
			loaded = true
		} else {
			logger.Debug("Ignoring unknown hash algorithm token", map[string]interface{}{
				"algo": algo,
			})
		}
	}

	text, err := elementText(p)
	if err != nil {
		return loaded, err
	}
	if text != "" {
		h.Value = text
		loaded = true
	}
	return loaded, nil
}

// WriteTo emits the media:hash element. The algo attribute precedes the
// checksum text and is omitted when the algorithm is unset.
func (h *Hash) WriteTo(e *xml.Encoder) error {
	if err := requireEncoder(e); err != nil {
		return err
	}
	var attrs []xml.Attr
	attrs = appendAttr(attrs, "algo", h.Algorithm.Token())
	return writeElement(e, "hash", attrs, h.Value)
}

// Compare orders two hashes field by field, combining the component
// results with bitwise OR. A nil hash compares as less.
func (h *Hash) Compare(other *Hash) int {
	if h == other {
		return 0
	}
	if h == nil {
		return -1
	}
	if other == nil {
		return 1
	}
	result := compareStrings(h.Value, other.Value)
	result |= compareInts(int(h.Algorithm), int(other.Algorithm))
	return result
}

// CompareTo orders the hash against an arbitrary value, failing with a
// TypeMismatchError when the value is not a *Hash.
func (h *Hash) CompareTo(v any) (int, error) {
	other, ok := v.(*Hash)
	if !ok {
		return 0, &errors.TypeMismatchError{Expected: "*mediarss.Hash", Actual: fmt.Sprintf("%T", v)}
	}
	return h.Compare(other), nil
}

// Equals reports whether v is a *Hash with identical fields.
func (h *Hash) Equals(v any) bool {
	other, ok := v.(*Hash)
	return ok && h.Compare(other) == 0
}

// String returns the XML form of the hash.
func (h *Hash) String() string {
	return stringify(h)
}
