// ABOUTME: Shared pull-parser helpers for Load implementations
// ABOUTME: Every Load starts on an element's StartTag and finishes on its EndTag

package mediarss

import (
	"strings"

	xpp "github.com/mmcdole/goxpp"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// requireStart guards the caller contract that Load receives a non-nil
// parser positioned on a start tag.
func requireStart(p *xpp.XMLPullParser) error {
	if p == nil {
		return &errors.InvalidArgumentError{Arg: "p", Message: "XML pull parser must not be nil"}
	}
	if p.Event != xpp.StartTag {
		return &errors.InvalidArgumentError{Arg: "p", Message: "parser must be positioned on a start tag"}
	}
	return nil
}

// attrValue returns the trimmed value of the named attribute on the
// current element, matching the local name case-insensitively. Absent
// attributes yield "".
func attrValue(p *xpp.XMLPullParser, name string) string {
	for _, a := range p.Attrs {
		if strings.EqualFold(a.Name.Local, name) {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

// elementText consumes the current element and returns its trimmed
// character data, leaving the parser on the element's end tag. Only the
// element's own character data is kept; text inside nested child
// elements is discarded.
func elementText(p *xpp.XMLPullParser) (string, error) {
	var inner struct {
		Data string `xml:",chardata"`
	}
	if err := p.DecodeElement(&inner); err != nil {
		return "", err
	}
	return strings.TrimSpace(inner.Data), nil
}

// splitEntities splits whitespace-delimited restriction entity tokens.
// A single token with no whitespace becomes a one-element list.
func splitEntities(text string) []string {
	return strings.Fields(text)
}

// splitKeywords splits a comma-delimited keyword list, dropping empty
// entries left by stray commas.
func splitKeywords(text string) []string {
	parts := strings.Split(text, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
