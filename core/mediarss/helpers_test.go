package mediarss

import (
	"strings"
	"testing"

	xpp "github.com/mmcdole/goxpp"
)

// startParser wraps an XML fragment in an item element that declares
// the media namespace and returns a pull parser positioned on the
// fragment's first element, the way the outer feed pipeline would hand
// a cursor to Load.
func startParser(t *testing.T, fragment string) *xpp.XMLPullParser {
	t.Helper()

	doc := `<item xmlns:media="` + Namespace + `">` + fragment + `</item>`
	p := xpp.NewXMLPullParser(strings.NewReader(doc), false, nil)

	for {
		tok, err := p.Next()
		if err != nil {
			t.Fatalf("positioning on item element: %v", err)
		}
		if tok == xpp.StartTag {
			break
		}
	}
	tok, err := p.NextTag()
	if err != nil {
		t.Fatalf("positioning on fragment element: %v", err)
	}
	if tok != xpp.StartTag {
		t.Fatalf("expected fragment start tag, got event %v", tok)
	}
	return p
}
