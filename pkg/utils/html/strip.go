// ABOUTME: HTML utilities for extracting plain text from markup
// ABOUTME: Walks the parsed document so entities and malformed markup are handled properly

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the plain text of an HTML string: tags removed,
// entities decoded, whitespace collapsed. Script and style content is
// dropped. Input that fails to parse is returned trimmed as-is.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return collapseWhitespace(b.String())
}

// collapseWhitespace trims the string and folds runs of whitespace into
// single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
