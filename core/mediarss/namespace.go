// ABOUTME: Namespace constants and helpers for the Yahoo Media RSS extension
// ABOUTME: Elements are written with the fixed media prefix under the mrss namespace

package mediarss

import "encoding/xml"

const (
	// Namespace is the XML namespace of the Yahoo Media RSS extension.
	Namespace = "http://search.yahoo.com/mrss/"

	// Prefix is the conventional namespace prefix used when writing
	// extension elements.
	Prefix = "media"
)

// NamespaceAttr returns the xmlns:media attribute a caller must declare
// on an enclosing element (typically the channel or item) before any
// WriteTo output is valid in its document.
func NamespaceAttr() xml.Attr {
	return xml.Attr{
		Name:  xml.Name{Local: "xmlns:" + Prefix},
		Value: Namespace,
	}
}

// prefixed returns the prefixed element name for a local Media RSS
// element name, e.g. "category" -> "media:category".
func prefixed(local string) xml.Name {
	return xml.Name{Local: Prefix + ":" + local}
}
