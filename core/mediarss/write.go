// ABOUTME: Shared XML token-writing helpers for WriteTo implementations
// ABOUTME: Attributes are emitted only when they differ from their absent sentinel

package mediarss

import (
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/BumpyClock/go-mediarss/core/errors"
)

// xmlWriter is the fragment-serialization contract shared by every
// Media RSS value type.
type xmlWriter interface {
	WriteTo(e *xml.Encoder) error
}

// requireEncoder guards the caller contract that WriteTo receives a
// non-nil encoder.
func requireEncoder(e *xml.Encoder) error {
	if e == nil {
		return &errors.InvalidArgumentError{Arg: "e", Message: "XML encoder must not be nil"}
	}
	return nil
}

// appendAttr appends a string attribute when the value is non-empty.
func appendAttr(attrs []xml.Attr, name, value string) []xml.Attr {
	if value == "" {
		return attrs
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// appendIntAttr appends a positive integer attribute; zero is the
// absent sentinel and is omitted.
func appendIntAttr(attrs []xml.Attr, name string, value int) []xml.Attr {
	if value <= 0 {
		return attrs
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: strconv.Itoa(value)})
}

// appendInt64Attr appends a positive 64-bit integer attribute; zero is
// the absent sentinel and is omitted.
func appendInt64Attr(attrs []xml.Attr, name string, value int64) []xml.Attr {
	if value <= 0 {
		return attrs
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: strconv.FormatInt(value, 10)})
}

// appendFloatAttr appends a positive floating-point attribute; zero is
// the absent sentinel and is omitted.
func appendFloatAttr(attrs []xml.Attr, name string, value float64) []xml.Attr {
	if value <= 0 {
		return attrs
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: strconv.FormatFloat(value, 'f', -1, 64)})
}

// writeElement emits a single prefixed element with the given attributes
// and optional text content.
func writeElement(e *xml.Encoder, local string, attrs []xml.Attr, text string) error {
	start := xml.StartElement{Name: prefixed(local), Attr: attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if text != "" {
		if err := e.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// stringify materializes the XML form of a value through a scoped
// buffer. A value that cannot be serialized renders as the empty string.
func stringify(w xmlWriter) string {
	var buf bytes.Buffer
	e := xml.NewEncoder(&buf)
	if err := w.WriteTo(e); err != nil {
		return ""
	}
	if err := e.Flush(); err != nil {
		return ""
	}
	return buf.String()
}
