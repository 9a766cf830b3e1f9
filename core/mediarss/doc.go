// Package mediarss models the Yahoo Media RSS extension
// (http://search.yahoo.com/mrss/): a family of value objects attached
// to syndication feeds and items, each able to load itself from a
// positioned XML fragment and serialize itself back under the fixed
// namespace.
//
// # Loading
//
// Every value type and container exposes Load (or LoadElement on
// Extension) taking a *xpp.XMLPullParser positioned exactly on the
// element's start tag. Load reads the declared attributes and text
// content, leaves the parser on the matching end tag, and returns true
// iff at least one field was actually populated. A false return means
// "nothing in this fragment matched the expected shape" — it is
// informational, not an error. Load fails only when the parser itself
// is nil or mispositioned, which is a caller contract violation.
//
// Malformed data never fails a Load: unparseable numeric attributes,
// unknown enum tokens and empty text degrade silently to "field left
// absent", optionally reported at debug level through SetLogger.
//
// # Writing
//
// WriteTo emits the element through an *xml.Encoder using the fixed
// "media" prefix. Attributes are written only when they differ from
// their absent sentinel, in a fixed per-type order required for wire
// compatibility. Callers declare the namespace on an enclosing element
// with NamespaceAttr.
//
// # Ordering and equality
//
// Every type has Compare (typed), CompareTo (dynamic, failing with a
// type mismatch for foreign types) and Equals (dynamic, false for
// foreign types). Component results combine with bitwise OR, so only
// the zero/non-zero property of a result is meaningful; sequences
// compare element-wise in stored order and a shorter sequence compares
// as less.
//
// # Containers
//
// Group aggregates alternate content encodings plus the shared common
// entities. Extension is the per-item/per-feed holder the outer feed
// parser feeds one positioned element at a time. Both implement Holder,
// the capability contract over the shared entity set.
//
// This package is synchronous and reentrant across distinct instances;
// concurrent use of the same instance must be serialized by the caller.
package mediarss
