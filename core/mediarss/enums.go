// ABOUTME: Enumerations used by Media RSS value types with their wire-format metadata
// ABOUTME: Provides static token tables and bidirectional lookup without reflection

package mediarss

import "strings"

// Expression determines whether a media object is a full version,
// a continuous stream, or a sample.
type Expression int

const (
	// ExpressionNone indicates no expression was specified.
	ExpressionNone Expression = iota
	// ExpressionFull indicates the object is the full version.
	ExpressionFull
	// ExpressionNonstop indicates the object is a continuous stream.
	ExpressionNonstop
	// ExpressionSample indicates the object is a sample.
	ExpressionSample
)

// HashAlgorithm identifies the algorithm used to create a Hash value.
type HashAlgorithm int

const (
	// HashAlgorithmNone indicates no algorithm was specified.
	HashAlgorithmNone HashAlgorithm = iota
	// HashAlgorithmMD5 is the MD5 hash algorithm.
	HashAlgorithmMD5
	// HashAlgorithmSHA1 is the SHA-1 hash algorithm.
	HashAlgorithmSHA1
)

// Medium identifies the type of a media object when its MIME type
// is ambiguous or absent.
type Medium int

const (
	// MediumNone indicates no medium was specified.
	MediumNone Medium = iota
	// MediumAudio identifies an audio object.
	MediumAudio
	// MediumDocument identifies a document object.
	MediumDocument
	// MediumExecutable identifies an executable object.
	MediumExecutable
	// MediumImage identifies an image object.
	MediumImage
	// MediumVideo identifies a video object.
	MediumVideo
)

// RestrictionRelationship indicates whether a Restriction permits or
// forbids the entities it names.
type RestrictionRelationship int

const (
	// RelationshipNone indicates no relationship was specified.
	RelationshipNone RestrictionRelationship = iota
	// RelationshipAllow permits the listed entities.
	RelationshipAllow
	// RelationshipDeny forbids the listed entities.
	RelationshipDeny
)

// RestrictionType indicates what kind of entities a Restriction names.
type RestrictionType int

const (
	// RestrictionTypeNone indicates no type was specified.
	RestrictionTypeNone RestrictionType = iota
	// RestrictionTypeCountry restricts by ISO 3166 country codes.
	RestrictionTypeCountry
	// RestrictionTypeURI restricts by URI.
	RestrictionTypeURI
)

// enumEntry associates an enumeration constant with its canonical
// display name and its wire-format token.
type enumEntry[T comparable] struct {
	value T
	name  string
	token string
}

var expressionTable = []enumEntry[Expression]{
	{ExpressionFull, "Full", "full"},
	{ExpressionNonstop, "Nonstop", "nonstop"},
	{ExpressionSample, "Sample", "sample"},
}

var hashAlgorithmTable = []enumEntry[HashAlgorithm]{
	{HashAlgorithmMD5, "MD5", "md5"},
	{HashAlgorithmSHA1, "SHA-1", "sha-1"},
}

var mediumTable = []enumEntry[Medium]{
	{MediumAudio, "Audio", "audio"},
	{MediumDocument, "Document", "document"},
	{MediumExecutable, "Executable", "executable"},
	{MediumImage, "Image", "image"},
	{MediumVideo, "Video", "video"},
}

var relationshipTable = []enumEntry[RestrictionRelationship]{
	{RelationshipAllow, "Allow", "allow"},
	{RelationshipDeny, "Deny", "deny"},
}

var restrictionTypeTable = []enumEntry[RestrictionType]{
	{RestrictionTypeCountry, "Country", "country"},
	{RestrictionTypeURI, "Uri", "uri"},
}

// tokenFor scans a metadata table for the given constant and returns
// its wire token, or "" when the constant carries no token (the None
// variant is never written to the wire).
func tokenFor[T comparable](table []enumEntry[T], v T) string {
	for _, e := range table {
		if e.value == v {
			return e.token
		}
	}
	return ""
}

// nameFor scans a metadata table for the given constant and returns
// its display name, or "None" when the constant is absent from the table.
func nameFor[T comparable](table []enumEntry[T], v T) string {
	for _, e := range table {
		if e.value == v {
			return e.name
		}
	}
	return "None"
}

// valueForToken scans a metadata table for the given wire token and
// returns the matching constant. When no token matches it returns the
// zero (None) variant, never an error. A caller that must distinguish
// "not found" from a genuine None has to inspect the token itself.
func valueForToken[T comparable](table []enumEntry[T], token string, caseInsensitive bool) T {
	for _, e := range table {
		if e.token == token || (caseInsensitive && strings.EqualFold(e.token, token)) {
			return e.value
		}
	}
	var zero T
	return zero
}

// Token returns the wire-format token for the expression, or "" for
// ExpressionNone.
func (x Expression) Token() string { return tokenFor(expressionTable, x) }

// String returns the canonical display name of the expression.
func (x Expression) String() string { return nameFor(expressionTable, x) }

// ExpressionFromToken returns the Expression for a wire token, matching
// case-insensitively. Unknown tokens yield ExpressionNone.
func ExpressionFromToken(token string) Expression {
	return valueForToken(expressionTable, strings.TrimSpace(token), true)
}

// Token returns the wire-format token for the algorithm, or "" for
// HashAlgorithmNone.
func (a HashAlgorithm) Token() string { return tokenFor(hashAlgorithmTable, a) }

// String returns the canonical display name of the algorithm.
func (a HashAlgorithm) String() string { return nameFor(hashAlgorithmTable, a) }

// HashAlgorithmFromToken returns the HashAlgorithm for a wire token,
// matching case-insensitively. Unknown tokens yield HashAlgorithmNone.
func HashAlgorithmFromToken(token string) HashAlgorithm {
	return valueForToken(hashAlgorithmTable, strings.TrimSpace(token), true)
}

// Token returns the wire-format token for the medium, or "" for MediumNone.
func (m Medium) Token() string { return tokenFor(mediumTable, m) }

// String returns the canonical display name of the medium.
func (m Medium) String() string { return nameFor(mediumTable, m) }

// MediumFromToken returns the Medium for a wire token, matching
// case-insensitively. Unknown tokens yield MediumNone.
func MediumFromToken(token string) Medium {
	return valueForToken(mediumTable, strings.TrimSpace(token), true)
}

// Token returns the wire-format token for the relationship, or "" for
// RelationshipNone.
func (r RestrictionRelationship) Token() string { return tokenFor(relationshipTable, r) }

// String returns the canonical display name of the relationship.
func (r RestrictionRelationship) String() string { return nameFor(relationshipTable, r) }

// RelationshipFromToken returns the RestrictionRelationship for a wire
// token, matching case-insensitively. Unknown tokens yield RelationshipNone.
func RelationshipFromToken(token string) RestrictionRelationship {
	return valueForToken(relationshipTable, strings.TrimSpace(token), true)
}

// Token returns the wire-format token for the restriction type, or ""
// for RestrictionTypeNone.
func (r RestrictionType) Token() string { return tokenFor(restrictionTypeTable, r) }

// String returns the canonical display name of the restriction type.
func (r RestrictionType) String() string { return nameFor(restrictionTypeTable, r) }

// RestrictionTypeFromToken returns the RestrictionType for a wire token,
// matching case-insensitively. Unknown tokens yield RestrictionTypeNone.
func RestrictionTypeFromToken(token string) RestrictionType {
	return valueForToken(restrictionTypeTable, strings.TrimSpace(token), true)
}
