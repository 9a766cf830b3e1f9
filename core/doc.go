// Package core contains the Media RSS extension model and its support
// packages. It is framework-agnostic: the only inputs are a positioned
// XML pull parser and an XML token encoder, both owned by the caller.
//
// The core package is organized into several sub-packages:
//
// - mediarss: the value types, containers and aggregation logic
// - errors: custom error types for caller contract violations
// - interfaces: contracts for injected dependencies (logger)
//
// # Design Principles
//
// The core package follows the same principles as the rest of the
// codebase:
// - No external framework dependencies
// - External dependencies are injected via interfaces
// - Malformed input degrades silently; only caller contract violations fail
// - Value types are free from transport and persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/BumpyClock/go-mediarss/core/mediarss"
//	)
//
//	// p is a goxpp parser positioned on a media:group start tag
//	group := mediarss.NewGroup()
//	loaded, err := group.Load(p)
//
//	// e is an xml.Encoder positioned to accept child elements
//	err = group.WriteTo(e)
package core
