// Package libdiff compares document structures.
//
// # Usage
//
//	// Line diff of the pretty encodings
//	text, err := libdiff.Diff(oldNode, newNode)
//
//	// Field-level summary for two objects
//	fd := libdiff.DiffFields(oldNode, newNode)
//
// # Related Packages
//
//   - github.com/dictwrap/go-dictwrap/ir - node representation and ordering
//   - github.com/dictwrap/go-dictwrap/encode - the encodings being diffed
package libdiff
