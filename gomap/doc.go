// Package gomap converts between document nodes and native Go values.
//
// # Usage
//
//	// Go value to node
//	node, err := gomap.ToIR(map[string]any{"name": "alice"})
//
//	// Node to plain Go values
//	v := gomap.FromIR(node) // map[string]any{"name": "alice"}
//
// ToIR handles scalars, string-keyed maps (sorted keys), slices, arrays,
// structs (declaration order, gomap tags for renaming and omission),
// pointers with cycle detection, and encoding.TextMarshaler. *ir.Node
// values pass through unchanged so existing subtrees keep their identity.
//
// # Related Packages
//
//   - github.com/dictwrap/go-dictwrap/ir - node representation
//   - github.com/dictwrap/go-dictwrap/view - views that use this bridge
package gomap
