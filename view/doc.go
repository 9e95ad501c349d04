// Package view provides attribute-style access to nested document
// structures.
//
// # Overview
//
// A view wraps an object or array node and exposes it through field and
// index operations. Wrapping is lazy: reading a field whose value is a
// container returns another view over the same underlying node, built at
// access time, so a view tree is never materialized up front and every
// view aliases the structure it was built over.
//
//	node, _ := parse.Parse([]byte(`{"name": "alice", "tags": ["a"]}`))
//	v := view.Wrap(node).(*view.DictView)
//	name, _ := v.Get("name")           // "alice"
//	tags, _ := v.Get("tags")           // *view.ListView over the same node
//
// # Mutation
//
// Set updates existing fields only; AddField is the single way to create
// a key, and DelField the single way to remove one. Mutations through a
// child view are visible through the parent and through the unwrapped
// structure, because they all share nodes.
//
// # Configuration
//
// Options set at Wrap time are inherited by every child view:
//
//   - Strict(true) makes Set require that the new value's kind match the
//     kind already stored. Lists ignore this setting.
//   - Mutable(false) rejects all mutation with an ImmutableError. The
//     restriction belongs to the view, not the structure.
//   - KeyPrefixes("@", "_") resolves a field name by trying each prefix
//     in order before the bare name.
//
// # Related Packages
//
//   - github.com/dictwrap/go-dictwrap/ir - the node representation views wrap
//   - github.com/dictwrap/go-dictwrap/parse - producing nodes from JSON or YAML
//   - github.com/dictwrap/go-dictwrap/gomap - the Go value bridge used for writes
package view
