// Package ir defines the ordered document tree that the rest of the module
// operates on.
//
// # Overview
//
// A Node represents a single JSON/YAML-like value: null, bool, number,
// string, array, or object. The tree is the caller-owned "underlying
// structure" that views in the view package alias; it is never copied by a
// view, and mutations made through a view are visible through every other
// reference to the same nodes.
//
// # Node Structure
//
// For ObjectType nodes, Fields[i] is the string-typed key for the value at
// Values[i], so there are always as many fields as values. Field order is
// insertion (or parse) order, and every traversal and encoding follows it.
//
// Number values are placed under:
//   - Int64: if the number is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a lexical fallback when neither representation fits
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// FromMap builds an object from a Go map with sorted keys; FromKeyVals is
// the order-preserving constructor and is what the parse package uses.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships via Parent, ParentIndex and
// ParentField. Use Get to look up an object field, Visit for pre/post order
// traversal, and Compare for a total order over trees.
//
// # Thread Safety
//
// Node structures are not thread-safe. Access from multiple goroutines
// requires external synchronization.
//
// # Related Packages
//
//   - github.com/dictwrap/go-dictwrap/parse - parses text into nodes
//   - github.com/dictwrap/go-dictwrap/encode - encodes nodes to text
//   - github.com/dictwrap/go-dictwrap/view - attribute-style views over nodes
package ir
