// Package encode encodes document nodes to JSON or YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Pretty output, 4-space indent
//	err := encode.Encode(node, os.Stdout, encode.EncodePretty(true))
//
//	// YAML output
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// Object fields are written in the node's own field order.
//
// # Related Packages
//
//   - github.com/dictwrap/go-dictwrap/ir - node representation
//   - github.com/dictwrap/go-dictwrap/parse - parse text to nodes
package encode
