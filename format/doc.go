// Package format names the text formats the module reads and writes.
//
// # Related Packages
//
//   - github.com/dictwrap/go-dictwrap/parse - parse text to nodes
//   - github.com/dictwrap/go-dictwrap/encode - encode nodes to text
package format
