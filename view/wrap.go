package view

import (
	"fmt"
	"slices"

	"github.com/dictwrap/go-dictwrap/debug"
	"github.com/dictwrap/go-dictwrap/gomap"
	"github.com/dictwrap/go-dictwrap/ir"
)

// View is the common surface of DictView and ListView.
type View interface {
	// Node returns the underlying structure. It is the same node the view
	// was constructed over, never a copy.
	Node() *ir.Node
	// ToPlain recursively produces plain Go values with no view or node
	// types at any depth.
	ToPlain() any
	// ToJSON encodes the underlying structure; pretty output is multi-line
	// with 4-space indentation, otherwise the most compact single-line
	// form.
	ToJSON(pretty bool) (string, error)
	fmt.Stringer
}

// Wrap returns a view over node: objects get a *DictView, arrays a
// *ListView. The configuration is inherited unchanged by every view
// produced by recursing into children. Callers must pass an object or
// array node; Wrap returns nil for anything else rather than guessing.
func Wrap(node *ir.Node, opts ...Option) View {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	switch node.Type {
	case ir.ObjectType:
		return &DictView{data: node, cfg: cfg}
	case ir.ArrayType:
		return &ListView{data: node, cfg: cfg}
	default:
		return nil
	}
}

// Unwrap returns the underlying structure of a view, with identity
// preserved, and any other value unchanged. It is total and never fails.
func Unwrap(v any) any {
	switch t := v.(type) {
	case *DictView:
		return t.data
	case *ListView:
		return t.data
	default:
		return v
	}
}

// AddField inserts value under the literal field name, bypassing prefix
// resolution. It is the only operation that creates new keys; Set is
// update-only. Adding a name that already exists as a literal key degrades
// to a write and is subject to the strict check.
func AddField(v any, name string, value any) error {
	dv, ok := v.(*DictView)
	if !ok {
		return &ArgumentError{Message: fmt.Sprintf("add field requires a dict view, got %T", v)}
	}
	if !dv.cfg.mutable {
		return &ImmutableError{Op: "add " + name}
	}
	node, err := toNode(value)
	if err != nil {
		return err
	}
	if i, ok := fieldIndex(dv.data, name); ok {
		cur := dv.data.Values[i]
		if dv.cfg.strict && !sameKind(cur, node) {
			return &TypeError{Field: name, Want: kindName(cur), Got: kindName(node)}
		}
		dv.setAt(i, node)
		return nil
	}
	if debug.View() {
		debug.Logf("add field %q\n", name)
	}
	i := len(dv.data.Fields)
	fieldNode := &ir.Node{
		Parent:      dv.data,
		ParentIndex: i,
		ParentField: name,
		Type:        ir.StringType,
		String:      name,
	}
	node.Parent = dv.data
	node.ParentIndex = i
	node.ParentField = name
	dv.data.Fields = append(dv.data.Fields, fieldNode)
	dv.data.Values = append(dv.data.Values, node)
	return nil
}

// DelField removes the field resolved from name (prefixes apply) and
// returns the value stored immediately before deletion as a plain Go
// value.
func DelField(v any, name string) (any, error) {
	dv, ok := v.(*DictView)
	if !ok {
		return nil, &ArgumentError{Message: fmt.Sprintf("del field requires a dict view, got %T", v)}
	}
	if !dv.cfg.mutable {
		return nil, &ImmutableError{Op: "del " + name}
	}
	i, ok := dv.resolveIndex(name)
	if !ok {
		return nil, &AttributeError{Field: name}
	}
	if debug.View() {
		debug.Logf("del field %q (key %q)\n", name, dv.data.Fields[i].String)
	}
	prior := gomap.FromIR(dv.data.Values[i])
	dv.data.Fields = slices.Delete(dv.data.Fields, i, i+1)
	dv.data.Values = slices.Delete(dv.data.Values, i, i+1)
	for j := i; j < len(dv.data.Fields); j++ {
		dv.data.Fields[j].ParentIndex = j
		dv.data.Values[j].ParentIndex = j
	}
	return prior, nil
}

// wrapValue applies the lazy-wrap rule: containers come back as views
// carrying cfg, scalars as native Go values.
func wrapValue(node *ir.Node, cfg config) any {
	switch node.Type {
	case ir.ObjectType:
		return &DictView{data: node, cfg: cfg}
	case ir.ArrayType:
		return &ListView{data: node, cfg: cfg}
	default:
		return gomap.FromIR(node)
	}
}

// toNode converts a value being written into a node. Views contribute
// their underlying structure (aliasing, not copying); everything else goes
// through the gomap bridge.
func toNode(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case *DictView:
		return t.data, nil
	case *ListView:
		return t.data, nil
	case View:
		return t.Node(), nil
	}
	return gomap.ToIR(v)
}

func fieldIndex(node *ir.Node, key string) (int, bool) {
	for i := range node.Fields {
		if node.Fields[i].String == key {
			return i, true
		}
	}
	return 0, false
}

// sameKind reports whether two nodes store the same kind of value for the
// purpose of strict writes: equal types, and for numbers the same
// int-vs-float representation.
func sameKind(a, b *ir.Node) bool {
	if a.Type != b.Type {
		return false
	}
	if a.Type != ir.NumberType {
		return true
	}
	return (a.Int64 != nil) == (b.Int64 != nil)
}

func kindName(node *ir.Node) string {
	if node.Type == ir.NumberType {
		if node.Int64 != nil {
			return "Int"
		}
		return "Float"
	}
	return node.Type.String()
}
