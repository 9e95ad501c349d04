package view

import (
	"strings"

	"github.com/dictwrap/go-dictwrap/encode"
	"github.com/dictwrap/go-dictwrap/gomap"
	"github.com/dictwrap/go-dictwrap/ir"
)

// DictView presents an object node as a field-addressable mapping.
// Container values come back wrapped in views that inherit this view's
// configuration; scalars come back as native Go values.
type DictView struct {
	data *ir.Node
	cfg  config
}

func (v *DictView) Node() *ir.Node {
	return v.data
}

// Get returns the value under the field resolved from name. The wrap is
// lazy: child views are built on access, not up front.
func (v *DictView) Get(name string) (any, error) {
	i, ok := v.resolveIndex(name)
	if !ok {
		return nil, &AttributeError{Field: name}
	}
	return wrapValue(v.data.Values[i], v.cfg), nil
}

// Set replaces the value under an existing field. It never creates keys;
// use AddField for that. Under Strict the new value's kind must equal the
// kind of the value currently stored.
func (v *DictView) Set(name string, value any) error {
	if !v.cfg.mutable {
		return &ImmutableError{Op: "set " + name}
	}
	i, ok := v.resolveIndex(name)
	if !ok {
		return &AttributeError{Field: name}
	}
	node, err := toNode(value)
	if err != nil {
		return err
	}
	if v.cfg.strict && !sameKind(v.data.Values[i], node) {
		return &TypeError{Field: name, Want: kindName(v.data.Values[i]), Got: kindName(node)}
	}
	v.setAt(i, node)
	return nil
}

func (v *DictView) setAt(i int, node *ir.Node) {
	node.Parent = v.data
	node.ParentIndex = i
	node.ParentField = v.data.Fields[i].String
	v.data.Values[i] = node
}

// Has reports whether name resolves to a field, under the same prefix
// rules Get uses.
func (v *DictView) Has(name string) bool {
	_, ok := v.resolveIndex(name)
	return ok
}

// Fields returns the addressable field names in insertion order.
// Configured prefixes are stripped, so each returned name resolves back
// to its key through Get.
func (v *DictView) Fields() []string {
	fields := make([]string, len(v.data.Fields))
	for i, f := range v.data.Fields {
		fields[i] = v.fieldName(f.String)
	}
	return fields
}

func (v *DictView) fieldName(key string) string {
	for _, p := range v.cfg.prefixes {
		if s, ok := strings.CutPrefix(key, p); ok && s != "" {
			return s
		}
	}
	return key
}

func (v *DictView) Len() int {
	return len(v.data.Fields)
}

// Mutable reports whether mutation through this view is permitted.
func (v *DictView) Mutable() bool {
	return v.cfg.mutable
}

func (v *DictView) ToPlain() any {
	return gomap.FromIR(v.data)
}

func (v *DictView) ToJSON(pretty bool) (string, error) {
	var opts []encode.EncodeOption
	if pretty {
		opts = append(opts, encode.EncodePretty(true))
	}
	return encode.ToString(v.data, opts...)
}

func (v *DictView) String() string {
	return encode.MustString(v.data)
}
