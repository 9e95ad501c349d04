package gomap

import (
	"github.com/dictwrap/go-dictwrap/ir"
)

// FromIR converts a node to plain Go values: map[string]any for objects,
// []any for arrays, string/int64/float64/bool for scalars, and nil for
// null. It is total over well-formed nodes and never returns a view or
// node type at any depth.
//
// Object field order is not representable in a Go map; callers that need
// order keep the node.
func FromIR(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = FromIR(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i].String] = FromIR(node.Values[i])
		}
		return res
	default:
		return nil
	}
}
