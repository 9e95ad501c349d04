// Package parse decodes JSON and YAML text into document nodes, preserving
// object key order.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/dictwrap/go-dictwrap/format"
	"github.com/dictwrap/go-dictwrap/ir"
)

var ErrParse = errors.New("parse error")

type ParseOption func(*parseOpts)

type parseOpts struct {
	format   format.Format
	declared bool
}

// ParseFormat declares the input format. Declared formats are enforced:
// JSON input must be syntactically valid JSON, not merely valid YAML.
func ParseFormat(f format.Format) ParseOption {
	return func(po *parseOpts) {
		po.format = f
		po.declared = true
	}
}

// Parse decodes d into a node tree. JSON is a subset of YAML, so a single
// ordered YAML decode serves both formats; input with no declared format
// is decoded leniently.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.declared && pOpts.format.IsJSON() && !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromDecoded(v)
}

func fromDecoded(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > 1<<63-1 {
			n := ir.Null()
			n.Type = ir.NumberType
			n.Number = fmt.Sprintf("%d", t)
			return n, nil
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, el := range t {
			n, err := fromDecoded(el)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string object key %v", ErrParse, item.Key)
			}
			val, err := fromDecoded(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", ErrParse, v)
	}
}
