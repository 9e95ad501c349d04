package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/dictwrap/go-dictwrap/format"
	"github.com/dictwrap/go-dictwrap/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	pretty        bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default is the most compact single-line JSON
// form; EncodePretty(true) switches to multi-line output indented with 4
// spaces per level.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	return encodeJSON(node, w, es)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, applyColor(es, node.Type, ValueColor, "null"))
	case ir.BoolType:
		return writeString(w, applyColor(es, node.Type, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		return writeString(w, applyColor(es, node.Type, ValueColor, numberLexeme(node)))
	case ir.StringType:
		return writeString(w, applyColor(es, node.Type, ValueColor, jsonQuote(node.String)))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("%w: cannot encode type %s", ErrEncoding, node.Type)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, node.Type, SepColor, "[")); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, node.Type, SepColor, "]"))
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type, SepColor, "]"))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, node.Type, SepColor, "{")); err != nil {
		return err
	}
	if len(node.Fields) == 0 {
		return writeString(w, applyColor(es, node.Type, SepColor, "}"))
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, applyColor(es, node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := jsonQuote(node.Fields[i].String)
		if err := writeString(w, applyColor(es, node.Type, FieldColor, key)); err != nil {
			return err
		}
		sep := ":"
		if es.pretty {
			sep = ": "
		}
		if err := writeString(w, applyColor(es, node.Type, SepColor, sep)); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type, SepColor, "}"))
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toOrdered(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

// toOrdered maps a node to goccy's order-preserving representation.
func toOrdered(node *ir.Node) any {
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
			res[i] = toOrdered(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: toOrdered(node.Values[i]),
			}
		}
		return res
	default:
		return nil
	}
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func numberLexeme(node *ir.Node) string {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	default:
		return node.Number
	}
}

func jsonQuote(v string) string {
	d, err := json.Marshal(v)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(d)
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
