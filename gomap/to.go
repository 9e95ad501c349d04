package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/dictwrap/go-dictwrap/ir"
)

// ToIR converts a Go value to a document node. *ir.Node values pass through
// unchanged, so already-built subtrees keep their identity.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	if node, ok := v.(*ir.Node); ok {
		return node, nil
	}
	visited := make(map[uintptr]string)
	return toIRReflectValue(reflect.ValueOf(v), "", visited)
}

// toIRReflectValue converts a reflect.Value to a node.
// fieldPath is used for error reporting (e.g., "person.address.street").
// visited tracks pointer addresses to detect circular references.
func toIRReflectValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
			}
			return ir.FromString(string(text)), nil
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toIRReflectValue(val.Elem(), fieldPath, visited)
		delete(visited, ptrAddr)
		return node, err
	}

	if kind == reflect.Interface {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if node, ok := val.Interface().(*ir.Node); ok {
			return node, nil
		}
		return toIRReflectValue(val.Elem(), fieldPath, visited)
	}

	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
		}
		return ir.FromString(string(text)), nil
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > 1<<63-1 {
			node := &ir.Node{Type: ir.NumberType}
			node.Number = strconv.FormatUint(u, 10)
			return node, nil
		}
		return ir.FromInt(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 && kind == reflect.Slice {
			// []byte carries text in this model
			return ir.FromString(string(val.Bytes())), nil
		}
		return toIRSlice(val, fieldPath, visited)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice && !val.IsNil() {
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}
	n := val.Len()
	vals := make([]*ir.Node, n)
	for i := 0; i < n; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		node, err := toIRReflectValue(val.Index(i), elemPath, visited)
		if err != nil {
			return nil, err
		}
		vals[i] = node
	}
	return ir.FromSlice(vals), nil
}

func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", typ.Key()),
		}
	}
	if val.IsNil() {
		return ir.FromKeyVals(nil), nil
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	keys := make([]string, 0, val.Len())
	keyVals := make(map[string]reflect.Value, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		keys = append(keys, k)
		keyVals[k] = iter.Value()
	}
	slices.Sort(keys)
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, k := range keys {
		valuePath := fieldPath
		if valuePath != "" {
			valuePath += "." + k
		} else {
			valuePath = k
		}
		node, err := toIRReflectValue(keyVals[k], valuePath, visited)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(k), Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

// toIRStruct converts a struct to an object node with fields in declaration
// order. Embedded structs are flattened.
func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	var kvs []ir.KeyVal
	seen := map[string]bool{}
	if err := appendStructFields(val, fieldPath, visited, &kvs, seen); err != nil {
		return nil, err
	}
	return ir.FromKeyVals(kvs), nil
}

func appendStructFields(val reflect.Value, fieldPath string, visited map[uintptr]string, kvs *[]ir.KeyVal, seen map[string]bool) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := appendStructFields(val.Field(i), fieldPath, visited, kvs, seen); err != nil {
				return err
			}
			continue
		}
		name, skip := fieldName(field)
		if skip {
			continue
		}
		if seen[name] {
			return &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("duplicate field name %q", name),
			}
		}
		seen[name] = true
		valuePath := fieldPath
		if valuePath != "" {
			valuePath += "." + name
		} else {
			valuePath = name
		}
		node, err := toIRReflectValue(val.Field(i), valuePath, visited)
		if err != nil {
			return err
		}
		*kvs = append(*kvs, ir.KeyVal{Key: ir.FromString(name), Val: node})
	}
	return nil
}
