// Package query evaluates expressions against document views.
package query

import (
	"fmt"

	"github.com/dictwrap/go-dictwrap/debug"
	"github.com/dictwrap/go-dictwrap/gomap"
	"github.com/dictwrap/go-dictwrap/view"

	"github.com/expr-lang/expr"
)

// Eval compiles and runs src against the fields of v: each field name is
// an expression variable. The result is a plain Go value.
func Eval(v *view.DictView, src string) (any, error) {
	env, ok := gomap.FromIR(v.Node()).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("query env is not an object")
	}
	if debug.Query() {
		debug.Logf("eval %q over %d fields\n", src, len(env))
	}
	prg, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	return normalize(res), nil
}

// normalize folds expression results onto the scalar model documents
// decode to: integers are int64, floats are float64.
func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float32:
		return float64(t)
	case []any:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalize(t[k])
		}
		return t
	default:
		return v
	}
}

// Select returns the indices of elements of v for which src evaluates to
// true. Object elements expose their fields as variables; scalar elements
// are bound to the variable "value".
func Select(v *view.ListView, src string) ([]int, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}
	var idxs []int
	for i := 0; i < v.Len(); i++ {
		el := gomap.FromIR(v.Node().Values[i])
		env, ok := el.(map[string]any)
		if !ok {
			env = map[string]any{"value": el}
		}
		res, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("running query on element %d: %w", i, err)
		}
		keep, ok := res.(bool)
		if !ok {
			return nil, fmt.Errorf("query result on element %d is %T, want bool", i, res)
		}
		if keep {
			idxs = append(idxs, i)
		}
	}
	if debug.Query() {
		debug.Logf("select %q matched %d of %d\n", src, len(idxs), v.Len())
	}
	return idxs, nil
}
