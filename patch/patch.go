// Package patch applies RFC 6902 JSON patches to document structures.
package patch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dictwrap/go-dictwrap/debug"
	"github.com/dictwrap/go-dictwrap/encode"
	"github.com/dictwrap/go-dictwrap/ir"
	"github.com/dictwrap/go-dictwrap/parse"
	"github.com/dictwrap/go-dictwrap/view"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply runs the patch document patchJSON against node, replacing its
// contents in place. The node keeps its identity and parent links, so
// views over it remain valid and see the patched structure. Application
// is atomic: a failing op leaves the document unchanged. replace and
// remove ops require their target path to resolve in the document as it
// stands when the op runs.
func Apply(node *ir.Node, patchJSON []byte) error {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}
	if len(ops) == 0 {
		return nil
	}
	doc, err := encode.ToString(node)
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("applying %d op patch\n", len(ops))
	}
	out := []byte(doc)
	cur := node
	for i, op := range ops {
		kind := op.Kind()
		if kind == "replace" || kind == "remove" {
			path, err := op.Path()
			if err != nil {
				return fmt.Errorf("applying patch: op %d: %w", i, err)
			}
			if resolvePointer(cur, path) == nil {
				return fmt.Errorf("applying patch: op %d %s: no value at %q", i, kind, path)
			}
		}
		out, err = jsonpatch.Patch{op}.Apply(out)
		if err != nil {
			return fmt.Errorf("applying patch: op %d %s: %w", i, kind, err)
		}
		cur, err = parse.Parse(out)
		if err != nil {
			return err
		}
	}
	node.Replace(cur)
	return nil
}

// resolvePointer walks an RFC 6901 JSON pointer, returning nil when any
// step fails to resolve. The empty pointer names the document itself.
func resolvePointer(node *ir.Node, pointer string) *ir.Node {
	if pointer == "" {
		return node
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil
	}
	cur := node
	for _, part := range strings.Split(pointer[1:], "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		switch cur.Type {
		case ir.ObjectType:
			cur = ir.Get(cur, part)
		case ir.ArrayType:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(cur.Values) {
				return nil
			}
			cur = cur.Values[i]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// ApplyToView patches the structure underlying v. The view's mutability
// setting is honored.
func ApplyToView(v view.View, patchJSON []byte) error {
	dv, ok := v.(*view.DictView)
	if ok && !dv.Mutable() {
		return applyImmutable()
	}
	if lv, ok := v.(*view.ListView); ok && !lv.Mutable() {
		return applyImmutable()
	}
	return Apply(v.Node(), patchJSON)
}

func applyImmutable() error {
	return &view.ImmutableError{Op: "patch"}
}
