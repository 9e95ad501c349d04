package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dictwrap/go-dictwrap/gomap"
	"github.com/dictwrap/go-dictwrap/ir"
	"github.com/dictwrap/go-dictwrap/parse"
	"github.com/dictwrap/go-dictwrap/view"

	"github.com/scott-cotton/cli"
)

func splitPath(path string) ([]string, error) {
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return nil, fmt.Errorf("%w: empty field path", cli.ErrUsage)
	}
	return strings.Split(path, "."), nil
}

// navigate descends from root through segs. Object segments are field
// names subject to the configured prefixes; sequence segments are decimal
// indices.
func navigate(cfg *MainConfig, root *ir.Node, segs []string) (any, error) {
	var cur any
	if w := view.Wrap(root, cfg.viewOpts()...); w != nil {
		cur = w
	} else {
		cur = gomap.FromIR(root)
	}
	for _, seg := range segs {
		switch v := cur.(type) {
		case *view.DictView:
			next, err := v.Get(seg)
			if err != nil {
				return nil, err
			}
			cur = next
		case *view.ListView:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("index %q into sequence: %w", seg, err)
			}
			if i < 0 || i >= v.Len() {
				return nil, fmt.Errorf("index %d out of range, length %d", i, v.Len())
			}
			cur = v.At(i)
		default:
			return nil, fmt.Errorf("cannot descend into scalar at %q", seg)
		}
	}
	return cur, nil
}

func valueNode(v any) (*ir.Node, error) {
	if vw, ok := v.(view.View); ok {
		return vw.Node(), nil
	}
	return gomap.ToIR(v)
}

func parseValue(cfg *MainConfig, s string) (*ir.Node, error) {
	node, err := parse.Parse([]byte(s), cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding value %q: %w", s, err)
	}
	return node, nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a field path", cli.ErrUsage)
	}
	segs, err := splitPath(args[0])
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := navigate(cfg.MainConfig, doc, segs)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", args[0], arg, err)
		}
		node, err := valueNode(res)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a field path and a value", cli.ErrUsage)
	}
	segs, err := splitPath(args[0])
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args[2:]) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		val, err := parseValue(cfg.MainConfig, args[1])
		if err != nil {
			return err
		}
		parent, err := navigate(cfg.MainConfig, doc, segs[:len(segs)-1])
		if err != nil {
			return fmt.Errorf("error setting %s in %s: %w", args[0], arg, err)
		}
		last := segs[len(segs)-1]
		switch p := parent.(type) {
		case *view.DictView:
			err = p.Set(last, val)
		case *view.ListView:
			var i int
			i, err = strconv.Atoi(last)
			if err == nil {
				err = p.SetAt(i, val)
			}
		default:
			err = fmt.Errorf("cannot set %q on a scalar", last)
		}
		if err != nil {
			return fmt.Errorf("error setting %s in %s: %w", args[0], arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: add requires a field path and a value", cli.ErrUsage)
	}
	segs, err := splitPath(args[0])
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args[2:]) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		val, err := parseValue(cfg.MainConfig, args[1])
		if err != nil {
			return err
		}
		parent, err := navigate(cfg.MainConfig, doc, segs[:len(segs)-1])
		if err != nil {
			return fmt.Errorf("error adding %s in %s: %w", args[0], arg, err)
		}
		last := segs[len(segs)-1]
		switch p := parent.(type) {
		case *view.DictView:
			err = view.AddField(p, last, val)
		case *view.ListView:
			// "-" appends, a decimal index inserts
			if last == "-" {
				err = p.Append(val)
				break
			}
			var i int
			i, err = strconv.Atoi(last)
			if err == nil {
				err = p.Insert(i, val)
			}
		default:
			err = fmt.Errorf("cannot add %q on a scalar", last)
		}
		if err != nil {
			return fmt.Errorf("error adding %s in %s: %w", args[0], arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a field path", cli.ErrUsage)
	}
	segs, err := splitPath(args[0])
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		parent, err := navigate(cfg.MainConfig, doc, segs[:len(segs)-1])
		if err != nil {
			return fmt.Errorf("error deleting %s in %s: %w", args[0], arg, err)
		}
		last := segs[len(segs)-1]
		switch p := parent.(type) {
		case *view.DictView:
			_, err = view.DelField(p, last)
		case *view.ListView:
			var i int
			i, err = strconv.Atoi(last)
			if err == nil {
				if i < 0 || i >= p.Len() {
					err = fmt.Errorf("index %d out of range, length %d", i, p.Len())
				} else {
					_, err = p.RemoveAt(i)
				}
			}
		default:
			err = fmt.Errorf("cannot delete %q on a scalar", last)
		}
		if err != nil {
			return fmt.Errorf("error deleting %s in %s: %w", args[0], arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}
