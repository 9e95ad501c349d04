package main

import (
	"fmt"

	"github.com/dictwrap/go-dictwrap/gomap"
	"github.com/dictwrap/go-dictwrap/ir"
	"github.com/dictwrap/go-dictwrap/query"
	"github.com/dictwrap/go-dictwrap/view"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		lv, ok := view.Wrap(doc, cfg.viewOpts()...).(*view.ListView)
		if !ok {
			return fmt.Errorf("list requires a sequence document, %s is %s", arg, doc.Type)
		}
		out := doc
		if cfg.Where != "" {
			idxs, err := query.Select(lv, cfg.Where)
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", arg, err)
			}
			vals := make([]*ir.Node, 0, len(idxs))
			for _, i := range idxs {
				vals = append(vals, doc.Values[i])
			}
			out = &ir.Node{Type: ir.ArrayType, Values: vals}
		}
		if err := writeNode(cfg.MainConfig, cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func queryRun(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		dv, ok := view.Wrap(doc, cfg.viewOpts()...).(*view.DictView)
		if !ok {
			return fmt.Errorf("query requires an object document, %s is %s", arg, doc.Type)
		}
		res, err := query.Eval(dv, src)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		node, err := gomap.ToIR(res)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}
