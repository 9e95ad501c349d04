package main

import (
	"fmt"

	"github.com/dictwrap/go-dictwrap/ir"
	"github.com/dictwrap/go-dictwrap/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two documents", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Fields {
		return fieldsDiff(cfg, cc, from, to)
	}
	text, err := libdiff.Diff(from, to)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte(text))
	return err
}

func fieldsDiff(cfg *DiffConfig, cc *cli.Context, from, to *ir.Node) error {
	if from.Type != ir.ObjectType || to.Type != ir.ObjectType {
		return fmt.Errorf("%w: -fields requires object documents", cli.ErrUsage)
	}
	fd := libdiff.DiffFields(from, to)
	for _, f := range fd.Removed {
		fmt.Fprintf(cc.Out, "- %s\n", f)
	}
	for _, f := range fd.Added {
		fmt.Fprintf(cc.Out, "+ %s\n", f)
	}
	for _, f := range fd.Changed {
		fmt.Fprintf(cc.Out, "~ %s\n", f)
	}
	return nil
}
