package main

import (
	"github.com/scott-cotton/cli"
)

func viewRun(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}
