package main

import (
	"fmt"
	"os"

	"github.com/dictwrap/go-dictwrap/patch"

	"github.com/scott-cotton/cli"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.String && cfg.File {
		return fmt.Errorf("%w: -s and -f are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patchJSON, err := patchBytes(cfg, args[0])
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := patch.Apply(doc, patchJSON); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}

// patchBytes resolves the patch argument: -s forces a literal, -f forces a
// file, otherwise an existing file wins over a literal.
func patchBytes(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := os.ReadFile(arg)
	if err == nil {
		return d, nil
	}
	if cfg.File {
		return nil, fmt.Errorf("error reading patch %s: %w", arg, err)
	}
	return []byte(arg), nil
}
