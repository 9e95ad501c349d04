package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dictwrap/go-dictwrap/encode"
	"github.com/dictwrap/go-dictwrap/ir"
	"github.com/dictwrap/go-dictwrap/parse"
)

// readDoc parses the document named by arg, with "-" meaning stdin.
func readDoc(cfg *MainConfig, arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOptsFor(arg)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// argsOrStdin defaults the file list to stdin.
func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
