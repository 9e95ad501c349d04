package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dictwrap/go-dictwrap/encode"
	"github.com/dictwrap/go-dictwrap/format"
	"github.com/dictwrap/go-dictwrap/parse"
	"github.com/dictwrap/go-dictwrap/view"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Strict bool `cli:"name=strict desc='field writes must keep the stored kind'"`
	RO     bool `cli:"name=ro desc='open documents read-only'"`

	Prefixes []string

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) prefixOpt(_ *cli.Context, a string) (any, error) {
	cfg.Prefixes = append(cfg.Prefixes, a)
	return a, nil
}

func (cfg *MainConfig) declaredInFormat() (format.Format, bool) {
	if cfg.InFormat != nil {
		return *cfg.InFormat, true
	}
	switch {
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return 0, false
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if f, ok := cfg.declaredInFormat(); ok {
		return []parse.ParseOption{parse.ParseFormat(f)}
	}
	return nil
}

// parseOptsFor is parseOpts plus a file suffix fallback: "doc.json" is
// declared json without any flag.
func (cfg *MainConfig) parseOptsFor(arg string) []parse.ParseOption {
	if f, ok := cfg.declaredInFormat(); ok {
		return []parse.ParseOption{parse.ParseFormat(f)}
	}
	for _, f := range format.AllFormats() {
		if strings.HasSuffix(arg, f.Suffix()) {
			return []parse.ParseOption{parse.ParseFormat(f)}
		}
	}
	return nil
}

func (cfg *MainConfig) viewOpts() []view.Option {
	opts := []view.Option{
		view.Strict(cfg.Strict),
		view.Mutable(!cfg.RO),
	}
	if len(cfg.Prefixes) > 0 {
		opts = append(opts, view.KeyPrefixes(cfg.Prefixes...))
	}
	return opts
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodePretty(!cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type AddConfig struct {
	*MainConfig

	Add *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type ListConfig struct {
	*MainConfig

	Where string `cli:"name=w desc='keep elements for which this expression is true'"`

	List *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Fields bool `cli:"name=fields desc='summarize field changes instead of a line diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}
