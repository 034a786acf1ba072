package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/victor-iyi/sage/dtype"
	"github.com/victor-iyi/sage/encode"
	"github.com/victor-iyi/sage/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Precise bool `cli:"name=precise desc='keep number literals verbatim'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	return []parse.Option{
		parse.ArbitraryPrecision(cfg.Precise),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Wire(cfg.WireOut),
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

func readDocBytes(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func (cfg *MainConfig) readDoc(cc *cli.Context, path string) (dtype.Value, error) {
	d, err := readDocBytes(cc, path)
	if err != nil {
		return dtype.Null(), err
	}
	return parse.Parse(d, cfg.parseOpts()...)
}

func (cfg *MainConfig) writeDoc(cc *cli.Context, v dtype.Value) error {
	if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err := io.WriteString(cc.Out, "\n")
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Raw bool `cli:"name=raw desc='print the addressed text verbatim'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge  bool `cli:"name=m desc='apply as an RFC 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	From string `cli:"name=from desc='input format: json, yaml' default=json"`
	To   string `cli:"name=to desc='output format: json, yaml' default=json"`

	Convert *cli.Command
}
