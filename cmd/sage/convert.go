package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/victor-iyi/sage/dtype"
	"github.com/victor-iyi/sage/gomap"
	"github.com/victor-iyi/sage/parse"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := checkFormat(cfg.From); err != nil {
		return err
	}
	if err := checkFormat(cfg.To); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := convertFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func checkFormat(f string) error {
	switch f {
	case "json", "yaml":
		return nil
	}
	return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, f)
}

func convertFile(cfg *ConvertConfig, cc *cli.Context, file string) error {
	d, err := readDocBytes(cc, file)
	if err != nil {
		return err
	}
	var doc dtype.Value
	switch cfg.From {
	case "yaml":
		var y any
		if err := yaml.Unmarshal(d, &y); err != nil {
			return fmt.Errorf("error decoding yaml: %w", err)
		}
		doc, err = gomap.To(y)
		if err != nil {
			return err
		}
	default:
		doc, err = parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
	}
	if cfg.To == "yaml" {
		var y any
		if err := gomap.From(doc, &y); err != nil {
			return err
		}
		out, err := yaml.Marshal(y)
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = cc.Out.Write(out)
		return err
	}
	return cfg.writeDoc(cc, doc)
}
