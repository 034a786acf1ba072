package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/victor-iyi/sage"
	"github.com/victor-iyi/sage/dtype"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var pd []byte
	if cfg.String {
		pd = []byte(args[0])
	} else {
		pd, err = readDocBytes(cc, args[0])
		if err != nil {
			return fmt.Errorf("error reading patch %s: %w", args[0], err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := cfg.readDoc(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		var res dtype.Value
		if cfg.Merge {
			res, err = sage.MergePatch(doc, pd)
		} else {
			res, err = sage.Patch(doc, pd)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := cfg.writeDoc(cc, res); err != nil {
			return err
		}
	}
	return nil
}
