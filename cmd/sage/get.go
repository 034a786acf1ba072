package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/victor-iyi/sage/dtype"
	"github.com/victor-iyi/sage/parse"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a JSON pointer", cli.ErrUsage)
	}
	pointer := args[0]
	if _, ok := dtype.PointerSegments(pointer); !ok {
		return fmt.Errorf("%w: invalid pointer %q", cli.ErrUsage, pointer)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := getFile(cfg, cc, file, pointer); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, pointer, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, pointer string) error {
	if cfg.Raw {
		d, err := readDocBytes(cc, file)
		if err != nil {
			return err
		}
		raw, err := parse.Capture(d, pointer)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cc.Out, raw.JSON()+"\n")
		return err
	}
	doc, err := cfg.readDoc(cc, file)
	if err != nil {
		return err
	}
	res := doc.Pointer(pointer)
	if res == nil {
		return fmt.Errorf("no value at %q", pointer)
	}
	return cfg.writeDoc(cc, *res)
}
