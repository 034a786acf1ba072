package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/victor-iyi/sage"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	b, err := cfg.readDoc(cc, args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	d := sage.Diff(a, b)
	if d == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
