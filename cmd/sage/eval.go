package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/victor-iyi/sage/eval"
)

func sageEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := cfg.readDoc(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		res, err := eval.Eval(src, doc)
		if err != nil {
			return err
		}
		if err := cfg.writeDoc(cc, res); err != nil {
			return err
		}
	}
	return nil
}
