// Package eval runs expressions against a document.
//
// The document is exposed to the expression as its environment, so object
// keys are reachable as plain identifiers. A handful of builtin functions
// give access to the document by pointer and to environment variables.
package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"

	"github.com/victor-iyi/sage/dtype"
	"github.com/victor-iyi/sage/gomap"
)

func exprOpts(doc *dtype.Value, env any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("pointer", func(params ...any) (any, error) {
			path := params[0].(string)
			res := doc.Pointer(path)
			if res == nil {
				return nil, fmt.Errorf("no value at %q", path)
			}
			var out any
			if err := gomap.From(*res, &out); err != nil {
				return nil, err
			}
			return out, nil
		},
			new(func(string) any)),
		expr.Function("kind", func(params ...any) (any, error) {
			path := params[0].(string)
			res := doc.Pointer(path)
			if res == nil {
				return nil, fmt.Errorf("no value at %q", path)
			}
			return res.Kind().String(), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Eval compiles and runs src against doc, returning the result as a value.
func Eval(src string, doc dtype.Value) (dtype.Value, error) {
	var env any
	if err := gomap.From(doc, &env); err != nil {
		return dtype.Null(), err
	}
	if _, ok := env.(map[string]any); !ok {
		// expr requires a map environment; non-object documents are
		// reachable through pointer("") only.
		env = map[string]any{}
	}
	prog, err := expr.Compile(src, exprOpts(&doc, env)...)
	if err != nil {
		return dtype.Null(), fmt.Errorf("compiling %q: %w", src, err)
	}
	res, err := expr.Run(prog, env)
	if err != nil {
		return dtype.Null(), fmt.Errorf("evaluating %q: %w", src, err)
	}
	return gomap.To(res)
}
