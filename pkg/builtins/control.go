package builtins

import (
	"os"

	"github.com/theory-lisp/tlisp/internal/value"
	"github.com/theory-lisp/tlisp/pkg/lexer"
	"github.com/theory-lisp/tlisp/pkg/parser"
)

// registerControl wires `error exit eval defined?`.
func (r *Registry) registerControl() {
	r.register("error", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("error", 1, len(args)), nil
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return value.NewError("%s", args[0].String()), nil
		}
		return value.NewError("%s", s.Raw()), nil
	})

	r.register("exit", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		code := 0
		if len(args) == 1 {
			c, ok := args[0].(value.Int)
			if !ok {
				return value.NewError("exit: not an integer: %s", args[0].String()), nil
			}
			code = int(c)
		} else if len(args) > 1 {
			return arityError("exit", 1, len(args)), nil
		}
		os.Exit(code)
		return value.Void{}, nil
	})

	// eval parses its string argument as Theory Lisp source and interprets
	// it in the caller's environment, grounding spec.md §8's round-trip
	// property `parse(scan(to_string(v))) -> interpret(expr, env) == v`.
	r.register("eval", func(args []value.Value, interp Interp, env *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("eval", 1, len(args)), nil
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return value.NewError("eval: not a string: %s", args[0].String()), nil
		}
		p := parser.New(lexer.New(s.Raw()))
		node, perr := p.Parse()
		if perr != nil {
			return value.NewError("eval: %s", perr), nil
		}
		return interp.Eval(node, env)
	})

	r.register("defined?", func(args []value.Value, _ Interp, env *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("defined?", 1, len(args)), nil
		}
		name, ok := args[0].(value.Str)
		if !ok {
			return value.NewError("defined?: not a string: %s", args[0].String()), nil
		}
		_, found := env.Get(name.Raw())
		return value.Bool(found), nil
	})
}
