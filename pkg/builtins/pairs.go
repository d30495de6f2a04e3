package builtins

import "github.com/theory-lisp/tlisp/internal/value"

// registerPairs wires cons-cell construction/access and the list builder.
func (r *Registry) registerPairs() {
	r.register("cons", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 2 {
			return arityError("cons", 2, len(args)), nil
		}
		return value.NewPair(args[0], args[1]), nil
	})

	r.register("car", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("car", 1, len(args)), nil
		}
		p, ok := args[0].(*value.Pair)
		if !ok {
			return value.NewError("car argument is not a pair"), nil
		}
		return p.First, nil
	})

	r.register("cdr", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("cdr", 1, len(args)), nil
		}
		p, ok := args[0].(*value.Pair)
		if !ok {
			return value.NewError("cdr argument is not a pair"), nil
		}
		return p.Second, nil
	})

	r.register("list", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		return value.SliceToList(args), nil
	})

	r.register("null?", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("null?", 1, len(args)), nil
		}
		return value.Bool(args[0].Type() == value.TypeNull), nil
	})
}
