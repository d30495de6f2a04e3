package builtins

import "github.com/theory-lisp/tlisp/internal/value"

// registerArith wires the numeric tower's variadic operators, each a
// left-to-right fold over value.Add/Sub/Mul/Div (internal/value/value.go), which
// already implement the Integer/Rational/Real promotion lattice.
func (r *Registry) registerArith() {
	r.register("+", variadicFold("+", value.Int(0), value.Add))
	r.register("*", variadicFold("*", value.Int(1), value.Mul))

	r.register("-", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) == 0 {
			return arityError("-", 1, 0), nil
		}
		if len(args) == 1 {
			return value.Sub(value.Int(0), args[0]), nil
		}
		acc := args[0]
		for _, v := range args[1:] {
			acc = value.Sub(acc, v)
			if value.IsError(acc) {
				return acc, nil
			}
		}
		return acc, nil
	})

	r.register("/", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) == 0 {
			return arityError("/", 1, 0), nil
		}
		if len(args) == 1 {
			return value.Div(value.Int(1), args[0]), nil
		}
		acc := args[0]
		for _, v := range args[1:] {
			acc = value.Div(acc, v)
			if value.IsError(acc) {
				return acc, nil
			}
		}
		return acc, nil
	})
}

func variadicFold(name string, identity value.Value, op func(a, b value.Value) value.Value) Func {
	return func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) == 0 {
			return identity, nil
		}
		acc := args[0]
		if !value.IsNumber(acc) {
			return value.NewError("%s operand is not a number", name), nil
		}
		for _, v := range args[1:] {
			acc = op(acc, v)
			if value.IsError(acc) {
				return acc, nil
			}
		}
		return acc, nil
	}
}
