package builtins

import "github.com/theory-lisp/tlisp/internal/value"

// registerLogic wires the boolean connectives. `and`/`or`/`xor` are
// variadic folds over value.And/Or/Xor; `not` is strictly unary.
func (r *Registry) registerLogic() {
	r.register("and", booleanFold("and", value.Bool(true), value.And))
	r.register("or", booleanFold("or", value.Bool(false), value.Or))
	r.register("xor", booleanFold("xor", value.Bool(false), value.Xor))

	r.register("not", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("not", 1, len(args)), nil
		}
		return value.Not(args[0]), nil
	})
}

func booleanFold(name string, identity value.Value, op func(a, b value.Value) value.Value) Func {
	return func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) == 0 {
			return identity, nil
		}
		acc := args[0]
		if _, ok := acc.(value.Bool); !ok {
			return value.NewError("%s operand is not a boolean", name), nil
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
