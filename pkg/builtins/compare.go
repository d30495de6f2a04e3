package builtins

import "github.com/theory-lisp/tlisp/internal/value"

// registerCompare wires `=` (structural/numeric equality) and the four
// numeric relational operators, all folded pairwise left to right so that
// (< 1 2 3) checks every adjacent pair, not just the first and last.
func (r *Registry) registerCompare() {
	r.register("=", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) < 2 {
			return arityError("=", 2, len(args)), nil
		}
		for i := 1; i < len(args); i++ {
			if !args[i-1].Equals(args[i]) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	})

	r.register("<", relationalFold("<", func(a, b value.Value) value.Value { return value.Less(a, b) }))
	r.register(">", relationalFold(">", func(a, b value.Value) value.Value { return value.Less(b, a) }))
	r.register("<=", relationalFold("<=", func(a, b value.Value) value.Value {
		lt := value.Less(a, b)
		if value.IsError(lt) {
			return lt
		}
		if bool(lt.(value.Bool)) {
			return value.Bool(true)
		}
		return value.Bool(a.Equals(b))
	}))
	r.register(">=", relationalFold(">=", func(a, b value.Value) value.Value {
		gt := value.Less(b, a)
		if value.IsError(gt) {
			return gt
		}
		if bool(gt.(value.Bool)) {
			return value.Bool(true)
		}
		return value.Bool(a.Equals(b))
	}))
}

func relationalFold(name string, cmp func(a, b value.Value) value.Value) Func {
	return func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) < 2 {
			return arityError(name, 2, len(args)), nil
		}
		for i := 1; i < len(args); i++ {
			res := cmp(args[i-1], args[i])
			if value.IsError(res) {
				return res, nil
			}
			if !bool(res.(value.Bool)) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	}
}
