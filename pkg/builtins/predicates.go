package builtins

import "github.com/theory-lisp/tlisp/internal/value"

// registerPredicates wires the one-argument type-test procedures of
// spec.md §6, each checking a single Value.Type() tag. "symbol?" is mapped
// onto TypeString: this value model has no separate Symbol runtime type
// (spec.md's value catalog in §3.1 doesn't list one either), so a symbol
// is represented the same way other Lisp-family interpreters in the pack
// represent it absent quoting — an ordinary string.
func (r *Registry) registerPredicates() {
	type_ := func(name string, want value.Type) {
		r.register(name, func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
			if len(args) != 1 {
				return arityError(name, 1, len(args)), nil
			}
			return value.Bool(args[0].Type() == want), nil
		})
	}

	type_("void?", value.TypeVoid)
	type_("boolean?", value.TypeBool)
	type_("integer?", value.TypeInt)
	type_("real?", value.TypeReal)
	type_("symbol?", value.TypeString)
	type_("pair?", value.TypePair)
	type_("procedure?", value.TypeProcedure)

	r.register("number?", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("number?", 1, len(args)), nil
		}
		return value.Bool(value.IsNumber(args[0])), nil
	})
}
