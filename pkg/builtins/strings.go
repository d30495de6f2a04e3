package builtins

import "github.com/theory-lisp/tlisp/internal/value"

// registerStrings wires the string-manipulation procedures of spec.md §6
// (`strlen strcat charat substr strcar strcdr`). Strings are immutable Go
// strings (value.Str) throughout, so these are thin wrappers over slicing
// rather than anything stateful. strcar/strcdr mirror cons-pair car/cdr for
// strings: the first character and the remainder, respectively.
func (r *Registry) registerStrings() {
	r.register("strlen", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		s, err := wantStr("strlen", args)
		if err != nil {
			return err, nil
		}
		return value.Int(len(s.Raw())), nil
	})

	r.register("strcat", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		out := ""
		for _, a := range args {
			s, ok := a.(value.Str)
			if !ok {
				return value.NewError("strcat: not a string: %s", a.String()), nil
			}
			out += s.Raw()
		}
		return value.Str(out), nil
	})

	r.register("charat", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 2 {
			return arityError("charat", 2, len(args)), nil
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return value.NewError("charat: not a string: %s", args[0].String()), nil
		}
		idx, ok := args[1].(value.Int)
		if !ok {
			return value.NewError("charat: index must be an integer"), nil
		}
		raw := s.Raw()
		if idx < 0 || int(idx) >= len(raw) {
			return value.NewError("charat: index out of range"), nil
		}
		return value.Str(raw[idx : idx+1]), nil
	})

	r.register("substr", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 3 {
			return arityError("substr", 3, len(args)), nil
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return value.NewError("substr: not a string: %s", args[0].String()), nil
		}
		start, ok1 := args[1].(value.Int)
		length, ok2 := args[2].(value.Int)
		if !ok1 || !ok2 {
			return value.NewError("substr: bounds must be integers"), nil
		}
		raw := s.Raw()
		end := start + length
		if start < 0 || length < 0 || end > value.Int(len(raw)) {
			return value.NewError("substr: index out of range"), nil
		}
		return value.Str(raw[start:end]), nil
	})

	r.register("strcar", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		s, err := wantStr("strcar", args)
		if err != nil {
			return err, nil
		}
		raw := s.Raw()
		if len(raw) == 0 {
			return value.NewError("strcar: empty string"), nil
		}
		return value.Str(raw[:1]), nil
	})

	r.register("strcdr", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		s, err := wantStr("strcdr", args)
		if err != nil {
			return err, nil
		}
		raw := s.Raw()
		if len(raw) == 0 {
			return value.NewError("strcdr: empty string"), nil
		}
		return value.Str(raw[1:]), nil
	})
}

func wantStr(name string, args []value.Value) (value.Str, value.Value) {
	if len(args) != 1 {
		return "", arityError(name, 1, len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return "", value.NewError("%s: not a string: %s", name, args[0].String())
	}
	return s, nil
}
