package builtins

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/theory-lisp/tlisp/internal/value"
)

// registerIO wires `system display getchar putchar current-seconds`.
func (r *Registry) registerIO() {
	r.register("display", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		for _, a := range args {
			if s, ok := a.(value.Str); ok {
				fmt.Fprint(r.stdout, s.Raw())
			} else {
				fmt.Fprint(r.stdout, a.String())
			}
		}
		return value.Void{}, nil
	})

	r.register("system", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("system", 1, len(args)), nil
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return value.NewError("system: not a string: %s", args[0].String()), nil
		}
		cmd := exec.Command("/bin/sh", "-c", s.Raw())
		cmd.Stdout = r.stdout
		if err := cmd.Run(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				return value.Int(exitErr.ExitCode()), nil
			}
			return value.NewError("system: %s", err), nil
		}
		return value.Int(0), nil
	})

	r.register("getchar", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 0 {
			return arityError("getchar", 0, len(args)), nil
		}
		b, err := r.stdin.ReadByte()
		if err != nil {
			return value.Int(-1), nil
		}
		return value.Int(b), nil
	})

	r.register("putchar", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("putchar", 1, len(args)), nil
		}
		c, ok := args[0].(value.Int)
		if !ok {
			return value.NewError("putchar: not an integer: %s", args[0].String()), nil
		}
		fmt.Fprint(r.stdout, string(rune(c)))
		return c, nil
	})

	r.register("current-seconds", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 0 {
			return arityError("current-seconds", 0, len(args)), nil
		}
		return value.Int(time.Now().Unix()), nil
	})
}
