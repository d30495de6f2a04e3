package builtins

import (
	"os"
	"path/filepath"

	"github.com/theory-lisp/tlisp/internal/value"
	"github.com/theory-lisp/tlisp/pkg/lexer"
	"github.com/theory-lisp/tlisp/pkg/parser"
)

// registerInclude wires `include`: search the literal path first, then
// $LIBRARY_DIR/<name> (set via SetLibraryDir), and guard against
// re-running a file already included via a global `<filename>_included`
// Void binding (spec.md §6).
func (r *Registry) registerInclude() {
	r.register("include", func(args []value.Value, interp Interp, env *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("include", 1, len(args)), nil
		}
		name, ok := args[0].(value.Str)
		if !ok {
			return value.NewError("include: not a string: %s", args[0].String()), nil
		}

		path := name.Raw()
		guard := path + "_included"
		if _, defined := env.Global().Get(guard); defined || r.includeGuards[guard] {
			return value.Void{}, nil
		}

		contents, err := os.ReadFile(path)
		if err != nil && r.libraryDir != "" {
			contents, err = os.ReadFile(filepath.Join(r.libraryDir, path))
		}
		if err != nil {
			return value.NewError("include: cannot read %q: %s", path, err), nil
		}

		p := parser.New(lexer.New(string(contents)))
		nodes, perr := p.ParseProgram()
		if perr != nil {
			return value.NewError("include: %s: %s", path, perr), nil
		}

		global := env.Global()
		var result value.Value = value.Void{}
		for _, n := range nodes {
			result, err = interp.Eval(n, global)
			if err != nil {
				return nil, err
			}
			if value.IsError(result) {
				return result, nil
			}
		}

		r.includeGuards[guard] = true
		global.DefineGlobal(guard, value.Void{})
		return result, nil
	})
}
