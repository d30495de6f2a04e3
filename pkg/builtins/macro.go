package builtins

import (
	"github.com/theory-lisp/tlisp/internal/value"
	"github.com/theory-lisp/tlisp/pkg/lexer"
	"github.com/theory-lisp/tlisp/pkg/parser"
)

// registerMacro wires the macro-time token-stream builtins: `peek-tkn`,
// `pop-tkn`, and `parse`. Each takes an Internal value wrapping the live
// *parser.Parser a reader macro is reading from (spec.md §6, §9's note
// that Internal "carries a &mut TokenStream scoped to the macro expansion
// window; forbid escape"). `parse` given a string parses one expression
// from it and evaluates it in the caller's environment; given an Internal,
// it parses and evaluates the next full expression off that stream,
// leaving the stream positioned just past the consumed tokens. None of
// these builtins creates an Internal: they only accept one from a caller.
func (r *Registry) registerMacro() {
	r.register("peek-tkn", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		p, err := wantParser("peek-tkn", args)
		if err != nil {
			return err, nil
		}
		tok := p.CurrentToken()
		if tok.Type == lexer.TOKEN_EOF {
			return value.Null{}, nil
		}
		return value.Str(tok.Literal), nil
	})

	r.register("pop-tkn", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		p, err := wantParser("pop-tkn", args)
		if err != nil {
			return err, nil
		}
		tok := p.CurrentToken()
		if tok.Type == lexer.TOKEN_EOF {
			return value.Null{}, nil
		}
		p.Advance()
		return value.Str(tok.Literal), nil
	})

	r.register("parse", func(args []value.Value, interp Interp, env *value.Env) (value.Value, error) {
		if len(args) != 1 {
			return arityError("parse", 1, len(args)), nil
		}
		switch a := args[0].(type) {
		case value.Str:
			p := parser.New(lexer.New(a.Raw()))
			node, perr := p.Parse()
			if perr != nil {
				return value.NewError("parse: %s", perr), nil
			}
			return interp.Eval(node, env)
		case *value.Internal:
			p, ok := a.Reader.(*parser.Parser)
			if !ok {
				return value.NewError("parse: internal value is not a token stream"), nil
			}
			node, perr := p.Parse()
			if perr != nil {
				return value.NewError("parse: %s", perr), nil
			}
			return interp.Eval(node, env)
		default:
			return value.NewError("parse: expected string or internal, got %s", args[0].String()), nil
		}
	})
}

func wantParser(name string, args []value.Value) (*parser.Parser, value.Value) {
	if len(args) != 1 {
		return nil, arityError(name, 1, len(args))
	}
	internal, ok := args[0].(*value.Internal)
	if !ok {
		return nil, value.NewError("%s: not an internal value: %s", name, args[0].String())
	}
	p, ok := internal.Reader.(*parser.Parser)
	if !ok {
		return nil, value.NewError("%s: internal value is not a token stream", name)
	}
	return p, nil
}
