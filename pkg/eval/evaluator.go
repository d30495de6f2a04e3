package eval

import (
	"fmt"

	"github.com/theory-lisp/tlisp/internal/ast"
	"github.com/theory-lisp/tlisp/internal/value"
	"github.com/theory-lisp/tlisp/pkg/automaton"
	"github.com/theory-lisp/tlisp/pkg/builtins"
)

// Evaluator implements the tree-walking semantic engine for Theory Lisp.
// It traverses internal/ast.Node trees and computes their runtime values,
// implementing closures, the Polish-notation block engine, and multi-tape
// automaton interpretation — all dispatch lives here, in one type switch,
// the same shape as the teacher interpreter's evalExpr.
type Evaluator struct {
	Global   *value.Env
	registry *builtins.Registry
}

// New creates an Evaluator with a fresh global frame populated with every
// registered builtin.
func New() *Evaluator {
	e := &Evaluator{
		Global:   value.NewEnv(),
		registry: builtins.NewRegistry(),
	}
	for _, name := range e.registry.Names() {
		e.Global.DefineGlobal(name, &value.Builtin{Name: name})
	}
	return e
}

// SetLibraryDir sets the include-path search root forwarded to the builtin
// registry's `include`, letting the CLI point it at the source file's own
// directory.
func (e *Evaluator) SetLibraryDir(dir string) {
	e.registry.SetLibraryDir(dir)
}

// Eval evaluates node in env, dispatching on its concrete type. This is the
// single point of truth for Theory Lisp's operational semantics; internal/ast
// nodes carry no behavior of their own.
func (e *Evaluator) Eval(node ast.Node, env *value.Env) (value.Value, error) {
	switch n := node.(type) {
	case *ast.DataLiteral:
		if v, ok := n.Value.(value.Value); ok {
			return v, nil
		}
		return nil, fmt.Errorf("data literal does not carry a runtime value: %T", n.Value)

	case *ast.Identifier:
		if v, ok := env.Get(n.Name); ok {
			return v, nil
		}
		return value.NewError("Variable %s does not exist", n.Name), nil

	case *ast.If:
		return e.evalIf(n, env)

	case *ast.Cond:
		return e.evalCond(n, env)

	case *ast.Let:
		return e.evalLet(n, env)

	case *ast.Definition:
		return e.evalDefinition(n, env)

	case *ast.Set:
		return e.evalSet(n, env)

	case *ast.Lambda:
		return &value.Procedure{Node: n, Env: captureEnv(env, n.Captures), Source: n.String()}, nil

	case *ast.PNBlock:
		return &value.Procedure{Node: n, Env: captureEnv(env, n.Captures), Source: n.String()}, nil

	case *ast.Automaton:
		return &value.Procedure{Node: n, Env: captureEnv(env, n.Captures), Source: n.String()}, nil

	case *ast.Evaluation:
		return e.evalEvaluation(n, env)

	case *ast.Expanded:
		return value.NewError("%%expr is only valid as a call argument"), nil

	case *ast.TryCatch:
		return e.evalTryCatch(n, env)

	default:
		return nil, fmt.Errorf("unknown expression type: %T", node)
	}
}

// captureEnv resolves the environment a Lambda/PNBlock/Automaton closes
// over at the point it is evaluated: the names in its `[names]` bracket
// are deep-copied into a fresh root-parented frame (spec.md §4.4), via
// internal/value.Env.Snapshot. Any other free variable resolves against
// the global frame at call time; with no bracket, nothing from the
// defining scope is captured.
func captureEnv(env *value.Env, captures []string) *value.Env {
	return env.Snapshot(captures, env.Global())
}

// evalEvaluation evaluates `(proc arg...)`: the procedure position first,
// then each argument left to right, expanding %-marked cons-list arguments
// in place, then dispatches through Call.
func (e *Evaluator) evalEvaluation(n *ast.Evaluation, env *value.Env) (value.Value, error) {
	procVal, err := e.Eval(n.Proc, env)
	if err != nil {
		return nil, err
	}
	if value.IsError(procVal) {
		return procVal, nil
	}

	var args []value.Value
	for _, a := range n.Args {
		v, err := e.Eval(a.Expr, env)
		if err != nil {
			return nil, err
		}
		if value.IsError(v) {
			return v, nil
		}
		if a.Expanded {
			elems, ok := value.ListToSlice(v)
			if !ok {
				return value.NewError("%%expr argument is not a proper list"), nil
			}
			args = append(args, elems...)
			continue
		}
		args = append(args, v)
	}

	return e.Call(procVal, args, env)
}

// Call invokes proc (a Builtin, Procedure-wrapping-Lambda, Procedure-
// wrapping-PNBlock, or Procedure-wrapping-Automaton) with args. This is the
// callback surface pkg/builtins and pkg/automaton hold onto — both depend on
// this package's Evaluator type only through the Interp interface they
// declare locally, so there is no import cycle.
func (e *Evaluator) Call(proc value.Value, args []value.Value, env *value.Env) (value.Value, error) {
	switch p := proc.(type) {
	case *value.Builtin:
		fn, ok := e.registry.Get(p.Name)
		if !ok {
			return value.NewError("unknown builtin: %s", p.Name), nil
		}
		return fn(args, e, env)

	case *value.Procedure:
		switch node := p.Node.(type) {
		case *ast.Lambda:
			return e.callLambda(node, p.Env, args)
		case *ast.PNBlock:
			return e.callPNBlock(node, p.Env, args)
		case *ast.Automaton:
			return automaton.Run(node, p.Env, args, e)
		default:
			return nil, fmt.Errorf("procedure wraps unknown node type: %T", node)
		}

	default:
		return value.NewError("cannot call non-procedure value %s", proc.String()), nil
	}
}

// callLambda binds args to params (and the trailing cons-list to "va_args"
// for a variadic lambda) in a fresh child of the closure's captured
// environment, then evaluates the body there.
func (e *Evaluator) callLambda(l *ast.Lambda, closure *value.Env, args []value.Value) (value.Value, error) {
	if len(args) < len(l.Params) || (!l.Variadic && len(args) != len(l.Params)) {
		return value.NewError("lambda expects %d argument(s), got %d", len(l.Params), len(args)), nil
	}

	callEnv := closure.Child()
	for i, name := range l.Params {
		callEnv.DefineLocal(name, args[i])
	}
	if l.Variadic {
		callEnv.DefineLocal("va_args", value.SliceToList(args[len(l.Params):]))
	}

	return e.Eval(l.Body, callEnv)
}

func (e *Evaluator) evalIf(n *ast.If, env *value.Env) (value.Value, error) {
	cond, err := e.Eval(n.Cond, env)
	if err != nil {
		return nil, err
	}
	if value.IsError(cond) {
		return cond, nil
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return value.NewError("if condition is not a boolean"), nil
	}
	if bool(b) {
		return e.Eval(n.Then, env)
	}
	return e.Eval(n.Else, env)
}

func (e *Evaluator) evalCond(n *ast.Cond, env *value.Env) (value.Value, error) {
	for _, c := range n.Cases {
		test, err := e.Eval(c.Test, env)
		if err != nil {
			return nil, err
		}
		if value.IsError(test) {
			return test, nil
		}
		b, ok := test.(value.Bool)
		if !ok {
			return value.NewError("cond test is not a boolean"), nil
		}
		if bool(b) {
			return e.Eval(c.Body, env)
		}
	}
	return value.Void{}, nil
}

// evalLet creates a child frame and evaluates each binding's value
// expression sequentially in it, so later bindings see earlier ones
// (spec.md §4.2) — unlike letrec, a binding cannot see itself or later
// siblings.
func (e *Evaluator) evalLet(n *ast.Let, env *value.Env) (value.Value, error) {
	letEnv := env.Child()
	for _, b := range n.Bindings {
		v, err := e.Eval(b.Value, letEnv)
		if err != nil {
			return nil, err
		}
		if value.IsError(v) {
			return v, nil
		}
		letEnv.DefineLocal(b.Name, v)
	}
	return e.Eval(n.Body, letEnv)
}

// evalDefinition writes to the global frame: Theory Lisp's `define` is
// always a top-level/global binding, per spec.md §4.2 and
// internal/value.Env.DefineGlobal.
func (e *Evaluator) evalDefinition(n *ast.Definition, env *value.Env) (value.Value, error) {
	v, err := e.Eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	if value.IsError(v) {
		return v, nil
	}
	env.DefineGlobal(n.Name, v)
	return value.Void{}, nil
}

// evalSet writes to the current frame only — see internal/value.Env.SetLocal
// and DESIGN.md's Open Question note on `set!`'s resolution rule.
func (e *Evaluator) evalSet(n *ast.Set, env *value.Env) (value.Value, error) {
	v, err := e.Eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	if value.IsError(v) {
		return v, nil
	}
	env.SetLocal(n.Name, v)
	return value.Void{}, nil
}

// evalTryCatch evaluates Body; an Error result binds ExceptionName to a
// String of the message in a child frame and evaluates Handler there. Only
// Error values are caught — any other Go error is a genuine interpreter
// fault and propagates unchanged.
func (e *Evaluator) evalTryCatch(n *ast.TryCatch, env *value.Env) (value.Value, error) {
	v, err := e.Eval(n.Body, env)
	if err != nil {
		return nil, err
	}
	if !value.IsError(v) {
		return v, nil
	}
	handlerEnv := env.Child()
	handlerEnv.DefineLocal(n.ExceptionName, value.Str(v.(*value.ErrorVal).Message))
	return e.Eval(n.Handler, handlerEnv)
}
