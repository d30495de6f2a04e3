// Package automaton implements Theory Lisp's multi-tape automaton engine
// (spec.md §3.3, §4.6): running a first-class Automaton expression against
// caller-supplied tapes and producing an (exit_code . tapes') result pair.
package automaton

import (
	"fmt"

	"github.com/theory-lisp/tlisp/internal/ast"
	"github.com/theory-lisp/tlisp/internal/value"
)

// Interp is the callback surface Run needs back into the evaluator — the
// same shape as pkg/builtins.Interp, declared separately so this package
// depends only on internal/ast and internal/value, never on pkg/eval.
type Interp interface {
	Eval(node ast.Node, env *value.Env) (value.Value, error)
	Call(proc value.Value, args []value.Value, env *value.Env) (value.Value, error)
}

// Compiled is the automaton's one-shot compiled form: next-state indices
// are already resolved by the parser, so compilation here just validates
// that every Continue transition targets an in-bounds state, satisfying
// spec.md §4.6's "validates ... no Continue transition refers to an
// unknown state" without needing to re-derive anything the parser already
// computed.
type Compiled struct {
	States []ast.State
}

func compile(a *ast.Automaton) (*Compiled, error) {
	for si, st := range a.States {
		for _, tr := range st.Transitions {
			if tr.Action == ast.ActionContinue &&
				(tr.NextStateIndex < 0 || tr.NextStateIndex >= len(a.States)) {
				return nil, fmt.Errorf("automaton: state %d: transition targets unknown state %d", si, tr.NextStateIndex)
			}
		}
	}
	return &Compiled{States: a.States}, nil
}

// tape is the runtime mutable form of a (head . contents) argument pair.
type tape struct {
	head     int
	contents []value.Value
}

func tapeFromValue(v value.Value) (*tape, error) {
	pair, ok := v.(*value.Pair)
	if !ok {
		return nil, fmt.Errorf("not a (head . contents) pair: %s", v.String())
	}
	head, ok := pair.First.(value.Int)
	if !ok {
		return nil, fmt.Errorf("tape head is not an integer: %s", pair.First.String())
	}
	contents, ok := value.ListToSlice(pair.Second)
	if !ok {
		return nil, fmt.Errorf("tape contents is not a proper list: %s", pair.Second.String())
	}
	return &tape{head: int(head), contents: contents}, nil
}

func (t *tape) toValue() value.Value {
	return value.NewPair(value.Int(t.head), value.SliceToList(t.contents))
}

// symbol returns the value under the head, Null if the head has drifted
// out of bounds (never produced by MoveRight, which extends the tape, but
// guarded defensively since the evaluated head-write expression is
// arbitrary user code).
func (t *tape) symbol() value.Value {
	if t.head < 0 || t.head >= len(t.contents) {
		return value.Null{}
	}
	return t.contents[t.head]
}

// Run invokes the automaton node with args as its tape arguments,
// compiling it on first use (cached in node.Compiled), and executes the
// run loop of spec.md §4.6 to completion, returning the final
// (exit_code . tapes') result pair.
func Run(node *ast.Automaton, env *value.Env, args []value.Value, interp Interp) (value.Value, error) {
	if len(args) != node.Tapes {
		return value.NewError("automaton expects %d tape argument(s), got %d", node.Tapes, len(args)), nil
	}

	compiled, ok := node.Compiled.(*Compiled)
	if !ok {
		c, err := compile(node)
		if err != nil {
			return value.NewError("%s", err), nil
		}
		node.Compiled = c
		compiled = c
	}

	tapes := make([]*tape, len(args))
	for i, a := range args {
		t, err := tapeFromValue(a)
		if err != nil {
			return value.NewError("automaton: tape %d: %s", i, err), nil
		}
		tapes[i] = t
	}

	stateIndex := 0
	for {
		if stateIndex < 0 || stateIndex >= len(compiled.States) {
			return wrapResult(0, tapes), nil
		}
		state := compiled.States[stateIndex]

		if state.BaseMachine != nil {
			result, err := evalAndCall(interp, env, state.BaseMachine, tapeArgs(tapes))
			if err != nil {
				return nil, err
			}
			if value.IsError(result) {
				return result, nil
			}
			// An automaton base machine returns its (exit_code . tapes')
			// pair; its exit code is the pair's first element.
			if pair, isPair := result.(*value.Pair); isPair {
				result = pair.First
			}
			if code, ok := result.(value.Int); ok && code != 0 {
				return wrapResult(int(code), tapes), nil
			}
		}

		symbols := make([]value.Value, len(tapes))
		for i, t := range tapes {
			symbols[i] = t.symbol()
		}

		if state.Output != nil {
			if _, err := evalAndCall(interp, env, state.Output, symbols); err != nil {
				return nil, err
			}
		}

		if len(state.Transitions) == 0 {
			stateIndex++
			continue
		}

		fired := false
		for _, tr := range state.Transitions {
			condVal, err := evalAndCall(interp, env, tr.Condition, symbols)
			if err != nil {
				return nil, err
			}
			if value.IsError(condVal) {
				return condVal, nil
			}
			cond, ok := condVal.(value.Bool)
			if !ok {
				return value.NewError("automaton: transition condition is not a boolean"), nil
			}
			if !bool(cond) {
				continue
			}

			if errVal, err := applyHeadOps(tr.HeadOps, tapes, env, interp); err != nil {
				return nil, err
			} else if errVal != nil {
				return errVal, nil
			}

			if tr.Output != nil {
				if _, err := evalAndCall(interp, env, tr.Output, symbols); err != nil {
					return nil, err
				}
			}

			fired = true
			switch tr.Action {
			case ast.ActionHalt:
				return wrapResult(0, tapes), nil
			case ast.ActionAccept:
				return wrapResult(1, tapes), nil
			case ast.ActionReject:
				return wrapResult(-1, tapes), nil
			case ast.ActionContinue:
				stateIndex = tr.NextStateIndex
			}
			break
		}
		if !fired {
			return value.NewError("automaton: no transition matched in state %d", stateIndex), nil
		}
	}
}

func tapeArgs(tapes []*tape) []value.Value {
	out := make([]value.Value, len(tapes))
	for i, t := range tapes {
		out[i] = t.toValue()
	}
	return out
}

// evalAndCall evaluates expr to a Procedure and invokes it with args — the
// "evaluate to a Procedure and call it" step repeated throughout §4.6 for
// base_machine/output/condition expressions.
func evalAndCall(interp Interp, env *value.Env, expr ast.Node, args []value.Value) (value.Value, error) {
	proc, err := interp.Eval(expr, env)
	if err != nil {
		return nil, err
	}
	if value.IsError(proc) {
		return proc, nil
	}
	return interp.Call(proc, args, env)
}

// applyHeadOps applies one state transition's per-tape head operations, in
// tape order, per spec.md §4.6.1 and §9's "left-end sentinel quirk": a
// tape whose head is at 0 snaps to 1 and ignores its configured operation
// for this step, but — preserving the source's observable behavior,
// `apply_head_operations` in automaton.c breaks rather than continues —
// every subsequent tape in this same transition is left untouched this
// step too, not just the sentinel tape itself.
func applyHeadOps(ops []ast.HeadOp, tapes []*tape, env *value.Env, interp Interp) (value.Value, error) {
	for i, t := range tapes {
		if t.head == 0 {
			t.head = 1
			break
		}
		var op ast.HeadOp
		if i < len(ops) {
			op = ops[i]
		} else {
			op = ast.HeadOp{Kind: ast.HeadNop}
		}
		switch op.Kind {
		case ast.HeadMoveLeft:
			t.head--
		case ast.HeadMoveRight:
			t.head++
			if t.head >= len(t.contents) {
				t.contents = append(t.contents, value.Null{})
			}
		case ast.HeadWrite:
			v, err := interp.Eval(op.WriteValue, env)
			if err != nil {
				return nil, err
			}
			if value.IsError(v) {
				return v, nil
			}
			t.contents[t.head] = v
		case ast.HeadNop:
		}
	}
	return nil, nil
}

// wrapResult builds the final (exit_code . tapes') pair, tapes' in reverse
// insertion order per spec.md §4.6's bit-exact contract with the source.
func wrapResult(code int, tapes []*tape) value.Value {
	vals := tapeArgs(tapes)
	reversed := make([]value.Value, len(vals))
	for i, v := range vals {
		reversed[len(vals)-1-i] = v
	}
	return value.NewPair(value.Int(code), value.SliceToList(reversed))
}
