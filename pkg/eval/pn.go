package eval

import (
	"fmt"

	"github.com/theory-lisp/tlisp/internal/ast"
	"github.com/theory-lisp/tlisp/internal/value"
)

// callPNBlock reduces a `{...}` Polish-notation block body to a single
// value, grounded on original_source/src/expressions/polish.c's
// interpret_body_expressions/interpret_body two-stack algorithm:
//
//  1. Bind the call arguments as $1, $2, ... in a fresh child of the
//     block's captured environment.
//  2. Evaluate every body expression, left to right, in that frame —
//     this is the "waiting" stack, populated in body order.
//  3. Reduce right to left: a non-callable result is pushed to a
//     "computed" stack as-is. A callable result (bare procedure
//     reference, e.g. `+` inside `{+ $1 $2}`) consumes its own arity's
//     worth of operands — first from the positional $N variables (in
//     increasing order) for any arity not yet covered by what's on the
//     computed stack, then by popping the computed stack for the rest —
//     calls it, and pushes the result back onto computed. This lets a
//     trailing procedure omit leading operands already available as
//     $N, e.g. `{= "a"}` called with one argument compares it to "a".
//  4. The body must reduce to exactly one value on the computed stack.
func (e *Evaluator) callPNBlock(block *ast.PNBlock, closure *value.Env, args []value.Value) (value.Value, error) {
	callEnv := closure.Child()
	for i, a := range args {
		callEnv.DefineLocal(fmt.Sprintf("$%d", i+1), a)
	}

	evaluated := make([]value.Value, 0, len(block.Body))
	for _, expr := range block.Body {
		v, err := e.Eval(expr, callEnv)
		if err != nil {
			return nil, err
		}
		if value.IsError(v) {
			return v, nil
		}
		evaluated = append(evaluated, v)
	}

	var computed []value.Value
	for i := len(evaluated) - 1; i >= 0; i-- {
		item := evaluated[i]
		arity, callable := e.pnArity(item, len(computed))
		if !callable {
			computed = append(computed, item)
			continue
		}

		callArgs := make([]value.Value, arity)
		idx := 0
		for idx+len(computed) < arity {
			name := fmt.Sprintf("$%d", idx+1)
			v, ok := callEnv.Get(name)
			if !ok {
				return value.NewError("PN block: missing positional argument %s for %s", name, item.String()), nil
			}
			callArgs[idx] = v
			idx++
		}
		for ; idx < arity; idx++ {
			if len(computed) == 0 {
				return value.NewError("PN block: not enough operands for %s", item.String()), nil
			}
			last := len(computed) - 1
			callArgs[idx] = computed[last]
			computed = computed[:last]
		}

		result, err := e.Call(item, callArgs, callEnv)
		if err != nil {
			return nil, err
		}
		if value.IsError(result) {
			return result, nil
		}
		computed = append(computed, result)
	}

	switch len(computed) {
	case 0:
		return value.NewError("PN block body produced no value"), nil
	case 1:
		return computed[0], nil
	default:
		return value.NewError("Polish notation expression yields multiple values"), nil
	}
}

// pnArity reports the number of operands a value consumes when it appears
// as a callable in a PN block body, and whether it is callable at all.
// available is how many values are currently sitting on the reduction's
// computed stack, used to resolve a variadic builtin's operand count (see
// pkg/builtins/registry.go's builtinArity) to however much is actually on
// hand, matching its ordinary `(name arg...)` left-to-right fold.
func (e *Evaluator) pnArity(v value.Value, available int) (int, bool) {
	switch p := v.(type) {
	case *value.Builtin:
		n := e.registry.Arity(p.Name)
		if n < 0 {
			return available, true
		}
		return n, true
	case *value.Procedure:
		switch node := p.Node.(type) {
		case *ast.Lambda:
			if node.PNArity != 0 {
				return node.PNArity, true
			}
			return node.Arity(), true
		case *ast.PNBlock:
			return node.PNArity, true
		case *ast.Automaton:
			return node.Tapes, true
		}
	}
	return 0, false
}
