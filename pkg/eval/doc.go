// Package eval provides the expression evaluator for Theory Lisp.
//
// Evaluator.Eval is the single type-switch dispatcher over internal/ast
// node types; ast nodes carry no behavior of their own, matching the
// teacher interpreter's evalExpr shape. Evaluator.Call is the one
// user-facing invocation path for every callable value — a Builtin
// resolved by name through pkg/builtins' registry, or a Procedure
// wrapping a Lambda, PNBlock, or Automaton node.
//
// pkg/builtins and pkg/automaton each declare a local Interp interface
// (Eval + Call) that Evaluator satisfies; they depend on that interface
// rather than importing this package, so builtins like eval and automaton
// transitions can call back into the evaluator without an import cycle.
//
// Usage:
//
//	l := lexer.New(`(let ((x 42)) (+ x 8))`)
//	p := parser.New(l)
//	node, err := p.Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	e := eval.New()
//	result, err := e.Eval(node, e.Global)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.String()) // 50
package eval
