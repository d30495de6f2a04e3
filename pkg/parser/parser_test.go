package parser

import (
	"testing"

	"github.com/theory-lisp/tlisp/internal/ast"
	"github.com/theory-lisp/tlisp/pkg/lexer"
)

func parse(t *testing.T, input string) ast.Node {
	t.Helper()
	p := New(lexer.New(input))
	node, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return node
}

func TestParseLiterals(t *testing.T) {
	node := parse(t, "42")
	lit, ok := node.(*ast.DataLiteral)
	if !ok {
		t.Fatalf("expected *ast.DataLiteral, got %T", node)
	}
	if lit.Value.String() != "42" {
		t.Errorf("expected 42, got %s", lit.Value.String())
	}
}

func TestParseIdentifier(t *testing.T) {
	node := parse(t, "x")
	ident, ok := node.(*ast.Identifier)
	if !ok {
		t.Fatalf("expected *ast.Identifier, got %T", node)
	}
	if ident.Name != "x" {
		t.Errorf("expected x, got %s", ident.Name)
	}
}

func TestParseEvaluation(t *testing.T) {
	node := parse(t, "(+ 1 2)")
	call, ok := node.(*ast.Evaluation)
	if !ok {
		t.Fatalf("expected *ast.Evaluation, got %T", node)
	}
	proc, ok := call.Proc.(*ast.Identifier)
	if !ok || proc.Name != "+" {
		t.Fatalf("expected proc identifier +, got %#v", call.Proc)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

func TestParseIf(t *testing.T) {
	node := parse(t, `(if (< 1 2) "yes" "no")`)
	iff, ok := node.(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", node)
	}
	if _, ok := iff.Cond.(*ast.Evaluation); !ok {
		t.Errorf("expected Cond to be an Evaluation, got %T", iff.Cond)
	}
}

func TestParseLet(t *testing.T) {
	node := parse(t, "(let ((x 1) (y 2)) (+ x y))")
	let, ok := node.(*ast.Let)
	if !ok {
		t.Fatalf("expected *ast.Let, got %T", node)
	}
	if len(let.Bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(let.Bindings))
	}
	if let.Bindings[0].Name != "x" || let.Bindings[1].Name != "y" {
		t.Errorf("unexpected binding names: %+v", let.Bindings)
	}
}

func TestParseDefineAndSet(t *testing.T) {
	def := parse(t, "(define x 5)").(*ast.Definition)
	if def.Name != "x" {
		t.Errorf("expected name x, got %s", def.Name)
	}

	set := parse(t, "(set! x 6)").(*ast.Set)
	if set.Name != "x" {
		t.Errorf("expected name x, got %s", set.Name)
	}
}

func TestParseLambdaWithCaptures(t *testing.T) {
	node := parse(t, "(lambda [y] (x) (+ x y))")
	lam, ok := node.(*ast.Lambda)
	if !ok {
		t.Fatalf("expected *ast.Lambda, got %T", node)
	}
	if len(lam.Captures) != 1 || lam.Captures[0] != "y" {
		t.Errorf("expected captures [y], got %v", lam.Captures)
	}
	if len(lam.Params) != 1 || lam.Params[0] != "x" {
		t.Errorf("expected params [x], got %v", lam.Params)
	}
	if lam.Variadic {
		t.Errorf("expected non-variadic lambda")
	}
}

func TestParseVariadicLambda(t *testing.T) {
	node := parse(t, "(lambda (a ...) a)").(*ast.Lambda)
	if !node.Variadic {
		t.Errorf("expected variadic lambda")
	}
	if len(node.Params) != 1 || node.Params[0] != "a" {
		t.Errorf("expected params [a], got %v", node.Params)
	}
}

func TestParsePNBlock(t *testing.T) {
	node := parse(t, "{[x] + $1 x}")
	blk, ok := node.(*ast.PNBlock)
	if !ok {
		t.Fatalf("expected *ast.PNBlock, got %T", node)
	}
	if len(blk.Captures) != 1 || blk.Captures[0] != "x" {
		t.Errorf("expected captures [x], got %v", blk.Captures)
	}
	if len(blk.Body) != 3 {
		t.Fatalf("expected 3 body expressions, got %d", len(blk.Body))
	}
	if blk.PNArity != 1 {
		t.Errorf("expected inferred arity 1 from $1, got %d", blk.PNArity)
	}
}

func TestParseTryCatch(t *testing.T) {
	node := parse(t, `(try (/ 1 0) (catch (e) e))`)
	tc, ok := node.(*ast.TryCatch)
	if !ok {
		t.Fatalf("expected *ast.TryCatch, got %T", node)
	}
	if tc.ExceptionName != "e" {
		t.Errorf("expected exception name e, got %s", tc.ExceptionName)
	}
}

func TestParseCond(t *testing.T) {
	node := parse(t, `(cond ((< 1 2) 1) ((> 1 2) 2))`)
	c, ok := node.(*ast.Cond)
	if !ok {
		t.Fatalf("expected *ast.Cond, got %T", node)
	}
	if len(c.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(c.Cases))
	}
}

func TestParseAutomatonMinimal(t *testing.T) {
	input := `(automaton 1 ((null out ((#t () out accept)))))`
	node := parse(t, input)
	a, ok := node.(*ast.Automaton)
	if !ok {
		t.Fatalf("expected *ast.Automaton, got %T", node)
	}
	if a.Tapes != 1 {
		t.Errorf("expected 1 tape, got %d", a.Tapes)
	}
	if len(a.States) != 1 {
		t.Fatalf("expected 1 state, got %d", len(a.States))
	}
	if len(a.States[0].Transitions) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(a.States[0].Transitions))
	}
}

func TestParseExpandedArgument(t *testing.T) {
	node := parse(t, "(list %xs)")
	call := node.(*ast.Evaluation)
	if len(call.Args) != 1 || !call.Args[0].Expanded {
		t.Fatalf("expected one expanded arg, got %+v", call.Args)
	}
}
