package automaton_test

import (
	"testing"

	"github.com/theory-lisp/tlisp/pkg/eval"
	"github.com/theory-lisp/tlisp/pkg/lexer"
	"github.com/theory-lisp/tlisp/pkg/parser"
)

func run(t *testing.T, source string) string {
	t.Helper()
	p := parser.New(lexer.New(source))
	nodes, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	e := eval.New()
	var last string
	for _, n := range nodes {
		v, err := e.Eval(n, e.Global)
		if err != nil {
			t.Fatalf("eval error: %v", err)
		}
		last = v.String()
	}
	return last
}

func TestSingleTapeWalksTwoStatesThenHalts(t *testing.T) {
	got := run(t, `
		(define m (automaton 1 (
			(null (lambda (x) x) (((lambda (x) #t) (->) (lambda (x) x) next)))
			(null (lambda (x) x) (((lambda (x) #t) () (lambda (x) x) halt))))))
		(m (cons 0 (list 10 20 30)))
	`)
	if got != "(0 (1 10 20 30))" {
		t.Errorf("expected (0 (1 10 20 30)), got %s", got)
	}
}

// TestSentinelSnapSkipsLaterTapesInSameTransition exercises the left-end
// sentinel quirk across two tapes: tape 0 sits at head 0 and snaps to 1,
// and per automaton.c's apply_head_operations breaking rather than
// continuing, tape 1's configured MoveRight is never applied this step.
func TestSentinelSnapSkipsLaterTapesInSameTransition(t *testing.T) {
	got := run(t, `
		(define m (automaton 2 ((null (lambda (x y) x) (((lambda (x y) #t) (-> ->) (lambda (x y) x) halt))))))
		(m (cons 0 (list 10 20)) (cons 0 (list 100 200)))
	`)
	if got != "(0 (0 100 200) (1 10 20))" {
		t.Errorf("expected (0 (0 100 200) (1 10 20)), got %s", got)
	}
}

func TestAcceptProducesExitCodeOne(t *testing.T) {
	got := run(t, `
		(define m (automaton 1 ((null (lambda (x) x) (((lambda (x) #t) (nop) (lambda (x) x) accept))))))
		(m (cons 0 (list 1 2 3)))
	`)
	if got != "(1 (1 1 2 3))" {
		t.Errorf("expected (1 (1 1 2 3)), got %s", got)
	}
}

func TestRejectProducesExitCodeNegativeOne(t *testing.T) {
	got := run(t, `
		(define m (automaton 1 ((null (lambda (x) x) (((lambda (x) #t) (nop) (lambda (x) x) reject))))))
		(m (cons 0 (list 1 2 3)))
	`)
	if got != "(-1 (1 1 2 3))" {
		t.Errorf("expected (-1 (1 1 2 3)), got %s", got)
	}
}

func TestWrongTapeCountIsRecoverableError(t *testing.T) {
	got := run(t, `
		(define m (automaton 1 ((null (lambda (x) x) (((lambda (x) #t) () (lambda (x) x) halt))))))
		(m (cons 0 (list 1 2)) (cons 0 (list 3 4)))
	`)
	if got != "automaton expects 1 tape argument(s), got 2" {
		t.Errorf("expected an arity error, got %s", got)
	}
}
