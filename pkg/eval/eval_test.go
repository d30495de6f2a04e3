package eval

import (
	"testing"

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
	e := New()
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

func TestArithmeticPromotion(t *testing.T) {
	cases := map[string]string{
		"(+ 1 2.5)": "3.500000",
		"(/ 7 4)":   "7/4",
		"(/ 8 4)":   "2",
	}
	for src, want := range cases {
		if got := run(t, src); got != want {
			t.Errorf("%s: expected %s, got %s", src, want, got)
		}
	}
}

func TestDivisionByZeroIsRecoverable(t *testing.T) {
	if got := run(t, "(/ 1 0)"); got != "division by zero" {
		t.Errorf("expected a recoverable error value, got %s", got)
	}
}

func TestClosureCapturesOuterParameter(t *testing.T) {
	got := run(t, `
		(define make-adder (lambda (n) (lambda [n] (x) (+ x n))))
		((make-adder 5) 10)
	`)
	if got != "15" {
		t.Errorf("expected 15, got %s", got)
	}
}

func TestPercentSpliceExpandsListIntoArguments(t *testing.T) {
	got := run(t, `
		(define lst (list 1 2 3))
		(define add3 (lambda (a b c) (+ a (+ b c))))
		(add3 %lst)
	`)
	if got != "6" {
		t.Errorf("expected 6, got %s", got)
	}
}

func TestVariadicLambdaBindsRemainderToVaArgs(t *testing.T) {
	got := run(t, `
		(define va (lambda (a ...) va_args))
		(va 1 2 3)
	`)
	if got != "(2 3)" {
		t.Errorf("expected (2 3), got %s", got)
	}
}

func TestTryCatchBindsErrorMessage(t *testing.T) {
	got := run(t, `(try (error "boom") (catch (e) (strcat "caught: " e)))`)
	if got != `"caught: boom"` {
		t.Errorf(`expected "caught: boom", got %s`, got)
	}
}

func TestTryCatchSkipsHandlerOnSuccess(t *testing.T) {
	got := run(t, `(try (+ 1 2) (catch (e) 0))`)
	if got != "3" {
		t.Errorf("expected 3, got %s", got)
	}
}

func TestCarOfNonPairIsCaughtWithOriginalWording(t *testing.T) {
	got := run(t, `(try (car 0) (catch (e) e))`)
	if got != `"car argument is not a pair"` {
		t.Errorf(`expected "car argument is not a pair", got %s`, got)
	}
}

// TestUndefinedIdentifierIsCatchable guards against an unbound identifier
// surfacing as a Go error: evalTryCatch only inspects value.IsError, so a
// Go error would abort the whole form instead of reaching the handler.
func TestUndefinedIdentifierIsCatchable(t *testing.T) {
	got := run(t, `(try undefined-name (catch (e) e))`)
	if got != `"Variable undefined-name does not exist"` {
		t.Errorf(`expected "Variable undefined-name does not exist", got %s`, got)
	}
}

func TestSetBindsInCurrentFrameOnly(t *testing.T) {
	got := run(t, `
		(define x 1)
		(let ((x 2)) (set! x 3))
		x
	`)
	if got != "1" {
		t.Errorf("expected set! inside the let to leave the outer x untouched, got %s", got)
	}
}

func TestPNBlockBinaryBuiltinConsumesTwoPositionalOperands(t *testing.T) {
	if got := run(t, "({cons $1 $2} 1 2)"); got != "(1 . 2)" {
		t.Errorf("expected (1 . 2), got %s", got)
	}
}

func TestPNBlockUnaryBuiltinConsumesOnePositionalOperand(t *testing.T) {
	if got := run(t, "({not $1} #f)"); got != "#t" {
		t.Errorf("expected #t, got %s", got)
	}
}

// TestPNBlockVariadicBuiltinConsumesEveryAvailableOperand guards against
// pnArity treating a variadic builtin's call-minimum (0 for +) as its
// PN-block operand count, which previously made {+ $1 $2} call + with no
// arguments and leave two stray values on the reduction stack.
func TestPNBlockVariadicBuiltinConsumesEveryAvailableOperand(t *testing.T) {
	if got := run(t, "({+ $1 $2} 3 4)"); got != "7" {
		t.Errorf("expected 7, got %s", got)
	}
}

func TestIncludeIsIdempotent(t *testing.T) {
	got := run(t, `
		(include "../../internal/conformance/testdata/greeting.tl")
		(include "../../internal/conformance/testdata/greeting.tl")
		greeting
	`)
	if got != "42" {
		t.Errorf("expected 42, got %s", got)
	}
}
