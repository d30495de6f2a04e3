package builtins

import (
	"testing"

	"github.com/theory-lisp/tlisp/internal/value"
)

func call(t *testing.T, r *Registry, name string, env *value.Env, args ...value.Value) value.Value {
	t.Helper()
	fn, ok := r.Get(name)
	if !ok {
		t.Fatalf("no such builtin: %s", name)
	}
	v, err := fn(args, nil, env)
	if err != nil {
		t.Fatalf("%s: unexpected Go error: %v", name, err)
	}
	return v
}

func TestDivisionSingleArgIsReciprocal(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "/", nil, value.Int(4))
	if got.String() != "1/4" {
		t.Errorf("expected 1/4, got %s", got.String())
	}
}

func TestSubtractSingleArgIsNegation(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "-", nil, value.Int(5))
	if got.String() != "-5" {
		t.Errorf("expected -5, got %s", got.String())
	}
}

func TestArityErrorsReportWantAndGot(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "cons", nil, value.Int(1))
	if got.String() != "cons expects 2 argument(s), got 1" {
		t.Errorf("unexpected arity error message: %s", got.String())
	}
}

func TestStrcarStrcdrSplitFirstCharacterFromRemainder(t *testing.T) {
	r := NewRegistry()
	if got := call(t, r, "strcar", nil, value.Str("hello")); got.String() != `"h"` {
		t.Errorf("expected \"h\", got %s", got.String())
	}
	if got := call(t, r, "strcdr", nil, value.Str("hello")); got.String() != `"ello"` {
		t.Errorf("expected \"ello\", got %s", got.String())
	}
}

func TestStrcarOnEmptyStringIsRecoverableError(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "strcar", nil, value.Str(""))
	if got.String() != "strcar: empty string" {
		t.Errorf("expected an empty-string error, got %s", got.String())
	}
}

func TestCharatOutOfRangeIsRecoverableError(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "charat", nil, value.Str("ab"), value.Int(5))
	if got.String() != "charat: index out of range" {
		t.Errorf("expected an out-of-range error, got %s", got.String())
	}
}

func TestSubstrBoundsChecking(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "substr", nil, value.Str("hello"), value.Int(1), value.Int(3))
	if got.String() != `"ell"` {
		t.Errorf("expected \"ell\", got %s", got.String())
	}
	tooLong := call(t, r, "substr", nil, value.Str("hello"), value.Int(1), value.Int(30))
	if tooLong.String() != "substr: index out of range" {
		t.Errorf("expected an out-of-range error, got %s", tooLong.String())
	}
}

func TestAndOrXorFolds(t *testing.T) {
	r := NewRegistry()
	if got := call(t, r, "and", nil, value.Bool(true), value.Bool(true)); got.String() != "#t" {
		t.Errorf("expected #t, got %s", got.String())
	}
	if got := call(t, r, "and", nil, value.Bool(true), value.Bool(false)); got.String() != "#f" {
		t.Errorf("expected #f, got %s", got.String())
	}
	if got := call(t, r, "xor", nil, value.Bool(true), value.Bool(true)); got.String() != "#f" {
		t.Errorf("expected #f, got %s", got.String())
	}
}

func TestRelationalFoldChecksEveryAdjacentPair(t *testing.T) {
	r := NewRegistry()
	if got := call(t, r, "<", nil, value.Int(1), value.Int(2), value.Int(3)); got.String() != "#t" {
		t.Errorf("expected #t, got %s", got.String())
	}
	if got := call(t, r, "<", nil, value.Int(1), value.Int(3), value.Int(2)); got.String() != "#f" {
		t.Errorf("expected #f, got %s", got.String())
	}
}

func TestPredicatesTagMatching(t *testing.T) {
	r := NewRegistry()
	if got := call(t, r, "integer?", nil, value.Int(1)); got.String() != "#t" {
		t.Errorf("expected #t, got %s", got.String())
	}
	if got := call(t, r, "integer?", nil, value.Real(1.0)); got.String() != "#f" {
		t.Errorf("expected #f, got %s", got.String())
	}
	if got := call(t, r, "number?", nil, value.Real(1.0)); got.String() != "#t" {
		t.Errorf("expected #t, got %s", got.String())
	}
}

func TestConsCarCdr(t *testing.T) {
	r := NewRegistry()
	pair := call(t, r, "cons", nil, value.Int(1), value.Int(2))
	if pair.String() != "(1 . 2)" {
		t.Errorf("expected (1 . 2), got %s", pair.String())
	}
	if got := call(t, r, "car", nil, pair); got.String() != "1" {
		t.Errorf("expected 1, got %s", got.String())
	}
	if got := call(t, r, "cdr", nil, pair); got.String() != "2" {
		t.Errorf("expected 2, got %s", got.String())
	}
}

func TestDefinedPredicateConsultsCallerEnv(t *testing.T) {
	r := NewRegistry()
	env := value.NewEnv()
	env.DefineLocal("x", value.Int(1))
	if got := call(t, r, "defined?", env, value.Str("x")); got.String() != "#t" {
		t.Errorf("expected #t, got %s", got.String())
	}
	if got := call(t, r, "defined?", env, value.Str("y")); got.String() != "#f" {
		t.Errorf("expected #f, got %s", got.String())
	}
}

func TestErrorBuiltinWrapsStringMessage(t *testing.T) {
	r := NewRegistry()
	got := call(t, r, "error", nil, value.Str("boom"))
	if got.String() != "boom" {
		t.Errorf("expected boom, got %s", got.String())
	}
	if !value.IsError(got) {
		t.Errorf("expected an ErrorVal, got %T", got)
	}
}

func TestIncludeGuardPreventsSecondRun(t *testing.T) {
	r := NewRegistry()
	r.includeGuards["ghost_included"] = true
	env := value.NewEnv()
	got := call(t, r, "include", env, value.Str("ghost"))
	if got != (value.Void{}) {
		t.Errorf("expected Void from a guarded include, got %s", got.String())
	}
}
