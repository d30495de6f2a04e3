// Package builtins implements Theory Lisp's standard procedure library
// (spec.md §6): arithmetic, comparison, predicates, pair/list operations,
// string operations, the math library, I/O, control (error/exit/eval/
// defined?), macro-time token inspection, and source inclusion.
//
// Each builtin is a plain Go function rather than a value carrying its own
// dispatch logic, matching the teacher interpreter's registerBuiltin
// pattern in pkg/eval/builtins.go — generalized here from fixed single-arg
// closures to variadic-arity Funcs, since Theory Lisp builtins range from
// nullary (current-seconds) to fully variadic (+, list).
package builtins

import (
	"bufio"
	"io"
	"math/rand"
	"os"

	"github.com/theory-lisp/tlisp/internal/ast"
	"github.com/theory-lisp/tlisp/internal/value"
)

// Interp is the callback surface a builtin needs back into the evaluator.
// pkg/eval.Evaluator implements this; declaring it here (rather than
// importing pkg/eval) is what keeps pkg/builtins free of an import cycle,
// the same trick internal/ast.Automaton.Compiled plays with interface{}.
type Interp interface {
	Eval(node ast.Node, env *value.Env) (value.Value, error)
	Call(proc value.Value, args []value.Value, env *value.Env) (value.Value, error)
}

// Func is a builtin's Go implementation. env is the caller's environment,
// needed by eval/defined?/include, which must resolve or install names in
// the caller's scope rather than a scope of their own.
type Func func(args []value.Value, interp Interp, env *value.Env) (value.Value, error)

// Registry holds every builtin by name.
type Registry struct {
	funcs map[string]Func
	rng   *rand.Rand

	// includeGuards tracks which include paths have already run, per
	// spec.md §6's idempotent-include requirement.
	includeGuards map[string]bool
	libraryDir    string

	stdin  *bufio.Reader
	stdout io.Writer
}

// NewRegistry builds a Registry with every builtin registered, reading
// getchar from os.Stdin and writing display/putchar to os.Stdout.
func NewRegistry() *Registry {
	r := &Registry{
		funcs:         make(map[string]Func),
		rng:           rand.New(rand.NewSource(1)),
		includeGuards: make(map[string]bool),
		stdin:         bufio.NewReader(os.Stdin),
		stdout:        os.Stdout,
	}
	r.registerArith()
	r.registerCompare()
	r.registerPredicates()
	r.registerLogic()
	r.registerPairs()
	r.registerStrings()
	r.registerMath()
	r.registerIO()
	r.registerControl()
	r.registerMacro()
	r.registerInclude()
	return r
}

func (r *Registry) register(name string, fn Func) {
	r.funcs[name] = fn
}

// Get looks up a builtin by name.
func (r *Registry) Get(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names lists every registered builtin name, used to populate the global
// environment with *value.Builtin markers.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	return names
}

// SetLibraryDir sets the $LIBRARY_DIR search root used by `include`.
func (r *Registry) SetLibraryDir(dir string) { r.libraryDir = dir }

// SetOutput redirects display/putchar, for tests that capture output.
func (r *Registry) SetOutput(w io.Writer) { r.stdout = w }

func arityError(name string, want, got int) value.Value {
	return value.NewError("%s expects %d argument(s), got %d", name, want, got)
}

// builtinArity gives each builtin's PN-block operand count, the same
// number spec.md §6's roster annotates per name. The PN block engine
// (pkg/eval/pn.go) consults this to know how many operands a bare builtin
// reference consumes when it appears mid-body, the same way it reads a
// user Lambda's or PNBlock's arity. A negative entry marks a genuinely
// variadic builtin (+, *, -, /, and, or, xor, list, strcat): rather than a
// fixed count, pkg/eval/pn.go's pnArity resolves it to however many
// operands are actually sitting on the block's reduction stack at the
// point it is called — the same left-to-right fold these take as an
// ordinary `(name arg...)` call, just fed from PN reduction instead of a
// call's argument list. A name missing from the map reads as 0; the
// nullary builtins (random, current-seconds, getchar) are listed with 0.
var builtinArity = map[string]int{
	"+": -1, "*": -1, "-": -1, "/": -1,
	"=": 2, "<": 2, ">": 2, "<=": 2, ">=": 2,
	"and": -1, "or": -1, "xor": -1, "not": 1,
	"void?": 1, "boolean?": 1, "integer?": 1, "real?": 1, "number?": 1,
	"symbol?": 1, "pair?": 1, "procedure?": 1,
	"cons": 2, "car": 1, "cdr": 1, "list": -1, "null?": 1,
	"strlen": 1, "strcat": -1, "charat": 2, "substr": 3, "strcar": 1, "strcdr": 1,
	"sin": 1, "cos": 1, "tan": 1, "asin": 1, "acos": 1, "atan": 1,
	"sinh": 1, "cosh": 1, "tanh": 1, "exp": 1, "log": 1, "sqrt": 1, "cbrt": 1,
	"erf": 1, "gamma": 1, "floor": 1, "ceil": 1, "round": 1, "trunc": 1,
	"pow": 2, "hypot": 2, "modulo": 2,
	"isfinite": 1, "isinf": 1, "isnan": 1, "isnormal": 1, "random": 0,
	"display": 1, "system": 1, "getchar": 0, "putchar": 1, "current-seconds": 0,
	"error": 1, "exit": 0, "eval": 1, "defined?": 1,
	"peek-tkn": 1, "pop-tkn": 1, "parse": 1, "include": 1,
}

// Arity reports a builtin's PN-block operand count; see builtinArity. A
// negative result marks a variadic builtin — the caller (pkg/eval/pn.go)
// resolves the actual count from its own reduction state.
func (r *Registry) Arity(name string) int { return builtinArity[name] }
