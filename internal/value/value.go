package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type tags a concrete Value implementation.
type Type byte

const (
	TypeVoid Type = iota
	TypeNull
	TypeBool
	TypeInt
	TypeReal
	TypeRational
	TypeString
	TypePair
	TypeProcedure
	TypeInternal
	TypeError
)

func (t Type) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeNull:
		return "null"
	case TypeBool:
		return "boolean"
	case TypeInt:
		return "integer"
	case TypeReal:
		return "real"
	case TypeRational:
		return "rational"
	case TypeString:
		return "string"
	case TypePair:
		return "pair"
	case TypeProcedure:
		return "procedure"
	case TypeInternal:
		return "internal"
	case TypeError:
		return "error"
	default:
		return "unknown"
	}
}

// Value is the interface every Theory Lisp runtime value implements.
type Value interface {
	Type() Type
	String() string
	Equals(Value) bool
	// Clone returns a deep copy of the value, except for Procedure, which
	// shares its underlying expression node and copies only its captured
	// environment snapshot.
	Clone() Value
}

// Void is the value produced by expressions that have no useful result
// (state output, discarded transition output, an empty Cond match's branch).
type Void struct{}

func (Void) Type() Type       { return TypeVoid }
func (Void) String() string   { return "" }
func (Void) Clone() Value     { return Void{} }
func (Void) Equals(v Value) bool {
	_, ok := v.(Void)
	return ok
}

// Null is the empty-list terminator and general "nothing" sentinel.
type Null struct{}

func (Null) Type() Type     { return TypeNull }
func (Null) String() string { return "null" }
func (Null) Clone() Value   { return Null{} }
func (Null) Equals(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// Bool is a boolean value; #t / #f in surface syntax.
type Bool bool

func (b Bool) Type() Type   { return TypeBool }
func (b Bool) Clone() Value { return b }
func (b Bool) String() string {
	if b {
		return "#t"
	}
	return "#f"
}
func (b Bool) Equals(v Value) bool {
	other, ok := v.(Bool)
	return ok && b == other
}

// Int is a 64-bit signed integer. Overflow wraps per Go's defined int64
// semantics, matching the source language's unguarded `long` arithmetic.
type Int int64

func (i Int) Type() Type     { return TypeInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Clone() Value   { return i }
func (i Int) Equals(v Value) bool {
	switch other := v.(type) {
	case Int:
		return i == other
	case *Rational:
		return other.Den == 1 && Int(other.Num) == i
	case Real:
		return Real(i) == other
	default:
		return false
	}
}

// Real is a 64-bit float.
type Real float64

func (r Real) Type() Type { return TypeReal }
func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'f', 6, 64)
}
func (r Real) Clone() Value { return r }
func (r Real) Equals(v Value) bool {
	switch other := v.(type) {
	case Real:
		return r == other
	case Int:
		return r == Real(other)
	case *Rational:
		return r == Real(other.Num)/Real(other.Den)
	default:
		return false
	}
}

// Rational is a reduced fraction with a positive denominator — Num/Den.
type Rational struct {
	Num int64
	Den int64
}

func gcd(a, b int64) int64 {
	if a == 0 {
		return b
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for a != b {
		if a > b {
			a -= b
		} else {
			b -= a
		}
	}
	if a == 0 {
		return 1
	}
	return a
}

// NewRational builds a reduced rational with a positive denominator. den must
// be nonzero; callers that might divide by zero should check beforehand and
// produce an *ErrorVal instead of calling this.
func NewRational(num, den int64) *Rational {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	return &Rational{Num: num / g, Den: den / g}
}

func (r *Rational) Type() Type { return TypeRational }
func (r *Rational) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
func (r *Rational) Clone() Value { return &Rational{Num: r.Num, Den: r.Den} }
func (r *Rational) Equals(v Value) bool {
	switch other := v.(type) {
	case *Rational:
		return r.Num == other.Num && r.Den == other.Den
	case Int:
		return r.Den == 1 && r.Num == int64(other)
	case Real:
		return Real(r.Num)/Real(r.Den) == other
	default:
		return false
	}
}

// Str is a UTF-8 string. String() quotes the value; Raw returns the bytes.
type Str string

func (s Str) Type() Type     { return TypeString }
func (s Str) String() string { return fmt.Sprintf("%q", string(s)) }
func (s Str) Raw() string    { return string(s) }
func (s Str) Clone() Value   { return s }
func (s Str) Equals(v Value) bool {
	other, ok := v.(Str)
	return ok && s == other
}

// Pair is a cons cell. Cons lists chain Pairs, terminating in Null; cyclic
// structures cannot be built by the surface language, so Clone/String simply
// recurse.
type Pair struct {
	First  Value
	Second Value
}

// NewPair constructs a cons cell.
func NewPair(first, second Value) *Pair { return &Pair{First: first, Second: second} }

// ListToSlice converts a proper cons list into a Go slice. Returns false if
// v is not Null-terminated.
func ListToSlice(v Value) ([]Value, bool) {
	var out []Value
	for {
		switch cur := v.(type) {
		case Null:
			return out, true
		case *Pair:
			out = append(out, cur.First)
			v = cur.Second
		default:
			return nil, false
		}
	}
}

// SliceToList builds a proper cons list from a Go slice.
func SliceToList(elems []Value) Value {
	var result Value = Null{}
	for i := len(elems) - 1; i >= 0; i-- {
		result = NewPair(elems[i], result)
	}
	return result
}

func (p *Pair) Type() Type { return TypePair }
func (p *Pair) String() string {
	if elems, ok := ListToSlice(p); ok {
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return fmt.Sprintf("(%s . %s)", p.First.String(), p.Second.String())
}
func (p *Pair) Clone() Value {
	return &Pair{First: p.First.Clone(), Second: p.Second.Clone()}
}
func (p *Pair) Equals(v Value) bool {
	other, ok := v.(*Pair)
	return ok && p.First.Equals(other.First) && p.Second.Equals(other.Second)
}

// Procedure wraps a callable AST node (Lambda, PNBlock or Automaton) plus the
// environment snapshot captured at the moment of interpretation. Node is
// `interface{}` here (rather than an ast.Node) to keep this package free of a
// dependency on internal/ast — the eval package, which depends on both,
// performs the type switch on Node's concrete type.
type Procedure struct {
	Node interface{}
	Env  *Env
	// Source is the printed form of the defining lambda/PN-block/automaton,
	// used by String() per the "Procedure prints its lambda source" rule.
	Source string
}

func (p *Procedure) Type() Type     { return TypeProcedure }
func (p *Procedure) String() string { return p.Source }
func (p *Procedure) Clone() Value {
	return &Procedure{Node: p.Node, Env: p.Env.Clone(), Source: p.Source}
}

// Equals is always false: Procedures intentionally do not implement equality.
func (p *Procedure) Equals(Value) bool { return false }

// Builtin is a first-class reference to a registered builtin procedure.
// The registry that actually implements each name lives in pkg/builtins,
// kept out of this package to avoid internal/value depending on pkg/eval;
// the evaluator resolves Name against that registry at call time.
type Builtin struct {
	Name string
}

func (b *Builtin) Type() Type        { return TypeProcedure }
func (b *Builtin) String() string    { return fmt.Sprintf("#<builtin:%s>", b.Name) }
func (b *Builtin) Clone() Value      { return b }
func (b *Builtin) Equals(Value) bool { return false }

// Internal is an opaque carrier for macro-time builtins: it wraps a live
// token reader so peek-tkn/pop-tkn/parse can inspect or consume it. Internal
// values are not meant to escape the macro-expansion window that produced
// them — nothing outside pkg/builtins/macro.go constructs one.
type Internal struct {
	Reader interface{}
}

func (i *Internal) Type() Type     { return TypeInternal }
func (i *Internal) String() string { return "<INTERNAL>" }
func (i *Internal) Clone() Value   { return i }
func (i *Internal) Equals(Value) bool {
	return false
}

// ErrorVal is an ordinary first-class value carrying an error message. The
// evaluator recognizes ErrorVal and short-circuits the enclosing operation;
// only try/catch and `defined?` consume one without propagating it further.
type ErrorVal struct {
	Message string
}

// NewError builds an ErrorVal, formatting like fmt.Sprintf.
func NewError(format string, args ...interface{}) *ErrorVal {
	return &ErrorVal{Message: fmt.Sprintf(format, args...)}
}

func (e *ErrorVal) Type() Type     { return TypeError }
func (e *ErrorVal) String() string { return e.Message }
func (e *ErrorVal) Clone() Value   { return &ErrorVal{Message: e.Message} }
func (e *ErrorVal) Equals(Value) bool {
	return false
}

// IsError reports whether v is an ErrorVal — the evaluator's short-circuit
// test used throughout pkg/eval.
func IsError(v Value) bool {
	_, ok := v.(*ErrorVal)
	return ok
}

// Truthy reports whether v is Bool(true); any non-Boolean reports false.
// If/Cond/and/or/not do not call it: per spec.md §4.1 they operate only on
// Boolean operands and check the type themselves, yielding an ErrorVal for
// anything else.
func Truthy(v Value) bool {
	b, ok := v.(Bool)
	return ok && bool(b)
}

// numericRank orders the promotion lattice Integer < Rational < Real.
func numericRank(v Value) (int, bool) {
	switch v.(type) {
	case Int:
		return 0, true
	case *Rational:
		return 1, true
	case Real:
		return 2, true
	default:
		return 0, false
	}
}

// AsFloat64 converts a numeric Value to a float64, for builtins (the math
// library) that need to hand off to Go's math package. ok is false if v
// isn't a number.
func AsFloat64(v Value) (float64, bool) {
	if !IsNumber(v) {
		return 0, false
	}
	return float64(asReal(v)), true
}

func asReal(v Value) Real {
	switch n := v.(type) {
	case Int:
		return Real(n)
	case *Rational:
		return Real(n.Num) / Real(n.Den)
	case Real:
		return n
	}
	return 0
}

func asRational(v Value) *Rational {
	switch n := v.(type) {
	case Int:
		return &Rational{Num: int64(n), Den: 1}
	case *Rational:
		return n
	}
	return nil
}

// promote returns the common rank to compute at, or false if either operand
// is not numeric.
func promote(a, b Value) (rank int, ok bool) {
	ra, oka := numericRank(a)
	rb, okb := numericRank(b)
	if !oka || !okb {
		return 0, false
	}
	if ra > rb {
		return ra, true
	}
	return rb, true
}

// Add implements the + operator's pairwise reduction step.
func Add(a, b Value) Value {
	rank, ok := promote(a, b)
	if !ok {
		return NewError("+ operand is not a number")
	}
	switch rank {
	case 0:
		return Int(a.(Int) + b.(Int))
	case 1:
		ra, rb := asRational(a), asRational(b)
		return NewRational(ra.Num*rb.Den+rb.Num*ra.Den, ra.Den*rb.Den)
	default:
		return Real(asReal(a) + asReal(b))
	}
}

// Sub implements the - operator's pairwise reduction step.
func Sub(a, b Value) Value {
	rank, ok := promote(a, b)
	if !ok {
		return NewError("- operand is not a number")
	}
	switch rank {
	case 0:
		return Int(a.(Int) - b.(Int))
	case 1:
		ra, rb := asRational(a), asRational(b)
		return NewRational(ra.Num*rb.Den-rb.Num*ra.Den, ra.Den*rb.Den)
	default:
		return Real(asReal(a) - asReal(b))
	}
}

// Mul implements the * operator's pairwise reduction step.
func Mul(a, b Value) Value {
	rank, ok := promote(a, b)
	if !ok {
		return NewError("* operand is not a number")
	}
	switch rank {
	case 0:
		return Int(a.(Int) * b.(Int))
	case 1:
		ra, rb := asRational(a), asRational(b)
		return NewRational(ra.Num*rb.Num, ra.Den*rb.Den)
	default:
		return Real(asReal(a) * asReal(b))
	}
}

// Div implements the / operator's pairwise reduction step. Integer/Integer
// yields a Rational unless evenly divisible, per spec.md §4.1; division by
// zero is a recoverable ErrorVal, never a panic.
func Div(a, b Value) Value {
	rank, ok := promote(a, b)
	if !ok {
		return NewError("/ operand is not a number")
	}
	switch rank {
	case 0:
		ai, bi := int64(a.(Int)), int64(b.(Int))
		if bi == 0 {
			return NewError("division by zero")
		}
		if ai%bi == 0 {
			return Int(ai / bi)
		}
		return NewRational(ai, bi)
	case 1:
		ra, rb := asRational(a), asRational(b)
		if rb.Num == 0 {
			return NewError("division by zero")
		}
		return NewRational(ra.Num*rb.Den, ra.Den*rb.Num)
	default:
		rb := asReal(b)
		if rb == 0 {
			return NewError("division by zero")
		}
		return Real(asReal(a) / rb)
	}
}

// Less implements the < operator between two numeric values.
func Less(a, b Value) Value {
	rank, ok := promote(a, b)
	if !ok {
		return NewError("< operand is not a number")
	}
	switch rank {
	case 0:
		return Bool(a.(Int) < b.(Int))
	case 1:
		ra, rb := asRational(a), asRational(b)
		return Bool(ra.Num*rb.Den < rb.Num*ra.Den)
	default:
		return Bool(asReal(a) < asReal(b))
	}
}

// And/Or/Xor/Not implement the boolean connectives; non-Boolean operands
// yield an ErrorVal per spec.md §4.1.
func And(a, b Value) Value {
	ba, oka := a.(Bool)
	bb, okb := b.(Bool)
	if !oka || !okb {
		return NewError("and operand is not a boolean")
	}
	return Bool(ba && bb)
}

func Or(a, b Value) Value {
	ba, oka := a.(Bool)
	bb, okb := b.(Bool)
	if !oka || !okb {
		return NewError("or operand is not a boolean")
	}
	return Bool(ba || bb)
}

func Xor(a, b Value) Value {
	ba, oka := a.(Bool)
	bb, okb := b.(Bool)
	if !oka || !okb {
		return NewError("xor operand is not a boolean")
	}
	return Bool(ba != bb)
}

func Not(a Value) Value {
	ba, ok := a.(Bool)
	if !ok {
		return NewError("not operand is not a boolean")
	}
	return Bool(!ba)
}

// IsNumber reports whether v is Int, *Rational or Real.
func IsNumber(v Value) bool {
	_, ok := numericRank(v)
	return ok
}
