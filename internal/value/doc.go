// Package value provides the runtime value system for the Theory Lisp
// interpreter.
//
// A Value is a tagged union over Void, Null, Boolean, Integer, Real,
// Rational, String, Pair, Procedure, Internal and Error. Arithmetic,
// comparison and logic are free functions over the Value interface rather
// than methods on every concrete type, since not every type supports every
// operator; unsupported combinations yield an *ErrorVal instead of a Go
// error, so evaluator code checks value.IsError(result) rather than err.
//
// Numeric tower:
//
//	The promotion lattice is Integer < Rational < Real. Integer/Integer
//	division yields a Rational unless evenly divisible. Rational is always
//	kept in lowest terms with a positive denominator (NewRational reduces
//	via gcd on construction).
//
// Cloning:
//
//	Clone() is a deep copy for every type except Procedure, Builtin and
//	Internal. Procedure shares its underlying AST node and copies its
//	captured frame's bindings map (the bound values themselves are shared,
//	not re-cloned); Builtin and Internal return themselves — Go's garbage
//	collector plays the role the source language's
//	manual expression refcounting played; no explicit refcount is needed
//	here.
//
// Environment:
//
//	Env is a nested stack frame (bindings map plus optional parent) with
//	three write operations — DefineLocal, SetLocal and DefineGlobal — and
//	nearest-wins lookup, matching spec.md §4.3.
package value
