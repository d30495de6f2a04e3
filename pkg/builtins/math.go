package builtins

import (
	"math"

	"github.com/theory-lisp/tlisp/internal/value"
)

// registerMath wires the math library named in spec.md §6: trig,
// hyperbolic, exp/log/pow/sqrt/cbrt/hypot, erf/gamma, rounding, modulo,
// the isfinite/isinf/isnan/isnormal classifiers, and random. Every
// function here promotes its operands to float64; the classifiers return
// a Boolean and all others return a Real — Theory Lisp's numeric tower
// doesn't carry trig results as Rational.
func (r *Registry) registerMath() {
	unary := func(name string, fn func(float64) float64) {
		r.register(name, func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
			if len(args) != 1 {
				return arityError(name, 1, len(args)), nil
			}
			f, ok := value.AsFloat64(args[0])
			if !ok {
				return value.NewError("%s: not a number: %s", name, args[0].String()), nil
			}
			return value.Real(fn(f)), nil
		})
	}
	binary := func(name string, fn func(a, b float64) float64) {
		r.register(name, func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
			if len(args) != 2 {
				return arityError(name, 2, len(args)), nil
			}
			a, ok1 := value.AsFloat64(args[0])
			b, ok2 := value.AsFloat64(args[1])
			if !ok1 || !ok2 {
				return value.NewError("%s: not a number", name), nil
			}
			return value.Real(fn(a, b)), nil
		})
	}
	classify := func(name string, fn func(float64) bool) {
		r.register(name, func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
			if len(args) != 1 {
				return arityError(name, 1, len(args)), nil
			}
			f, ok := value.AsFloat64(args[0])
			if !ok {
				return value.NewError("%s: not a number: %s", name, args[0].String()), nil
			}
			return value.Bool(fn(f)), nil
		})
	}

	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("asin", math.Asin)
	unary("acos", math.Acos)
	unary("atan", math.Atan)
	unary("sinh", math.Sinh)
	unary("cosh", math.Cosh)
	unary("tanh", math.Tanh)
	unary("exp", math.Exp)
	unary("log", math.Log)
	unary("sqrt", math.Sqrt)
	unary("cbrt", math.Cbrt)
	unary("erf", math.Erf)
	unary("gamma", math.Gamma)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("round", math.Round)
	unary("trunc", math.Trunc)

	binary("pow", math.Pow)
	binary("hypot", math.Hypot)
	binary("modulo", math.Mod)

	classify("isfinite", func(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) })
	classify("isinf", func(f float64) bool { return math.IsInf(f, 0) })
	classify("isnan", math.IsNaN)
	classify("isnormal", func(f float64) bool {
		return !math.IsInf(f, 0) && !math.IsNaN(f) && f != 0
	})

	r.register("random", func(args []value.Value, _ Interp, _ *value.Env) (value.Value, error) {
		if len(args) != 0 {
			return arityError("random", 0, len(args)), nil
		}
		return value.Real(r.rng.Float64()), nil
	})
}
