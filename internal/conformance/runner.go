package conformance

import (
	"fmt"
	"strings"

	"github.com/theory-lisp/tlisp/internal/value"
	"github.com/theory-lisp/tlisp/pkg/eval"
	"github.com/theory-lisp/tlisp/pkg/lexer"
	"github.com/theory-lisp/tlisp/pkg/parser"
)

// Run evaluates c.Source top-level form by top-level form against a fresh
// Evaluator, checking the last form's result against c.Expect. It returns
// a non-nil error describing the mismatch; a nil return means the case
// passed.
func Run(c Case) error {
	p := parser.New(lexer.New(c.Source))
	nodes, err := p.ParseProgram()
	if err != nil {
		return matchErr(c, err)
	}
	if len(nodes) == 0 {
		return fmt.Errorf("%s: source contains no top-level expression", c.Name)
	}

	e := eval.New()
	var result value.Value
	for _, n := range nodes {
		result, err = e.Eval(n, e.Global)
		if err != nil {
			return matchErr(c, err)
		}
	}

	if value.IsError(result) {
		return matchErr(c, fmt.Errorf("%s", result.String()))
	}
	if c.Expect.ErrorContains != "" {
		return fmt.Errorf("%s: expected error containing %q, got value %s", c.Name, c.Expect.ErrorContains, result.String())
	}
	if got := result.String(); got != c.Expect.Value {
		return fmt.Errorf("%s: expected %q, got %q", c.Name, c.Expect.Value, got)
	}
	return nil
}

func matchErr(c Case, err error) error {
	if c.Expect.ErrorContains == "" {
		return fmt.Errorf("%s: unexpected error: %w", c.Name, err)
	}
	if !strings.Contains(err.Error(), c.Expect.ErrorContains) {
		return fmt.Errorf("%s: expected error containing %q, got %q", c.Name, c.Expect.ErrorContains, err.Error())
	}
	return nil
}
