// Package parser implements a recursive-descent parser for Theory Lisp's
// fully-parenthesized prefix syntax, transforming a lexer token stream
// into an internal/ast.Node tree.
//
// Grammar (informal):
//
//	expr       := INT | FLOAT | STRING | BOOL | null | IDENT | "%" expr
//	            | "{" pn-block "}" | "(" form ")"
//	form       := "if" expr expr expr
//	            | "cond" ("(" expr expr ")")*
//	            | "let" "(" ("(" IDENT expr ")")* ")" expr
//	            | "define" IDENT expr
//	            | "set!" IDENT expr
//	            | "lambda" captures? "(" IDENT* "..."? ")" expr
//	            | "try" expr "(" "catch" "(" IDENT ")" expr ")"
//	            | "automaton" INT captures? "(" state* ")"
//	            | expr expr*                      ; call / Evaluation
//	pn-block   := captures? expr*
//	captures   := "[" IDENT* "]"
//
// Unlike the Nix grammar this package started from, Theory Lisp needs no
// operator-precedence table: every compound form is delimited by its own
// parentheses, so there is nothing left for Pratt parsing to disambiguate.
// Recursive descent alone determines structure.
//
// Error Handling mirrors the teacher parser: a ParseErrors accumulator
// collects every error encountered with line/column context rather than
// stopping at the first one.
//
// Usage Example:
//
//	lx := lexer.New(`(define square (lambda (x) (* x x)))`)
//	ps := parser.New(lx)
//	node, err := ps.Parse()
//	if err != nil {
//	    fmt.Printf("parse error: %v\n", err)
//	    return
//	}
//	// node is the Definition's ast.Node tree
package parser
