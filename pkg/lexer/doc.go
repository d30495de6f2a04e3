// Package lexer provides lexical analysis for Theory Lisp's fully-
// parenthesized surface syntax.
//
// Token Recognition:
//   - Keywords: let, lambda, if, define, cond, null, try, catch, set!, automaton
//   - Identifiers: variable and builtin names, including symbolic ones
//     such as +, -, *, /, =, <, <=, car, cdr
//   - Literals: integers, reals, strings (raw, no escape processing),
//     booleans (#t, #f)
//   - Positional references: $1, $2, ... scanned whole as identifiers
//   - Delimiters: ( ) [ ] { } % \ :
//   - Automaton syntax: -> (move right), <- (move left), . (write prefix)
//
// Comment Handling:
//   - Single-line comments starting with '#' (except when '#' introduces
//     a #t/#f boolean literal) or ';'
//   - Multi-line comments enclosed in /* */
//
// Position Tracking mirrors the teacher interpreter: line/column are
// tracked per character and attached to every token for diagnostics.
//
// Usage Example:
//
//	lx := lexer.New("(+ 1 2)")
//	for {
//	    tok := lx.NextToken()
//	    if tok.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", tok.Type, tok.Literal)
//	}
package lexer
