// Package ast provides the expression-tree node definitions for Theory Lisp.
//
// Expression Categories:
//
// Literals and names:
//   - DataLiteral: a literal value (integer, real, string, boolean)
//   - Identifier: a variable reference
//
// Control flow:
//   - If, Cond: conditionals
//   - Let: sequential local bindings in a fresh child frame
//   - TryCatch: Error-value recovery
//
// Bindings:
//   - Definition (`define`): writes the global frame
//   - Set (`set!`): writes the current frame
//
// Callables:
//   - Lambda: a user-defined procedure with an explicit capture list
//   - PNBlock: a `{...}` Polish-notation reducer
//   - Automaton: a multi-tape Turing machine expression
//
// Calls:
//   - Evaluation: `(f a1 a2 ...)`, with each argument optionally marked
//     Expanded for cons-list splicing
//
// Nodes are plain data: all dispatch logic (interpret/call) lives in
// pkg/eval's type switch rather than on the node itself, so this package has
// no dependency on internal/value or pkg/eval.
package ast
