package parser

import (
	"strconv"
	"strings"

	"github.com/theory-lisp/tlisp/internal/ast"
	"github.com/theory-lisp/tlisp/pkg/lexer"
)

// parseCaptureList parses an optional `[x y z]` capture bracket, returning
// nil if the current token is not a '['.
func (p *Parser) parseCaptureList() []string {
	if !p.curIs(lexer.TOKEN_LBRACKET) {
		return nil
	}
	p.advance() // consume '['
	var names []string
	for !p.curIs(lexer.TOKEN_RBRACKET) && !p.curIs(lexer.TOKEN_EOF) {
		if !p.expectCur(lexer.TOKEN_IDENT) {
			return nil
		}
		names = append(names, p.cur.Literal)
		p.advance()
	}
	if !p.expectCur(lexer.TOKEN_RBRACKET) {
		return nil
	}
	p.advance()
	return names
}

// parseLambda parses `(lambda [captures] (p1 p2 ...) body)`. A trailing
// "..." in the parameter list marks the lambda variadic; the remaining
// arguments are bound as a cons-list under the name "va_args" at call
// time (internal/ast.Lambda's doc comment, pkg/eval's call dispatcher).
func (p *Parser) parseLambda(start ast.Pos) ast.Node {
	p.advance() // skip 'lambda'

	captures := p.parseCaptureList()

	if !p.expectCur(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.advance()

	var params []string
	variadic := false
	for !p.curIs(lexer.TOKEN_RPAREN) && !p.curIs(lexer.TOKEN_EOF) {
		if p.curIs(lexer.TOKEN_IDENT) && p.cur.Literal == "..." {
			variadic = true
			p.advance()
			continue
		}
		if !p.expectCur(lexer.TOKEN_IDENT) {
			return nil
		}
		params = append(params, p.cur.Literal)
		p.advance()
	}
	if !p.expectCur(lexer.TOKEN_RPAREN) {
		return nil
	}
	p.advance()

	body := p.parseExpr()
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return ast.NewLambda(start, params, variadic, len(params), captures, body)
}

// parsePNBlock parses `{[captures] expr1 expr2 ...}` — the teacher's
// grouped-expression parser has no analog here since PN blocks are
// n-ary, not single-expression groupings.
func (p *Parser) parsePNBlock() ast.Node {
	start := p.pos()
	p.advance() // consume '{'

	captures := p.parseCaptureList()

	var body []ast.Node
	maxArity := 0
	for !p.curIs(lexer.TOKEN_RBRACE) && !p.curIs(lexer.TOKEN_EOF) {
		n := p.parseExpr()
		if n == nil {
			return nil
		}
		if ident, ok := n.(*ast.Identifier); ok {
			if a, ok := positionalArity(ident.Name); ok && a > maxArity {
				maxArity = a
			}
		}
		body = append(body, n)
		p.advance()
	}
	if !p.expectCur(lexer.TOKEN_RBRACE) {
		return nil
	}
	return ast.NewPNBlock(start, captures, body, maxArity)
}

// positionalArity reports the N in a "$N" positional-reference token, used
// at parse time to infer a PN block's caller-visible arity (DESIGN.md's
// Open Question decision, grounded on original_source/src/expressions/polish.c).
func positionalArity(name string) (int, bool) {
	if !strings.HasPrefix(name, "$") || len(name) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// parseAutomaton parses:
//
//	(automaton TAPES [captures] (STATE...))
//	STATE      := (BASE OUTPUT (TRANSITION...))
//	BASE       := expr | null
//	TRANSITION := (CONDITION (HEADOP...) OUTPUT TARGET)
//	HEADOP     := -> | <- | (. expr) | nop
//	TARGET     := an integer state index (Action=Continue), or one of
//	              self/next (resolved to an index, Action=Continue) or
//	              halt/accept/reject (terminal, Action set accordingly)
func (p *Parser) parseAutomaton(start ast.Pos) ast.Node {
	p.advance() // skip 'automaton'

	if !p.expectCur(lexer.TOKEN_INT) {
		return nil
	}
	tapes, err := strconv.Atoi(p.cur.Literal)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column, "invalid tape count %q", p.cur.Literal)
		return nil
	}
	p.advance()

	captures := p.parseCaptureList()

	if !p.expectCur(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.advance()

	var states []ast.State
	for p.curIs(lexer.TOKEN_LPAREN) {
		st := p.parseAutomatonState(len(states))
		states = append(states, st)
		p.advance()
	}
	if !p.expectCur(lexer.TOKEN_RPAREN) {
		return nil
	}
	p.advance()
	if !p.expectCur(lexer.TOKEN_RPAREN) {
		return nil
	}
	return ast.NewAutomaton(start, tapes, captures, states)
}

func (p *Parser) parseAutomatonState(index int) ast.State {
	p.advance() // consume '('

	var base ast.Node
	if p.curIs(lexer.TOKEN_NULL) {
		p.advance()
	} else {
		base = p.parseExpr()
		p.advance()
	}

	output := p.parseExpr()
	p.advance()

	if !p.expectCur(lexer.TOKEN_LPAREN) {
		return ast.State{}
	}
	p.advance()

	var transitions []ast.Transition
	for p.curIs(lexer.TOKEN_LPAREN) {
		transitions = append(transitions, p.parseTransition(index))
		p.advance()
	}
	p.expectCur(lexer.TOKEN_RPAREN) // transitions-list close
	p.advance()                     // leaves cur at this state's own close paren

	return ast.State{BaseMachine: base, Output: output, Transitions: transitions}
}

func (p *Parser) parseTransition(stateIndex int) ast.Transition {
	p.advance() // consume '('

	cond := p.parseExpr()
	p.advance()

	var headOps []ast.HeadOp
	if p.expectCur(lexer.TOKEN_LPAREN) {
		p.advance()
		for !p.curIs(lexer.TOKEN_RPAREN) && !p.curIs(lexer.TOKEN_EOF) {
			headOps = append(headOps, p.parseHeadOp())
		}
		p.expectCur(lexer.TOKEN_RPAREN)
		p.advance()
	}

	output := p.parseExpr()
	p.advance()

	nextIndex, action := p.parseTransitionTarget(stateIndex)
	p.advance()

	if !p.expectCur(lexer.TOKEN_RPAREN) {
		return ast.Transition{}
	}

	return ast.Transition{
		Condition:      cond,
		HeadOps:        headOps,
		Output:         output,
		NextStateIndex: nextIndex,
		Action:         action,
	}
}

func (p *Parser) parseHeadOp() ast.HeadOp {
	switch p.cur.Type {
	case lexer.TOKEN_ARROW_RIGHT:
		p.advance()
		return ast.HeadOp{Kind: ast.HeadMoveRight}
	case lexer.TOKEN_ARROW_LEFT:
		p.advance()
		return ast.HeadOp{Kind: ast.HeadMoveLeft}
	case lexer.TOKEN_DOT:
		p.advance()
		val := p.parseExpr()
		p.advance()
		return ast.HeadOp{Kind: ast.HeadWrite, WriteValue: val}
	case lexer.TOKEN_LPAREN: // "(. expr)"
		p.advance()
		if !p.expectCur(lexer.TOKEN_DOT) {
			return ast.HeadOp{Kind: ast.HeadNop}
		}
		p.advance()
		val := p.parseExpr()
		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return ast.HeadOp{Kind: ast.HeadNop}
		}
		p.advance()
		return ast.HeadOp{Kind: ast.HeadWrite, WriteValue: val}
	default: // "nop" identifier
		p.advance()
		return ast.HeadOp{Kind: ast.HeadNop}
	}
}

// parseTransitionTarget reads the symbolic next-state/action token,
// resolving "self" and "next" to concrete indices at parse time per
// internal/ast.Transition's doc comment.
func (p *Parser) parseTransitionTarget(stateIndex int) (int, ast.Action) {
	switch {
	case p.curIs(lexer.TOKEN_INT):
		n, _ := strconv.Atoi(p.cur.Literal)
		return n, ast.ActionContinue
	case p.cur.Literal == "self":
		return stateIndex, ast.ActionContinue
	case p.cur.Literal == "next":
		return stateIndex + 1, ast.ActionContinue
	case p.cur.Literal == "halt":
		return 0, ast.ActionHalt
	case p.cur.Literal == "accept":
		return 0, ast.ActionAccept
	case p.cur.Literal == "reject":
		return 0, ast.ActionReject
	default:
		p.errors.Addf(p.cur.Line, p.cur.Column, "unknown transition target %q", p.cur.Literal)
		return 0, ast.ActionHalt
	}
}
