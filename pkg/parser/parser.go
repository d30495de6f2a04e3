package parser

import (
	"strconv"

	"github.com/theory-lisp/tlisp/internal/ast"
	"github.com/theory-lisp/tlisp/internal/value"
	"github.com/theory-lisp/tlisp/pkg/lexer"
)

// Parser is a recursive-descent parser over Theory Lisp's fully-
// parenthesized prefix grammar. It transforms a token stream from the
// lexer into an internal/ast.Node tree, using a two-token cur/peek
// lookahead window for disambiguation — the same window discipline the
// teacher interpreter's parser uses, minus the Pratt precedence machinery
// a prefix grammar has no need for.
type Parser struct {
	l      *lexer.Lexer
	cur    lexer.Token
	peek   lexer.Token
	errors *ParseErrors
}

// New creates a parser primed with the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: &ParseErrors{}}
	p.advance()
	p.advance()
	return p
}

// Parse parses a single top-level expression.
func (p *Parser) Parse() (ast.Node, error) {
	expr := p.parseExpr()
	if p.errors.HasErrors() {
		return nil, p.errors
	}
	return expr, nil
}

// ParseProgram parses a sequence of top-level expressions until EOF —
// used by the CLI to run a whole source file of top-level defines and
// expressions, one after another.
func (p *Parser) ParseProgram() ([]ast.Node, error) {
	var nodes []ast.Node
	for !p.curIs(lexer.TOKEN_EOF) {
		n := p.parseExpr()
		if n == nil && p.errors.HasErrors() {
			return nil, p.errors
		}
		nodes = append(nodes, n)
		p.advance()
	}
	if p.errors.HasErrors() {
		return nil, p.errors
	}
	return nodes, nil
}

// CurrentToken exposes the parser's lookahead token to macro-time
// peek-tkn/pop-tkn builtins, which inspect the live stream an Internal
// value wraps.
func (p *Parser) CurrentToken() lexer.Token { return p.cur }

// Advance moves the lookahead window forward one token, for pop-tkn.
func (p *Parser) Advance() { p.advance() }

func (p *Parser) Errors() []string {
	msgs := make([]string, 0, p.errors.Count())
	for _, err := range p.errors.Errors() {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

func (p *Parser) pos() ast.Pos { return ast.Pos{Line: p.cur.Line, Column: p.cur.Column} }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()
		return true
	}
	p.errors.Addf(p.peek.Line, p.peek.Column,
		"expected next token to be %v, got %v", t, p.peek.Type)
	return false
}

func (p *Parser) expectCur(t lexer.TokenType) bool {
	if p.curIs(t) {
		return true
	}
	p.errors.Addf(p.cur.Line, p.cur.Column,
		"expected %v, got %v", t, p.cur.Type)
	return false
}

// parseExpr is the single entry point for any expression: a literal, an
// identifier, or a parenthesized/braced compound form.
func (p *Parser) parseExpr() ast.Node {
	switch p.cur.Type {
	case lexer.TOKEN_INT:
		return p.parseInt()
	case lexer.TOKEN_FLOAT:
		return p.parseFloat()
	case lexer.TOKEN_STRING:
		return p.parseString()
	case lexer.TOKEN_BOOL:
		return p.parseBool()
	case lexer.TOKEN_NULL:
		return ast.NewDataLiteral(p.pos(), value.Null{})
	case lexer.TOKEN_IDENT:
		return ast.NewIdentifier(p.pos(), p.cur.Literal)
	case lexer.TOKEN_PERCENT:
		return p.parseExpanded()
	case lexer.TOKEN_LBRACE:
		return p.parsePNBlock()
	case lexer.TOKEN_LPAREN:
		return p.parseParenForm()
	default:
		p.errors.Addf(p.cur.Line, p.cur.Column, "unexpected token %v", p.cur.Type)
		return nil
	}
}

func (p *Parser) parseInt() ast.Node {
	v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column, "could not parse %q as integer", p.cur.Literal)
		return nil
	}
	return ast.NewDataLiteral(p.pos(), value.Int(v))
}

func (p *Parser) parseFloat() ast.Node {
	v, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column, "could not parse %q as real", p.cur.Literal)
		return nil
	}
	return ast.NewDataLiteral(p.pos(), value.Real(v))
}

func (p *Parser) parseString() ast.Node {
	return ast.NewDataLiteral(p.pos(), value.Str(p.cur.Literal))
}

func (p *Parser) parseBool() ast.Node {
	return ast.NewDataLiteral(p.pos(), value.Bool(p.cur.Literal == "#t"))
}

// parseExpanded parses `%expr`, the cons-list splice marker valid only as
// a call argument; parseEvaluation is the only caller that looks at the
// Expanded flag, but the node is produced uniformly so a misplaced `%`
// elsewhere surfaces as a runtime Error per spec.md §4.2 rather than a
// silent no-op.
func (p *Parser) parseExpanded() ast.Node {
	start := p.pos()
	p.advance()
	inner := p.parseExpr()
	return ast.NewExpanded(start, inner)
}

// parseParenForm dispatches a `(...)` form to its keyword-specific parser,
// defaulting to a call/Evaluation when the head is not a reserved keyword.
func (p *Parser) parseParenForm() ast.Node {
	start := p.pos()
	p.advance() // consume '('

	switch p.cur.Type {
	case lexer.TOKEN_IF:
		return p.parseIf(start)
	case lexer.TOKEN_COND:
		return p.parseCond(start)
	case lexer.TOKEN_LET:
		return p.parseLet(start)
	case lexer.TOKEN_DEFINE:
		return p.parseDefine(start)
	case lexer.TOKEN_SET:
		return p.parseSet(start)
	case lexer.TOKEN_LAMBDA:
		return p.parseLambda(start)
	case lexer.TOKEN_TRY:
		return p.parseTryCatch(start)
	case lexer.TOKEN_AUTOMATON:
		return p.parseAutomaton(start)
	default:
		return p.parseEvaluation(start)
	}
}

// parseEvaluation parses `(proc arg1 arg2 ...)`.
func (p *Parser) parseEvaluation(start ast.Pos) ast.Node {
	proc := p.parseExpr()
	if proc == nil {
		return nil
	}

	var args []ast.EvalArg
	for p.advance(); !p.curIs(lexer.TOKEN_RPAREN) && !p.curIs(lexer.TOKEN_EOF); p.advance() {
		expanded := false
		argStart := p.cur
		if p.curIs(lexer.TOKEN_PERCENT) {
			expanded = true
			p.advance()
		}
		_ = argStart
		arg := p.parseExpr()
		if arg == nil {
			return nil
		}
		args = append(args, ast.EvalArg{Expr: arg, Expanded: expanded})
	}
	if !p.expectCur(lexer.TOKEN_RPAREN) {
		return nil
	}
	return ast.NewEvaluation(start, proc, args)
}
