package parser

import (
	"github.com/theory-lisp/tlisp/internal/ast"
	"github.com/theory-lisp/tlisp/pkg/lexer"
)

// parseIf parses `(if cond then else)`.
func (p *Parser) parseIf(start ast.Pos) ast.Node {
	p.advance() // skip 'if'
	cond := p.parseExpr()
	p.advance()
	then := p.parseExpr()
	p.advance()
	els := p.parseExpr()
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return ast.NewIf(start, cond, then, els)
}

// parseCond parses `(cond (test body) (test body) ...)`.
func (p *Parser) parseCond(start ast.Pos) ast.Node {
	p.advance() // skip 'cond'

	var cases []ast.CondCase
	for p.curIs(lexer.TOKEN_LPAREN) {
		p.advance() // consume '('
		test := p.parseExpr()
		p.advance()
		body := p.parseExpr()
		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return nil
		}
		cases = append(cases, ast.CondCase{Test: test, Body: body})
		p.advance()
	}
	if !p.expectCur(lexer.TOKEN_RPAREN) {
		return nil
	}
	return ast.NewCond(start, cases)
}

// parseLet parses `(let ((name val) ...) body)`.
func (p *Parser) parseLet(start ast.Pos) ast.Node {
	p.advance() // skip 'let'
	if !p.expectCur(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.advance() // consume bindings list's '('

	var bindings []ast.Binding
	for p.curIs(lexer.TOKEN_LPAREN) {
		p.advance()
		if !p.expectCur(lexer.TOKEN_IDENT) {
			return nil
		}
		name := p.cur.Literal
		p.advance()
		val := p.parseExpr()
		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return nil
		}
		bindings = append(bindings, ast.Binding{Name: name, Value: val})
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
	return ast.NewLet(start, bindings, body)
}

// parseDefine parses `(define name val)`.
func (p *Parser) parseDefine(start ast.Pos) ast.Node {
	p.advance() // skip 'define'
	if !p.expectCur(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.cur.Literal
	p.advance()
	val := p.parseExpr()
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return ast.NewDefinition(start, name, val)
}

// parseSet parses `(set! name val)`.
func (p *Parser) parseSet(start ast.Pos) ast.Node {
	p.advance() // skip 'set!'
	if !p.expectCur(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.cur.Literal
	p.advance()
	val := p.parseExpr()
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return ast.NewSet(start, name, val)
}

// parseTryCatch parses `(try body (catch (name) handler))`.
func (p *Parser) parseTryCatch(start ast.Pos) ast.Node {
	p.advance() // skip 'try'
	body := p.parseExpr()
	p.advance()
	if !p.expectCur(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.advance()
	if !p.expectCur(lexer.TOKEN_CATCH) {
		return nil
	}
	p.advance()
	if !p.expectCur(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.advance()
	if !p.expectCur(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.cur.Literal
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	p.advance()
	handler := p.parseExpr()
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return ast.NewTryCatch(start, body, name, handler)
}
