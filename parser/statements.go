package parser

import (
	"github.com/risor-io/ratcalc/ast"
	"github.com/risor-io/ratcalc/internal/token"
)

// parseStatement tries the statement forms in order: assignment, bare
// expression, then the keyword commands.
func (p *Parser) parseStatement() ast.Stmt {
	tok, ok := p.peek()
	if !ok {
		p.expected(statementStarts()...)
		return nil
	}
	switch tok.Type {
	case token.IDENT:
		if p.peekAt(1, token.ASSIGN) {
			return p.parseAssign()
		}
	case token.PRECISION:
		return p.parseSetPrecision()
	case token.FULLPRECISION:
		return &ast.FullPrecision{Keyword: p.next().Span}
	case token.HELP:
		return &ast.Help{Keyword: p.next().Span}
	case token.EXIT:
		return &ast.Exit{Keyword: p.next().Span}
	case token.VARS:
		return &ast.Vars{Keyword: p.next().Span}
	case token.NUMBER, token.MINUS, token.PARENS:
	default:
		p.expected(statementStarts()...)
		return nil
	}
	x := p.parseExpression()
	if x == nil {
		return nil
	}
	return &ast.ExprStmt{X: x}
}

func (p *Parser) parseAssign() ast.Stmt {
	name := p.newIdent(p.next())
	equals := p.next().Span
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return &ast.Assign{Name: name, Equals: equals, Value: value}
}

func (p *Parser) parseSetPrecision() ast.Stmt {
	keyword := p.next().Span
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return &ast.SetPrecision{Keyword: keyword, Value: value}
}
