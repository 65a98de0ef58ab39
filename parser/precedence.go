package parser

import (
	"github.com/risor-io/ratcalc/ast"
	"github.com/risor-io/ratcalc/internal/token"
)

// Precedence order for operators
const (
	_ int = iota
	LOWEST
	SUM     // + or -
	PRODUCT // * or /
	PREFIX  // -X
)

// Precedences for each infix token type
var precedences = map[token.Type]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

var binaryOps = map[token.Type]ast.BinaryOp{
	token.PLUS:     ast.Add,
	token.MINUS:    ast.Sub,
	token.ASTERISK: ast.Mul,
	token.SLASH:    ast.Div,
}

var prefixOps = map[token.Type]ast.UnaryOp{
	token.MINUS: ast.Neg,
}
