package ast

import (
	"math/big"
	"strings"

	"github.com/risor-io/ratcalc/intern"
	"github.com/risor-io/ratcalc/span"
)

// Ident is an interned name together with the span where it was written.
// Identifiers compare by Sym, never by Name.
type Ident struct {
	Sym      intern.Symbol
	Name     string
	NameSpan span.Span
}

func (x *Ident) Span() span.Span { return x.NameSpan }
func (x *Ident) String() string  { return x.Name }

// Number is a numeric literal converted to an exact rational.
type Number struct {
	Value     *big.Rat
	Literal   string // source text, e.g. "0x1f"
	ValueSpan span.Span
}

func (x *Number) exprNode() {}

func (x *Number) Span() span.Span { return x.ValueSpan }

func (x *Number) String() string {
	if x.Literal != "" {
		return x.Literal
	}
	return x.Value.RatString()
}

// Variable is a reference to a bound name.
type Variable struct {
	Name *Ident
}

func (x *Variable) exprNode() {}

func (x *Variable) Span() span.Span { return x.Name.Span() }
func (x *Variable) String() string  { return x.Name.String() }

// BinaryOp is an arithmetic operator taking two operands.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

// UnaryOp is an arithmetic operator taking one operand.
type UnaryOp int

const (
	Neg UnaryOp = iota
)

func (op UnaryOp) String() string {
	if op == Neg {
		return "-"
	}
	return "?"
}

// Binary is an operator expression where the operator is between the
// operands, e.g. "x + y" and "5 / 2".
type Binary struct {
	X      Expr      // left operand
	Op     BinaryOp  // operator
	OpSpan span.Span // position of operator
	Y      Expr      // right operand
}

func (x *Binary) exprNode() {}

func (x *Binary) Span() span.Span { return span.Union(x.X.Span(), x.Y.Span()) }

func (x *Binary) String() string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op.String() + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Unary is an operator expression where the operator precedes the operand,
// e.g. "-x".
type Unary struct {
	Op     UnaryOp
	OpSpan span.Span
	X      Expr
}

func (x *Unary) exprNode() {}

func (x *Unary) Span() span.Span { return span.Union(x.OpSpan, x.X.Span()) }

func (x *Unary) String() string {
	return "(" + x.Op.String() + x.X.String() + ")"
}

// Paren is an expression written inside parentheses. Group covers both
// delimiters. It has no effect on evaluation.
type Paren struct {
	Group span.Span
	X     Expr
}

func (x *Paren) exprNode() {}

func (x *Paren) Span() span.Span { return x.Group }
func (x *Paren) String() string  { return "(" + x.X.String() + ")" }

// Unparen returns x with any enclosing parentheses removed.
func Unparen(x Expr) Expr {
	for {
		p, ok := x.(*Paren)
		if !ok {
			return x
		}
		x = p.X
	}
}
