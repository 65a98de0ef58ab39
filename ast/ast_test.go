package ast

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/ratcalc/intern"
	"github.com/risor-io/ratcalc/span"
)

func sp(start, end int) span.Span {
	return span.New(1, start, end)
}

func num(v int64, start, end int) *Number {
	return &Number{Value: big.NewRat(v, 1), ValueSpan: sp(start, end)}
}

// x = -(1 + y) / 2
func sample() *Assign {
	names := intern.New()
	return &Assign{
		Name:   &Ident{Sym: names.Intern("x"), Name: "x", NameSpan: sp(0, 1)},
		Equals: sp(2, 3),
		Value: &Binary{
			X: &Unary{
				Op:     Neg,
				OpSpan: sp(4, 5),
				X: &Paren{
					Group: sp(5, 12),
					X: &Binary{
						X:      num(1, 6, 7),
						Op:     Add,
						OpSpan: sp(8, 9),
						Y: &Variable{Name: &Ident{
							Sym: names.Intern("y"), Name: "y", NameSpan: sp(10, 11),
						}},
					},
				},
			},
			Op:     Div,
			OpSpan: sp(13, 14),
			Y:      num(2, 15, 16),
		},
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "x = ((-((1 + y))) / 2)", sample().String())

	lit := &Number{Value: big.NewRat(31, 1), Literal: "0x1f"}
	assert.Equal(t, "0x1f", lit.String())
	lit.Literal = ""
	assert.Equal(t, "31", lit.String())

	assert.Equal(t, "precision 3", (&SetPrecision{Value: num(3, 10, 11)}).String())
	assert.Equal(t, "fullprecision", (&FullPrecision{}).String())
	assert.Equal(t, "vars", (&Vars{}).String())
}

func TestSpans(t *testing.T) {
	stmt := sample()
	assert.Equal(t, sp(0, 16), stmt.Span())
	assert.Equal(t, sp(4, 16), stmt.Value.Span())

	div := stmt.Value.(*Binary)
	assert.Equal(t, sp(4, 12), div.X.Span())
	assert.Equal(t, sp(5, 12), div.X.(*Unary).X.Span())

	set := &SetPrecision{Keyword: sp(0, 9), Value: num(3, 10, 11)}
	assert.Equal(t, sp(0, 11), set.Span())
}

func TestUnparen(t *testing.T) {
	inner := num(1, 2, 3)
	x := &Paren{Group: sp(0, 5), X: &Paren{Group: sp(1, 4), X: inner}}
	assert.Same(t, inner, Unparen(x))
	assert.Same(t, inner, Unparen(inner))
}

func TestInterfaces(t *testing.T) {
	var _ Expr = &Number{}
	var _ Expr = &Variable{}
	var _ Expr = &Binary{}
	var _ Expr = &Unary{}
	var _ Expr = &Paren{}
	var _ Stmt = &ExprStmt{}
	var _ Stmt = &Assign{}
	var _ Stmt = &SetPrecision{}
	var _ Stmt = &FullPrecision{}
	var _ Stmt = &Help{}
	var _ Stmt = &Exit{}
	var _ Stmt = &Vars{}
	var _ Node = &Ident{}
}

func TestNumberValueIsExact(t *testing.T) {
	x := &Number{Value: big.NewRat(1, 3)}
	require.Equal(t, "1/3", x.String())
}
