package eval

import (
	"errors"
	"fmt"

	"github.com/risor-io/ratcalc/ast"
	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/value"
)

func (e *Evaluator) evalExpr(x ast.Expr) (value.Number, error) {
	switch x := x.(type) {
	case *ast.Number:
		return value.NewNumber(x.Value), nil
	case *ast.Variable:
		return e.evalVariable(x)
	case *ast.Paren:
		return e.evalExpr(ast.Unparen(x))
	case *ast.Unary:
		operand, err := e.evalExpr(x.X)
		if err != nil {
			return value.Number{}, err
		}
		return operand.Neg(), nil
	case *ast.Binary:
		return e.evalBinary(x)
	}
	return value.Number{}, fmt.Errorf("cannot evaluate expression %s", x)
}

func (e *Evaluator) evalVariable(x *ast.Variable) (value.Number, error) {
	if v, ok := e.env[x.Name.Sym]; ok {
		return v, nil
	}
	bound := make([]string, 0, len(e.env))
	for sym := range e.env {
		bound = append(bound, e.names.Resolve(sym))
	}
	return value.Number{}, &diagnostics.UndefinedVariable{
		Name:        x.Name.Name,
		Span:        x.Span(),
		Suggestions: diagnostics.SuggestSimilar(x.Name.Name, bound),
	}
}

func (e *Evaluator) evalBinary(x *ast.Binary) (value.Number, error) {
	left, err := e.evalExpr(x.X)
	if err != nil {
		return value.Number{}, err
	}
	right, err := e.evalExpr(x.Y)
	if err != nil {
		return value.Number{}, err
	}
	switch x.Op {
	case ast.Add:
		return left.Add(right), nil
	case ast.Sub:
		return left.Sub(right), nil
	case ast.Mul:
		return left.Mul(right), nil
	case ast.Div:
		q, err := left.Div(right)
		if errors.Is(err, value.ErrDivisionByZero) {
			return value.Number{}, &diagnostics.DivisionByZero{
				Span:    x.Span(),
				Divisor: x.Y.Span(),
				Err:     err,
			}
		}
		return q, err
	}
	return value.Number{}, fmt.Errorf("unknown operator %s", x.Op)
}
