// Package value holds the runtime values of the calculator.
//
// There is a single kind of value, an exact rational Number. Numbers are
// immutable: every operation returns a new Number and never modifies its
// operands.
package value

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when dividing by an exact zero.
var ErrDivisionByZero = errors.New("division by zero")

// Value is the result of evaluating an expression.
type Value interface {
	// Format renders the value for display.
	Format(d Display) string

	// Exact renders the value with no loss, e.g. "1/3".
	Exact() string
}

// Number is an exact rational number. The zero Number is 0.
type Number struct {
	rat *big.Rat
}

var _ Value = Number{}

// NewNumber returns a Number equal to r. r is copied.
func NewNumber(r *big.Rat) Number {
	return Number{rat: new(big.Rat).Set(r)}
}

// FromInt returns the Number n.
func FromInt(n int64) Number {
	return Number{rat: big.NewRat(n, 1)}
}

// FromFrac returns the Number num/den. It panics if den is zero.
func FromFrac(num, den int64) Number {
	return Number{rat: big.NewRat(num, den)}
}

// Parse reads a Number from a decimal, fraction or integer string such as
// "3.25", "-1/3" or "42".
func Parse(s string) (Number, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Number{}, false
	}
	return Number{rat: r}, true
}

func (n Number) r() *big.Rat {
	if n.rat == nil {
		return new(big.Rat)
	}
	return n.rat
}

// Rat returns a copy of the underlying rational.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.r())
}

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return Number{rat: new(big.Rat).Add(n.r(), m.r())}
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	return Number{rat: new(big.Rat).Sub(n.r(), m.r())}
}

// Mul returns n * m.
func (n Number) Mul(m Number) Number {
	return Number{rat: new(big.Rat).Mul(n.r(), m.r())}
}

// Div returns n / m, or ErrDivisionByZero if m is zero.
func (n Number) Div(m Number) (Number, error) {
	if m.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	return Number{rat: new(big.Rat).Quo(n.r(), m.r())}, nil
}

// Neg returns -n.
func (n Number) Neg() Number {
	return Number{rat: new(big.Rat).Neg(n.r())}
}

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool {
	return n.r().Sign() == 0
}

// IsInt reports whether n is an integer.
func (n Number) IsInt() bool {
	return n.r().IsInt()
}

// Sign returns -1, 0 or +1 depending on the sign of n.
func (n Number) Sign() int {
	return n.r().Sign()
}

// Cmp compares n and m and returns -1, 0 or +1.
func (n Number) Cmp(m Number) int {
	return n.r().Cmp(m.r())
}

// Equal reports whether n and m are the same number.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

// Exact returns n as an integer or a reduced fraction "a/b".
func (n Number) Exact() string {
	return n.r().RatString()
}

// String formats n with the default display.
func (n Number) String() string {
	return n.Format(DefaultDisplay())
}
