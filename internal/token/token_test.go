package token

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"to", TO},
		{"precision", PRECISION},
		{"fullprecision", FULLPRECISION},
		{"help", HELP},
		{"exit", EXIT},
		{"vars", VARS},
		{"x", IDENT},
		{"precisions", IDENT},
		{"Help", IDENT},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LookupIdentifier(tt.input), tt.input)
	}
	assert.True(t, VARS.IsKeyword())
	assert.False(t, IDENT.IsKeyword())
}

func TestRadixDigits(t *testing.T) {
	assert.True(t, Binary.IsDigit('1'))
	assert.False(t, Binary.IsDigit('2'))
	assert.True(t, Octal.IsDigit('7'))
	assert.False(t, Octal.IsDigit('8'))
	assert.False(t, Decimal.IsDigit('a'))
	assert.True(t, Hexadecimal.IsDigit('F'))
	assert.False(t, Hexadecimal.IsDigit('g'))

	d, ok := Hexadecimal.Digit('c')
	assert.True(t, ok)
	assert.Equal(t, 12, d)
}

func TestNumberRat(t *testing.T) {
	tests := []struct {
		number   Number
		expected *big.Rat
		text     string
	}{
		{Number{Integer: "42", Radix: Decimal}, big.NewRat(42, 1), "42"},
		{Number{Integer: "3", Fraction: "25", HasFraction: true, Radix: Decimal}, big.NewRat(13, 4), "3.25"},
		{Number{Integer: "101", Radix: Binary}, big.NewRat(5, 1), "0b101"},
		{Number{Integer: "0", Fraction: "1", HasFraction: true, Radix: Binary}, big.NewRat(1, 2), "0b0.1"},
		{Number{Integer: "17", Radix: Octal}, big.NewRat(15, 1), "0o17"},
		{Number{Integer: "ff", Fraction: "8", HasFraction: true, Radix: Hexadecimal}, big.NewRat(511, 2), "0xff.8"},
		{Number{Integer: "007", Radix: Decimal}, big.NewRat(7, 1), "007"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := tt.number.Rat()
			assert.Equal(t, 0, got.Cmp(tt.expected), "got %s", got.RatString())
			assert.Equal(t, tt.text, tt.number.String())
		})
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "(...)", Token{Type: PARENS}.String())
	assert.Equal(t, "{...}", Token{Type: BRACES}.String())
	assert.Equal(t, "foo", Token{Type: IDENT, Literal: "foo"}.String())
	assert.Equal(t, "0x1f", Token{Type: NUMBER, Literal: "0x1f", Number: &Number{Integer: "1f", Radix: Hexadecimal}}.String())
	assert.Equal(t, "+", Token{Type: PLUS, Literal: "+"}.String())
}
