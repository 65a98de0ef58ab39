// Package token defines the token tree produced by the lexer.
//
// Tokens are either simple (identifiers, numbers, keywords, punctuation) or
// groups. A group holds the already-tokenized contents of a bracketed region,
// so bracket matching is resolved once at lex time.
package token

import (
	"math/big"
	"strings"

	"github.com/risor-io/ratcalc/span"
)

// Type describes the type of a token as a string.
type Type string

// Token types
const (
	IDENT  Type = "IDENT"
	NUMBER Type = "NUMBER"

	// Keywords
	TO            Type = "to"
	PRECISION     Type = "precision"
	FULLPRECISION Type = "fullprecision"
	HELP          Type = "help"
	EXIT          Type = "exit"
	VARS          Type = "vars"

	// Punctuation
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	ASSIGN   Type = "="

	// Groups
	PARENS Type = "(...)"
	BRACES Type = "{...}"
)

// Reserved keywords
var keywords = map[string]Type{
	"to":            TO,
	"precision":     PRECISION,
	"fullprecision": FULLPRECISION,
	"help":          HELP,
	"exit":          EXIT,
	"vars":          VARS,
}

// LookupIdentifier returns the keyword type for identifier, or IDENT if the
// text is not a reserved word.
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether t is a reserved word.
func (t Type) IsKeyword() bool {
	_, ok := keywords[string(t)]
	return ok
}

// IsGroup reports whether t is a bracket group.
func (t Type) IsGroup() bool {
	return t == PARENS || t == BRACES
}

// Delimiters returns the opening and closing bytes for a group type.
func (t Type) Delimiters() (open, close byte) {
	switch t {
	case PARENS:
		return '(', ')'
	case BRACES:
		return '{', '}'
	}
	return 0, 0
}

// GroupFor returns the group type opened by the delimiter c.
func GroupFor(c byte) (Type, bool) {
	switch c {
	case '(':
		return PARENS, true
	case '{':
		return BRACES, true
	}
	return "", false
}

// Token represents one node of the token tree.
type Token struct {
	Type     Type
	Literal  string    // source text; for groups, the closing delimiter or empty if unclosed
	Number   *Number   // set when Type is NUMBER
	Children []Token   // contents of a group, in order
	Span     span.Span // for groups, includes both delimiters
}

// Closer returns the span of a group's closing delimiter. For an unclosed
// group it is the empty span at the group's end.
func (t Token) Closer() span.Span {
	if t.Literal == "" {
		return span.Point(t.Span.Source, t.Span.End)
	}
	return span.New(t.Span.Source, t.Span.End-len(t.Literal), t.Span.End)
}

// Is reports whether the token has the given type.
func (t Token) Is(typ Type) bool {
	return t.Type == typ
}

// String returns the token as it would appear in source. Groups are
// abbreviated to their delimiters.
func (t Token) String() string {
	switch {
	case t.Type.IsGroup():
		return string(t.Type)
	case t.Number != nil:
		return t.Number.String()
	case t.Literal != "":
		return t.Literal
	}
	return string(t.Type)
}

// Radix is the base of a numeric literal.
type Radix int

// Supported radixes
const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// RadixForPrefix returns the radix selected by the letter following a
// leading '0', e.g. 'x' for hexadecimal.
func RadixForPrefix(c byte) (Radix, bool) {
	switch c {
	case 'b':
		return Binary, true
	case 'o':
		return Octal, true
	case 'x':
		return Hexadecimal, true
	}
	return 0, false
}

// Prefix returns the literal prefix for the radix; decimal has none.
func (r Radix) Prefix() string {
	switch r {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Hexadecimal:
		return "0x"
	}
	return ""
}

// String returns the English name of the radix.
func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return "decimal"
}

// Digit returns the value of c as a digit in radix r.
func (r Radix) Digit(c byte) (int, bool) {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'f':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= int(r) {
		return 0, false
	}
	return d, true
}

// IsDigit reports whether c is a valid digit in radix r.
func (r Radix) IsDigit(c byte) bool {
	_, ok := r.Digit(c)
	return ok
}

// Number holds the raw digits of a numeric literal. Digits are validated by
// the lexer but only converted to a value by Rat.
type Number struct {
	Integer     string
	Fraction    string
	HasFraction bool
	Radix       Radix
}

// String renders the literal back to source form.
func (n *Number) String() string {
	var b strings.Builder
	b.WriteString(n.Radix.Prefix())
	b.WriteString(n.Integer)
	if n.HasFraction {
		b.WriteByte('.')
		b.WriteString(n.Fraction)
	}
	return b.String()
}

// Rat converts the literal to an exact rational. The fractional digits are
// interpreted in the literal's radix, so 0x0.8 is exactly 1/2.
func (n *Number) Rat() *big.Rat {
	base := big.NewInt(int64(n.Radix))
	num := new(big.Int)
	digit := new(big.Int)
	for _, s := range []string{n.Integer, n.Fraction} {
		for i := 0; i < len(s); i++ {
			d, _ := n.Radix.Digit(s[i])
			num.Mul(num, base)
			num.Add(num, digit.SetInt64(int64(d)))
		}
	}
	den := new(big.Int).Exp(base, big.NewInt(int64(len(n.Fraction))), nil)
	return new(big.Rat).SetFrac(num, den)
}
