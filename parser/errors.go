package parser

import (
	"fmt"

	"github.com/risor-io/ratcalc/diagnostics"
	"github.com/risor-io/ratcalc/internal/token"
)

// Descriptions used in expected-found errors.
var (
	operandStarts = []string{"number", "identifier", "'('", "'-'"}
	infixOps      = []string{"'+'", "'-'", "'*'", "'/'"}
	keywordStmts  = []token.Type{token.PRECISION, token.FULLPRECISION, token.HELP, token.EXIT, token.VARS}
)

// statementStarts is everything that may begin a line.
func statementStarts() []string {
	out := append([]string{}, operandStarts...)
	for _, kw := range keywordStmts {
		out = append(out, quote(string(kw)))
	}
	return out
}

func quote(s string) string {
	return "'" + s + "'"
}

// describe returns the found-description of a token.
func describe(tok token.Token) string {
	return quote(tok.String())
}

func (p *Parser) addError(err error) {
	p.errs = append(p.errs, err)
}

// expected records an error for the current token, or for the end of the
// current token sequence if it is exhausted.
func (p *Parser) expected(expected ...string) {
	if tok, ok := p.peek(); ok {
		p.addError(&diagnostics.ExpectedFound{
			Expected: expected,
			Found:    describe(tok),
			Span:     tok.Span,
		})
		return
	}
	p.addError(&diagnostics.ExpectedFound{
		Expected: expected,
		Found:    p.cur.found,
		Span:     p.cur.end,
	})
}

func (p *Parser) tooDeep(tok token.Token) {
	p.addError(&diagnostics.Custom{
		Msg:     fmt.Sprintf("maximum nesting depth of %d exceeded", p.maxDepth),
		Span:    tok.Span,
		ErrCode: diagnostics.E1009,
	})
}

func isTooDeep(err error) bool {
	custom, ok := err.(*diagnostics.Custom)
	return ok && custom.Code() == diagnostics.E1009
}
