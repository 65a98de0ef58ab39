package diagnostics

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Syntax errors (lexer and parser)
//   - E3xxx: Evaluation errors
type ErrorCode string

const (
	// Syntax errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Unexpected character
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1007 ErrorCode = "E1007" // Unclosed or unmatched delimiter
	E1008 ErrorCode = "E1008" // Invalid number literal
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded

	// Evaluation errors (E3xxx)
	E3001 ErrorCode = "E3001" // Undefined variable
	E3002 ErrorCode = "E3002" // Division by zero
	E3003 ErrorCode = "E3003" // Precision must be nonzero
	E3004 ErrorCode = "E3004" // Invalid precision
)

var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1002: "unexpected character",
	E1003: "invalid syntax",
	E1007: "unclosed delimiter",
	E1008: "invalid number literal",
	E1009: "maximum nesting depth exceeded",

	E3001: "undefined variable",
	E3002: "division by zero",
	E3003: "precision must be nonzero",
	E3004: "invalid precision",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the pipeline stage family based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "syntax"
	case '3':
		return "evaluation"
	default:
		return "unknown"
	}
}
