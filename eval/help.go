package eval

const helpText = `Syntax:
  <expr>            Evaluate an expression and print the result
  <name> = <expr>   Assign a value to a variable

Commands:
  precision <p>     Round results to <p> significant digits
  fullprecision     Print exact results without rounding
  vars              List all variables
  help              Print this help message
  exit              Exit the calculator

Numbers may be binary (0b101), octal (0o17), decimal (3.25) or
hexadecimal (0xff.8). Operators: + - * / and parentheses.
`
