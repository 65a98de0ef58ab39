package ratcalc

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/risor-io/ratcalc/eval"
	"github.com/risor-io/ratcalc/parser"
	"github.com/risor-io/ratcalc/value"
)

// Option configures a Session.
type Option func(*options)

type variable struct {
	name  string
	value value.Number
}

type options struct {
	logger   zerolog.Logger
	output   io.Writer
	messages io.Writer
	display  value.Display
	color    bool
	maxDepth int
	vars     []variable
}

func collectOptions(opts ...Option) *options {
	o := &options{
		logger:   zerolog.Nop(),
		output:   io.Discard,
		messages: io.Discard,
		display:  value.DefaultDisplay(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	return opts
}

func (o *options) evalOpts() []eval.Option {
	return []eval.Option{
		eval.WithOutput(o.output),
		eval.WithMessages(o.messages),
		eval.WithLogger(o.logger),
		eval.WithColor(o.color),
		eval.WithDisplay(o.display),
	}
}

// WithLogger sets the logger used for debug events. By default nothing is
// logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets the writer for command output: the help text and the
// variable listing.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithMessages sets the writer for status messages such as
// "Set precision to: 3" and "Exiting...".
func WithMessages(w io.Writer) Option {
	return func(o *options) {
		o.messages = w
	}
}

// WithPrecision sets the initial number of significant digits.
func WithPrecision(digits int) Option {
	return func(o *options) {
		o.display = o.display.WithDigits(digits)
	}
}

// WithFullPrecision starts the session in full precision mode.
func WithFullPrecision() Option {
	return func(o *options) {
		o.display = o.display.WithFull()
	}
}

// WithMaxExpansion caps the number of fractional digits printed in full
// precision mode.
func WithMaxExpansion(digits int) Option {
	return func(o *options) {
		o.display.MaxExpansion = digits
	}
}

// WithVariable binds a variable before the first line is run. This option is
// additive; if the same name is supplied more than once, the last value wins.
func WithVariable(name string, v value.Number) Option {
	return func(o *options) {
		o.vars = append(o.vars, variable{name: name, value: v})
	}
}

// WithColor enables ANSI colors in command output.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithMaxDepth sets the maximum nesting depth of parentheses.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}
