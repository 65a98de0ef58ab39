package eval

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/risor-io/ratcalc/value"
)

// Option is a configuration function for an Evaluator.
type Option func(*Evaluator)

// WithOutput sets the writer that receives the help text and the variable
// listing. The default is io.Discard.
func WithOutput(w io.Writer) Option {
	return func(e *Evaluator) {
		e.out = w
	}
}

// WithMessages sets the writer that receives status messages such as
// "Set precision to: 3". The default is io.Discard.
func WithMessages(w io.Writer) Option {
	return func(e *Evaluator) {
		e.msgs = w
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.log = logger
	}
}

// WithColor enables or disables colors in the variable listing.
func WithColor(enabled bool) Option {
	return func(e *Evaluator) {
		e.color = enabled
	}
}

// WithDisplay sets the initial display configuration.
func WithDisplay(d value.Display) Option {
	return func(e *Evaluator) {
		e.display = d
	}
}
