package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/risor-io/ratcalc"
	"github.com/risor-io/ratcalc/internal/lexer"
	"github.com/risor-io/ratcalc/internal/token"
	"github.com/risor-io/ratcalc/render"
	"github.com/risor-io/ratcalc/value"
)

// initConfig reads the config file and environment into viper. A missing
// default config file is not an error.
func initConfig() error {
	viper.SetEnvPrefix("ratcalc")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if path := viper.GetString("config"); path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return err
		}
		viper.SetConfigFile(expanded)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".ratcalc")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// newLogger returns a console logger on w at the configured level. Every
// logger carries a fresh session id so that concurrent sessions can be told
// apart in shared logs.
func newLogger(w io.Writer, useColor bool) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("log-level")))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q", viper.GetString("log-level"))
	}
	id, err := uuid.NewV4()
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !useColor}).
		Level(level).
		With().
		Timestamp().
		Str("session", id.String()).
		Logger(), nil
}

// Returns the session options derived from flags, environment and config.
func getSessionOptions(out, msgs io.Writer, logger zerolog.Logger, useColor bool) ([]ratcalc.Option, error) {
	precision := viper.GetInt("precision")
	if precision <= 0 {
		return nil, fmt.Errorf("precision must be a positive integer, got %d", precision)
	}
	opts := []ratcalc.Option{
		ratcalc.WithLogger(logger),
		ratcalc.WithOutput(out),
		ratcalc.WithMessages(msgs),
		ratcalc.WithColor(useColor),
		ratcalc.WithPrecision(precision),
	}
	if viper.GetBool("full-precision") {
		opts = append(opts, ratcalc.WithFullPrecision())
	}
	return opts, nil
}

// applyDefines runs each --define entry in the session, in order. An entry
// whose value is a plain number such as "0.125", "-1/3" or "6.02e23" is bound
// directly; anything else uses the calculator's own assignment syntax, so
// "y=x*2" is evaluated like the line "y = x*2".
func applyDefines(s *ratcalc.Session, r *render.Text) error {
	for _, def := range viper.GetStringSlice("define") {
		name, expr, ok := strings.Cut(def, "=")
		if !ok {
			return fmt.Errorf("invalid define %q: expected name=expr", def)
		}
		name = strings.TrimSpace(name)
		if n, ok := value.Parse(strings.TrimSpace(expr)); ok && isVariableName(name) {
			s.Define(name, n)
			continue
		}
		out := s.Run("--define", def)
		if out.Failed() {
			r.RenderAll(out.Diagnostics)
			return errFailed
		}
	}
	return nil
}

// isVariableName reports whether name lexes as a single identifier.
func isVariableName(name string) bool {
	tokens, err := lexer.Lex(name, 0)
	return err == nil && len(tokens) == 1 && tokens[0].Is(token.IDENT) && tokens[0].Literal == name
}
