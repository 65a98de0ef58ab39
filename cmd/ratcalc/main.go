package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errFailed is returned when a line reported diagnostics. They have already
// been printed, so main only sets the exit code.
var errFailed = errors.New("one or more lines failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			printError(err.Error())
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratcalc",
		Short: "Exact rational calculator",
		Long: `An interactive calculator over exact rational numbers.

With no arguments, ratcalc starts an interactive session. Use -c to evaluate
lines non-interactively; each -c runs in the same session, in order.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			processGlobalFlags()
			return nil
		},
		RunE: runRoot,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default $HOME/.ratcalc.yaml)")
	pf.Int("precision", 16, "significant digits to display")
	pf.Bool("full-precision", false, "display exact expansions instead of rounding")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("history", "~/.ratcalc_history", "REPL history file; empty disables history")
	pf.StringArray("define", nil, "define a variable before the first line, as name=expr")
	viper.BindPFlags(pf)
	viper.BindEnv("no-color", "RATCALC_NO_COLOR", "NO_COLOR")

	cmd.Flags().StringArrayP("code", "c", nil, "line to evaluate (may be repeated)")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case "", "text":
				fmt.Fprintf(cmd.OutOrStdout(), "ratcalc %s (commit %s, built %s)\n", version, commit, date)
				return nil
			case "json":
				data, err := getOutputJSON(map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			return fmt.Errorf("unknown output format: %s", output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func printError(msg string) {
	if !color.NoColor {
		msg = red(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}
