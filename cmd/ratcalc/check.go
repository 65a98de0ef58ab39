package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/spf13/cobra"

	"github.com/risor-io/ratcalc"
	"github.com/risor-io/ratcalc/render"
)

func newCheckCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Evaluate a file and report its diagnostics",
		Long: `Evaluate each line of FILE in one session and report every diagnostic.

Values are not printed. With --format lsp the diagnostics are written as a
JSON array of Language Server Protocol diagnostics. Use "-" to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "lsp":
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			name, text, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			return check(cmd, name, text, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "diagnostic format (text, lsp)")
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"text", "lsp"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func readSource(cmd *cobra.Command, path string) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}
	return path, string(data), nil
}

// check runs the lines of text and reports their diagnostics. Command output
// such as help and status messages is discarded.
func check(cmd *cobra.Command, name, text, format string) error {
	out := cmd.OutOrStdout()
	logger, err := newLogger(cmd.ErrOrStderr(), useColor(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	opts, err := getSessionOptions(io.Discard, io.Discard, logger, false)
	if err != nil {
		return err
	}
	s := ratcalc.New(opts...)
	text = strings.TrimSuffix(text, "\n")

	var textRenderer *render.Text
	if format == "text" {
		textRenderer = render.NewText(out, s.Sources(), useColor(out))
	}
	lspDiagnostics := []protocol.Diagnostic{}
	failed := false
	for i, line := range strings.Split(text, "\n") {
		o := s.RunAt(name, i+1, strings.TrimSuffix(line, "\r"))
		if o.Failed() {
			failed = true
			if textRenderer != nil {
				textRenderer.RenderAll(o.Diagnostics)
			}
			for _, d := range o.Diagnostics {
				lspDiagnostics = append(lspDiagnostics, render.ToLSP(d, s.Sources()))
			}
		}
		if o.Exit {
			break
		}
	}

	if format == "lsp" {
		data, err := getOutputJSON(lspDiagnostics)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	}
	if failed {
		return errFailed
	}
	return nil
}
