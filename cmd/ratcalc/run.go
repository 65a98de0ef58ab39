package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/risor-io/ratcalc"
	"github.com/risor-io/ratcalc/render"
)

// runner owns one session and the writers its results go to.
type runner struct {
	session  *ratcalc.Session
	out      io.Writer
	renderer *render.Text
	failed   bool
}

func newRunner(cmd *cobra.Command) (*runner, error) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	colored := useColor(out)
	logger, err := newLogger(errOut, useColor(errOut))
	if err != nil {
		return nil, err
	}
	opts, err := getSessionOptions(out, errOut, logger, colored)
	if err != nil {
		return nil, err
	}
	s := ratcalc.New(opts...)
	r := &runner{
		session:  s,
		out:      out,
		renderer: render.NewText(errOut, s.Sources(), useColor(errOut)),
	}
	if err := applyDefines(s, r.renderer); err != nil {
		return nil, err
	}
	return r, nil
}

// line runs one line, printing its value and any diagnostics. It reports
// whether the line asked to exit.
func (r *runner) line(name, text string) bool {
	o := r.session.Run(name, text)
	if o.Value != nil {
		fmt.Fprintln(r.out, r.session.Format(o.Value))
	}
	if o.Failed() {
		r.failed = true
		r.renderer.RenderAll(o.Diagnostics)
	}
	return o.Exit
}

// script runs every line read from in until it is exhausted or a line asks
// to exit.
func (r *runner) script(name string, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if r.line(name, scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

func (r *runner) result() error {
	if r.failed {
		return errFailed
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	r, err := newRunner(cmd)
	if err != nil {
		return err
	}
	code, err := cmd.Flags().GetStringArray("code")
	if err != nil {
		return err
	}
	if len(code) > 0 {
		for _, line := range code {
			if r.line("<code>", line) {
				break
			}
		}
		return r.result()
	}
	if cmd.InOrStdin() == os.Stdin && isTerminalIO() {
		return r.repl()
	}
	if err := r.script("<stdin>", cmd.InOrStdin()); err != nil {
		return err
	}
	return r.result()
}
