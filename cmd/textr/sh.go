// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/textr/textr/internal/coreutils"
	"github.com/textr/textr/internal/issue"
)

// newShellCommand creates the `textr sh` command.
func newShellCommand(app *App) *cobra.Command {
	var script string

	shCmd := &cobra.Command{
		Use:   "sh [-c SCRIPT | FILE] [ARGS...]",
		Short: "Run a shell script with the built-in utilities",
		Long: `Run a POSIX shell script in an embedded interpreter.

Commands named like a built-in utility (cat, cut, find, head, uniq, wc) run
in-process; everything else is looked up in PATH. The script is read from
-c, from FILE, or from standard input.`,
		Example: `  textr sh -c 'echo a,b | cut -d , -f 2'
  textr sh build.sh arg1 arg2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runShell(cmd, script, cmd.Flags().Changed("command"), args)
		},
	}

	shCmd.Flags().StringVarP(&script, "command", "c", "", "read the script from this string")
	// Flags after the script name belong to the script.
	shCmd.Flags().SetInterspersed(false)

	return shCmd
}

// runShell parses and runs a script, propagating its exit status.
func (app *App) runShell(cmd *cobra.Command, script string, fromFlag bool, args []string) error {
	ctx := cmd.Context()
	app.warnConfigError()
	logger := log.FromContext(ctx)

	name, params := "-c", args
	if !fromFlag {
		var err error
		name, script, params, err = app.readScript(args)
		if err != nil {
			return app.shellFailure(cmd, issue.NewErrorContext().
				WithOperation("read script").
				WithResource(name).
				WithSuggestion("Check that the script file exists and is readable").
				WithIssue(issue.ScriptExecutionFailedId).
				Wrap(err).
				BuildError())
		}
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return app.shellFailure(cmd, issue.NewErrorContext().
			WithOperation("parse script").
			WithResource(name).
			WithSuggestion("Check the script for syntax errors").
			WithIssue(issue.ScriptExecutionFailedId).
			Wrap(err).
			BuildError())
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = ""
	}

	opts := []interp.RunnerOption{
		interp.StdIO(app.stdin, app.stdout, app.stderr),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.Dir(dir),
		interp.ExecHandlers(app.execHandler),
	}
	// Prepend "--" so that script arguments such as "-v" are not read as shell options.
	if len(params) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, params...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return app.shellFailure(cmd, fmt.Errorf("creating interpreter: %w", err))
	}

	logger.Debug("running script", "name", name, "args", params)

	// Commands started by the interpreter pick the defaults up from the context.
	ctx = coreutils.WithDefaults(ctx, app.defaults())
	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			cmd.SilenceErrors = true
			return &ExitError{Code: int(exitStatus), Err: err}
		}
		return app.shellFailure(cmd, fmt.Errorf("executing script: %w", err))
	}

	return nil
}

// readScript returns the script name, its source and its positional
// parameters. Without arguments the script is read from stdin.
func (app *App) readScript(args []string) (name, src string, params []string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(app.stdin)
		return "stdin", string(data), nil, err
	}

	data, err := afero.ReadFile(app.FS, args[0])
	return args[0], string(data), args[1:], err
}

// shellFailure prints err and returns it as an exit status 1.
func (app *App) shellFailure(cmd *cobra.Command, err error) error {
	cmd.SilenceErrors = true
	fmt.Fprintln(app.stderr, ErrorStyle.Render(formatErrorForDisplay(err, app.verbose)))
	if app.verbose {
		app.renderLinkedIssue(err)
	}
	return &ExitError{Code: 1, Err: err}
}

// execHandler dispatches registered utilities to the registry and everything
// else to the next handler (host binaries).
func (app *App) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		util, ok := app.Registry.Lookup(args[0])
		if !ok {
			return next(ctx, args)
		}

		hc := coreutils.ExtractHandlerContext(ctx)
		hc.FS = app.FS
		if err := util.Run(coreutils.WithHandlerContext(ctx, hc), args); err != nil {
			fmt.Fprintln(hc.Stderr, err)
			return interp.NewExitStatus(1)
		}
		return nil
	}
}
