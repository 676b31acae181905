// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/textr/textr/internal/coreutils"
	"github.com/textr/textr/internal/extract"
	"github.com/textr/textr/internal/issue"
	"github.com/textr/textr/internal/selector"
)

// newUtilityCommand exposes a registry command as a subcommand. Flag parsing
// is left to the utility so that its GNU-style flags reach it untouched.
func newUtilityCommand(app *App, util coreutils.Command) *cobra.Command {
	use, short := util.Name()+" [flags] [args]", ""
	if doc, ok := util.(coreutils.Documented); ok {
		use, short = doc.Usage(), doc.Short()
	}

	return &cobra.Command{
		Use:                use,
		Short:              short,
		Long:               utilityHelp(short, util.SupportedFlags()),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runUtility(cmd, util, args)
		},
	}
}

// runUtility runs util with the process stdio and the configured defaults.
func (app *App) runUtility(cmd *cobra.Command, util coreutils.Command, args []string) error {
	args, err := app.parseGlobalFlags(args)
	if err != nil {
		cmd.SilenceErrors = true
		fmt.Fprintln(app.stderr, ErrorStyle.Render(err.Error()))
		return &ExitError{Code: 2, Err: err}
	}

	ctx := app.initialize(cmd.Context())
	app.warnConfigError()

	dir, err := os.Getwd()
	if err != nil {
		dir = ""
	}
	ctx = coreutils.WithHandlerContext(ctx, &coreutils.HandlerContext{
		Stdin:     app.stdin,
		Stdout:    app.stdout,
		Stderr:    app.stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
		FS:        app.FS,
		Defaults:  app.defaults(),
	})

	if err := util.Run(ctx, append([]string{util.Name()}, args...)); err != nil {
		cmd.SilenceErrors = true
		app.renderError(err)
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// parseGlobalFlags consumes the root flags (--verbose, --config) that precede
// the utility's own arguments. Cobra leaves them in place for commands with
// flag parsing disabled.
func (app *App) parseGlobalFlags(args []string) ([]string, error) {
	for len(args) > 0 {
		switch arg := args[0]; {
		case arg == "-v" || arg == "--verbose":
			app.verbose = true
			args = args[1:]
		case arg == "--config":
			if len(args) < 2 {
				return nil, errors.New("flag needs an argument: --config")
			}
			app.cfgFile = args[1]
			args = args[2:]
		case strings.HasPrefix(arg, "--config="):
			app.cfgFile = strings.TrimPrefix(arg, "--config=")
			args = args[1:]
		default:
			return args, nil
		}
	}
	return args, nil
}

// renderError prints a utility failure. Per-file failures were already
// reported by the utility, so only the summary is added. In verbose mode the
// matching issue guidance is rendered below the error.
func (app *App) renderError(err error) {
	fmt.Fprintln(app.stderr, ErrorStyle.Render(err.Error()))

	if !app.verbose {
		return
	}
	id := issueForError(err)
	if id == 0 {
		return
	}
	rendered, renderErr := issue.Get(id).Render("auto")
	if renderErr != nil {
		app.logger.Debug("failed to render issue", "id", id, "err", renderErr)
		return
	}
	fmt.Fprint(app.stderr, rendered)
}

// issueForError maps a utility error to its issue catalog entry, or 0.
func issueForError(err error) issue.Id {
	switch {
	case errors.Is(err, selector.ErrInvalidToken), errors.Is(err, selector.ErrInvalidRange):
		return issue.InvalidSelectionId
	case errors.Is(err, extract.ErrInvalidDelimiter):
		return issue.InvalidDelimiterId
	case errors.Is(err, coreutils.ErrUsage):
		return issue.InvalidUsageId
	case errors.Is(err, coreutils.ErrSomeFilesFailed):
		return issue.FileNotFoundId
	default:
		return 0
	}
}

// utilityHelp renders the long help for a utility from its flag descriptions.
func utilityHelp(short string, flags []coreutils.FlagInfo) string {
	var sb strings.Builder
	sb.WriteString(short)
	sb.WriteString(".\n\n")
	sb.WriteString(SubtitleStyle.Render("Flags:"))
	sb.WriteString("\n")

	for _, f := range flags {
		name := "--" + f.Name
		if f.ShortName != "" {
			name = "-" + f.ShortName + ", " + name
		}
		if f.TakesValue {
			name += " VALUE"
		}
		fmt.Fprintf(&sb, "  %s\n      %s\n", FlagStyle.Render(name), f.Description)
	}
	fmt.Fprintf(&sb, "  %s\n      %s\n", FlagStyle.Render("-h, --help"), "show this help")

	return sb.String()
}
