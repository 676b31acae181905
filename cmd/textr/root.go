// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/textr/textr/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the textr command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textr",
		Short: "Minimal Unix text utilities",
		Long: TitleStyle.Render("textr") + SubtitleStyle.Render(" - Minimal Unix text utilities") + `

textr bundles small text utilities (cut, cat, head, uniq, wc, ...) in one
binary and can run shell scripts that use them without touching your PATH.

` + SubtitleStyle.Render("Examples:") + `
  textr cut -d , -f 1,3 data.csv     Print the first and third CSV fields
  textr head -n 5 log.txt            Print the first five lines
  textr sh -c 'cat a b | uniq -c'    Run a pipeline with the built-in utilities
  textr config show                  Show the current configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Utilities parse their own flags, globals included.
			if cmd.DisableFlagParsing {
				return nil
			}
			cmd.SetContext(app.initialize(cmd.Context()))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/textr/config.cue)")

	for _, name := range app.Registry.Names() {
		util, _ := app.Registry.Lookup(name)
		rootCmd.AddCommand(newUtilityCommand(app, util))
	}
	rootCmd.AddCommand(newShellCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// handleError prints errors that were not already reported by the command
// that returned them.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// renderLinkedIssue prints the catalog entry linked to an ActionableError in
// err, if any.
func (app *App) renderLinkedIssue(err error) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return
	}
	linked := ae.CatalogIssue()
	if linked == nil {
		return
	}
	rendered, renderErr := linked.Render("auto")
	if renderErr != nil {
		if app.logger != nil {
			app.logger.Debug("failed to render issue", "id", linked.Id(), "err", renderErr)
		}
		return
	}
	fmt.Fprint(app.stderr, rendered)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
