// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/textr/textr/internal/config"
)

// newConfigCommand creates the `textr config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage textr configuration",
		Long: `Manage textr configuration.

Configuration is stored in:
  - Linux: ~/.config/textr/config.cue
  - macOS: ~/Library/Application Support/textr/config.cue
  - Windows: %APPDATA%\textr\config.cue

Every key can be overridden with an environment variable named after it,
for example TEXTR_CUT_DELIMITER or TEXTR_HEAD_LINES.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig(cmd)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfigPath(cmd.OutOrStdout())
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig(cmd.OutOrStdout(), force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.configLoadFailure(cmd); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(app.cfg))
			return nil
		},
	})

	return cfgCmd
}

// configLoadFailure reports a configuration that failed to load, with the
// issue guidance, and returns it as the command error.
func (app *App) configLoadFailure(cmd *cobra.Command) error {
	if app.cfgErr == nil {
		return nil
	}

	cmd.SilenceErrors = true
	fmt.Fprintln(app.stderr, ErrorStyle.Render(formatErrorForDisplay(app.cfgErr, app.verbose)))
	app.renderLinkedIssue(app.cfgErr)
	return &ExitError{Code: 1, Err: app.cfgErr}
}

func (app *App) showConfig(cmd *cobra.Command) error {
	if err := app.configLoadFailure(cmd); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cfg := app.cfg

	// Style definitions using shared color palette
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if app.cfgPath != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), app.cfgPath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("cut"))
	fmt.Fprintf(out, "  delimiter: %s\n", valueStyle.Render(strconv.Quote(cfg.Cut.Delimiter)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("head"))
	fmt.Fprintf(out, "  lines: %s\n", valueStyle.Render(strconv.Itoa(cfg.Head.Lines)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(out, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))

	return nil
}

// showConfigPath prints the file the configuration was loaded from, or the
// default location when no file exists yet.
func (app *App) showConfigPath(out io.Writer) error {
	if app.cfgPath != "" {
		fmt.Fprintln(out, app.cfgPath)
		return nil
	}

	path, err := config.DefaultPath(app.configDir)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	fmt.Fprintf(out, "%s %s\n", path, SubtitleStyle.Render("(not created yet)"))
	return nil
}

func (app *App) initConfig(out io.Writer, force bool) error {
	path, created, err := config.CreateDefaultConfig(app.configDir, force)
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(out, "%s %s\n", WarningStyle.Render("Config file already exists:"), path)
		fmt.Fprintln(out, SubtitleStyle.Render("Use --force to overwrite it."))
		return nil
	}

	fmt.Fprintf(out, "%s %s\n", SuccessStyle.Render("Created config file:"), path)
	return nil
}
