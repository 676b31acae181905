// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/textr/textr/internal/config"
	"github.com/textr/textr/internal/coreutils"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// App wires CLI services and shared dependencies. All Cobra command
	// handlers receive an App reference.
	App struct {
		Config   ConfigProvider
		Registry *coreutils.Registry
		FS       afero.Fs

		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer
		configDir string

		// Set by persistent flags.
		verbose bool
		cfgFile string

		// Set by initialize.
		cfg     *config.Config
		cfgPath string
		cfgErr  error
		logger  *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Registry *coreutils.Registry
		FS       afero.Fs
		Stdin    io.Reader
		Stdout   io.Writer
		Stderr   io.Writer
		// ConfigDir overrides the platform config directory.
		ConfigDir string
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:    deps.Config,
		Registry:  deps.Registry,
		FS:        deps.FS,
		stdin:     deps.Stdin,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		configDir: deps.ConfigDir,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Registry == nil {
		app.Registry = coreutils.DefaultRegistry
	}
	if app.FS == nil {
		app.FS = afero.NewOsFs()
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// loadOptions returns the config loading inputs from flags and overrides.
func (app *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: app.cfgFile,
		ConfigDirPath:  app.configDir,
	}
}

// initialize loads the configuration, builds the logger and returns ctx
// carrying it. A configuration that fails to load is recorded in cfgErr and
// replaced by the defaults.
func (app *App) initialize(ctx context.Context) context.Context {
	cfg, path, err := app.Config.Load(ctx, app.loadOptions())
	if err != nil {
		cfg, path = config.DefaultConfig(), ""
	}
	app.cfg, app.cfgPath, app.cfgErr = cfg, path, err

	// Apply verbose from config if not set via flag
	if !app.verbose {
		app.verbose = cfg.UI.Verbose
	}

	app.logger = newLogger(app.stderr, cfg.Log.Level, app.verbose)
	if path != "" {
		app.logger.Debug("loaded configuration", "path", path)
	}
	return log.WithContext(ctx, app.logger)
}

// warnConfigError surfaces a configuration load failure without aborting.
func (app *App) warnConfigError() {
	if app.cfgErr == nil {
		return
	}
	fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(app.cfgErr, app.verbose))
}

// defaults converts the loaded configuration into utility defaults.
func (app *App) defaults() coreutils.Defaults {
	if app.cfg == nil {
		return coreutils.Defaults{}
	}
	return coreutils.Defaults{
		Delimiter: app.cfg.Cut.Delimiter,
		HeadLines: app.cfg.Head.Lines,
	}
}

// newLogger creates the stderr logger. Verbose mode forces debug level.
func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	})
}
