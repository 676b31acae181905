// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"io"

	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/interp"
)

const (
	// DefaultDelimiter is the cut field delimiter used when none is configured.
	DefaultDelimiter = "\t"
	// DefaultHeadLines is the head line count used when none is configured.
	DefaultHeadLines = 10
)

type (
	// HandlerContext provides execution context for commands.
	HandlerContext struct {
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Dir is the current working directory.
		Dir string
		// LookupEnv retrieves environment variables.
		LookupEnv func(string) (string, bool)
		// FS is the filesystem files are opened from. Nil means the host filesystem.
		FS afero.Fs
		// Defaults holds configurable default flag values.
		Defaults Defaults
	}

	// Defaults holds default values for flags that users may configure.
	// Zero fields fall back to the package defaults.
	Defaults struct {
		// Delimiter is the default cut field delimiter.
		Delimiter string
		// HeadLines is the default number of lines printed by head.
		HeadLines int
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}

	// defaultsContextKey is the context key for storing Defaults.
	defaultsContextKey struct{}
)

// ExtractHandlerContext builds a HandlerContext from mvdan/sh's context.
// This bridges the shell interpreter's context to command execution; defaults
// stored with WithDefaults on the runner's context are carried over.
func ExtractHandlerContext(ctx context.Context) *HandlerContext {
	hc := interp.HandlerCtx(ctx)
	return &HandlerContext{
		Stdin:  hc.Stdin,
		Stdout: hc.Stdout,
		Stderr: hc.Stderr,
		Dir:    hc.Dir,
		// expand.Variable.Set indicates if the variable was set.
		LookupEnv: func(name string) (string, bool) {
			v := hc.Env.Get(name)
			return v.Str, v.Set
		},
		FS:       afero.NewOsFs(),
		Defaults: DefaultsFromContext(ctx),
	}
}

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context.
// If the context was created with WithHandlerContext, it returns that value.
// Otherwise, it extracts from mvdan/sh's handler context.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok {
		return hc
	}
	return ExtractHandlerContext(ctx)
}

// WithDefaults stores configured defaults in the context so that commands
// started by the shell interpreter can see them.
func WithDefaults(ctx context.Context, d Defaults) context.Context {
	return context.WithValue(ctx, defaultsContextKey{}, d)
}

// DefaultsFromContext returns the defaults stored with WithDefaults, or the
// zero Defaults.
func DefaultsFromContext(ctx context.Context) Defaults {
	d, _ := ctx.Value(defaultsContextKey{}).(Defaults)
	return d
}

// fs returns the filesystem to open files from.
func (hc *HandlerContext) fs() afero.Fs {
	if hc.FS == nil {
		return afero.NewOsFs()
	}
	return hc.FS
}

// delimiter returns the configured cut delimiter or DefaultDelimiter.
func (d Defaults) delimiter() string {
	if d.Delimiter == "" {
		return DefaultDelimiter
	}
	return d.Delimiter
}

// headLines returns the configured head line count or DefaultHeadLines.
func (d Defaults) headLines() int {
	if d.HeadLines <= 0 {
		return DefaultHeadLines
	}
	return d.HeadLines
}
