// SPDX-License-Identifier: MPL-2.0

package coreutils

import "context"

type (
	// Command defines the interface for built-in utility implementations.
	Command interface {
		// Name returns the command name (e.g., "cut", "wc").
		Name() string

		// Run executes the command with the given context and arguments.
		// The context carries the HandlerContext with stdin/stdout/stderr.
		// args[0] is the command name, args[1:] are the arguments.
		// Returns nil on success, or an error prefixed with "[textr] <cmd>:".
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the flags this implementation supports.
		// Used for help text and introspection.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a supported flag for a command.
	FlagInfo struct {
		// Name is the long flag name without dashes (e.g., "fields" for --fields).
		Name string
		// ShortName is the single-character alias (e.g., "f" for -f).
		// Empty if no short form exists.
		ShortName string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value (e.g., -n 10).
		TakesValue bool
	}

	// Documented is implemented by commands that provide help text.
	Documented interface {
		// Short returns a one-line description.
		Short() string
		// Usage returns the one-line synopsis.
		Usage() string
	}

	// baseCommand provides the Name, SupportedFlags and help methods shared by
	// all commands in this package.
	baseCommand struct {
		name  string
		short string
		usage string
		flags []FlagInfo
	}
)

// Name returns the command name.
func (c *baseCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *baseCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Short returns a one-line description of the command.
func (c *baseCommand) Short() string {
	return c.short
}

// Usage returns the one-line synopsis, e.g. "cut -f LIST [FILE]...".
func (c *baseCommand) Usage() string {
	return c.usage
}
