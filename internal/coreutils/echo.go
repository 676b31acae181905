// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// echoCommand implements the echo utility.
type echoCommand struct {
	baseCommand
}

// newEchoCommand creates a new echo command.
func newEchoCommand() *echoCommand {
	return &echoCommand{
		baseCommand: baseCommand{
			name:  "echo",
			short: "Print arguments",
			usage: "echo [-n] TEXT...",
			flags: flagInfos(func(fs *pflag.FlagSet) {
				fs.BoolP("omit-newline", "n", false, "do not print the trailing newline")
			}),
		},
	}
}

// Run executes the echo command.
func (c *echoCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := newFlagSet(c.name)
	omitNewline := fs.BoolP("omit-newline", "n", false, "do not print the trailing newline")
	if done, err := c.parseFlags(fs, args, hc.Stdout); done || err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return wrapError(c.name, newUsageError("at least one TEXT argument is required"))
	}

	ending := "\n"
	if *omitNewline {
		ending = ""
	}
	fmt.Fprint(hc.Stdout, strings.Join(fs.Args(), " ")+ending)
	return nil
}
