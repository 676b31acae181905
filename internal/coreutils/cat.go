// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

type (
	// catCommand implements the cat utility.
	catCommand struct {
		baseCommand
	}

	// catOptions holds the parsed cat flags.
	catOptions struct {
		number         bool
		numberNonblank bool
	}
)

// newCatCommand creates a new cat command.
func newCatCommand() *catCommand {
	return &catCommand{
		baseCommand: baseCommand{
			name:  "cat",
			short: "Concatenate files and print them",
			usage: "cat [-n | -b] [FILE]...",
			flags: flagInfos(func(fs *pflag.FlagSet) {
				new(catOptions).register(fs)
			}),
		},
	}
}

func (o *catOptions) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.number, "number", "n", false, "number all output lines")
	fs.BoolVarP(&o.numberNonblank, "number-nonblank", "b", false, "number nonempty output lines")
}

// Run executes the cat command.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts catOptions
	fs := newFlagSet(c.name)
	opts.register(fs)
	if done, err := c.parseFlags(fs, args, hc.Stdout); done || err != nil {
		return err
	}

	if opts.number && opts.numberNonblank {
		return wrapError(c.name, newUsageError("--number and --number-nonblank cannot be used together"))
	}

	return ProcessFilesOrStdin(ctx, hc, fs.Args(), c.name,
		func(r io.Reader, _ string, _, _ int) error {
			return c.processReader(hc.Stdout, r, opts)
		})
}

// processReader copies lines from in to out, numbering them as requested.
// Numbering restarts for every file.
func (c *catCommand) processReader(out io.Writer, in io.Reader, opts catOptions) error {
	scanner := newLineScanner(in)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		if opts.number || (opts.numberNonblank && line != "") {
			lineNum++
			fmt.Fprintf(out, "%6d\t%s\n", lineNum, line)
			continue
		}
		fmt.Fprintln(out, line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
