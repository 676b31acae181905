// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

type (
	// headCommand implements the head utility.
	headCommand struct {
		baseCommand
	}

	// headOptions holds the parsed head flags.
	headOptions struct {
		lines int
		bytes int
	}
)

// newHeadCommand creates a new head command.
func newHeadCommand() *headCommand {
	return &headCommand{
		baseCommand: baseCommand{
			name:  "head",
			short: "Print the first part of files",
			usage: "head [-n LINES | -c BYTES] [FILE]...",
			flags: flagInfos(func(fs *pflag.FlagSet) {
				new(headOptions).register(fs, Defaults{})
			}),
		},
	}
}

func (o *headOptions) register(fs *pflag.FlagSet, d Defaults) {
	fs.IntVarP(&o.lines, "lines", "n", d.headLines(), "number of lines to output")
	fs.IntVarP(&o.bytes, "bytes", "c", 0, "number of bytes to output")
}

// Run executes the head command.
func (c *headCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts headOptions
	fs := newFlagSet(c.name)
	opts.register(fs, hc.Defaults)
	if done, err := c.parseFlags(fs, args, hc.Stdout); done || err != nil {
		return err
	}

	byBytes := fs.Changed("bytes")
	switch {
	case byBytes && fs.Changed("lines"):
		return wrapError(c.name, newUsageError("--lines and --bytes cannot be used together"))
	case byBytes && opts.bytes < 1:
		return wrapError(c.name, newUsageError("illegal byte count -- %d", opts.bytes))
	case !byBytes && opts.lines < 1:
		return wrapError(c.name, newUsageError("illegal line count -- %d", opts.lines))
	}

	headerWritten := false
	return ProcessFilesOrStdin(ctx, hc, fs.Args(), c.name,
		func(r io.Reader, filename string, _, total int) error {
			// Print header for multiple files
			if total > 1 {
				if headerWritten {
					fmt.Fprintln(hc.Stdout)
				}
				fmt.Fprintf(hc.Stdout, "==> %s <==\n", filename)
				headerWritten = true
			}
			if byBytes {
				return c.copyBytes(hc.Stdout, r, int64(opts.bytes))
			}
			return c.copyLines(hc.Stdout, r, opts.lines)
		})
}

// copyLines writes the first n lines of in, keeping their original endings.
func (c *headCommand) copyLines(out io.Writer, in io.Reader, n int) error {
	reader := bufio.NewReader(in)

	for range n {
		line, err := reader.ReadString('\n')
		if line != "" {
			fmt.Fprint(out, line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	return nil
}

// copyBytes writes the first n bytes of in.
func (c *headCommand) copyBytes(out io.Writer, in io.Reader, n int64) error {
	if _, err := io.CopyN(out, in, n); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
