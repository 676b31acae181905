// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/textr/textr/internal/extract"
	"github.com/textr/textr/internal/selector"
)

type (
	// cutCommand implements the cut utility.
	cutCommand struct {
		baseCommand
	}

	// cutOptions holds the parsed cut flags.
	cutOptions struct {
		fields        string
		bytes         string
		chars         string
		delimiter     string
		onlyDelimited bool
	}
)

// newCutCommand creates a new cut command.
func newCutCommand() *cutCommand {
	return &cutCommand{
		baseCommand: baseCommand{
			name:  "cut",
			short: "Print selected parts of each line",
			usage: "cut (-f LIST [-d DELIM] [-s] | -b LIST | -c LIST) [FILE]...",
			flags: flagInfos(func(fs *pflag.FlagSet) {
				new(cutOptions).register(fs, Defaults{})
			}),
		},
	}
}

func (o *cutOptions) register(fs *pflag.FlagSet, d Defaults) {
	fs.StringVarP(&o.fields, "fields", "f", "", "select only these fields")
	fs.StringVarP(&o.bytes, "bytes", "b", "", "select only these bytes")
	fs.StringVarP(&o.chars, "chars", "c", "", "select only these characters")
	fs.StringVarP(&o.delimiter, "delimiter", "d", d.delimiter(), "use DELIM instead of TAB for field delimiter")
	fs.BoolVarP(&o.onlyDelimited, "only-delimited", "s", false, "do not print lines not containing delimiters")
}

// Run executes the cut command.
func (c *cutCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts cutOptions
	fs := newFlagSet(c.name)
	opts.register(fs, hc.Defaults)
	if done, err := c.parseFlags(fs, args, hc.Stdout); done || err != nil {
		return err
	}

	list, mode, err := c.resolve(fs, opts)
	if err != nil {
		return wrapError(c.name, err)
	}
	log.FromContext(ctx).Debug("parsed selection", "cmd", c.name, "mode", mode, "list", list)

	return ProcessFilesOrStdin(ctx, hc, fs.Args(), c.name,
		func(r io.Reader, _ string, _, _ int) error {
			return c.processReader(hc.Stdout, r, list, mode)
		})
}

// resolve validates the delimiter and the flag combination, then parses the
// selection list. It runs before any file is opened.
func (c *cutCommand) resolve(fs *pflag.FlagSet, opts cutOptions) (selector.List, extract.Mode, error) {
	delim, err := extract.ParseDelimiter(opts.delimiter)
	if err != nil {
		return nil, nil, err
	}

	var (
		expr  string
		mode  extract.Mode
		count int
	)
	if fs.Changed("fields") {
		expr, mode = opts.fields, extract.Fields{Delimiter: delim, OnlyDelimited: opts.onlyDelimited}
		count++
	}
	if fs.Changed("bytes") {
		expr, mode = opts.bytes, extract.Bytes{}
		count++
	}
	if fs.Changed("chars") {
		expr, mode = opts.chars, extract.Chars{}
		count++
	}

	switch {
	case count == 0:
		return nil, nil, newUsageError("you must specify a list of bytes, characters, or fields")
	case count > 1:
		return nil, nil, newUsageError("only one type of list may be specified")
	}

	list, err := selector.Parse(expr)
	if err != nil {
		return nil, nil, err
	}
	return list, mode, nil
}

// processReader writes the selection of every line read from in.
func (c *cutCommand) processReader(out io.Writer, in io.Reader, list selector.List, mode extract.Mode) error {
	scanner := newLineScanner(in)

	for n := 1; scanner.Scan(); n++ {
		line, keep, err := extract.Line(scanner.Text(), list, mode)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if keep {
			fmt.Fprintln(out, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
