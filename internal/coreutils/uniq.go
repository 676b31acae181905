// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
)

type (
	// uniqCommand implements the uniq utility.
	uniqCommand struct {
		baseCommand
	}

	// uniqOptions holds the parsed uniq flags.
	uniqOptions struct {
		count      bool
		repeated   bool
		unique     bool
		ignoreCase bool
	}
)

// newUniqCommand creates a new uniq command.
func newUniqCommand() *uniqCommand {
	return &uniqCommand{
		baseCommand: baseCommand{
			name:  "uniq",
			short: "Report or omit repeated lines",
			usage: "uniq [-c] [-d | -u] [-i] [IN_FILE [OUT_FILE]]",
			flags: flagInfos(func(fs *pflag.FlagSet) {
				new(uniqOptions).register(fs)
			}),
		},
	}
}

func (o *uniqOptions) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.count, "count", "c", false, "prefix lines by the number of occurrences")
	fs.BoolVarP(&o.repeated, "repeated", "d", false, "only print duplicate lines")
	fs.BoolVarP(&o.unique, "unique", "u", false, "only print unique lines")
	fs.BoolVarP(&o.ignoreCase, "ignore-case", "i", false, "ignore case when comparing")
}

// Run executes the uniq command.
func (c *uniqCommand) Run(ctx context.Context, args []string) (err error) {
	hc := GetHandlerContext(ctx)

	var opts uniqOptions
	fs := newFlagSet(c.name)
	opts.register(fs)
	if done, parseErr := c.parseFlags(fs, args, hc.Stdout); done || parseErr != nil {
		return parseErr
	}

	operands := fs.Args()
	if len(operands) > 2 {
		return wrapError(c.name, newUsageError("extra operand %q", operands[2]))
	}

	inFile := "-"
	if len(operands) > 0 {
		inFile = operands[0]
	}

	// The input is opened first so that a missing IN_FILE leaves OUT_FILE alone.
	var in io.Reader = hc.Stdin
	if inFile != "-" {
		f, openErr := hc.fs().Open(hc.resolvePath(inFile))
		if openErr != nil {
			reportFileError(hc.Stderr, inFile, openErr)
			return wrapError(c.name, &FilesError{Failed: 1, Total: 1})
		}
		defer f.Close()
		in = f
	}

	out := hc.Stdout
	if len(operands) == 2 {
		outFile := operands[1]
		f, createErr := hc.fs().Create(hc.resolvePath(outFile))
		if createErr != nil {
			return wrapError(c.name, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = wrapError(c.name, closeErr)
			}
		}()
		out = f
	}

	if procErr := c.processInput(out, in, opts); procErr != nil {
		reportFileError(hc.Stderr, inFile, procErr)
		return wrapError(c.name, &FilesError{Failed: 1, Total: 1})
	}
	return nil
}

// processInput writes one line per group of adjacent equal lines. Lines are
// compared without trailing whitespace; the first line of each group is
// written with its original ending.
func (c *uniqCommand) processInput(out io.Writer, in io.Reader, opts uniqOptions) error {
	reader := bufio.NewReader(in)

	var prevKey, prevLine string
	count := 0

	outputLine := func(line string, cnt int) {
		if cnt == 0 {
			return
		}
		if opts.repeated && cnt <= 1 {
			return
		}
		if opts.unique && cnt > 1 {
			return
		}

		if opts.count {
			fmt.Fprintf(out, "%4d %s", cnt, line)
		} else {
			fmt.Fprint(out, line)
		}
	}

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			key := strings.TrimRightFunc(line, unicode.IsSpace)
			if opts.ignoreCase {
				key = strings.ToLower(key)
			}

			if count == 0 || key != prevKey {
				outputLine(prevLine, count)
				prevKey, prevLine, count = key, line, 0
			}
			count++
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	outputLine(prevLine, count)
	return nil
}
