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
	// wcCommand implements the wc (word count) utility.
	wcCommand struct {
		baseCommand
	}

	// wcOptions holds the parsed wc flags.
	wcOptions struct {
		lines bool
		words bool
		bytes bool
		chars bool
	}

	// wcCounts holds the counts for a file.
	wcCounts struct {
		lines int64
		words int64
		bytes int64
		chars int64
	}
)

// newWcCommand creates a new wc command.
func newWcCommand() *wcCommand {
	return &wcCommand{
		baseCommand: baseCommand{
			name:  "wc",
			short: "Print line, word and byte counts",
			usage: "wc [-l] [-w] [-c | -m] [FILE]...",
			flags: flagInfos(func(fs *pflag.FlagSet) {
				new(wcOptions).register(fs)
			}),
		},
	}
}

func (o *wcOptions) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.lines, "lines", "l", false, "print the line count")
	fs.BoolVarP(&o.words, "words", "w", false, "print the word count")
	fs.BoolVarP(&o.bytes, "bytes", "c", false, "print the byte count")
	fs.BoolVarP(&o.chars, "chars", "m", false, "print the character count")
}

// Run executes the wc command.
func (c *wcCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts wcOptions
	fs := newFlagSet(c.name)
	opts.register(fs)
	if done, err := c.parseFlags(fs, args, hc.Stdout); done || err != nil {
		return err
	}

	if opts.bytes && opts.chars {
		return wrapError(c.name, newUsageError("--bytes and --chars cannot be used together"))
	}

	// If no flags specified, show lines, words, and bytes
	if !opts.lines && !opts.words && !opts.bytes && !opts.chars {
		opts.lines, opts.words, opts.bytes = true, true, true
	}

	files := fs.Args()
	var total wcCounts

	err := ProcessFilesOrStdin(ctx, hc, files, c.name,
		func(r io.Reader, filename string, _, _ int) error {
			counts, countErr := c.count(r)
			if countErr != nil {
				return countErr
			}

			c.printCounts(hc.Stdout, counts, filename, opts)

			total.lines += counts.lines
			total.words += counts.words
			total.bytes += counts.bytes
			total.chars += counts.chars
			return nil
		})

	if len(files) > 1 {
		c.printCounts(hc.Stdout, total, "total", opts)
	}

	return err
}

// count reads from r and returns the counts using streaming I/O.
func (c *wcCommand) count(r io.Reader) (wcCounts, error) {
	var counts wcCounts
	reader := bufio.NewReader(r)
	inWord := false

	for {
		ru, size, err := reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return counts, fmt.Errorf("reading input: %w", err)
		}

		counts.bytes += int64(size)
		counts.chars++

		if ru == '\n' {
			counts.lines++
		}

		if unicode.IsSpace(ru) {
			inWord = false
		} else if !inWord {
			inWord = true
			counts.words++
		}
	}

	return counts, nil
}

// printCounts formats and prints the counts, each right-aligned in eight
// columns. Standard input is printed without a name.
func (c *wcCommand) printCounts(out io.Writer, counts wcCounts, name string, opts wcOptions) {
	var b strings.Builder

	if opts.lines {
		fmt.Fprintf(&b, "%8d", counts.lines)
	}
	if opts.words {
		fmt.Fprintf(&b, "%8d", counts.words)
	}
	if opts.bytes {
		fmt.Fprintf(&b, "%8d", counts.bytes)
	}
	if opts.chars {
		fmt.Fprintf(&b, "%8d", counts.chars)
	}

	if name != "-" {
		b.WriteString(" ")
		b.WriteString(name)
	}
	fmt.Fprintln(out, b.String())
}
