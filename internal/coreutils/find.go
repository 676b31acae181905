// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const (
	// entryDir matches directories in --type.
	entryDir = "d"
	// entryFile matches regular files in --type.
	entryFile = "f"
	// entryLink matches symbolic links in --type.
	entryLink = "l"
)

type (
	// findCommand implements the find utility.
	findCommand struct {
		baseCommand
	}

	// findOptions holds the parsed find flags.
	findOptions struct {
		names []string
		types []string
	}

	// findMatcher holds the compiled find predicates.
	findMatcher struct {
		names []*regexp.Regexp
		types []string
	}
)

// newFindCommand creates a new find command.
func newFindCommand() *findCommand {
	return &findCommand{
		baseCommand: baseCommand{
			name:  "find",
			short: "Search for files in a directory hierarchy",
			usage: "find [PATH]... [-n REGEX]... [-t d|f|l]...",
			flags: flagInfos(func(fs *pflag.FlagSet) {
				new(findOptions).register(fs)
			}),
		},
	}
}

func (o *findOptions) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&o.names, "name", "n", nil, "match entry names against REGEX (repeatable)")
	fs.StringSliceVarP(&o.types, "type", "t", nil, "match entry type: d (directory), f (file), l (link)")
}

// Run executes the find command.
func (c *findCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	var opts findOptions
	fs := newFlagSet(c.name)
	opts.register(fs)
	if done, err := c.parseFlags(fs, args, hc.Stdout); done || err != nil {
		return err
	}

	matcher, err := newFindMatcher(opts)
	if err != nil {
		return wrapError(c.name, err)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	logger := log.FromContext(ctx)
	failed := 0
	for _, root := range paths {
		failed += c.walk(hc, logger, root, matcher)
	}

	if failed > 0 {
		return wrapError(c.name, &FilesError{Failed: failed, Total: failed})
	}
	return nil
}

// walk prints the entries under root accepted by m and returns the number of
// entries that could not be read.
func (c *findCommand) walk(hc *HandlerContext, logger *log.Logger, root string, m *findMatcher) int {
	base := filepath.Clean(hc.resolvePath(root))
	failed := 0

	// Walk errors are reported and skipped so the rest of the tree is still searched.
	_ = afero.Walk(hc.fs(), base, func(path string, info os.FileInfo, err error) error {
		display := displayPath(root, base, path)
		if err != nil {
			failed++
			logger.Debug("skipping entry", "cmd", c.name, "path", display, "err", err)
			reportFileError(hc.Stderr, display, err)
			return nil
		}

		if m.match(filepath.Base(display), info) {
			fmt.Fprintln(hc.Stdout, display)
		}
		return nil
	})

	return failed
}

// displayPath rewrites a walked path so it starts with the root operand as the
// user typed it ("." stays "./a" rather than becoming absolute).
func displayPath(root, base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." {
		return root
	}
	return strings.TrimRight(root, string(filepath.Separator)) + string(filepath.Separator) + rel
}

// newFindMatcher compiles the name patterns and validates the entry types.
func newFindMatcher(opts findOptions) (*findMatcher, error) {
	m := &findMatcher{}

	for _, name := range opts.names {
		re, err := regexp.Compile(name)
		if err != nil {
			return nil, newUsageError("invalid --name %q: %v", name, err)
		}
		m.names = append(m.names, re)
	}

	for _, t := range opts.types {
		switch t {
		case entryDir, entryFile, entryLink:
			m.types = append(m.types, t)
		default:
			return nil, newUsageError("invalid --type %q: must be one of d, f, l", t)
		}
	}

	return m, nil
}

// match reports whether an entry passes both the type and the name filters.
// An empty filter accepts everything.
func (m *findMatcher) match(name string, info os.FileInfo) bool {
	return m.matchType(info.Mode()) && m.matchName(name)
}

func (m *findMatcher) matchType(mode os.FileMode) bool {
	if len(m.types) == 0 {
		return true
	}
	for _, t := range m.types {
		switch {
		case t == entryDir && mode.IsDir():
			return true
		case t == entryFile && mode.IsRegular():
			return true
		case t == entryLink && mode&os.ModeSymlink != 0:
			return true
		}
	}
	return false
}

func (m *findMatcher) matchName(name string) bool {
	if len(m.names) == 0 {
		return true
	}
	for _, re := range m.names {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
