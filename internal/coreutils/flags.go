// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// newFlagSet creates a flag set that returns parse errors instead of
// printing them or exiting.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// flagInfos describes the flags installed by register, in definition order.
func flagInfos(register func(fs *pflag.FlagSet)) []FlagInfo {
	fs := newFlagSet("")
	register(fs)

	var infos []FlagInfo
	fs.VisitAll(func(f *pflag.Flag) {
		infos = append(infos, FlagInfo{
			Name:        f.Name,
			ShortName:   f.Shorthand,
			Description: f.Usage,
			TakesValue:  f.Value.Type() != "bool",
		})
	})
	return infos
}

// parseFlags parses args[1:] into fs. When help was requested the usage is
// written to out and done is true; the caller should return nil.
func (c *baseCommand) parseFlags(fs *pflag.FlagSet, args []string, out io.Writer) (done bool, err error) {
	if len(args) > 0 {
		args = args[1:]
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n\n%s", c.usage, fs.FlagUsages())
			return true, nil
		}
		return false, wrapError(c.name, &UsageError{Msg: err.Error()})
	}
	return false, nil
}
