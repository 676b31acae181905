// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// maxLineSize bounds the length of a single line read by line-oriented commands.
const maxLineSize = 1 << 20

// FileProcessor processes a single reader with file context.
// Parameters:
//   - r: the input stream to process
//   - filename: the original filename argument (or "-" for stdin)
//   - index: 0-based index of current file (0 for stdin)
//   - total: total number of files being processed (0 for stdin)
type FileProcessor func(r io.Reader, filename string, index, total int) error

// ProcessFilesOrStdin processes files from args or stdin if no files given.
// A "-" operand also reads stdin. Relative paths are resolved against hc.Dir
// and opened through hc.FS.
//
// A file that fails to open or whose processor returns an error is reported on
// hc.Stderr as "<file>: <error>" and skipped; the remaining files are still
// processed. If any file failed, a *FilesError is returned.
//
// Example usage (head command):
//
//	return ProcessFilesOrStdin(ctx, hc, fs.Args(), c.name,
//	    func(r io.Reader, filename string, index, total int) error {
//	        if total > 1 {
//	            fmt.Fprintf(hc.Stdout, "==> %s <==\n", filename)
//	        }
//	        return c.processReader(hc.Stdout, r, numLines)
//	    })
func ProcessFilesOrStdin(
	ctx context.Context,
	hc *HandlerContext,
	args []string,
	cmdName string,
	processor FileProcessor,
) error {
	logger := log.FromContext(ctx)

	if len(args) == 0 {
		if err := processor(hc.Stdin, "-", 0, 0); err != nil {
			reportFileError(hc.Stderr, "-", err)
			return wrapError(cmdName, &FilesError{Failed: 1, Total: 1})
		}
		return nil
	}

	total := len(args)
	failed := 0
	for i, file := range args {
		logger.Debug("processing file", "cmd", cmdName, "file", file)

		err := processFile(hc, file, func(r io.Reader) error {
			return processor(r, file, i, total)
		})
		if err != nil {
			failed++
			logger.Debug("skipping file", "cmd", cmdName, "file", file, "err", err)
			reportFileError(hc.Stderr, file, err)
		}
	}

	if failed > 0 {
		return wrapError(cmdName, &FilesError{Failed: failed, Total: total})
	}
	return nil
}

// processFile opens a file (or stdin for "-") and calls the processor,
// aggregating the close error via named return.
func processFile(hc *HandlerContext, file string, processor func(r io.Reader) error) (err error) {
	if file == "-" {
		return processor(hc.Stdin)
	}

	f, err := hc.fs().Open(hc.resolvePath(file))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return processor(f)
}

// resolvePath joins relative paths onto the working directory.
func (hc *HandlerContext) resolvePath(path string) string {
	if filepath.IsAbs(path) || hc.Dir == "" {
		return path
	}
	return filepath.Join(hc.Dir, path)
}

// reportFileError writes a per-file failure. The path is already part of the
// message, so *fs.PathError is reduced to its cause.
func reportFileError(w io.Writer, file string, err error) {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	fmt.Fprintf(w, "%s: %v\n", file, err)
}

// newLineScanner returns a line scanner accepting lines up to maxLineSize.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}
