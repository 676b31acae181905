// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is the sentinel wrapped by UsageError.
	ErrUsage = errors.New("usage error")
	// ErrSomeFilesFailed is the sentinel wrapped by FilesError.
	ErrSomeFilesFailed = errors.New("some files could not be processed")
)

type (
	// UsageError reports an invalid combination of flags or operands. It is
	// raised before any input is opened.
	UsageError struct {
		Msg string
	}

	// FilesError reports that one or more files failed. Each failure has
	// already been written to the command's stderr.
	FilesError struct {
		Failed int
		Total  int
	}
)

// newUsageError creates a UsageError with a formatted message.
func newUsageError(format string, args ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *UsageError) Error() string { return e.Msg }

// Unwrap returns ErrUsage for errors.Is compatibility.
func (e *UsageError) Unwrap() error { return ErrUsage }

// Error implements the error interface.
func (e *FilesError) Error() string {
	if e.Total == 1 {
		return "1 file could not be processed"
	}
	return fmt.Sprintf("%d of %d files could not be processed", e.Failed, e.Total)
}

// Unwrap returns ErrSomeFilesFailed for errors.Is compatibility.
func (e *FilesError) Unwrap() error { return ErrSomeFilesFailed }

// wrapError wraps an error with the [textr] prefix format.
// Returns nil if err is nil.
func wrapError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[textr] %s: %w", cmdName, err)
}
