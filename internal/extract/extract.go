// SPDX-License-Identifier: MPL-2.0

// Package extract applies a parsed selection list to lines of text, pulling
// out delimited fields, raw byte positions or character positions.
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/textr/textr/internal/selector"
)

var (
	// ErrInvalidDelimiter is the sentinel wrapped by DelimiterError.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	// ErrInvalidUTF8 is the sentinel wrapped by DecodeError.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

type (
	// Mode selects how a line is indexed. It is implemented only by Fields,
	// Bytes and Chars.
	Mode interface {
		// String returns the mode name for diagnostics.
		String() string
		// extract returns the selected segments and whether the line is kept.
		extract(line string, list selector.List) ([]string, bool, error)
		// separator is placed between segments when they are joined.
		separator() string
	}

	// Fields splits each line on a single-byte delimiter.
	Fields struct {
		Delimiter byte
		// OnlyDelimited drops lines that do not contain the delimiter instead
		// of passing them through unchanged.
		OnlyDelimited bool
	}

	// Bytes indexes raw bytes. Multi-byte characters cut by a range boundary
	// are not repaired.
	Bytes struct{}

	// Chars indexes Unicode code points.
	Chars struct{}

	// DelimiterError is returned when a delimiter is not exactly one byte.
	DelimiterError struct {
		Value string
	}

	// DecodeError is returned in Chars mode for a line that is not valid
	// UTF-8. Offset is the byte index of the first invalid sequence.
	DecodeError struct {
		Offset int
	}
)

// Error implements the error interface.
func (e *DelimiterError) Error() string {
	return fmt.Sprintf("delimiter %q must be a single byte", e.Value)
}

// Unwrap returns ErrInvalidDelimiter for errors.Is compatibility.
func (e *DelimiterError) Unwrap() error { return ErrInvalidDelimiter }

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at byte %d", ErrInvalidUTF8, e.Offset)
}

// Unwrap returns ErrInvalidUTF8 for errors.Is compatibility.
func (e *DecodeError) Unwrap() error { return ErrInvalidUTF8 }

// ParseDelimiter validates a delimiter string and returns its single byte.
func ParseDelimiter(s string) (byte, error) {
	if len(s) != 1 {
		return 0, &DelimiterError{Value: s}
	}
	return s[0], nil
}

// Extract returns the segments of line selected by list, in list order.
// In Fields mode each selected field is one segment; in Bytes and Chars mode
// each range yields one (possibly empty) segment. Chars mode fails with a
// *DecodeError when line is not valid UTF-8.
func Extract(line string, list selector.List, mode Mode) ([]string, error) {
	segments, _, err := mode.extract(line, list)
	return segments, err
}

// Line returns the output for one input line: the selected segments joined by
// the delimiter (Fields) or concatenated (Bytes, Chars). The boolean is false
// when the line must be suppressed entirely.
func Line(line string, list selector.List, mode Mode) (string, bool, error) {
	segments, keep, err := mode.extract(line, list)
	if err != nil || !keep {
		return "", false, err
	}
	return strings.Join(segments, mode.separator()), true, nil
}

// String returns the mode name.
func (f Fields) String() string { return "fields" }

func (f Fields) separator() string { return string(f.Delimiter) }

func (f Fields) extract(line string, list selector.List) ([]string, bool, error) {
	delim := string(f.Delimiter)
	if f.OnlyDelimited && !strings.Contains(line, delim) {
		return nil, false, nil
	}

	fields := strings.Split(line, delim)

	var selected []string
	matched := false
	for _, r := range list {
		start, end, ok := r.Clamp(len(fields))
		if !ok {
			continue
		}
		matched = true
		selected = append(selected, fields[start:end]...)
	}

	// Nothing in the selection touches this line: pass it through as-is.
	if !matched {
		return []string{line}, true, nil
	}
	return selected, true, nil
}

// String returns the mode name.
func (Bytes) String() string { return "bytes" }

func (Bytes) separator() string { return "" }

func (Bytes) extract(line string, list selector.List) ([]string, bool, error) {
	segments := make([]string, 0, len(list))
	for _, r := range list {
		start, end, ok := r.Clamp(len(line))
		if !ok {
			segments = append(segments, "")
			continue
		}
		segments = append(segments, line[start:end])
	}
	return segments, true, nil
}

// String returns the mode name.
func (Chars) String() string { return "chars" }

func (Chars) separator() string { return "" }

func (Chars) extract(line string, list selector.List) ([]string, bool, error) {
	// offsets[i] is the byte index of character i; the last entry is len(line).
	offsets := make([]int, 0, len(line)+1)
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, false, &DecodeError{Offset: i}
		}
		offsets = append(offsets, i)
		i += size
	}
	offsets = append(offsets, len(line))

	segments := make([]string, 0, len(list))
	for _, r := range list {
		start, end, ok := r.Clamp(len(offsets) - 1)
		if !ok {
			segments = append(segments, "")
			continue
		}
		segments = append(segments, line[offsets[start]:offsets[end]])
	}
	return segments, true, nil
}
