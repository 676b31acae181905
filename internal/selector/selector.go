// SPDX-License-Identifier: MPL-2.0

package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidToken is the sentinel wrapped by InvalidTokenError.
	ErrInvalidToken = errors.New("illegal list value")
	// ErrInvalidRange is the sentinel wrapped by InvalidRangeError.
	ErrInvalidRange = errors.New("invalid range")
)

type (
	// Range is a half-open interval [Start, End) of 0-based indices.
	// A valid Range always satisfies 0 <= Start < End.
	Range struct {
		Start int
		End   int
	}

	// List is an ordered selection of ranges, in the order the tokens
	// appeared in the expression.
	List []Range

	// InvalidTokenError reports a token (or the failing side of a range token)
	// that is not a valid position.
	InvalidTokenError struct {
		Token string
	}

	// InvalidRangeError reports a range token whose first position is not
	// strictly lower than its second.
	InvalidRangeError struct {
		First  int
		Second int
	}
)

// Error implements the error interface.
func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidToken, e.Token)
}

// Unwrap returns ErrInvalidToken for errors.Is compatibility.
func (e *InvalidTokenError) Unwrap() error { return ErrInvalidToken }

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("First number in range (%d) must be lower than second number (%d)", e.First, e.Second)
}

// Unwrap returns ErrInvalidRange for errors.Is compatibility.
func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// Parse converts a selection expression into a List.
//
// Tokens are validated left to right and the first invalid one determines the
// returned error. See parseToken for the order in which rules are applied.
func Parse(expr string) (List, error) {
	if expr == "" {
		return nil, &InvalidTokenError{Token: expr}
	}

	var list List
	for token := range strings.SplitSeq(expr, ",") {
		r, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(expr string) List {
	list, err := Parse(expr)
	if err != nil {
		panic(fmt.Sprintf("selector: Parse(%q): %v", expr, err))
	}
	return list
}

// parseToken applies the validation rules to a single token. The guards below
// run in a fixed order so that the reported error is deterministic:
//
//  1. characters other than digits and '-', empty token, lone '-'
//  2. plain integer equal to zero
//  3. more than one '-'
//  4. a range side that is empty or not an integer
//  5. a range side equal to zero
//  6. first side not lower than second side
func parseToken(token string) (Range, error) {
	if token == "" || token == "-" || strings.IndexFunc(token, isNotDigitOrHyphen) >= 0 {
		return Range{}, &InvalidTokenError{Token: token}
	}

	if !strings.Contains(token, "-") {
		n, err := parsePosition(token)
		if err != nil || n == 0 {
			return Range{}, &InvalidTokenError{Token: token}
		}
		return Range{Start: n - 1, End: n}, nil
	}

	if strings.Count(token, "-") > 1 {
		return Range{}, &InvalidTokenError{Token: token}
	}

	left, right, _ := strings.Cut(token, "-")
	first, err := parsePosition(left)
	if err != nil {
		return Range{}, &InvalidTokenError{Token: left}
	}
	second, err := parsePosition(right)
	if err != nil {
		return Range{}, &InvalidTokenError{Token: right}
	}

	if first == 0 || second == 0 {
		return Range{}, &InvalidTokenError{Token: "0"}
	}

	if first >= second {
		return Range{}, &InvalidRangeError{First: first, Second: second}
	}

	return Range{Start: first - 1, End: second}, nil
}

// parsePosition parses a digits-only string, stripping leading zeros.
// Zero is returned as a value, not an error; callers decide whether it is legal.
func parsePosition(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}

	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return 0, nil
	}
	return strconv.Atoi(trimmed)
}

func isNotDigitOrHyphen(r rune) bool {
	return r != '-' && (r < '0' || r > '9')
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Clamp limits the range to a sequence of length n. It returns the clamped
// bounds and false when the range lies entirely at or beyond n.
func (r Range) Clamp(n int) (start, end int, ok bool) {
	if r.Start >= n {
		return 0, 0, false
	}
	return r.Start, min(r.End, n), true
}

// String renders the range with 1-based positions ("3" or "3-5").
func (r Range) String() string {
	if r.Len() == 1 {
		return strconv.Itoa(r.End)
	}
	return strconv.Itoa(r.Start+1) + "-" + strconv.Itoa(r.End)
}

// String renders the list back into a selection expression.
// Parse(l.String()) yields a list equal to l.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, r := range l {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
