// SPDX-License-Identifier: MPL-2.0

// Package selector parses cut-style selection expressions such as
// "1,3-5,15,19-20" into an ordered list of half-open, 0-based index ranges.
//
// A selection expression is a comma-separated list of tokens. Each token is
// either a single 1-based position ("7") or an ascending range of positions
// joined by one hyphen ("3-5"). Leading zeros are accepted ("007" is 7).
//
// The resulting List keeps tokens in the order they were written. Ranges are
// never sorted, merged or deduplicated, so "1,1" selects the first column
// twice, matching classic cut output.
//
// # Errors
//
// Parsing stops at the first invalid token. Two error kinds are reported:
//
//	illegal list value: "a"                                        (*InvalidTokenError)
//	First number in range (5) must be lower than second number (3) (*InvalidRangeError)
//
// Both wrap a sentinel (ErrInvalidToken, ErrInvalidRange) for errors.Is checks.
package selector
