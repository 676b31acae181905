// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. The issue catalog holds Markdown guidance for the most
// common failures (bad selection lists, bad delimiters, missing files, broken
// configuration) rendered with glamour when verbose output is requested.
package issue
