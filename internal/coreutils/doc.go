// SPDX-License-Identifier: MPL-2.0

// Package coreutils provides the built-in text utilities shared by the textr
// CLI and its embedded shell.
//
// # Supported Commands
//
//   - cat: Concatenate files, optionally numbering lines
//   - cut: Select fields, bytes or characters from each line
//   - echo: Print arguments
//   - find: Search for files by name pattern and type
//   - head: Output the first lines or bytes of files
//   - uniq: Collapse adjacent duplicate lines
//   - wc: Count lines, words, bytes and characters
//
// Every command is registered in DefaultRegistry during package
// initialization. The CLI exposes each one as a subcommand, and the `textr sh`
// interpreter routes matching command names to the registry before falling
// back to host binaries.
//
// # Flags
//
// Commands parse GNU-style flags with spf13/pflag: short and long forms
// ("-f 1" and "--fields=1"), combined short flags ("-nb") and flags placed
// after operands. "-h" and "--help" print the flag summary and succeed.
//
// # Error Format
//
// All errors are prefixed with "[textr]" and the command name:
//
//	[textr] cut: illegal list value: "a"
//	[textr] cut: delimiter ",," must be a single byte
//
// # Files
//
// Commands that read files treat no operands or "-" as standard input. A
// file that cannot be opened or read is reported on stderr as "<file>: <err>"
// and processing continues with the next one; the command then fails with
// ErrSomeFilesFailed so callers can exit non-zero.
package coreutils
