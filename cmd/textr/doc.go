// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for textr.
//
// Every utility in the coreutils registry is exposed as a subcommand that
// parses its own flags. The sh subcommand runs POSIX shell scripts in an
// embedded interpreter where the same utilities resolve before host binaries.
package cmd
