// SPDX-License-Identifier: MPL-2.0

// textr is a set of minimal Unix text utilities with an embedded shell.
package main

import cmd "github.com/textr/textr/cmd/textr"

func main() {
	cmd.Execute()
}
