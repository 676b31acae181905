// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"testing"
)

func TestEchoCommand_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single argument", []string{"echo", "Hello there"}, "Hello there\n"},
		{"joined with spaces", []string{"echo", "Hello", "there"}, "Hello there\n"},
		{"omit newline after text", []string{"echo", "Hello  there", "-n"}, "Hello  there"},
		{"omit newline before text", []string{"echo", "-n", "Hello", "there"}, "Hello there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCmd(t, newEchoCommand(), nil, "", tt.args...)
			if res.err != nil {
				t.Fatalf("Run() returned error: %v", res.err)
			}
			if res.stdout != tt.want {
				t.Errorf("output = %q, want %q", res.stdout, tt.want)
			}
		})
	}
}

func TestEchoCommand_Run_NoArgs(t *testing.T) {
	t.Parallel()

	res := runCmd(t, newEchoCommand(), nil, "", "echo")
	if !errors.Is(res.err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", res.err)
	}
}
