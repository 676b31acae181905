// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// testWorkDir is the working directory used with in-memory filesystems.
const testWorkDir = "/work"

// cmdResult captures the output of a command run.
type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// newMemFS returns an in-memory filesystem populated with files relative to
// testWorkDir.
func newMemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(testWorkDir, 0o755); err != nil {
		t.Fatalf("failed to create work dir: %v", err)
	}
	for name, content := range files {
		path := filepath.Join(testWorkDir, name)
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	return fs
}

// runCmd runs cmd against fs with the given stdin and arguments.
// args[0] must be the command name.
func runCmd(t *testing.T, cmd Command, fs afero.Fs, stdin string, args ...string) cmdResult {
	t.Helper()
	return runCmdWithDefaults(t, cmd, fs, Defaults{}, stdin, args...)
}

// runCmdWithDefaults is runCmd with configured defaults.
func runCmdWithDefaults(t *testing.T, cmd Command, fs afero.Fs, d Defaults, stdin string, args ...string) cmdResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	ctx := WithHandlerContext(t.Context(), &HandlerContext{
		Stdin:     strings.NewReader(stdin),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Dir:       testWorkDir,
		LookupEnv: os.LookupEnv,
		FS:        fs,
		Defaults:  d,
	})

	err := cmd.Run(ctx, args)
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
