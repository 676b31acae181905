// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/textr/textr/internal/extract"
	"github.com/textr/textr/internal/selector"
)

func TestCutCommand_Name(t *testing.T) {
	t.Parallel()

	cmd := newCutCommand()
	if got := cmd.Name(); got != "cut" {
		t.Errorf("Name() = %q, want %q", got, "cut")
	}
}

func TestCutCommand_SupportedFlags(t *testing.T) {
	t.Parallel()

	flags := newCutCommand().SupportedFlags()

	expected := map[string]string{"fields": "f", "bytes": "b", "chars": "c", "delimiter": "d", "only-delimited": "s"}
	for _, f := range flags {
		if short, ok := expected[f.Name]; ok {
			if f.ShortName != short {
				t.Errorf("--%s short name = %q, want %q", f.Name, f.ShortName, short)
			}
			delete(expected, f.Name)
		}
	}
	for name := range expected {
		t.Errorf("SupportedFlags() should include --%s", name)
	}
}

func TestCutCommand_Run(t *testing.T) {
	t.Parallel()

	fruits := "apple:red:fruit\nbanana:yellow:fruit\ncarrot:orange:vegetable\n"

	tests := []struct {
		name  string
		files map[string]string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "single field",
			files: map[string]string{"test.txt": fruits},
			args:  []string{"cut", "-d", ":", "-f", "1", "test.txt"},
			want:  "apple\nbanana\ncarrot\n",
		},
		{
			name:  "multiple fields",
			files: map[string]string{"test.txt": fruits},
			args:  []string{"cut", "-d:", "-f1,3", "test.txt"},
			want:  "apple:fruit\nbanana:fruit\ncarrot:vegetable\n",
		},
		{
			name:  "long flags",
			files: map[string]string{"test.txt": "a:b:c:d:e\n"},
			args:  []string{"cut", "--delimiter=:", "--fields=2-4", "test.txt"},
			want:  "b:c:d\n",
		},
		{
			name:  "flags after operand",
			files: map[string]string{"test.txt": "a,b,c,d\n"},
			args:  []string{"cut", "test.txt", "-d", ",", "-f", "1,3"},
			want:  "a,c\n",
		},
		{
			name:  "order preserved and repeated",
			stdin: "a,b,c\n",
			args:  []string{"cut", "-d", ",", "-f", "3,1,1"},
			want:  "c,a,a\n",
		},
		{
			name:  "default tab delimiter",
			stdin: "apple\tred\nbanana\tyellow\n",
			args:  []string{"cut", "-f", "2"},
			want:  "red\nyellow\n",
		},
		{
			name:  "line without delimiter passes through",
			stdin: "a,b\nplain\n",
			args:  []string{"cut", "-d", ",", "-f", "2"},
			want:  "b\nplain\n",
		},
		{
			name:  "only delimited",
			stdin: "a,b\nplain\n",
			args:  []string{"cut", "-s", "-d", ",", "-f", "2"},
			want:  "b\n",
		},
		{
			name:  "bytes",
			stdin: "hello\nworld\n",
			args:  []string{"cut", "-b", "1-3"},
			want:  "hel\nwor\n",
		},
		{
			name:  "chars",
			stdin: "héllo wörld\n",
			args:  []string{"cut", "-c", "1-5,7"},
			want:  "héllow\n",
		},
		{
			name:  "range past end",
			stdin: "abc\n",
			args:  []string{"cut", "-c", "2-10,20"},
			want:  "bc\n",
		},
		{
			name:  "stdin dash",
			stdin: "x y\n",
			args:  []string{"cut", "-d", " ", "-f", "2", "-"},
			want:  "y\n",
		},
		{
			name:  "multiple files",
			files: map[string]string{"a.txt": "1,2\n", "b.txt": "3,4\n"},
			args:  []string{"cut", "-d", ",", "-f", "2", "a.txt", "b.txt"},
			want:  "2\n4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCmd(t, newCutCommand(), newMemFS(t, tt.files), tt.stdin, tt.args...)
			if res.err != nil {
				t.Fatalf("Run() returned error: %v", res.err)
			}
			if res.stdout != tt.want {
				t.Errorf("output = %q, want %q", res.stdout, tt.want)
			}
		})
	}
}

func TestCutCommand_Run_ConfiguredDelimiter(t *testing.T) {
	t.Parallel()

	res := runCmdWithDefaults(t, newCutCommand(), newMemFS(t, nil), Defaults{Delimiter: ";"}, "a;b;c\n",
		"cut", "-f", "2")
	if res.err != nil {
		t.Fatalf("Run() returned error: %v", res.err)
	}
	if res.stdout != "b\n" {
		t.Errorf("output = %q, want %q", res.stdout, "b\n")
	}
}

func TestCutCommand_Run_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantIs  error
		wantMsg string
	}{
		{
			name:    "no list",
			args:    []string{"cut", "missing.txt"},
			wantIs:  ErrUsage,
			wantMsg: "[textr] cut: you must specify a list of bytes, characters, or fields",
		},
		{
			name:    "two lists",
			args:    []string{"cut", "-f", "1", "-b", "1", "missing.txt"},
			wantIs:  ErrUsage,
			wantMsg: "[textr] cut: only one type of list may be specified",
		},
		{
			name:    "multi-byte delimiter",
			args:    []string{"cut", "-d", ",,", "-f", "1", "missing.txt"},
			wantIs:  extract.ErrInvalidDelimiter,
			wantMsg: `[textr] cut: delimiter ",," must be a single byte`,
		},
		{
			name:    "invalid token",
			args:    []string{"cut", "-f", "1,a", "missing.txt"},
			wantIs:  selector.ErrInvalidToken,
			wantMsg: `[textr] cut: illegal list value: "a"`,
		},
		{
			name:    "invalid range",
			args:    []string{"cut", "-b", "3-2", "missing.txt"},
			wantIs:  selector.ErrInvalidRange,
			wantMsg: "[textr] cut: First number in range (3) must be lower than second number (2)",
		},
		{
			name:   "unknown flag",
			args:   []string{"cut", "-z", "missing.txt"},
			wantIs: ErrUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCmd(t, newCutCommand(), newMemFS(t, nil), "", tt.args...)
			if !errors.Is(res.err, tt.wantIs) {
				t.Fatalf("error = %v, want %v", res.err, tt.wantIs)
			}
			if tt.wantMsg != "" && res.err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", res.err.Error(), tt.wantMsg)
			}
			// Configuration errors are raised before any file is opened.
			if res.stderr != "" {
				t.Errorf("stderr = %q, want no file reports", res.stderr)
			}
		})
	}
}

func TestCutCommand_Run_MissingFileContinues(t *testing.T) {
	t.Parallel()

	fs := newMemFS(t, map[string]string{"a.txt": "a,b\n", "c.txt": "c,d\n"})
	res := runCmd(t, newCutCommand(), fs, "", "cut", "-d", ",", "-f", "1", "a.txt", "nope.txt", "c.txt")

	if !errors.Is(res.err, ErrSomeFilesFailed) {
		t.Fatalf("error = %v, want ErrSomeFilesFailed", res.err)
	}
	if res.stdout != "a\nc\n" {
		t.Errorf("output = %q, want %q", res.stdout, "a\nc\n")
	}
	if !strings.HasPrefix(res.stderr, "nope.txt: ") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestCutCommand_Run_InvalidUTF8StopsFile(t *testing.T) {
	t.Parallel()

	fs := newMemFS(t, map[string]string{
		"bad.txt":  "ok\nb\xffd\nskipped\n",
		"good.txt": "héllo\n",
	})
	res := runCmd(t, newCutCommand(), fs, "", "cut", "-c", "1-2", "bad.txt", "good.txt")

	if !errors.Is(res.err, ErrSomeFilesFailed) {
		t.Fatalf("error = %v, want ErrSomeFilesFailed", res.err)
	}
	if want := "ok\nhé\n"; res.stdout != want {
		t.Errorf("output = %q, want %q", res.stdout, want)
	}
	if want := "bad.txt: line 2: invalid UTF-8 at byte 1\n"; res.stderr != want {
		t.Errorf("stderr = %q, want %q", res.stderr, want)
	}
}

func TestCutCommand_Run_Help(t *testing.T) {
	t.Parallel()

	res := runCmd(t, newCutCommand(), newMemFS(t, nil), "", "cut", "--help")
	if res.err != nil {
		t.Fatalf("Run() returned error: %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "Usage: cut ") {
		t.Errorf("help output = %q", res.stdout)
	}
	if !strings.Contains(res.stdout, "--fields") {
		t.Errorf("help output should list --fields, got %q", res.stdout)
	}
}

func TestCutCommand_Run_HostFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("one two three\n"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	res := runCmd(t, newCutCommand(), afero.NewOsFs(), "", "cut", "-d", " ", "-f", "2-3", testFile)
	if res.err != nil {
		t.Fatalf("Run() returned error: %v", res.err)
	}
	if res.stdout != "two three\n" {
		t.Errorf("output = %q, want %q", res.stdout, "two three\n")
	}
}

func TestCutCommand_LogsParsedSelection(t *testing.T) {
	t.Parallel()

	var logs, stdout bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	ctx := log.WithContext(t.Context(), logger)
	ctx = WithHandlerContext(ctx, &HandlerContext{
		Stdin:  strings.NewReader("a,b,c\n"),
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
		Dir:    testWorkDir,
		FS:     afero.NewMemMapFs(),
	})

	if err := newCutCommand().Run(ctx, []string{"cut", "-d", ",", "-f", "3,1-2", "-"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := stdout.String(); got != "c,a,b\n" {
		t.Errorf("stdout = %q, want %q", got, "c,a,b\n")
	}

	out := logs.String()
	for _, want := range []string{"parsed selection", "mode=fields", "list=3,1-2", "processing file"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
