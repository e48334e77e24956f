package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdtablefix/internal/config"
)

// nb makes NBSP visible in expected strings.
const nb = "\u00A0"

// testEnv returns an Environment with buffered writers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		Config: config.DefaultConfig(),
	}
	return env, &stdout, &stderr
}

// writeDoc creates a markdown file in a temp dir and returns its path.
func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunMain_EndToEnd(t *testing.T) {
	input := "| `x = 1 # comment` | y |\n" +
		"\n" +
		"A plain paragraph.\n"
	path := writeDoc(t, input)
	env, stdout, stderr := testEnv()

	code := runMain([]string{"mdtablefix", path}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
	}

	wantMsg := "Successfully processed '" + path + "'\n"
	if stdout.String() != wantMsg {
		t.Errorf("stdout = %q, want %q", stdout.String(), wantMsg)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "| `x" + nb + "=" + nb + "1 #" + nb + "comment` | y |\n" +
		"\n" +
		"A plain paragraph.\n"
	if string(got) != expected {
		t.Errorf("file content = %q, want %q", got, expected)
	}
}

func TestRunMain_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{"mdtablefix"}},
		{name: "two files", args: []string{"mdtablefix", "a.md", "b.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, stdout, stderr := testEnv()

			code := runMain(tt.args, env)

			if code != ExitError {
				t.Errorf("exit code = %d, want %d", code, ExitError)
			}
			if !strings.Contains(stderr.String(), "usage: mdtablefix") {
				t.Errorf("stderr should contain usage, got %q", stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout should be empty, got %q", stdout.String())
			}
		})
	}
}

func TestRunMain_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.md")
	env, _, stderr := testEnv()

	code := runMain([]string{"mdtablefix", path}, env)

	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr.String(), "failed to read markdown file") {
		t.Errorf("stderr should name the read failure, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), path) {
		t.Errorf("stderr should name the file, got %q", stderr.String())
	}
}

func TestRunMain_Quiet(t *testing.T) {
	path := writeDoc(t, "| `a b` |\n")
	env, stdout, _ := testEnv()

	code := runMain([]string{"mdtablefix", "-q", path}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty with --quiet, got %q", stdout.String())
	}
}

func TestRunMain_Verbose(t *testing.T) {
	path := writeDoc(t, "| `a b` | `c` |\n\nplain\n")
	env, _, stderr := testEnv()

	code := runMain([]string{"mdtablefix", "-v", path}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	want := "3 lines, 1 table lines, 2 code spans, changed=true\n"
	if stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestRunMain_DryRun(t *testing.T) {
	input := "| `a b` |\n"
	path := writeDoc(t, input)
	env, stdout, _ := testEnv()

	code := runMain([]string{"mdtablefix", "--dry-run", path}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}

	expected := "| `a" + nb + "b` |\n"
	if stdout.String() != expected {
		t.Errorf("stdout = %q, want %q", stdout.String(), expected)
	}

	// File must be untouched.
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != input {
		t.Errorf("dry run modified the file: %q, want %q", got, input)
	}
}

func TestRunMain_Version(t *testing.T) {
	env, stdout, _ := testEnv()

	code := runMain([]string{"mdtablefix", "--version"}, env)

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "mdtablefix") || !strings.Contains(stdout.String(), Version) {
		t.Errorf("stdout = %q, want version line", stdout.String())
	}
}

func TestRunMain_Help(t *testing.T) {
	env, _, stderr := testEnv()

	code := runMain([]string{"mdtablefix", "--help"}, env)

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stderr.String(), "Usage: mdtablefix") {
		t.Errorf("stderr should contain usage, got %q", stderr.String())
	}
}

func TestRunMain_ConfigQuiet(t *testing.T) {
	path := writeDoc(t, "| `a b` |\n")
	confPath := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(confPath, []byte("output:\n  quiet: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	env, stdout, _ := testEnv()

	code := runMain([]string{"mdtablefix", "-c", confPath, path}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty with quiet config, got %q", stdout.String())
	}
}

func TestRunMain_BadConfig(t *testing.T) {
	path := writeDoc(t, "| `a b` |\n")
	confPath := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(confPath, []byte("bogus: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	env, _, stderr := testEnv()

	code := runMain([]string{"mdtablefix", "-c", confPath, path}, env)

	if code != ExitError {
		t.Errorf("exit code = %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr.String(), "failed to parse config") {
		t.Errorf("stderr should name the config failure, got %q", stderr.String())
	}

	// The target file must not be touched when config loading fails.
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "| `a b` |\n" {
		t.Errorf("file was modified despite config error: %q", got)
	}
}

func TestRunMain_NoAtomic(t *testing.T) {
	path := writeDoc(t, "| `a b` |\n")
	env, _, stderr := testEnv()

	code := runMain([]string{"mdtablefix", "--no-atomic", path}, env)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d\nstderr: %s", code, ExitSuccess, stderr.String())
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "| `a"+nb+"b` |\n" {
		t.Errorf("file content = %q", got)
	}
}
