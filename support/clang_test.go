package support

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/amikos-tech/pure-clang/clang"
)

const fakeBanner = "clang version 17.0.6 (Fedora 17.0.6-2.fc39)\nTarget: x86_64-redhat-linux-gnu\nThread model: posix"

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a shell script helper")
	}
}

// writeFakeClang puts an executable script named name into dir that
// prints the given stdout and stderr and exits 0, whatever its
// arguments. The script pins its own PATH because several tests empty
// the test process's.
func writeFakeClang(t *testing.T, dir, name, stdout, stderr string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("#!/bin/sh\nPATH=/usr/bin:/bin\n")
	if stdout != "" {
		b.WriteString("cat <<'EOF'\n")
		b.WriteString(stdout)
		b.WriteString("\nEOF\n")
	}
	if stderr != "" {
		b.WriteString("cat >&2 <<'EOF'\n")
		b.WriteString(stderr)
		b.WriteString("\nEOF\n")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o755); err != nil {
		t.Fatalf("failed to write fake clang: %v", err)
	}
	return path
}

// silenceSearchEnv keeps a Find test away from the host: no override, no
// PATH, no working llvm-config.
func silenceSearchEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvClangPath, "")
	t.Setenv("PATH", "")
	t.Setenv(clang.EnvLLVMConfigPath, filepath.Join(t.TempDir(), "no-llvm-config"))
}

func TestMatchClangName(t *testing.T) {
	tests := []struct {
		name        string
		wantVersion string
		wantMatch   bool
	}{
		{"clang", "", true},
		{"clang-17", "17", true},
		{"clang-17.0.1", "17.0.1", true},
		{"clang.exe", "", true},
		{"clang-17.exe", "17", true},
		{"clang-format", "", false},
		{"clang-tidy", "", false},
		{"clang++", "", false},
		{"clang-", "", false},
		{"clanger", "", false},
		{"gcc", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			version, ok := matchClangName(tc.name)
			if ok != tc.wantMatch {
				t.Fatalf("matchClangName(%q) matched %v, want %v", tc.name, ok, tc.wantMatch)
			}
			if got := version.String(); got != tc.wantVersion {
				t.Fatalf("unexpected version: got %q, want %q", got, tc.wantVersion)
			}
		})
	}
}

func TestCandidatesInRanksByVersion(t *testing.T) {
	skipWithoutShell(t)
	dir := t.TempDir()
	writeFakeClang(t, dir, "clang", fakeBanner, "")
	writeFakeClang(t, dir, "clang-16", fakeBanner, "")
	want171 := writeFakeClang(t, dir, "clang-17.0.1", fakeBanner, "")
	want17 := writeFakeClang(t, dir, "clang-17", fakeBanner, "")
	writeFakeClang(t, dir, "clang-format", fakeBanner, "")
	writeFakeClang(t, dir, "clang-tidy", fakeBanner, "")
	if err := os.WriteFile(filepath.Join(dir, "clang-99"), []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got := candidatesIn(dir)
	if len(got) != 4 {
		t.Fatalf("unexpected candidates: %v", got)
	}
	if got[0] != want171 || got[1] != want17 {
		t.Fatalf("unexpected ranking: %v", got)
	}
}

func TestProbeExecutable(t *testing.T) {
	skipWithoutShell(t)
	path := writeFakeClang(t, t.TempDir(), "clang", fakeBanner, "")

	c, err := probeExecutable(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Path != path {
		t.Fatalf("unexpected path: got %q, want %q", c.Path, path)
	}
	if got := c.Version.String(); got != "17.0.6" {
		t.Fatalf("unexpected version: got %q, want %q", got, "17.0.6")
	}
	if c.Target != "x86_64-redhat-linux-gnu" {
		t.Fatalf("unexpected target: got %q", c.Target)
	}
}

func TestProbeExecutableRejectsGarbageBanner(t *testing.T) {
	skipWithoutShell(t)
	path := writeFakeClang(t, t.TempDir(), "clang", "gcc (GCC) 13.2.1", "")

	if _, err := probeExecutable(path, nil); err == nil {
		t.Fatal("expected an error for a non-clang banner")
	}
}

func TestFindWithOverride(t *testing.T) {
	skipWithoutShell(t)
	path := writeFakeClang(t, t.TempDir(), "clang", fakeBanner, "")
	t.Setenv(EnvClangPath, path)

	c, err := Find("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Path != path {
		t.Fatalf("unexpected path: got %q, want %q", c.Path, path)
	}
}

func TestFindOverrideDoesNotFallThrough(t *testing.T) {
	skipWithoutShell(t)
	broken := filepath.Join(t.TempDir(), "clang")
	if err := os.WriteFile(broken, []byte("not an executable"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	t.Setenv(EnvClangPath, broken)

	hint := t.TempDir()
	writeFakeClang(t, hint, "clang", fakeBanner, "")

	_, err := Find(hint)
	if err == nil {
		t.Fatal("expected an error for an unusable override")
	}
	if !strings.Contains(err.Error(), EnvClangPath) {
		t.Fatalf("error does not mention %s: %v", EnvClangPath, err)
	}
}

func TestFindInHintDir(t *testing.T) {
	skipWithoutShell(t)
	silenceSearchEnv(t)

	hint := t.TempDir()
	want := writeFakeClang(t, hint, "clang", fakeBanner, "")

	c, err := Find(hint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Path != want {
		t.Fatalf("unexpected path: got %q, want %q", c.Path, want)
	}
	if got := c.Version.String(); got != "17.0.6" {
		t.Fatalf("unexpected version: got %q, want %q", got, "17.0.6")
	}
}

func TestFindPrefersVersionedCandidate(t *testing.T) {
	skipWithoutShell(t)
	silenceSearchEnv(t)

	hint := t.TempDir()
	writeFakeClang(t, hint, "clang", "clang version 10.0.0\nTarget: x86_64-unknown-linux-gnu", "")
	want := writeFakeClang(t, hint, "clang-17.0.1", fakeBanner, "")

	c, err := Find(hint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Path != want {
		t.Fatalf("unexpected path: got %q, want %q", c.Path, want)
	}
	if got := c.Version.String(); got != "17.0.6" {
		t.Fatalf("unexpected version: got %q, want %q", got, "17.0.6")
	}
}

func TestFindSkipsBrokenCandidate(t *testing.T) {
	skipWithoutShell(t)
	silenceSearchEnv(t)

	hint := t.TempDir()
	if err := os.WriteFile(filepath.Join(hint, "clang-18"), []byte("not a script"), 0o755); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	want := writeFakeClang(t, hint, "clang-17", fakeBanner, "")

	c, err := Find(hint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Path != want {
		t.Fatalf("unexpected path: got %q, want %q", c.Path, want)
	}
}

func TestFindSearchesPathDirectories(t *testing.T) {
	skipWithoutShell(t)
	silenceSearchEnv(t)

	dir := t.TempDir()
	want := writeFakeClang(t, dir, "clang-16", fakeBanner, "")
	t.Setenv("PATH", dir)

	c, err := Find("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Path != want {
		t.Fatalf("unexpected path: got %q, want %q", c.Path, want)
	}
}

func TestFindUsesLLVMConfigBindir(t *testing.T) {
	skipWithoutShell(t)
	silenceSearchEnv(t)

	bindir := t.TempDir()
	want := writeFakeClang(t, bindir, "clang", fakeBanner, "")

	tool := filepath.Join(t.TempDir(), "llvm-config")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\necho '"+bindir+"'\n"), 0o755); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	t.Setenv(clang.EnvLLVMConfigPath, tool)

	c, err := Find("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Path != want {
		t.Fatalf("unexpected path: got %q, want %q", c.Path, want)
	}
}

func TestFindErrorFormat(t *testing.T) {
	err := &FindError{Rejections: []clang.Rejection{
		{Path: "/opt/llvm/bin/clang-9", Reason: "exit status 1"},
	}}

	msg := err.Error()
	if !strings.Contains(msg, "/opt/llvm/bin/clang-9") {
		t.Fatalf("message does not list the rejection: %q", msg)
	}
	if !strings.Contains(msg, EnvClangPath) {
		t.Fatalf("message does not mention %s: %q", EnvClangPath, msg)
	}

	var ferr *FindError
	if !errors.As(error(err), &ferr) {
		t.Fatal("FindError does not satisfy errors.As")
	}
}

func TestSearchPathsThroughDriver(t *testing.T) {
	skipWithoutShell(t)

	block := "#include <...> search starts here:\n /fake/lib/clang/17/include\n /fake/include\nEnd of search list."
	path := writeFakeClang(t, t.TempDir(), "clang", fakeBanner, block)

	c := &Clang{Path: path}
	paths, err := c.SearchPaths("c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/fake/lib/clang/17/include" || paths[1] != "/fake/include" {
		t.Fatalf("unexpected paths: %v", paths)
	}
}

func TestSearchPathsMissingBlock(t *testing.T) {
	skipWithoutShell(t)
	path := writeFakeClang(t, t.TempDir(), "clang", fakeBanner, "")

	c := &Clang{Path: path}
	if _, err := c.SearchPaths("c"); err == nil {
		t.Fatal("expected an error when the driver reports no search list")
	}
}
