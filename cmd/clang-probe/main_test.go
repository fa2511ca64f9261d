package main

import (
	"bytes"
	"math/bits"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amikos-tech/pure-clang/clang"
	"github.com/amikos-tech/pure-clang/support"
)

// clearEnv makes key absent for the test. t.Setenv alone leaves an
// empty-but-present variable, which flag EnvVars bindings count as set.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

// writeLibFixture drops a plausible shared-library file into dir and
// returns its path. On ELF platforms the file carries a valid header for
// the host's pointer width.
func writeLibFixture(t *testing.T, dir string) string {
	t.Helper()
	name := "libclang.so.2.1"
	switch runtime.GOOS {
	case "darwin", "ios":
		name = "libclang-2.1.dylib"
	case "windows":
		name = "libclang-2.1.dll"
	}

	buf := make([]byte, 64)
	copy(buf, "\x7fELF")
	buf[4] = 1
	if bits.UintSize == 64 {
		buf[4] = 2
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"clang-probe"}, args...))
	return buf.String(), err
}

func TestLocateCommand(t *testing.T) {
	clearEnv(t, clang.EnvLibraryPath)
	dir := t.TempDir()
	path := writeLibFixture(t, dir)

	out, err := runApp(t, "--libclang-dir", dir, "locate")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "file version 2.1")
}

func TestLocateCommandEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeLibFixture(t, dir)
	t.Setenv(clang.EnvLibraryPath, dir)

	out, err := runApp(t, "locate")
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestLocateVerboseFlag(t *testing.T) {
	clearEnv(t, clang.EnvLibraryPath)
	dir := t.TempDir()
	path := writeLibFixture(t, dir)

	out, err := runApp(t, "--libclang-dir", dir, "locate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestLocateCommandNothingFound(t *testing.T) {
	clearEnv(t, clang.EnvLibraryPath)

	out, err := runApp(t, "--libclang-dir", t.TempDir(), "locate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), clang.EnvLibraryPath)
	assert.Empty(t, out)
}

func TestAPILevelValidation(t *testing.T) {
	clearEnv(t, clang.EnvLibraryPath)
	dir := t.TempDir()
	writeLibFixture(t, dir)

	_, err := runApp(t, "--libclang-dir", dir, "--api-level", "banana", "locate")
	require.Error(t, err)
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	clearEnv(t, clang.EnvLibraryPath)
	dir := t.TempDir()
	path := writeLibFixture(t, dir)

	cfgPath := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("libclangDir: "+dir+"\n"), 0o644))

	out, err := runApp(t, "--config", cfgPath, "locate")
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestFlagBeatsConfigFile(t *testing.T) {
	clearEnv(t, clang.EnvLibraryPath)
	good := t.TempDir()
	path := writeLibFixture(t, good)

	cfgPath := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("libclangDir: "+t.TempDir()+"\n"), 0o644))

	out, err := runApp(t, "--config", cfgPath, "--libclang-dir", good, "locate")
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestSymbolsStatusValidation(t *testing.T) {
	_, err := runApp(t, "symbols", "--status", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestVersionCommandLive(t *testing.T) {
	if os.Getenv(clang.EnvLibraryPath) == "" {
		t.Skip("LIBCLANG_PATH not set, skipping test")
	}

	out, err := runApp(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "clang")
}

func TestSymbolsCommandLive(t *testing.T) {
	if os.Getenv(clang.EnvLibraryPath) == "" {
		t.Skip("LIBCLANG_PATH not set, skipping test")
	}

	out, err := runApp(t, "symbols")
	require.NoError(t, err)
	assert.Contains(t, out, "clang_createIndex")
}

func TestDriverCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a shell script helper")
	}

	script := filepath.Join(t.TempDir(), "clang")
	body := "#!/bin/sh\ncat <<'EOF'\nclang version 17.0.6\nTarget: x86_64-redhat-linux-gnu\nEOF\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	t.Setenv(support.EnvClangPath, script)

	out, err := runApp(t, "driver")
	require.NoError(t, err)
	assert.Contains(t, out, script)
	assert.Contains(t, out, "17.0.6")
	assert.Contains(t, out, "x86_64-redhat-linux-gnu")
}
