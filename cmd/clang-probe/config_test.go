package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.yaml")
	content := `libclangDir: /opt/llvm/lib
hintDir: /opt/llvm-alt/lib
llvmConfig: /opt/llvm/bin/llvm-config
apiLevel: "3.8"
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/llvm/lib", cfg.LibclangDir)
	assert.Equal(t, "/opt/llvm-alt/lib", cfg.HintDir)
	assert.Equal(t, "/opt/llvm/bin/llvm-config", cfg.LLVMConfig)
	assert.Equal(t, "3.8", cfg.APILevel)
	assert.True(t, cfg.Debug)
}

func TestLoadFileConfigMissing(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadFileConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("libclangDir: [unclosed"), 0o644))

	_, err := loadFileConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
