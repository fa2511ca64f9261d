package clang

import (
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// defaultLLVMConfig is the helper tool asked for installation directories
// when no override is configured. It is resolved through PATH.
const defaultLLVMConfig = "llvm-config"

// LLVMConfig runs the llvm-config helper with a single query flag and
// returns the first line of its standard output. The executable is taken
// from LLVM_CONFIG_PATH when set, defaulting to "llvm-config" on PATH. A
// missing tool, a non-zero exit or empty output all return an error;
// callers running discovery treat that as "helper unavailable" and move
// on to the backup directories.
func LLVMConfig(arg string) (string, error) {
	return llvmConfigOutput(strings.TrimSpace(os.Getenv(EnvLLVMConfigPath)), arg)
}

func llvmConfigOutput(tool, arg string) (string, error) {
	if tool == "" {
		tool = defaultLLVMConfig
	}

	out, err := exec.Command(tool, arg).Output()
	if err != nil {
		return "", errors.Wrapf(err, "failed to run %s %s", tool, arg)
	}

	line, _, _ := strings.Cut(string(out), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.Errorf("%s %s produced no output", tool, arg)
	}
	return line, nil
}
