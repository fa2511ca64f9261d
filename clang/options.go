package clang

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// LoadOption configures LoadLibrary and Binding.Load.
type LoadOption func(*loadConfig) error

type loadConfig struct {
	dir        string // directory or exact file, bypassing search
	hintDir    string
	llvmConfig string
	level      APILevel
	filenames  []string
	dirGlobs   []string
	goos       string
	logger     logrus.FieldLogger
	open       func(path string) (image, error)
}

func resolveLoadConfig(opts ...LoadOption) (*loadConfig, error) {
	cfg := &loadConfig{
		dir:        strings.TrimSpace(os.Getenv(EnvLibraryPath)),
		llvmConfig: strings.TrimSpace(os.Getenv(EnvLLVMConfigPath)),
		level:      LevelLatest,
		goos:       runtime.GOOS,
		logger:     discardLogger(),
		open:       openImage,
	}
	cfg.filenames = libraryFilenames(cfg.goos)
	cfg.dirGlobs = backupDirGlobs(cfg.goos)

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// WithLibraryDir forces loading from dir, which may also name the library
// file itself. It takes precedence over LIBCLANG_PATH; no other search
// source is consulted.
func WithLibraryDir(dir string) LoadOption {
	return func(cfg *loadConfig) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return fmt.Errorf("library directory cannot be empty")
		}
		cfg.dir = dir
		return nil
	}
}

// WithHintDir adds a directory searched after the environment override
// but before llvm-config and the platform backup directories.
func WithHintDir(dir string) LoadOption {
	return func(cfg *loadConfig) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return fmt.Errorf("hint directory cannot be empty")
		}
		cfg.hintDir = dir
		return nil
	}
}

// WithLLVMConfig sets the llvm-config executable asked for the LLVM
// installation prefix. It takes precedence over LLVM_CONFIG_PATH.
func WithLLVMConfig(path string) LoadOption {
	return func(cfg *loadConfig) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("llvm-config path cannot be empty")
		}
		cfg.llvmConfig = path
		return nil
	}
}

// WithAPILevel filters the symbol registry to entries available at the
// given level before binding. The default is LevelLatest.
func WithAPILevel(level APILevel) LoadOption {
	return func(cfg *loadConfig) error {
		if level < Level3_5 || level > LevelLatest {
			return fmt.Errorf("unknown API level %d", int(level))
		}
		cfg.level = level
		return nil
	}
}

// WithFilenames replaces the platform filename patterns matched within
// each searched directory. Useful for renamed or vendored builds.
func WithFilenames(patterns ...string) LoadOption {
	return func(cfg *loadConfig) error {
		if len(patterns) == 0 {
			return fmt.Errorf("filename pattern list cannot be empty")
		}
		for _, pattern := range patterns {
			if strings.TrimSpace(pattern) == "" {
				return fmt.Errorf("filename pattern cannot be empty")
			}
		}
		cfg.filenames = append([]string(nil), patterns...)
		return nil
	}
}

// WithLogger directs discovery progress (sources searched, candidates
// ranked, rejection reasons) to the given logger at debug level.
func WithLogger(logger logrus.FieldLogger) LoadOption {
	return func(cfg *loadConfig) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// withOpener swaps the image opener. Tests use it to bind against fakes
// instead of dlopen.
func withOpener(open func(path string) (image, error)) LoadOption {
	return func(cfg *loadConfig) error {
		if open == nil {
			return fmt.Errorf("opener cannot be nil")
		}
		cfg.open = open
		return nil
	}
}
