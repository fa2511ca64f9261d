package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the global flags for YAML configuration. Command
// line and environment values take precedence over file values.
type fileConfig struct {
	LibclangDir string `yaml:"libclangDir"`
	HintDir     string `yaml:"hintDir"`
	LLVMConfig  string `yaml:"llvmConfig"`
	APILevel    string `yaml:"apiLevel"`
	Debug       bool   `yaml:"debug"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &cfg, nil
}
