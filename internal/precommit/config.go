// Package precommit reads the subset of the pre-commit configuration
// that exclusion checks inspect.
package precommit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the canonical name of the pre-commit configuration file.
const ConfigFile = ".pre-commit-config.yaml"

// Config mirrors the parts of .pre-commit-config.yaml this tool reads.
// Unknown keys are ignored.
type Config struct {
	Repos []Repo `yaml:"repos"`
}

// Repo is one entry of the top-level repos list.
type Repo struct {
	Repo  string       `yaml:"repo"`
	Hooks []HookConfig `yaml:"hooks"`
}

// HookConfig is a single hook declaration inside a repo entry.
type HookConfig struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Exclude string `yaml:"exclude"`
}

// HasExcludes reports whether the hook declares a usable exclude field.
// The pre-commit idiom "^$" (match nothing) counts as no exclude.
func (h HookConfig) HasExcludes() bool {
	return h.Exclude != "" && h.Exclude != "^$"
}

// Load reads and decodes a pre-commit configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pre-commit config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes pre-commit configuration YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding pre-commit config: %w", err)
	}
	return &cfg, nil
}
