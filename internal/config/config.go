package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Config struct {
	// MAINTAINER NOTE: if you add/change/remove config fields, keep the
	// CLI flag wiring in internal/cli in sync.
	Target  Target
	Output  Output
	Runtime Runtime
}

type Target struct {
	// RepoDir is the repository root to inspect (see --repo-dir).
	RepoDir string

	// Files is the list of repo-relative paths passed as positional
	// arguments by the hook runner. Empty means no explicit list.
	Files []string
}

type Output struct {
	// Format controls the console output format (see --format).
	// Allowed values: text, json, ndjson.
	Format string

	// Out writes structured results to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, ndjson. If empty, it is inferred from the
	// --out file extension.
	OutFormat string

	// QuietPass suppresses PASS results on the console (see --quiet-pass).
	QuietPass bool

	// NoColor disables colored console output (see --no-color).
	NoColor bool
}

type Runtime struct {
	// Verbose enables more detailed diagnostics (see --verbose).
	Verbose bool
}

func New() *Config {
	return &Config{
		Target: Target{
			RepoDir: ".",
		},
		Output: Output{
			Format: "text",
		},
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Target.RepoDir) == "" {
		return errors.New("--repo-dir must not be empty")
	}

	c.Output.Format = normalizeEnumValue(c.Output.Format)
	if c.Output.Format == "" {
		return errors.New("--format must be one of: text, json, ndjson")
	}
	if c.Output.Format != "text" && c.Output.Format != "json" && c.Output.Format != "ndjson" {
		return fmt.Errorf("unsupported --format: %s (must be one of: text, json, ndjson)", c.Output.Format)
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else {
			if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
				return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
			}
		}
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
