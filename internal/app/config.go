package app

import (
	"fmt"

	"github.com/umlfold/umlfold/internal/config"
)

// Config holds everything an App needs to run one invocation. Fields left
// empty by the CLI may be filled from the optional config file before
// normalization; flags always win over the file.
type Config struct {
	// InputPath is a model file or a directory of model files.
	InputPath string
	// ConfigPath optionally names an umlfold.hcl file.
	ConfigPath string
	// OutputDir receives one encoded document per input; empty means
	// standard output.
	OutputDir string
	// Format selects the output encoding: "json" or "yaml".
	Format string
	// Workers bounds how many inputs convert concurrently.
	Workers int

	LogFormat string
	LogLevel  string
}

// merge overlays file-level settings onto every field the CLI left unset.
func (c *Config) merge(fc *config.Config) {
	if c.OutputDir == "" {
		c.OutputDir = fc.OutputDir
	}
	if c.Format == "" {
		c.Format = fc.Format
	}
	if c.Workers == 0 {
		c.Workers = fc.Workers
	}
}

// normalize applies defaults and validates the merged configuration.
func (c *Config) normalize() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Format != "json" && c.Format != "yaml" {
		return fmt.Errorf("unsupported output format %q", c.Format)
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return nil
}
