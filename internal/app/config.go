package app

import (
	"errors"
	"fmt"

	"github.com/vk/advent2020/internal/report"
)

// AppConfig holds all the necessary configuration for an App instance to run.
type AppConfig struct {
	// Day is the two-digit puzzle id. Ignored when List is set.
	Day string
	// ManifestPath is an optional .hcl file or directory that overrides the
	// built-in manifest.
	ManifestPath string
	InputDir     string

	LogFormat    string
	LogLevel     string
	OutputFormat string

	// List prints the registered puzzles instead of solving one.
	List bool
}

// Validate checks the fields that cannot be defaulted.
func (c *AppConfig) Validate() error {
	if !c.List && c.Day == "" {
		return errors.New("a puzzle day is required")
	}
	if c.OutputFormat != "" && !report.Valid(c.OutputFormat) {
		return fmt.Errorf("invalid output format %q: must be 'text', 'json' or 'yaml'", c.OutputFormat)
	}
	return nil
}
