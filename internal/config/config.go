// Package config holds the runtime options for a rename run and the
// optional YAML config file that supplies defaults for them.
//
// Precedence is: built-in defaults, then the config file, then command
// line flags. A missing config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDeleteChar is the leading character that marks an edited line
// for deletion.
const DefaultDeleteChar = '#'

// Options are the effective settings for one rename run.
type Options struct {
	// DeleteChar marks an edited line for deletion when it is the
	// line's first byte.
	DeleteChar byte

	// Editor overrides editor resolution when non-empty. May contain
	// arguments, e.g. "code --wait".
	Editor string

	// Force allows overwriting existing files outside the original batch.
	Force bool

	// Silent suppresses per-operation status lines. Errors still print.
	Silent bool

	// Trash routes deletions through the system trash instead of
	// removing files permanently.
	Trash bool
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{DeleteChar: DefaultDeleteChar}
}

// Validate checks the options for semantic correctness.
func (o Options) Validate() error {
	if o.DeleteChar == 0 {
		return fmt.Errorf("delete character must not be empty")
	}
	if o.DeleteChar == '/' {
		return fmt.Errorf("delete character must not be %q", '/')
	}
	return nil
}

// DefaultPath returns the default config file location, honoring
// XDG_CONFIG_HOME and falling back to ~/.config/cbr/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cbr", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cbr", "config.yaml"), nil
}
