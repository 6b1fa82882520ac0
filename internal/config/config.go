// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation of the settings that do not depend on the filesystem.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultTargetDir is used when the folder positional argument is omitted.
const DefaultTargetDir = "."

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the command built in [NewCommand] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Rename request (set from positional args).
	Original    string
	Replacement string // May be empty: matched text is removed.
	TargetDir   string // Default: ".".

	// Behavior flags.
	RenameDirs bool   // Also rename immediate subdirectories.
	BackupLog  string // CSV audit log path. Empty: rename_log_<timestamp>.csv in the working directory.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional diagnostic log file (JSON lines).
}

// DefaultConfig returns a Config with every default applied. Used as the
// base before flag parsing applies CLI and environment overrides.
func DefaultConfig() Config {
	return Config{
		TargetDir:  DefaultTargetDir,
		RenameDirs: false,
		Verbose:    false,
		ColorMode:  ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the enum fields and that a target directory is set.
// Checks on the rename strings themselves live in package check, because
// they are part of the engine's preconditions.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.TargetDir == "" {
		return errors.New("target folder must not be empty")
	}
	return nil
}
