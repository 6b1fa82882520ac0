package config

// This file implements CLI flag parsing on top of cobra/pflag.
// Every flag can also be provided as an environment variable with the
// SUBRENAME_ prefix (dashes become underscores), resolved through viper.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to flag names to form environment variable names.
const EnvPrefix = "SUBRENAME"

const usageLong = `Replace a literal substring in the names of the files in a folder.

Only the folder's direct children are processed. Directories are renamed
too when --rename-dirs is set, always after all files. Existing entries are
never overwritten: a colliding name gets an index, e.g. "name(1).txt".
Every attempted rename is recorded in a CSV log.`

// RunFunc is called once flags are parsed and cfg is populated.
type RunFunc func(cmd *cobra.Command, cfg *Config) error

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor bool
	noColor    bool
}

// NewCommand builds the root command. Positional args and flags are parsed
// into cfg, environment overrides are applied, and then run is called.
func NewCommand(cfg *Config, version string, run RunFunc) *cobra.Command {
	var negated negatedFlags
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "subrename <original> <replacement> [folder]",
		Short:         "Batch rename files by literal substring replacement",
		Long:          usageLong,
		Version:       version,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(v, cmd.Flags(), cfg, &negated); err != nil {
				return err
			}
			applyNegatedFlags(cfg, &negated)
			parsePositionalArgs(args, cfg)
			return run(cmd, cfg)
		},
	}
	cmd.SetVersionTemplate("subrename v{{.Version}}\n")

	fs := cmd.Flags()
	fs.SortFlags = false
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	fs.BoolP("version", "V", false, "Print version and exit")

	return cmd
}

// defineBehaviorFlags registers --rename-dirs and --backup-log.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.RenameDirs, "rename-dirs", cfg.RenameDirs, "Also rename immediate subdirectories")
	fs.StringVar(&cfg.BackupLog, "backup-log", cfg.BackupLog, "CSV log path (default: ./rename_log_<timestamp>.csv)")
}

// defineDisplayFlags registers verbose, color and diagnostic log flags.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&cfg.LogFile, "log-file", "l", cfg.LogFile, "Append diagnostic logs to file")
}

// applyEnv fills every flag the user did not set on the command line from
// its SUBRENAME_* environment variable, if present.
func applyEnv(v *viper.Viper, fs *pflag.FlagSet, cfg *Config, n *negatedFlags) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "version" || f.Name == "help" {
			return
		}
		if bindErr := v.BindEnv(f.Name); bindErr != nil {
			err = bindErr
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		if setErr := fs.Set(f.Name, v.GetString(f.Name)); setErr != nil {
			err = fmt.Errorf("invalid %s_%s: %w", EnvPrefix, envKey(f.Name), setErr)
		}
	})
	return err
}

func envKey(flagName string) string {
	return strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Original, Replacement and (optionally) TargetDir.
// The replacement may be an empty string; cobra has already checked the count.
func parsePositionalArgs(args []string, cfg *Config) {
	cfg.Original = args[0]
	cfg.Replacement = args[1]
	if len(args) == 3 {
		cfg.TargetDir = NormalizeDirArg(args[2])
	}
}
