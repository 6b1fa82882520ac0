// Command subrename replaces a literal substring in the names of the files
// (and optionally the immediate subdirectories) of one folder, recording
// every attempted rename in a CSV log.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/backmassage/subrename/internal/audit"
	"github.com/backmassage/subrename/internal/config"
	"github.com/backmassage/subrename/internal/display"
	"github.com/backmassage/subrename/internal/logging"
	"github.com/backmassage/subrename/internal/pipeline"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "1.0.0"

// errReported marks a failure already written to the log.
var errReported = errors.New("reported")

// app bundles the process-level collaborators so tests can swap them.
type app struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	clock  clockwork.Clock
	cwd    string // Directory for the auto-generated CSV log.
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "subrename: %v\n", err)
		os.Exit(1)
	}
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
		clock:  clockwork.NewRealClock(),
		cwd:    cwd,
	}
	os.Exit(a.run(os.Args[1:]))
}

// run parses args, executes the rename and returns the process exit code.
func (a *app) run(args []string) int {
	cfg := config.DefaultConfig()
	cmd := config.NewCommand(&cfg, version, a.rename)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	// Bootstrap errors (bad flags, bad config) happen before the logger
	// exists, so they go directly to stderr.
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(a.stderr, "subrename: %v\n", err)
		}
		return 1
	}
	return 0
}

// rename is the command body once cfg is populated.
func (a *app) rename(_ *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg, a.stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	// From here on all output goes through log; stdout only gets the summary.
	req := pipeline.Request{
		Original:    cfg.Original,
		Replacement: cfg.Replacement,
		TargetDir:   absPath(cfg.TargetDir),
		RenameDirs:  cfg.RenameDirs,
	}
	if err := req.Validate(a.fs); err != nil {
		log.Error("%v", err)
		return errReported
	}

	logPath := cfg.BackupLog
	if logPath == "" {
		logPath = audit.DefaultPath(a.cwd, a.clock.Now())
	}

	log.Info("Target folder: %s", req.TargetDir)
	log.Info("Replace: '%s' -> '%s'", req.Original, req.Replacement)
	log.Info("Rename directories: %s", display.YesNo(req.RenameDirs))
	log.Info("Log file: %s", logPath)

	env := pipeline.Env{Fs: a.fs, Log: log, Clock: a.clock}
	res, err := pipeline.RunToFile(env, req, logPath)
	if err != nil {
		log.Error("%v", err)
		return errReported
	}

	fmt.Fprintln(a.stdout, display.SummaryLine(res.Changed))
	log.Info("%s", display.DoneLine(res.Changed, res.Errors, res.LogPath))
	return nil
}

// absPath returns the absolute, symlink-resolved path when it can be
// resolved, and the absolute (or original) path otherwise, so that a
// missing folder is still reported by the precondition check.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
