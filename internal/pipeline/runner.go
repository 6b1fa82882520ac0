package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"

	"github.com/backmassage/subrename/internal/audit"
	"github.com/backmassage/subrename/internal/check"
	"github.com/backmassage/subrename/internal/naming"
)

// PathLengthWarning is the destination path length (in characters) from
// which a warning is logged. The rename still happens.
const PathLengthWarning = 260

// Logger is the minimal logging interface needed by the engine.
// Defined here (rather than importing the logging package) so that the
// engine stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Env carries everything a run touches besides the request itself.
type Env struct {
	Fs    afero.Fs
	Log   Logger
	Clock clockwork.Clock
}

// Request describes one rename run.
type Request struct {
	Original    string
	Replacement string // May be empty.
	TargetDir   string
	RenameDirs  bool
}

// Validate checks the run preconditions against fs. See package check.
func (r Request) Validate(fs afero.Fs) error {
	return check.Request(fs, r.Original, r.Replacement, r.TargetDir)
}

// passes is the fixed processing order: every file before any directory.
var passes = []audit.Kind{audit.KindFile, audit.KindDir}

var kindLabels = map[audit.Kind]string{
	audit.KindFile: "file",
	audit.KindDir:  "dir",
}

// Run validates req and renames the matching entries of req.TargetDir,
// writing one record per attempted entry to sink. An invalid request is
// returned as an error before anything is renamed or recorded. A failing
// entry is counted in RunResult.Errors and the run goes on. The only
// mid-run error is a sink write failure, which stops the run.
func Run(env Env, req Request, sink audit.Sink) (RunResult, error) {
	return run(env, req, sink, "")
}

// RunToFile validates req, creates the CSV log at logPath, runs, and closes
// the log on every exit path. An invalid request creates no log file.
func RunToFile(env Env, req Request, logPath string) (res RunResult, err error) {
	if err := req.Validate(env.Fs); err != nil {
		return RunResult{}, err
	}

	w, err := audit.Create(env.Fs, logPath)
	if err != nil {
		return RunResult{}, err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	res, err = run(env, req, w, logPath)
	res.LogPath = logPath
	return res, err
}

// run is Run with an optional path to leave alone (the active log file).
func run(env Env, req Request, sink audit.Sink, skipPath string) (RunResult, error) {
	var res RunResult
	if err := req.Validate(env.Fs); err != nil {
		return res, err
	}

	p := &pass{
		env:      env,
		req:      req,
		sink:     sink,
		stamp:    env.Clock.Now(),
		skipPath: skipPath,
		res:      &res,
	}
	for _, kind := range passes {
		if kind == audit.KindDir && !req.RenameDirs {
			continue
		}
		if err := p.process(kind); err != nil {
			return res, err
		}
	}
	return res, nil
}

// pass holds the per-run state shared by both kinds.
type pass struct {
	env      Env
	req      Request
	sink     audit.Sink
	stamp    time.Time
	skipPath string
	res      *RunResult
}

// process snapshots the entries of one kind and handles each in order.
func (p *pass) process(kind audit.Kind) error {
	names, err := Snapshot(p.env.Fs, p.req.TargetDir, kind)
	if err != nil {
		return fmt.Errorf("cannot list %s: %w", p.req.TargetDir, err)
	}
	for _, name := range names {
		if !strings.Contains(name, p.req.Original) {
			p.env.Log.Debug("Unchanged (%s): %s", kindLabels[kind], name)
			continue
		}
		if p.skipPath != "" && sameFile(filepath.Join(p.req.TargetDir, name), p.skipPath) {
			p.env.Log.Debug("Skip (%s): %s is the active log file", kindLabels[kind], name)
			continue
		}
		if err := p.processEntry(kind, name); err != nil {
			return err
		}
	}
	return nil
}

// processEntry handles one matching entry: substitute, vet, resolve the
// destination, rename, record. Only a sink failure is returned.
func (p *pass) processEntry(kind audit.Kind, name string) error {
	fs, log, dir := p.env.Fs, p.env.Log, p.req.TargetDir
	label := kindLabels[kind]
	oldPath := filepath.Join(dir, name)
	newName := naming.Substitute(name, p.req.Original, p.req.Replacement)

	rec := audit.Record{
		Timestamp:    p.stamp,
		OriginalPath: oldPath,
		OriginalName: name,
		NewName:      newName,
		Kind:         kind,
	}

	// --- Vet the computed name ---
	if err := naming.CheckName(newName); err != nil {
		log.Warn("Skipped (%s): %s -> %s : %v", label, oldPath, newName, err)
		return p.fail(rec, err.Error())
	}

	wantPath := filepath.Join(dir, newName)
	if n := utf8.RuneCountInString(wantPath); n >= PathLengthWarning {
		log.Warn("Long path (%d characters): %s", n, wantPath)
	}

	// --- Resolve collisions ---
	final, collided, err := naming.ResolveDestination(fs, dir, newName)
	if err != nil {
		log.Error("Failed (%s): %s : %v", label, oldPath, err)
		return p.fail(rec, "error: "+err.Error())
	}
	rec.NewName = final
	message := string(audit.StatusChanged)
	if collided {
		message = fmt.Sprintf("collision with %s, indexed as %s", newName, final)
		log.Warn("Collision (%s): %s exists, using %s", label, newName, final)
	}

	// --- Rename ---
	if err := fs.Rename(oldPath, filepath.Join(dir, final)); err != nil {
		log.Error("Failed (%s): %s : %v", label, oldPath, err)
		return p.fail(rec, "error: "+err.Error())
	}

	log.Info("Renamed (%s): %s -> %s", label, name, final)
	rec.Status = audit.StatusChanged
	rec.Message = message
	p.res.Changed++
	return p.write(rec)
}

// fail records rec as an ERROR row and counts it.
func (p *pass) fail(rec audit.Record, message string) error {
	rec.Status = audit.StatusError
	rec.Message = message
	p.res.Errors++
	return p.write(rec)
}

func (p *pass) write(rec audit.Record) error {
	if err := p.sink.Write(rec); err != nil {
		return errors.Join(ErrSinkWrite, err)
	}
	return nil
}

// ErrSinkWrite wraps audit sink failures, which abort the run.
var ErrSinkWrite = errors.New("cannot write rename log")

// sameFile reports whether a and b name the same path once made absolute.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
