package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runStart = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

type testApp struct {
	*app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return testApp{
		app: &app{
			stdout: stdout,
			stderr: stderr,
			fs:     afero.NewOsFs(),
			clock:  clockwork.NewFakeClockAt(runStart),
			cwd:    t.TempDir(),
		},
		stdout: stdout,
		stderr: stderr,
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestRun_Success(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "file_ORIG.txt"))

	code := a.run([]string{"--no-color", "ORIG", "NEW", dir})
	require.Equal(t, 0, code, a.stderr.String())

	assert.Equal(t, "1 entries changed\n", a.stdout.String())
	assert.FileExists(t, filepath.Join(dir, "file_NEW.txt"))
	assert.FileExists(t, filepath.Join(a.cwd, "rename_log_20261018_093000.csv"))
	assert.Contains(t, a.stderr.String(), "Done: 1 changed, 0 errors")
}

func TestRun_EmptyReplacementArg(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a_aa.txt"))

	code := a.run([]string{"aa", "", dir})
	require.Equal(t, 0, code, a.stderr.String())
	assert.FileExists(t, filepath.Join(dir, "a_.txt"))
}

func TestRun_BackupLogFlag(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x_ORIG"))
	logPath := filepath.Join(t.TempDir(), "custom.csv")

	code := a.run([]string{"--backup-log", logPath, "ORIG", "NEW", dir})
	require.Equal(t, 0, code, a.stderr.String())
	assert.FileExists(t, logPath)

	entries, err := os.ReadDir(a.cwd)
	require.NoError(t, err)
	assert.Empty(t, entries, "no auto-generated log when --backup-log is set")
}

func TestRun_PreconditionFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "file_ORIG.txt"))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"same strings", []string{"ORIG", "ORIG", dir}, "identical"},
		{"empty original", []string{"", "NEW", dir}, "empty"},
		{"forbidden", []string{"ORIG", "a|b", dir}, "forbidden"},
		{"missing folder", []string{"ORIG", "NEW", filepath.Join(dir, "missing")}, "does not exist"},
		{"not a directory", []string{"ORIG", "NEW", filepath.Join(dir, "file_ORIG.txt")}, "not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			code := a.run(tt.args)

			assert.Equal(t, 1, code)
			assert.Empty(t, a.stdout.String())
			assert.Contains(t, a.stderr.String(), tt.want)
			entries, err := os.ReadDir(a.cwd)
			require.NoError(t, err)
			assert.Empty(t, entries, "no log file on precondition failure")
			assert.FileExists(t, filepath.Join(dir, "file_ORIG.txt"))
		})
	}
}

func TestRun_BadArgs(t *testing.T) {
	a := newTestApp(t)
	code := a.run([]string{"only-one"})
	assert.Equal(t, 1, code)
	assert.Contains(t, a.stderr.String(), "subrename:")
}

func TestRun_Version(t *testing.T) {
	a := newTestApp(t)
	code := a.run([]string{"--version"})
	assert.Equal(t, 0, code)
	assert.Contains(t, a.stdout.String(), "subrename v"+version)
}
