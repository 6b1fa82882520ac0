// Package pipeline is the rename engine: it snapshots the direct children
// of a target directory, computes each matching entry's new name, vets it,
// resolves collisions, renames, and records one audit row per attempt.
//
// Files are processed first. Directories are processed in a second pass, only
// when requested, from a snapshot taken after the file pass has finished.
// A failing entry is recorded and skipped; only an invalid request or a
// broken audit sink stops a run.
package pipeline
