package pipeline

// RunResult holds the aggregate counters of one run.
type RunResult struct {
	Changed int    // Entries renamed.
	Errors  int    // Entries rejected or failed.
	LogPath string // CSV log written by RunToFile; empty for Run.
}

// Attempted returns the number of entries that produced a log row.
func (r RunResult) Attempted() int {
	return r.Changed + r.Errors
}
