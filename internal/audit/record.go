// Package audit writes the per-run CSV log: one row per attempted rename,
// whether it changed the entry or was rejected.
package audit

import "time"

// TimestampLayout formats the timestamp column (ISO-8601, seconds precision).
const TimestampLayout = "2006-01-02T15:04:05"

// Header is the exact first row of every log file.
var Header = []string{"timestamp", "original_path", "original_name", "new_name", "status", "message", "type"}

// Status is the outcome of one attempted rename.
type Status string

const (
	StatusChanged Status = "CHANGED"
	StatusError   Status = "ERROR"
)

// Kind labels the entry a record is about.
type Kind string

const (
	KindFile Kind = "FILE"
	KindDir  Kind = "DIR"
)

// Record is one row of the log.
type Record struct {
	Timestamp    time.Time
	OriginalPath string
	OriginalName string
	NewName      string
	Status       Status
	Message      string
	Kind         Kind
}

// Row renders r in [Header] column order.
func (r Record) Row() []string {
	return []string{
		r.Timestamp.Format(TimestampLayout),
		r.OriginalPath,
		r.OriginalName,
		r.NewName,
		string(r.Status),
		r.Message,
		string(r.Kind),
	}
}
