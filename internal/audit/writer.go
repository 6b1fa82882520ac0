package audit

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Sink receives log records as entries are processed.
type Sink interface {
	Write(r Record) error
}

// Writer writes records as CSV rows. Every row is flushed as soon as it is
// written, so a crash mid-run keeps all rows recorded so far.
type Writer struct {
	file io.Closer
	csv  *csv.Writer
	path string
	rows int
}

// NewWriter writes the header row to w and returns a Writer appending to it.
// Close does not close w.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	aw := &Writer{csv: cw}
	if err := aw.writeRow(Header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return aw, nil
}

// Create creates (or truncates) the log file at path on fs and writes the header.
func Create(fs afero.Fs, path string) (*Writer, error) {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot create log file %s: %w", path, err)
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.file = f
	w.path = path
	return w, nil
}

// Write appends r as one row.
func (w *Writer) Write(r Record) error {
	if err := w.writeRow(r.Row()); err != nil {
		return fmt.Errorf("failed to write CSV row %d: %w", w.rows+1, err)
	}
	w.rows++
	return nil
}

func (w *Writer) writeRow(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

// Rows returns the number of data rows written (the header excluded).
func (w *Writer) Rows() int { return w.rows }

// Path returns the file path for writers made by [Create], "" otherwise.
func (w *Writer) Path() string { return w.path }

// Close flushes pending output and closes the file opened by [Create].
func (w *Writer) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("error on closing log file: %w", err)
		}
		w.file = nil
	}
	return flushErr
}
