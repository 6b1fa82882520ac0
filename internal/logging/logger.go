// Package logging provides the leveled console logger used by the CLI and
// the rename engine. Output goes through zap: a colored console core and,
// when configured, a JSON file core receiving every level.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/subrename/internal/config"
	"github.com/backmassage/subrename/internal/term"
)

// Logger provides leveled, optionally colored logging with an optional file sink.
type Logger struct {
	zap     *zap.Logger
	file    *os.File
	verbose bool
}

// NewLogger builds a Logger from cfg writing console lines to console
// (stderr in the CLI, so that stdout only carries the run summary).
// Color auto-detection needs console to be an *os.File; any other writer
// only gets colors with ColorAlways. Call Close() when done.
func NewLogger(cfg *config.Config, console io.Writer) (*Logger, error) {
	var palette term.Palette
	if f, ok := console.(*os.File); ok {
		palette = term.Configure(cfg.ColorMode, f)
	} else {
		palette = term.NewPalette(cfg.ColorMode == config.ColorAlways)
	}
	return New(console, palette, cfg.Verbose, cfg.LogFile)
}

// New builds a Logger writing console lines to console. If logFile is not
// empty it is opened for append and receives JSON lines for every level.
func New(console io.Writer, palette term.Palette, verbose bool, logFile string) (*Logger, error) {
	l := &Logger{verbose: verbose}

	consoleLevel := zapcore.InfoLevel
	if verbose {
		consoleLevel = zapcore.DebugLevel
	}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(palette), zapcore.AddSync(console), consoleLevel),
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		cores = append(cores, zapcore.NewCore(fileEncoder(), zapcore.AddSync(f), zapcore.DebugLevel))
	}

	l.zap = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

// consoleEncoder renders "2006-01-02 15:04:05 [LEVEL] message".
func consoleEncoder(p term.Palette) zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "message",
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeLevel:      levelEncoder(p),
		ConsoleSeparator: " ",
	})
}

// fileEncoder logs time, level and message as JSON.
func fileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})
}

func levelEncoder(p term.Palette) zapcore.LevelEncoder {
	return func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		label := "[" + level.CapitalString() + "]"
		switch level {
		case zapcore.DebugLevel:
			label = p.Cyan.Sprint(label)
		case zapcore.InfoLevel:
			label = p.Blue.Sprint(label)
		case zapcore.WarnLevel:
			label = p.Yellow.Sprint(label)
		default:
			label = p.Red.Sprint(label)
		}
		enc.AppendString(label)
	}
}

// Close flushes buffered entries and closes the log file if one was opened.
func (l *Logger) Close() error {
	_ = l.zap.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool { return l.verbose }

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.zap.Info(fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.zap.Warn(fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.zap.Error(fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level. The console drops it unless verbose; the file keeps it.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.zap.Debug(fmt.Sprintf(format, args...))
}
