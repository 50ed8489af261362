package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger returns a logger that writes text to stderr and, when logFile
// is set, JSON lines to logFile. The cleanup func closes the file.
func SetupLogger(logFile string, level slog.Level) (*slog.Logger, func() error) {
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	noop := func() error { return nil }

	if logFile == "" {
		return slog.New(stderrHandler), noop
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		slog.New(stderrHandler).Warn("cannot create log directory, using stderr only", "error", err, "file", logFile)
		return slog.New(stderrHandler), noop
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.New(stderrHandler).Warn("cannot open log file, using stderr only", "error", err, "file", logFile)
		return slog.New(stderrHandler), noop
	}

	return SetupLoggerWithWriters(os.Stderr, file, level), file.Close
}

// SetupLoggerWithWriters fans out to a text handler on console and a JSON
// handler on file. A nil file yields a console-only logger.
func SetupLoggerWithWriters(console, file io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	consoleHandler := slog.NewTextHandler(console, opts)
	if file == nil {
		return slog.New(consoleHandler)
	}
	return slog.New(slogmulti.Fanout(consoleHandler, slog.NewJSONHandler(file, opts)))
}

// FileLogger returns a JSON logger writing only to logFile, for use while
// the terminal is owned by the interactive UI. Without a usable file the
// logger discards everything.
func FileLogger(logFile string, level slog.Level) (*slog.Logger, func() error) {
	noop := func() error { return nil }
	if logFile == "" {
		return slog.New(slog.DiscardHandler), noop
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.DiscardHandler), noop
	}
	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), file.Close
}
