package config

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
)

var (
	loggerMu sync.Mutex
	logger   = log.NewWithOptions(io.Discard, log.Options{Prefix: "termzoom"})
	logFile  *os.File
)

// Logger returns the shared logger. It discards output until SetupLogging
// enables debug logging, since the TUI owns the terminal.
func Logger() *log.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	return logger
}

// SetupLogging points the shared logger at $XDG_STATE_HOME/termzoom/debug.log
// when debug is true and returns the log path. The returned func closes the
// file.
func SetupLogging(debug bool) (string, func(), error) {
	if !debug {
		return "", func() {}, nil
	}
	path, err := xdg.StateFile("termzoom/debug.log")
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to get log path: %w", err)
	}
	// #nosec G304 - path is under the user's state directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to open log file: %w", err)
	}
	SetLogOutput(f, log.DebugLevel)

	loggerMu.Lock()
	logFile = f
	loggerMu.Unlock()

	return path, closeLog, nil
}

// SetLogOutput replaces the shared logger with one writing to w at level.
func SetLogOutput(w io.Writer, level log.Level) {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "termzoom",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
	log.SetDefault(l)
}

func closeLog() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "termzoom"})
}
