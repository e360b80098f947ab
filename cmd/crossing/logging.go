package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation limits
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 7
)

// newLogger builds the command logger. It writes to stderr, or to a
// rotated file when --log-file is given.
func newLogger() *log.Logger {
	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		out = &lumberjack.Logger{
			Filename:   flagLogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// sessionLogger returns the logger handed to the TUI. The terminal belongs
// to bubbletea while it runs, so without a log file session logs are dropped.
func sessionLogger(logger *log.Logger) *log.Logger {
	if flagLogFile != "" {
		return logger
	}
	return log.New(io.Discard)
}
