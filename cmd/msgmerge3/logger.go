package main

import (
	"fmt"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// diagnosticLogger wraps a logging function so callers don't need to know
// whether a log file is configured.
type diagnosticLogger struct {
	logFunc func(string, ...interface{})
}

func (d *diagnosticLogger) log(format string, args ...interface{}) {
	d.logFunc(format, args...)
}

// setupDiagnosticLogger creates a rotating log file logger for --log-file,
// or a no-op logger if path is empty.
func setupDiagnosticLogger(path string) (*lumberjack.Logger, diagnosticLogger) {
	if path == "" {
		return nil, diagnosticLogger{logFunc: func(string, ...interface{}) {}}
	}

	logF := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}

	logger := diagnosticLogger{
		logFunc: func(format string, args ...interface{}) {
			msg := fmt.Sprintf(format, args...)
			timestamp := time.Now().Format("2006-01-02 15:04:05")
			_, _ = fmt.Fprintf(logF, "[%s] %s\n", timestamp, msg)
		},
	}

	return logF, logger
}
