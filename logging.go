// logging.go - Structured logging via charmbracelet/log, with an optional
// syslog mirror and a human-readable resync status line.

package main

import (
	"io"
	"log/syslog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

// NewLogger builds the program's logger. When syslogMirror is set, log
// output is additionally written to the local syslog daemon; when logFile
// is non-empty, it's additionally appended to that file. quiet raises the
// logger's level to only report errors.
func NewLogger(syslogMirror bool, logFile string, quiet bool) (*log.Logger, error) {
	writers := []io.Writer{os.Stderr}
	if syslogMirror {
		sw, err := syslog.New(syslog.LOG_DAEMON|syslog.LOG_INFO, "chronobeacon")
		if err != nil {
			return nil, newEngineError(ErrResourceAlloc, err)
		}
		writers = append(writers, sw)
	}
	if logFile != "" {
		lf, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, newEngineError(ErrResourceAlloc, err)
		}
		writers = append(writers, lf)
	}

	var w io.Writer = os.Stderr
	if len(writers) > 1 {
		w = io.MultiWriter(writers...)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger, nil
}

// FormatResyncStatus renders a verbose-mode status line for a resync event.
func FormatResyncStatus(station StationId, utcMs int64) string {
	t := time.UnixMilli(utcMs).UTC()
	s, err := strftime.Format("%Y-%m-%d %H:%M:%S UTC", t)
	if err != nil {
		s = t.String()
	}
	return station.String() + " resync @ " + s
}
