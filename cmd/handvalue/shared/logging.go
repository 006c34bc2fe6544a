package shared

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger configures charmbracelet/log with timestamped console output
// on w. Debug overrides level.
func SetupLogger(w io.Writer, level log.Level, debug bool) *log.Logger {
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// SetupStructuredLogger configures charmbracelet/log for structured (JSON)
// output on w.
func SetupStructuredLogger(w io.Writer, level log.Level, debug bool) *log.Logger {
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Formatter:       log.JSONFormatter,
	})
}
