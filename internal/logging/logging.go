// Package logging configures the shared logger for all chesscore packages.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var log *logging.Logger

// GetLog returns the process-wide chesscore logger, creating and
// configuring it on first use. The logger writes levelled, formatted
// records to stderr so normal command output stays clean.
func GetLog() *logging.Logger {
	if log == nil {
		log = logging.MustGetLogger("chesscore")
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{level:-7.7s} %{shortpkg:-10.10s} %{message}`)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.INFO, "")
		logging.SetBackend(leveled)
	}
	return log
}

// SetLevel adjusts the log level by name ("debug", "info", "warning",
// "error", ...). Unknown names are ignored and the current level kept.
func SetLevel(name string) {
	level, err := logging.LogLevel(name)
	if err != nil {
		GetLog().Warningf("unknown log level %q", name)
		return
	}
	GetLog()
	logging.SetLevel(level, "chesscore")
}
