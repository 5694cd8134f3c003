// Package logging provides structured logging for the reboot-cause tool.
//
// # Overview
//
// This package wraps the standard library slog package with the defaults
// this repository uses everywhere: module/version context on every record,
// environment-based level configuration, and a sink selected at startup.
//
// Because this tool runs as a one-shot boot task, its diagnostics belong in
// the system journal, not on standard output. When the systemd journal is
// available the logger sends records directly to it with mapped syslog
// priorities (info/warning/error) and structured journal fields; in
// containers and tests without a journal socket it falls back to JSON on
// stderr. Standard output is never used.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("rebootcause", version)
//
//	    slog.Info("resolved previous reboot cause", "cause", cause)
//	    slog.Warn("platform capability not available")
//	    slog.Error("state rotation failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("rebootcause", version, "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (debug, info, warn, error; default info).
package logging
