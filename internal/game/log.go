package game

import "github.com/decred/slog"

// log is disabled until the caller installs a logger.
var log = slog.Disabled

// UseLogger sets the package logger.
func UseLogger(logger slog.Logger) {
	log = logger
}
