package main

import (
	"fmt"
	"os"

	"github.com/decred/slog"

	"pingpong/internal/desktop"
	"pingpong/internal/game"
	"pingpong/internal/setup"
)

var (
	backend = slog.NewBackend(os.Stderr)

	gameLog = backend.Logger("GAME")
	setpLog = backend.Logger("SETP")
	deskLog = backend.Logger("DESK")
	mainLog = backend.Logger("MAIN")
)

var subsystemLoggers = map[string]slog.Logger{
	"GAME": gameLog,
	"SETP": setpLog,
	"DESK": deskLog,
	"MAIN": mainLog,
}

func init() {
	game.UseLogger(gameLog)
	setup.UseLogger(setpLog)
	desktop.UseLogger(deskLog)
}

// setLogLevels applies one level to every subsystem.
func setLogLevels(level string) error {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(lvl)
	}
	return nil
}
