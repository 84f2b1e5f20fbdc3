// Command pingpong is a two-player local ping pong game.
//
// Player 1 defends the top edge with the arrow keys, player 2 the bottom edge
// with A/D/W/S. First to the target score wins.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pingpong/internal/desktop"
	"pingpong/internal/game"
	"pingpong/internal/setup"
)

func init() {
	// GLFW and GL must stay on the main thread.
	runtime.LockOSThread()
}

type options struct {
	configPath string
	player1    string
	player2    string
	target     string
	seed       uint64
	logLevel   string
	mute       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "pingpong",
		Short: "Two-player local ping pong",
		Long: `Two players share one keyboard. Player 1 uses the arrow keys and
player 2 uses A/D/W/S. A setup form asks for names and the target score
unless --target is given.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", game.DefaultConfigFile, "TOML config file (optional)")
	f.StringVar(&opts.player1, "player1", "", "player 1 name")
	f.StringVar(&opts.player2, "player2", "", "player 2 name")
	f.StringVar(&opts.target, "target", "", "target score; skips the setup form")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn, error, critical or off")
	f.BoolVar(&opts.mute, "mute", false, "disable sound effects")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if err := setLogLevels(opts.logLevel); err != nil {
		return err
	}
	cfg, err := game.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") {
		if err := setLogLevels(cfg.LogLevel); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}

	var params game.Params
	skipForm := cmd.Flags().Changed("target")
	if skipForm {
		params, err = setup.Resolve(opts.player1, opts.player2, opts.target)
		if err != nil {
			return fmt.Errorf("--target %q: %w", opts.target, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := desktop.Open(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if !skipForm {
		form := setup.NewForm(app.Notifier())
		form.SetValue(setup.FieldPlayer1, opts.player1)
		form.SetValue(setup.FieldPlayer2, opts.player2)
		params, err = form.Run(ctx, app.Renderer, app.Input, app.Clock)
		if errors.Is(err, game.ErrQuit) {
			mainLog.Infof("Setup closed")
			return nil
		}
		if err != nil {
			return err
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	mainLog.Debugf("Seed %d", seed)

	bus := game.NewEventBus()
	if app.Audio != nil {
		app.Audio.Attach(bus)
	}
	bus.SubscribeAll(func(e game.Event) {
		mainLog.Tracef("%s player=%s at (%.0f,%.0f)", e.Type, e.Player, e.X, e.Y)
	})

	loop := game.NewLoop(cfg, params, app.Renderer, app.Input, app.Clock, game.NewRand(seed), bus)
	if err := loop.Run(ctx); err != nil {
		return err
	}
	mainLog.Infof("Bye")
	return nil
}
