package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtle-racer/internal/platform/window"
	"github.com/vovakirdan/turtle-racer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Watch a race",
	Long: `Open a frontend and run races until it is closed.

Controls:
  Click       - Restart the race (any time)
  R           - Restart (terminal)
  Esc/Q       - Quit
  Close       - Quit (window)

Examples:
  turtlerace play
  turtlerace play window --fps 60
  turtlerace play terminal
  turtlerace play --config ./my-race.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := window.ID
	if len(args) == 1 {
		id = args[0]
	}

	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q, run 'turtlerace list' to see available frontends", id)
	}

	env, cleanup, err := environment(cmd, id)
	if err != nil {
		return err
	}
	defer cleanup()

	frontend, err := registry.Create(id)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env.Logger.Debug("starting frontend", "id", id, "seed", env.Runtime.Seed, "fps", env.Runtime.TickRate)
	if err := frontend.Run(ctx, env); err != nil {
		return fatal(env.Logger, "race failed", err)
	}
	return nil
}
